package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/adalundhe/voyant/core/config"
	"github.com/adalundhe/voyant/core/dispatch"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive travel chat",
	Long: `Chat starts a REPL that keeps one session for the whole conversation,
so locations and dates you mention stay available to later questions.
Type "exit" or "quit" to leave.`,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	dispatcher, err := buildDispatcher(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	var current atomic.Pointer[dispatch.Dispatcher]
	current.Store(dispatcher)

	// A config file makes the session hot-reloadable: edits swap in a freshly
	// wired dispatcher while the terminal session keeps running.
	if configPath != "" {
		manager, err := config.NewManager(configPath, logger)
		if err != nil {
			return err
		}
		defer manager.Close()

		manager.OnChange(func(changed *config.Config) {
			if modelKey != "" {
				changed.Model = modelKey
			}
			rebuilt, buildErr := buildDispatcher(cmd.Context(), changed, logger)
			if buildErr != nil {
				logger.Error("config reload failed, keeping previous setup", "error", buildErr)
				return
			}
			current.Store(rebuilt)
			logger.Info("configuration reloaded", "model", changed.Model)
		})
		if err := manager.Watch(); err != nil {
			return err
		}
	}

	sessionID := dispatcher.NewSessionID()
	fmt.Println("Voyant travel assistant. Type 'exit' to leave.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		message := strings.TrimSpace(scanner.Text())
		if message == "" {
			continue
		}
		if message == "exit" || message == "quit" {
			break
		}

		reply := current.Load().Process(cmd.Context(), sessionID, message, nil)
		if reply.OK() {
			fmt.Printf("%s> %s\n", reply.Agent, reply.Content)
		} else {
			fmt.Printf("%s> lỗi: %s\n", reply.Agent, reply.Message)
		}
	}
	return scanner.Err()
}
