package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Ask a single travel question",
	Long: `Ask sends one message through the assistant and prints the reply.

Examples:
  voyant ask "Tìm chuyến bay từ Hà Nội đến Đà Nẵng"
  voyant --model claude ask "best time to visit Kyoto"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	dispatcher, err := buildDispatcher(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}

	message := strings.Join(args, " ")
	reply := dispatcher.Process(cmd.Context(), dispatcher.NewSessionID(), message, nil)
	if !reply.OK() {
		return fmt.Errorf("[%s] %s", reply.Agent, reply.Message)
	}

	fmt.Printf("[%s] %s\n", reply.Agent, reply.Content)
	return nil
}
