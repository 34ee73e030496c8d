// Package cmd provides the CLI commands for the Voyant travel assistant.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	modelKey   string
)

var rootCmd = &cobra.Command{
	Use:   "voyant",
	Short: "Voyant - a conversational travel assistant",
	Long:  `Voyant routes travel questions to specialist responders for flights, hotels, food, weather and places, backed by Gemini, Claude or GPT.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&modelKey, "model", "", "model key (gemini, claude, gpt4)")
}
