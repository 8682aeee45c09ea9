package cmd

import (
	"log/slog"
	"os"

	"github.com/pyoushmadan10/chatify/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chatify-cli",
	Short: "Chatify CLI tool",
	Long: `chatify-cli manages chatify user profiles from the command line.

Available commands:
  profile show     Print a user's profile
  profile avatar   Upload a new profile picture for a user
  version          Print the CLI version

Use "chatify-cli [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := "warn"
		if verbose {
			level = "debug"
		}
		slog.SetDefault(logging.NewLogger(os.Stderr, os.Getenv("LOG_FORMAT"), level))
	},
}

var verbose bool

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
