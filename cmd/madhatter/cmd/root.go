package cmd

import (
	"os"

	"github.com/madhatterpub/site/internal/config"
	"github.com/madhatterpub/site/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "madhatter",
	Short: "Mad Hatter Pub website",
	Long: `madhatter serves and maintains the Mad Hatter Pub website.

Available commands:
  serve        Run the web server
  render       Export the home page and its assets as static files
  validate     Check a content override file
  new-module   Scaffold a new site module
  version      Print the version

Configuration comes from the environment and an optional .env file
(APP_ADDR, CONTENT_FILE, LOG_LEVEL, ...).

Use "madhatter [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration and sets up logging from it.
func loadConfig() config.Provider {
	cfg := config.New()
	logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())
	return cfg
}
