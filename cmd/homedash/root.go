package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/supporttools/homedash/pkg/logger"
)

var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
)

var rootCmd = &cobra.Command{
	Use:   "homedash",
	Short: "Configuration-driven dashboard server",
	Long: `HomeDash serves a personal dashboard from a single YAML file:
link sections, widgets, themes, and link health monitoring.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env file is not an error, the environment may
		// already be populated.
		_ = godotenv.Load()
		return logger.Initialize(flagLogLevel, flagLogFormat)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to configuration file (default config/dashboard.yaml, or $CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "log format (json, text)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
