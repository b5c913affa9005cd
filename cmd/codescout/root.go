package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/codescout/codescout/internal/config"
	"github.com/codescout/codescout/internal/logging"
)

var (
	// configFlag is the CLI --config flag value
	configFlag string
	// logLevelFlag overrides the configured log level
	logLevelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "codescout",
	Short: "CodeScout - repository analysis and requirement mapping",
	Long: `CodeScout analyzes a repository's structure, tech stack and code symbols,
then maps issue-tracker requirements onto the source files most likely to
need changes. Output artifacts are plain JSON for downstream tooling.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
}

// loadConfig loads configuration and builds the logger. Logs go to stderr so
// stdout stays clean for JSON output.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.Log.Level
	if logLevelFlag != "" {
		level = logLevelFlag
	}
	return cfg, logging.New(os.Stderr, level), nil
}
