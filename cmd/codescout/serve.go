package main

import (
	"github.com/spf13/cobra"

	"github.com/codescout/codescout/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long:  "Expose repository analysis and requirement mapping over HTTP.",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	return api.NewServer(cfg, log).Run()
}
