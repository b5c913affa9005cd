package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codescout/codescout/internal/analyzer"
)

var (
	analyzeRepoFlag   string
	analyzeOutputFlag string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a repository and write the analysis report",
	Long: `Scan a repository working tree, detect its languages, frameworks, build
tools and test setup, extract code symbols, and write the full analysis
report as JSON.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeRepoFlag, "repo", "", "Path to the repository to analyze")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFlag, "output", "o", "analysis.json", "Output file path ('-' for stdout)")
	analyzeCmd.MarkFlagRequired("repo")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	root := analyzer.ResolveRoot(analyzeRepoFlag, log)

	report, err := analyzer.NewAnalyzer(cfg.Analyzer, log).Analyze(root)
	if err != nil {
		return err
	}

	if err := writeJSON(analyzeOutputFlag, report); err != nil {
		return err
	}

	log.Info("report written", "output", analyzeOutputFlag,
		"files", report.TotalFiles,
		"classes", report.Stats.TotalClasses,
		"functions", report.Stats.TotalFunctions)
	return nil
}

// writeJSON writes v as indented JSON to path, or to stdout when path is "-"
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
