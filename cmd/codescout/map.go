package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/codescout/codescout/internal/analyzer"
	"github.com/codescout/codescout/internal/mapper"
)

var (
	mapRepoFlag        string
	mapAnalysisFlag    string
	mapRequirementFlag string
	mapOutputFlag      string
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Map a requirement onto repository files",
	Long: `Read a requirement JSON file, score the repository's symbols and file
contents against its keywords, and write a change proposal ranking the
files most likely to need modification.

The analysis report is loaded from --analysis when given, otherwise the
repository at --repo is analyzed first.`,
	RunE: runMap,
}

func init() {
	mapCmd.Flags().StringVar(&mapRepoFlag, "repo", "", "Path to the repository")
	mapCmd.Flags().StringVar(&mapAnalysisFlag, "analysis", "", "Path to an existing analysis report JSON")
	mapCmd.Flags().StringVar(&mapRequirementFlag, "requirement", "requirement.json", "Path to the requirement JSON")
	mapCmd.Flags().StringVarP(&mapOutputFlag, "output", "o", "proposal.json", "Output file path ('-' for stdout)")
	rootCmd.AddCommand(mapCmd)
}

func runMap(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}

	var req mapper.Requirement
	if err := readJSON(mapRequirementFlag, &req); err != nil {
		return err
	}

	var report *analyzer.AnalysisReport
	switch {
	case mapAnalysisFlag != "":
		report = &analyzer.AnalysisReport{}
		if err := readJSON(mapAnalysisFlag, report); err != nil {
			return err
		}
	case mapRepoFlag != "":
		root := analyzer.ResolveRoot(mapRepoFlag, log)
		report, err = analyzer.NewAnalyzer(cfg.Analyzer, log).Analyze(root)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("either --repo or --analysis is required")
	}

	proposal := mapper.NewMapper(cfg.Mapper, log).GenerateProposal(report, req)

	if err := writeJSON(mapOutputFlag, proposal); err != nil {
		return err
	}

	log.Info("proposal written", "output", mapOutputFlag,
		"ticket", proposal.TicketID,
		"modify", len(proposal.FilesToModify))
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
