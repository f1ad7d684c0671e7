package main

import (
	"os"

	"github.com/AntonioJCosta/cmdparse/internal/adapters/casefile"
	"github.com/AntonioJCosta/cmdparse/internal/adapters/commandanalysis"
	"github.com/AntonioJCosta/cmdparse/internal/adapters/commandparsing"
	"github.com/AntonioJCosta/cmdparse/internal/core/ports"
	"github.com/AntonioJCosta/cmdparse/internal/core/services/commandinspection"
	"github.com/AntonioJCosta/cmdparse/internal/handlers/cli"
	"github.com/AntonioJCosta/cmdparse/internal/repositories/history"
)

// Version is set at build time
var Version = "dev"

func main() {
	parser := commandparsing.NewParser()
	analyzer := commandanalysis.NewBasicAnalyzer()

	// A missing history file only matters to the history subcommand.
	historyRepo := history.NewHistoryProvider(history.NewDefaultHistoryFileFinder())

	inspectionSvc := commandinspection.NewService(parser, analyzer, historyRepo)
	newCaseProvider := func(path string) (ports.CaseProvider, error) {
		return casefile.NewYAMLProvider(path)
	}

	rootCmd := cli.NewRootCommand(Version, parser, analyzer, inspectionSvc, newCaseProvider)

	if err := rootCmd.Execute(); err != nil {
		cli.ReportError(os.Stderr, err)
		os.Exit(1)
	}
}
