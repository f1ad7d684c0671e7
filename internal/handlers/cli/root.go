package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/cmdparse/internal/core/ports"
	"github.com/AntonioJCosta/cmdparse/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// CaseProviderFactory opens the case file at path.
type CaseProviderFactory func(path string) (ports.CaseProvider, error)

func NewRootCommand(
	version string,
	parser ports.CommandParser,
	analyzer ports.CommandAnalyzer,
	inspectionService ports.InspectionService,
	newCaseProvider CaseProviderFactory,
) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cmdparse",
		Short: "cmdparse splits shell command lines and validates background markers.",
		Long: `cmdparse turns a command line into the argument vector a process
would be started with, and reports whether a trailing '&' asks for
background execution.`,
		Version:      version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if parser == nil && cmd.Name() == "parse" {
				return fmt.Errorf("command parser not initialized for command %s", cmd.Name())
			}
			if inspectionService == nil && (cmd.Name() == "parse" || cmd.Name() == "check" || cmd.Name() == "history") {
				return fmt.Errorf("inspection service not initialized for command %s", cmd.Name())
			}
			return nil
		},
	}

	rootCmd.AddCommand(NewParseCommand(parser, analyzer, inspectionService))
	rootCmd.AddCommand(NewCheckCommand(inspectionService, newCaseProvider))
	rootCmd.AddCommand(NewHistoryCommand(inspectionService))

	return rootCmd
}

// ReportError prints err returned by Execute. Parse failures have already
// been reported line by line.
func ReportError(w io.Writer, err error) {
	if err == nil || errors.Is(err, ErrParseFailed) {
		return
	}
	fmt.Fprintln(w, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
}
