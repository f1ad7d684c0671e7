package cli

import (
	"errors"
	"fmt"

	"github.com/AntonioJCosta/cmdparse/internal/core/domain/inspection"
	"github.com/AntonioJCosta/cmdparse/internal/core/ports"
	"github.com/AntonioJCosta/cmdparse/internal/handlers/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// ErrParseFailed is returned when at least one input line was rejected.
var ErrParseFailed = errors.New("one or more lines failed to parse")

// NewParseCommand creates the 'parse' subcommand.
// analyzer can be nil, in which case no warnings are printed.
func NewParseCommand(
	parser ports.CommandParser,
	analyzer ports.CommandAnalyzer,
	inspectionService ports.InspectionService,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [command line]",
		Short: "Parse a command line and show its tokens.",
		Long: `Parses the command line given as arguments (joined with single spaces),
or every line read from stdin when no argument is given.

By default each token is listed with its index, followed by the
foreground/background status. --print echoes the reconstructed line instead.`,
		Example: `  cmdparse parse "sleep 10 &"
  cmdparse parse --print -- ls   -l
  printf 'ls\nmake &\n' | cmdparse parse --format yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParseCmd(cmd, args, parser, analyzer, inspectionService)
		},
	}

	cmd.Flags().BoolP("print", "p", false, "Print the reconstructed command line instead of the token list.")
	cmd.Flags().StringP("format", "F", formatText, "Output format: text or yaml.")

	return cmd
}

func runParseCmd(
	cmd *cobra.Command,
	args []string,
	parser ports.CommandParser,
	analyzer ports.CommandAnalyzer,
	inspectionService ports.InspectionService,
) error {
	flags, err := parseParseCommandFlags(cmd)
	if err != nil {
		return err
	}

	lines, err := collectInputLines(cmd, args)
	if err != nil {
		return err
	}

	if flags.format == formatYAML {
		return writeYAMLResults(cmd, lines, inspectionService)
	}

	failed := false
	for _, line := range lines {
		if !writeParsedLine(cmd, line, parser, analyzer, flags.printLine) {
			failed = true
		}
	}
	if failed {
		return ErrParseFailed
	}
	return nil
}

func writeYAMLResults(cmd *cobra.Command, lines []string, inspectionService ports.InspectionService) error {
	results := make([]inspection.Result, 0, len(lines))
	failed := false
	for _, line := range lines {
		result := inspectionService.Inspect(line)
		if result.Error != "" {
			failed = true
		}
		results = append(results, result)
	}

	encoder := yaml.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if failed {
		return ErrParseFailed
	}
	return nil
}

// writeParsedLine prints one parsed line and reports whether it parsed.
func writeParsedLine(
	cmd *cobra.Command,
	line string,
	parser ports.CommandParser,
	analyzer ports.CommandAnalyzer,
	printLine bool,
) bool {
	out := cmd.OutOrStdout()

	parsed, foreground, err := parser.Parse(line)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		return false
	}
	defer parsed.Release()

	if analyzer != nil {
		for _, note := range analyzer.Analyze(parsed.Args()) {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningColor(fmt.Sprintf("Warning: %s", note)))
		}
	}

	if printLine {
		if err := parsed.PrintLine(out); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
			return false
		}
		fmt.Fprintln(out)
		return true
	}

	if err := parsed.Show(out); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorColor(fmt.Sprintf("Error: %v", err)))
		return false
	}
	status := inspection.StatusBackground
	if foreground {
		status = inspection.StatusForeground
	}
	fmt.Fprintln(out, ui.DetailColor("---"), parsed.Name(), colorStatus(status))
	return true
}
