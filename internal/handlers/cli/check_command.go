package cli

import (
	"fmt"
	"strconv"

	"github.com/AntonioJCosta/cmdparse/internal/core/domain/inspection"
	"github.com/AntonioJCosta/cmdparse/internal/core/ports"
	"github.com/AntonioJCosta/cmdparse/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the 'check' subcommand.
func NewCheckCommand(inspectionService ports.InspectionService, newCaseProvider CaseProviderFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <cases.yaml>",
		Short: "Parse every line of a YAML case file and compare with the expected outcome.",
		Long: `Reads a YAML list of cases:

  - line: "sleep 10 &"
    want: background        # foreground, background, invalid-marker or empty
    tokens: [sleep, "10"]   # optional

and reports which ones the parser disagrees with.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheckCmd(cmd, args, inspectionService, newCaseProvider)
		},
	}
	cmd.Flags().BoolP("failures-only", "x", false, "Only list the cases that failed.")
	return cmd
}

func runCheckCmd(
	cmd *cobra.Command,
	args []string,
	inspectionService ports.InspectionService,
	newCaseProvider CaseProviderFactory,
) error {
	if newCaseProvider == nil {
		return fmt.Errorf("case provider factory not initialized for check command")
	}
	failuresOnly, _ := cmd.Flags().GetBool("failures-only")

	provider, err := newCaseProvider(args[0])
	if err != nil {
		return fmt.Errorf("could not open case file: %w", err)
	}
	outcomes, err := inspectionService.CheckCases(provider)
	if err != nil {
		return fmt.Errorf("could not check cases: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(outcomes) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No cases found in %s.", args[0])))
		return nil
	}

	failed := 0
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Line", "Want", "Got", "Result"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	for i, o := range outcomes {
		if !o.Passed {
			failed++
		} else if failuresOnly {
			continue
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%q", o.Case.Line),
			describeExpectation(o.Case),
			describeResult(o.Got),
			passLabel(o.Passed),
		})
	}
	table.Render()

	if failed > 0 {
		fmt.Fprintln(out, ui.ErrorColor(fmt.Sprintf("%d of %d cases failed.", failed, len(outcomes))))
		return fmt.Errorf("%d of %d cases failed", failed, len(outcomes))
	}
	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("All %d cases passed.", len(outcomes))))
	return nil
}

func describeExpectation(c inspection.Case) string {
	if c.Tokens == nil {
		return string(c.Want)
	}
	return fmt.Sprintf("%s %q", c.Want, c.Tokens)
}

func describeResult(r inspection.Result) string {
	if r.Error != "" {
		return string(r.Status)
	}
	return fmt.Sprintf("%s %q", r.Status, r.Tokens)
}

func passLabel(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}
