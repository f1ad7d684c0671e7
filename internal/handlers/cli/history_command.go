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

var statusOrder = []inspection.Status{
	inspection.StatusForeground,
	inspection.StatusBackground,
	inspection.StatusInvalidMarker,
	inspection.StatusEmpty,
}

// NewHistoryCommand creates the 'history' subcommand.
func NewHistoryCommand(inspectionService ports.InspectionService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Classify recent shell history entries.",
		Long: `Reads the most recent entries of your shell history ($HISTFILE, ~/.zsh_history
or ~/.bash_history) and counts how many parse as foreground or background
commands and how many would be rejected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryCmd(cmd, args, inspectionService)
		},
	}

	cmd.Flags().IntP("scan-limit", "s", 0, "Number of recent history entries to scan (default $HISTSIZE or 500).")
	cmd.Flags().BoolP("rejected", "r", false, "List the entries that failed to parse.")

	return cmd
}

func runHistoryCmd(
	cmd *cobra.Command,
	_ []string,
	inspectionService ports.InspectionService,
) error {
	scanLimit, _ := cmd.Flags().GetInt("scan-limit")
	showRejected, _ := cmd.Flags().GetBool("rejected")
	if scanLimit < 0 {
		scanLimit = 0
	}

	summary, err := inspectionService.SummarizeHistory(scanLimit)
	if err != nil {
		return fmt.Errorf("could not summarize history: %w", err)
	}

	out := cmd.OutOrStdout()
	if summary.Scanned == 0 {
		fmt.Fprintln(out, ui.InfoColor("No history entries found."))
		if summary.Source != "" {
			fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Context: %s", summary.Source)))
		}
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Scanned %d history entries:", summary.Scanned)))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Status", "Entries"})
	table.SetBorder(true)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})
	for _, status := range statusOrder {
		table.Append([]string{string(status), strconv.Itoa(summary.Counts[status])})
	}
	table.Render()

	if summary.Flagged > 0 {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%d parsed entries use shell syntax that is kept literally (quotes, pipes, redirections).", summary.Flagged)))
	}

	if showRejected && len(summary.Rejected) > 0 {
		fmt.Fprintln(out, ui.WarningColor("\nRejected entries:"))
		rejected := tablewriter.NewWriter(out)
		rejected.SetHeader([]string{"Entry", "Reason"})
		rejected.SetBorder(true)
		rejected.SetAutoWrapText(false)
		for _, r := range summary.Rejected {
			rejected.Append([]string{fmt.Sprintf("%q", r.Line), string(r.Status)})
		}
		rejected.Render()
	}

	if summary.Source != "" {
		fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("\n(Source: %s)", summary.Source)))
	}
	return nil
}
