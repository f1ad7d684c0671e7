package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/cmdparse/internal/core/domain/inspection"
	"github.com/AntonioJCosta/cmdparse/internal/handlers/ui"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type parseCommandFlags struct {
	printLine bool
	format    string
}

func parseParseCommandFlags(cmd *cobra.Command) (parseCommandFlags, error) {
	printLine, _ := cmd.Flags().GetBool("print")
	format, _ := cmd.Flags().GetString("format")

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = formatText
	}
	if format != formatText && format != formatYAML {
		return parseCommandFlags{}, fmt.Errorf("unsupported format %q (want %s or %s)", format, formatText, formatYAML)
	}
	return parseCommandFlags{printLine: printLine, format: format}, nil
}

// collectInputLines joins args into one line, or reads stdin line by line when there are none.
func collectInputLines(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return []string{strings.Join(args, " ")}, nil
	}

	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read command lines from stdin: %w", err)
	}
	return lines, nil
}

func colorStatus(status inspection.Status) string {
	switch status {
	case inspection.StatusForeground:
		return ui.ForegroundColor(string(status))
	case inspection.StatusBackground:
		return ui.BackgroundColor(string(status))
	case inspection.StatusInvalidMarker:
		return ui.InvalidColor(string(status))
	case inspection.StatusEmpty:
		return ui.EmptyColor(string(status))
	}
	return string(status)
}
