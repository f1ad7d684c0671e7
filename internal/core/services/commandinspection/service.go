package commandinspection

import (
	"fmt"

	"github.com/AntonioJCosta/cmdparse/internal/core/domain/inspection"
	"github.com/AntonioJCosta/cmdparse/internal/core/ports"
)

type service struct {
	parser          ports.CommandParser
	analyzer        ports.CommandAnalyzer // Can be nil if no analysis is wanted.
	historyProvider ports.HistoryProvider
}

// NewService creates a new command inspection service.
// It panics if parser or historyProvider are nil. analyzer can be nil.
func NewService(parser ports.CommandParser, analyzer ports.CommandAnalyzer, hp ports.HistoryProvider) ports.InspectionService {
	if parser == nil {
		panic("parser cannot be nil")
	}
	if hp == nil {
		panic("historyProvider cannot be nil")
	}
	return &service{parser: parser, analyzer: analyzer, historyProvider: hp}
}

// Inspect parses line and releases the command once its tokens are recorded.
func (s *service) Inspect(line string) inspection.Result {
	result := inspection.Result{Line: line}

	cmd, foreground, err := s.parser.Parse(line)
	if err != nil {
		result.Status = statusForError(err)
		result.Error = err.Error()
		return result
	}
	defer cmd.Release()

	result.Tokens = cmd.Args()
	if s.analyzer != nil {
		result.Notes = s.analyzer.Analyze(result.Tokens)
	}
	if foreground {
		result.Status = inspection.StatusForeground
	} else {
		result.Status = inspection.StatusBackground
	}
	return result
}

// CheckCases runs every case from provider through the parser.
func (s *service) CheckCases(provider ports.CaseProvider) ([]inspection.CaseOutcome, error) {
	if provider == nil {
		return nil, fmt.Errorf("case provider is not configured")
	}
	cases, err := provider.GetCases()
	if err != nil {
		return nil, fmt.Errorf("failed to load cases: %w", err)
	}

	outcomes := make([]inspection.CaseOutcome, 0, len(cases))
	for _, c := range cases {
		got := s.Inspect(c.Line)
		outcomes = append(outcomes, inspection.CaseOutcome{
			Case:   c,
			Got:    got,
			Passed: matches(c, got),
		})
	}
	return outcomes, nil
}

// SummarizeHistory classifies the most recent history entries.
func (s *service) SummarizeHistory(scanLimit int) (inspection.HistorySummary, error) {
	summary := inspection.HistorySummary{
		Source: s.historyProvider.GetSourceIdentifier(),
		Counts: newStatusCounts(),
	}

	entries, err := s.historyProvider.GetRecentEntries(scanLimit)
	if err != nil {
		return summary, fmt.Errorf("failed to read history entries: %w", err)
	}

	for _, entry := range entries {
		result := s.Inspect(entry)
		summary.Scanned++
		summary.Counts[result.Status]++
		if len(result.Notes) > 0 {
			summary.Flagged++
		}
		if result.Error != "" {
			summary.Rejected = append(summary.Rejected, result)
		}
	}
	return summary, nil
}
