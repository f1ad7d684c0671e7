package ports

import "github.com/AntonioJCosta/cmdparse/internal/core/domain/inspection"

// InspectionService defines the contract for classifying command lines in bulk.
type InspectionService interface {
	// Inspect parses a single line and reports its outcome.
	Inspect(line string) inspection.Result

	// CheckCases parses every case from the provider and compares it with the expectation.
	CheckCases(provider CaseProvider) ([]inspection.CaseOutcome, error)

	// SummarizeHistory classifies up to scanLimit recent shell history entries.
	SummarizeHistory(scanLimit int) (inspection.HistorySummary, error)
}
