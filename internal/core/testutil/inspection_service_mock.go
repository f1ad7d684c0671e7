package testutil

import (
	"github.com/AntonioJCosta/cmdparse/internal/core/domain/inspection"
	"github.com/AntonioJCosta/cmdparse/internal/core/ports"
)

// MockInspectionService is a mock implementation of ports.InspectionService.
type MockInspectionService struct {
	InspectFunc          func(line string) inspection.Result
	CheckCasesFunc       func(provider ports.CaseProvider) ([]inspection.CaseOutcome, error)
	SummarizeHistoryFunc func(scanLimit int) (inspection.HistorySummary, error)
}

func (m *MockInspectionService) Inspect(line string) inspection.Result {
	if m.InspectFunc != nil {
		return m.InspectFunc(line)
	}
	return inspection.Result{Line: line}
}

func (m *MockInspectionService) CheckCases(provider ports.CaseProvider) ([]inspection.CaseOutcome, error) {
	if m.CheckCasesFunc != nil {
		return m.CheckCasesFunc(provider)
	}
	return nil, nil
}

func (m *MockInspectionService) SummarizeHistory(scanLimit int) (inspection.HistorySummary, error) {
	if m.SummarizeHistoryFunc != nil {
		return m.SummarizeHistoryFunc(scanLimit)
	}
	return inspection.HistorySummary{}, nil
}

var _ ports.InspectionService = (*MockInspectionService)(nil)
