package testutil

import (
	"errors"

	"github.com/AntonioJCosta/cmdparse/internal/core/domain/inspection"
	"github.com/AntonioJCosta/cmdparse/internal/core/ports"
)

// MockCaseProvider is a mock implementation of ports.CaseProvider.
type MockCaseProvider struct {
	GetCasesFunc func() ([]inspection.Case, error)
}

func (m *MockCaseProvider) GetCases() ([]inspection.Case, error) {
	if m.GetCasesFunc != nil {
		return m.GetCasesFunc()
	}
	return nil, errors.New("MockCaseProvider: GetCasesFunc not implemented")
}

var _ ports.CaseProvider = (*MockCaseProvider)(nil)
