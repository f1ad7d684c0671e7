package testutil

import (
	"github.com/AntonioJCosta/cmdparse/internal/core/ports"
)

// MockHistoryProvider is a mock implementation of the ports.HistoryProvider interface.
type MockHistoryProvider struct {
	GetRecentEntriesFunc    func(scanLimit int) ([]string, error)
	GetHistoryFilePathFunc  func() string
	GetSourceIdentifierFunc func() string
}

// GetRecentEntries mocks the GetRecentEntries method.
func (m *MockHistoryProvider) GetRecentEntries(scanLimit int) ([]string, error) {
	if m.GetRecentEntriesFunc != nil {
		return m.GetRecentEntriesFunc(scanLimit)
	}
	return nil, nil
}

// GetHistoryFilePath mocks the GetHistoryFilePath method.
func (m *MockHistoryProvider) GetHistoryFilePath() string {
	if m.GetHistoryFilePathFunc != nil {
		return m.GetHistoryFilePathFunc()
	}
	return ""
}

// GetSourceIdentifier mocks the GetSourceIdentifier method.
func (m *MockHistoryProvider) GetSourceIdentifier() string {
	if m.GetSourceIdentifierFunc != nil {
		return m.GetSourceIdentifierFunc()
	}
	return ""
}

var _ ports.HistoryProvider = (*MockHistoryProvider)(nil)
