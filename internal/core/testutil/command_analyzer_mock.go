package testutil

import "github.com/AntonioJCosta/cmdparse/internal/core/ports"

// MockCommandAnalyzer is a mock implementation of ports.CommandAnalyzer.
type MockCommandAnalyzer struct {
	AnalyzeFunc func(tokens []string) []string
}

// Analyze implements the ports.CommandAnalyzer interface.
func (m *MockCommandAnalyzer) Analyze(tokens []string) []string {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(tokens)
	}
	return nil
}

var _ ports.CommandAnalyzer = (*MockCommandAnalyzer)(nil)
