package testutil

import (
	"github.com/AntonioJCosta/cmdparse/internal/core/domain/command"
	"github.com/AntonioJCosta/cmdparse/internal/core/ports"
)

// MockCommandParser is a mock implementation of ports.CommandParser.
type MockCommandParser struct {
	ParseFunc func(line string) (*command.Command, bool, error)
	// ParseCalls keeps track of the lines passed to Parse.
	ParseCalls []string
}

// Parse implements the ports.CommandParser interface.
// Without ParseFunc every line parses as a foreground command with no tokens.
func (m *MockCommandParser) Parse(line string) (*command.Command, bool, error) {
	m.ParseCalls = append(m.ParseCalls, line)
	if m.ParseFunc != nil {
		return m.ParseFunc(line)
	}
	return command.New(nil), true, nil
}

var _ ports.CommandParser = (*MockCommandParser)(nil)
