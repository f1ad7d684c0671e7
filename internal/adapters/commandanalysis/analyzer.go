package commandanalysis

import (
	"github.com/AntonioJCosta/cmdparse/internal/core/ports"
)

// BasicAnalyzer flags shell syntax that the parser passes through as plain text.
type BasicAnalyzer struct{}

// NewBasicAnalyzer creates a new BasicAnalyzer.
func NewBasicAnalyzer() ports.CommandAnalyzer {
	return &BasicAnalyzer{}
}

/*
Analyze inspects the tokens of a parsed command and returns one note per
token that a real shell would interpret: quotes, escapes, pipes, command
separators and redirections. The parser supports none of these, so the
token reaches the program verbatim.
*/
func (a *BasicAnalyzer) Analyze(tokens []string) []string {
	var notes []string
	for i, tok := range tokens {
		if note, ok := a.describeToken(tok); ok {
			notes = append(notes, formatNote(i, tok, note))
		}
	}
	return notes
}
