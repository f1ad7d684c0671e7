package commandinspection

import (
	"errors"
	"slices"

	"github.com/AntonioJCosta/cmdparse/internal/core/domain/command"
	"github.com/AntonioJCosta/cmdparse/internal/core/domain/inspection"
)

// statusForError maps a parse failure onto its status. Errors outside the
// parser's taxonomy count as invalid marker placement.
func statusForError(err error) inspection.Status {
	if errors.Is(err, command.ErrEmptyCommand) {
		return inspection.StatusEmpty
	}
	return inspection.StatusInvalidMarker
}

// matches compares a result with a case. Tokens are only compared when the case lists them.
func matches(c inspection.Case, got inspection.Result) bool {
	if c.Want != got.Status {
		return false
	}
	if c.Tokens == nil {
		return true
	}
	return slices.Equal(c.Tokens, got.Tokens)
}

func newStatusCounts() map[inspection.Status]int {
	return map[inspection.Status]int{
		inspection.StatusForeground:    0,
		inspection.StatusBackground:    0,
		inspection.StatusInvalidMarker: 0,
		inspection.StatusEmpty:         0,
	}
}
