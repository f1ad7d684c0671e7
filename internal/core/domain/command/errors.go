package command

import (
	"errors"
	"fmt"
)

// ErrInvalidMarkerPlacement indicates a marker at the start of the line or
// followed by anything other than spaces.
var ErrInvalidMarkerPlacement = errors.New("invalid placement of '&'")

// ErrEmptyCommand indicates a line without any token.
var ErrEmptyCommand = errors.New("empty command")

// ParseError describes why a line was rejected.
type ParseError struct {
	Line   string
	Offset int // byte offset of the offending character in Line, -1 if none
	Err    error
}

func (e *ParseError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("parsing %q: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parsing %q: %v at offset %d", e.Line, e.Err, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
