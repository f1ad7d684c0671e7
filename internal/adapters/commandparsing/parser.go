package commandparsing

import (
	"github.com/AntonioJCosta/cmdparse/internal/core/domain/command"
	"github.com/AntonioJCosta/cmdparse/internal/core/ports"
)

// Parser splits command lines on spaces and recognises a trailing '&'.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() ports.CommandParser {
	return &Parser{}
}

/*
Parse turns line into a Command and reports whether it runs in the foreground.

Leading spaces are skipped, then the marker placement is validated, then the
tokens are counted and extracted. Nothing is allocated for a rejected line.
*/
func (p *Parser) Parse(line string) (*command.Command, bool, error) {
	start := skipSpaces(line, 0)
	trimmed := line[start:]

	scan := scanMarker(trimmed)
	if scan.placement == markerInvalid {
		return nil, false, &command.ParseError{Line: line, Offset: start + scan.at, Err: command.ErrInvalidMarkerPlacement}
	}

	body := trimmed
	if scan.placement == markerBackground && trimmed[scan.at-1] == ' ' {
		// A standalone marker never becomes a token. One glued to the last
		// word stays part of it.
		body = trimmed[:scan.at]
	}

	count := countTokens(body)
	if count == 0 {
		return nil, false, &command.ParseError{Line: line, Offset: -1, Err: command.ErrEmptyCommand}
	}

	return command.New(extractTokens(body, count)), scan.placement == markerForeground, nil
}
