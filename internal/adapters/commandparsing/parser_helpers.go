package commandparsing

import (
	"strings"

	"github.com/AntonioJCosta/cmdparse/internal/core/domain/command"
)

const delimiter = ' '

type placement int

const (
	markerInvalid placement = iota
	markerForeground
	markerBackground
)

type markerScan struct {
	placement placement
	// at is the marker index for markerBackground, the offending
	// character for markerInvalid and -1 for markerForeground.
	at int
}

/*
scanMarker validates the placement of the first marker in line, which must
already be stripped of leading spaces.

The line is invalid if it starts with the marker or if anything but spaces
follows the first marker, including a second marker. Without a marker the
command runs in the foreground.
*/
func scanMarker(line string) markerScan {
	if len(line) > 0 && line[0] == command.Marker {
		return markerScan{placement: markerInvalid, at: 0}
	}
	i := strings.IndexByte(line, command.Marker)
	if i < 0 {
		return markerScan{placement: markerForeground, at: -1}
	}
	if rest := skipSpaces(line, i+1); rest < len(line) {
		return markerScan{placement: markerInvalid, at: rest}
	}
	return markerScan{placement: markerBackground, at: i}
}

// countTokens counts the maximal runs of non-space bytes in s.
func countTokens(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] != delimiter && (i+1 == len(s) || s[i+1] == delimiter) {
			n++
		}
	}
	return n
}

// tokenLength measures the run of non-space bytes starting at start.
func tokenLength(s string, start int) int {
	n := 0
	for start+n < len(s) && s[start+n] != delimiter {
		n++
	}
	return n
}

// extractTokens copies the first count tokens out of s. Each token gets its
// own backing storage so the result never aliases the caller's line.
func extractTokens(s string, count int) []string {
	tokens := make([]string, 0, count)
	i := skipSpaces(s, 0)
	for len(tokens) < count {
		n := tokenLength(s, i)
		tokens = append(tokens, strings.Clone(s[i:i+n]))
		i = skipSpaces(s, i+n)
	}
	return tokens
}

// skipSpaces returns the index of the first non-space byte at or after i.
func skipSpaces(s string, i int) int {
	for i < len(s) && s[i] == delimiter {
		i++
	}
	return i
}
