package commandanalysis

import (
	"fmt"
	"strings"
)

// describeToken reports the first shell construct found in tok.
func (a *BasicAnalyzer) describeToken(tok string) (string, bool) {
	switch {
	case strings.ContainsAny(tok, `"'`):
		return "quotes are not interpreted", true
	case strings.Contains(tok, `\`):
		return "escapes are not interpreted", true
	case strings.Contains(tok, "|"):
		return "pipes are not supported", true
	case strings.Contains(tok, ";"):
		return "only one command per line is supported", true
	case strings.ContainsAny(tok, "<>"):
		return "redirections are not supported", true
	case strings.ContainsRune(tok, '&'):
		return "'&' inside a word is kept literally", true
	}
	return "", false
}

func formatNote(index int, tok, note string) string {
	return fmt.Sprintf("token #%d %q: %s", index+1, tok, note)
}
