/*
Package command defines the parsed command line, the core domain entity
handed to whatever spawns processes.
*/
package command

import (
	"fmt"
	"io"
	"strings"
)

// Marker is the background-execution marker.
const Marker = '&'

/*
Command is an ordered, immutable sequence of tokens produced by a parser.
The Command exclusively owns its tokens; callers receive copies through Args.
A Command is released exactly once by its owner.
*/
type Command struct {
	tokens   []string
	released bool
}

// New takes ownership of tokens and returns the Command holding them.
// Callers must not modify tokens afterwards.
func New(tokens []string) *Command {
	return &Command{tokens: tokens}
}

// Len returns the number of tokens.
func (c *Command) Len() int {
	return len(c.tokens)
}

// Token returns the i-th token (0-based). It panics if i is out of range.
func (c *Command) Token(i int) string {
	return c.tokens[i]
}

// Args returns a copy of the tokens, suitable as an argument vector.
func (c *Command) Args() []string {
	args := make([]string, len(c.tokens))
	copy(args, c.tokens)
	return args
}

// Name returns the first token, or "" for a released command.
func (c *Command) Name() string {
	if len(c.tokens) == 0 {
		return ""
	}
	return c.tokens[0]
}

/*
Show writes the structured debug view: one line per token, prefixed by its
1-based index. Any space inside a token is rendered as an underscore.

	#1 : ls
	#2 : -l
*/
func (c *Command) Show(w io.Writer) error {
	mustBeValid(c)
	for i, tok := range c.tokens {
		if _, err := fmt.Fprintf(w, "#%d : %s\n", i+1, strings.ReplaceAll(tok, " ", "_")); err != nil {
			return err
		}
	}
	return nil
}

// PrintLine writes the tokens back as a command line. Every token is followed
// by a single space, marker bytes are dropped and no newline is written.
// Other bytes are copied unchanged, valid UTF-8 or not.
func (c *Command) PrintLine(w io.Writer) error {
	mustBeValid(c)
	_, err := io.WriteString(w, c.line())
	return err
}

// String returns the PrintLine form.
func (c *Command) String() string {
	if c == nil {
		return ""
	}
	return c.line()
}

func (c *Command) line() string {
	var sb strings.Builder
	for _, tok := range c.tokens {
		for i := 0; i < len(tok); i++ {
			if tok[i] != Marker {
				sb.WriteByte(tok[i])
			}
		}
		sb.WriteByte(' ')
	}
	return sb.String()
}

// Release drops every token and then the sequence itself.
// A Command must not be used after Release.
func (c *Command) Release() {
	mustBeValid(c)
	for i := range c.tokens {
		c.tokens[i] = ""
	}
	c.tokens = nil
	c.released = true
}

// Released reports whether Release has been called.
func (c *Command) Released() bool {
	return c.released
}

func mustBeValid(c *Command) {
	if c == nil {
		panic("command: nil Command")
	}
}
