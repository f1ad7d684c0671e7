package command

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCommand_Show(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{
			name:   "indexes are 1-based",
			tokens: []string{"ls", "-l", "-a"},
			want:   "#1 : ls\n#2 : -l\n#3 : -a\n",
		},
		{
			name:   "embedded spaces render as underscores",
			tokens: []string{"echo", "a b  c"},
			want:   "#1 : echo\n#2 : a_b__c\n",
		},
		{
			name:   "no tokens",
			tokens: nil,
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := New(tt.tokens)
			defer cmd.Release()

			var buf bytes.Buffer
			if err := cmd.Show(&buf); err != nil {
				t.Fatalf("Show() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("Show() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCommand_PrintLine(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{
			name:   "tokens joined with trailing space",
			tokens: []string{"ls", "-l"},
			want:   "ls -l ",
		},
		{
			name:   "marker characters are suppressed",
			tokens: []string{"make", "all&"},
			want:   "make all ",
		},
		{
			name:   "single token",
			tokens: []string{"pwd"},
			want:   "pwd ",
		},
		{
			name:   "invalid utf-8 bytes are copied as-is",
			tokens: []string{"cat", "f\xffo", "\xc3&"},
			want:   "cat f\xffo \xc3 ",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := New(tt.tokens)
			defer cmd.Release()

			var buf bytes.Buffer
			if err := cmd.PrintLine(&buf); err != nil {
				t.Fatalf("PrintLine() error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("PrintLine() = %q, want %q", buf.String(), tt.want)
			}
			if cmd.String() != tt.want {
				t.Errorf("String() = %q, want %q", cmd.String(), tt.want)
			}
		})
	}
}

func TestCommand_Accessors(t *testing.T) {
	cmd := New([]string{"git", "status"})
	defer cmd.Release()

	if cmd.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cmd.Len())
	}
	if cmd.Name() != "git" {
		t.Errorf("Name() = %q, want %q", cmd.Name(), "git")
	}
	if cmd.Token(1) != "status" {
		t.Errorf("Token(1) = %q, want %q", cmd.Token(1), "status")
	}

	args := cmd.Args()
	args[0] = "changed"
	if cmd.Token(0) != "git" {
		t.Errorf("Args() exposed internal storage, Token(0) = %q", cmd.Token(0))
	}
}

func TestCommand_Release(t *testing.T) {
	tokens := []string{"sleep", "10"}
	cmd := New(tokens)

	if cmd.Released() {
		t.Fatal("Released() = true before Release()")
	}
	cmd.Release()

	if !cmd.Released() {
		t.Error("Released() = false after Release()")
	}
	if cmd.Len() != 0 {
		t.Errorf("Len() = %d after Release(), want 0", cmd.Len())
	}
	if diff := cmp.Diff([]string{"", ""}, tokens); diff != "" {
		t.Errorf("Release() left token storage populated (-want +got):\n%s", diff)
	}
}

func TestCommand_NilPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Show() on a nil Command did not panic")
		}
	}()
	var cmd *Command
	_ = cmd.Show(&bytes.Buffer{})
}

func TestParseError(t *testing.T) {
	withOffset := &ParseError{Line: "ls & x", Offset: 5, Err: ErrInvalidMarkerPlacement}
	if got, want := withOffset.Error(), `parsing "ls & x": invalid placement of '&' at offset 5`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(withOffset, ErrInvalidMarkerPlacement) {
		t.Error("errors.Is(ParseError, ErrInvalidMarkerPlacement) = false")
	}

	noOffset := &ParseError{Line: "", Offset: -1, Err: ErrEmptyCommand}
	if got, want := noOffset.Error(), `parsing "": empty command`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if errors.Is(noOffset, ErrInvalidMarkerPlacement) {
		t.Error("errors.Is(empty ParseError, ErrInvalidMarkerPlacement) = true")
	}
}
