/*
Package inspection defines the records produced when command lines are
classified in bulk (case files, shell history, piped input).
*/
package inspection

// Status is the parse outcome of a single line.
type Status string

const (
	StatusForeground    Status = "foreground"
	StatusBackground    Status = "background"
	StatusInvalidMarker Status = "invalid-marker"
	StatusEmpty         Status = "empty"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusForeground, StatusBackground, StatusInvalidMarker, StatusEmpty:
		return true
	}
	return false
}

// Result is the classification of one line.
type Result struct {
	Line   string   `yaml:"line"`
	Status Status   `yaml:"status"`
	Tokens []string `yaml:"tokens,omitempty"`
	Notes  []string `yaml:"notes,omitempty"`
	Error  string   `yaml:"error,omitempty"`
}

/*
Case is an expectation read from a case file. Tokens is only compared
when set.
*/
type Case struct {
	Line   string   `yaml:"line"`
	Want   Status   `yaml:"want"`
	Tokens []string `yaml:"tokens,omitempty"`
}

// CaseOutcome pairs a case with what the parser actually produced.
type CaseOutcome struct {
	Case   Case
	Got    Result
	Passed bool
}

// HistorySummary aggregates the classification of shell history entries.
type HistorySummary struct {
	Source   string
	Scanned  int
	Counts   map[Status]int
	Flagged  int      // parsed entries carrying analyzer notes
	Rejected []Result // entries that did not parse, in history order
}
