package history

import "github.com/AntonioJCosta/cmdparse/internal/core/ports"

// DefaultHistoryFileFinder looks at HISTFILE and the usual zsh and bash locations.
type DefaultHistoryFileFinder struct{}

// Find implements the ports.HistoryFileFinder interface.
func (d *DefaultHistoryFileFinder) Find() (string, error) {
	return findUserHistoryFile()
}

// NewDefaultHistoryFileFinder creates a new DefaultHistoryFileFinder.
func NewDefaultHistoryFileFinder() ports.HistoryFileFinder {
	return &DefaultHistoryFileFinder{}
}
