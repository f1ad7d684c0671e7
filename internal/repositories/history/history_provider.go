package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/cmdparse/internal/core/ports"
)

const defaultShell = "sh"

/*
HistoryProvider provides access to shell command history stored in files.
It implements the ports.HistoryProvider interface.
*/
type HistoryProvider struct {
	Shell            string
	HistoryFile      string // Stores the absolute path
	sourceIdentifier string // Stores the user-friendly source identifier
}

func (hp *HistoryProvider) GetSourceIdentifier() string {
	if hp.sourceIdentifier != "" {
		return hp.sourceIdentifier
	}
	if hp.HistoryFile != "" {
		return fmt.Sprintf("File: %s", toUserFriendlyPath(hp.HistoryFile))
	}
	return fmt.Sprintf("Shell: %s (history file path unknown)", hp.Shell)
}

// NewHistoryProvider creates a new file based HistoryProvider.
// A missing history file is not an error; GetRecentEntries reports it later.
func NewHistoryProvider(fileFinder ports.HistoryFileFinder) ports.HistoryProvider {
	if fileFinder == nil {
		panic("fileFinder cannot be nil")
	}
	shellName := defaultShell
	if shellPath := os.Getenv("SHELL"); shellPath != "" {
		shellName = strings.ToLower(filepath.Base(shellPath))
	}

	histFilePath, err := fileFinder.Find()
	if err != nil {
		return &HistoryProvider{
			Shell:            shellName,
			sourceIdentifier: fmt.Sprintf("Shell: %s (history file not found or configured: %v)", shellName, err),
		}
	}

	return &HistoryProvider{
		HistoryFile:      histFilePath,
		Shell:            shellName,
		sourceIdentifier: fmt.Sprintf("File: %s", toUserFriendlyPath(histFilePath)),
	}
}

// GetRecentEntries implements the ports.HistoryProvider interface.
func (hp *HistoryProvider) GetRecentEntries(scanLimit int) ([]string, error) {
	if hp.HistoryFile == "" {
		return nil, fmt.Errorf("history file not found or configured for shell %s", hp.Shell)
	}
	return readRecentEntries(hp.HistoryFile, determineScanCount(scanLimit))
}

func (hp *HistoryProvider) GetHistoryFilePath() string {
	return hp.HistoryFile
}
