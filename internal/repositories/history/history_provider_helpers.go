package history

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

const defaultScanCount = 500

// zsh EXTENDED_HISTORY lines look like ": 1700000000:0;git status".
var zshExtendedPrefix = regexp.MustCompile(`^: \d+:\d+;`)

// toUserFriendlyPath converts an absolute path to a ~/-based path if it's under the user's home directory.
func toUserFriendlyPath(absPath string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	if !strings.HasPrefix(absPath, homeDir+string(os.PathSeparator)) {
		return absPath
	}
	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil {
		return absPath
	}
	return filepath.Join("~", relPath)
}

// findUserHistoryFile attempts to find a shell history file by checking HISTFILE and common locations.
func findUserHistoryFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}

	if histFileEnvVal := os.Getenv("HISTFILE"); histFileEnvVal != "" {
		pathToCheck := histFileEnvVal
		if !filepath.IsAbs(pathToCheck) {
			pathToCheck = filepath.Join(homeDir, pathToCheck)
		}
		if _, err := os.Stat(pathToCheck); err == nil {
			return pathToCheck, nil
		}
	}

	potentialPaths := []string{
		filepath.Join(homeDir, ".zsh_history"),
		filepath.Join(homeDir, ".bash_history"),
	}
	for _, p := range potentialPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("no shell history file found (checked HISTFILE, ~/.zsh_history, ~/.bash_history)")
}

// determineScanCount determines how many history entries to scan.
func determineScanCount(scanLimit int) int {
	if scanLimit > 0 {
		return scanLimit
	}
	if histSizeStr := os.Getenv("HISTSIZE"); histSizeStr != "" {
		if histSize, err := strconv.Atoi(histSizeStr); err == nil && histSize > 0 {
			return histSize
		}
	}
	return defaultScanCount
}

// normalizeEntry strips the zsh extended-history prefix and the trailing
// newline artifacts of a raw history line.
func normalizeEntry(raw string) string {
	entry := zshExtendedPrefix.ReplaceAllString(raw, "")
	return strings.TrimRight(entry, "\r\n")
}

const initialRingCapacity = 1024

// readRecentEntries returns the last limit non-blank entries of the file, oldest first.
func readRecentEntries(path string, limit int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening history file %s: %w", toUserFriendlyPath(path), err)
	}
	defer file.Close()

	// Ring buffer of the most recent entries. It grows with the file, limit
	// may be an "unlimited" HISTSIZE.
	ring := make([]string, 0, min(limit, initialRingCapacity))
	next := 0

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		entry := normalizeEntry(scanner.Text())
		if strings.TrimSpace(entry) == "" {
			continue
		}
		if len(ring) < limit {
			ring = append(ring, entry)
			continue
		}
		ring[next] = entry
		next = (next + 1) % limit
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading history file %s: %w", toUserFriendlyPath(path), err)
	}

	entries := make([]string, 0, len(ring))
	entries = append(entries, ring[next:]...)
	entries = append(entries, ring[:next]...)
	return entries, nil
}
