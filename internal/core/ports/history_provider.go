package ports

type HistoryProvider interface {
	// GetRecentEntries returns up to scanLimit of the most recent history entries, oldest first.
	GetRecentEntries(scanLimit int) ([]string, error)
	GetHistoryFilePath() string
	GetSourceIdentifier() string
}
