package ports

// HistoryFileFinder locates the shell history file to read entries from.
// Find returns an absolute path, or an error when no candidate file exists.
type HistoryFileFinder interface {
	Find() (string, error)
}
