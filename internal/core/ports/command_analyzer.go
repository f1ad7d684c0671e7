package ports

/*
CommandAnalyzer defines the contract for a service that reviews the tokens of
a parsed command. This is a driven port, representing a domain capability.
*/
type CommandAnalyzer interface {
	// Analyze returns human readable notes, or nil when nothing stands out.
	Analyze(tokens []string) []string
}
