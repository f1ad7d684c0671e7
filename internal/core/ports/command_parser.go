package ports

import "github.com/AntonioJCosta/cmdparse/internal/core/domain/command"

/*
CommandParser defines the contract for turning a command-line string into a
Command. This is a driven port, representing the core domain capability.
*/
type CommandParser interface {
	// Parse returns the command and whether it runs in the foreground.
	// On error no Command is returned.
	Parse(line string) (cmd *command.Command, foreground bool, err error)
}
