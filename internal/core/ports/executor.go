package ports

import "context"

// Executor defines the interface for spawning build commands.
type Executor interface {
	// Run spawns the command with the given arguments and blocks until it
	// exits, streaming its output to the logger. It returns an error
	// wrapping domain.ErrCommandFailed when the process exits non-zero or
	// cannot be started.
	Run(ctx context.Context, name string, args []string) error

	// Output spawns the command and returns its captured stdout. Used for
	// command substitution inside variable values.
	Output(ctx context.Context, name string, args []string) (string, error)
}
