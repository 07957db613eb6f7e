package domain

import "go.trai.ch/zerr"

var (
	// ErrUnresolvedVariable is returned when a placeholder references a
	// variable that is not declared in the project.
	ErrUnresolvedVariable = zerr.New("unresolved variable")

	// ErrVariableCycle is returned when variables reference each other in a
	// cycle. The cycle path is attached as metadata.
	ErrVariableCycle = zerr.New("variable cycle")

	// ErrMalformedTemplate is returned when a raw string opens a placeholder
	// or a command substitution that is never closed.
	ErrMalformedTemplate = zerr.New("malformed template")

	// ErrUnknownCondition is returned when a run_if names a condition kind
	// the engine does not implement.
	ErrUnknownCondition = zerr.New("unknown condition")

	// ErrCommandFailed is returned when a spawned process exits with a
	// non-zero status or cannot be started.
	ErrCommandFailed = zerr.New("command failed")
)
