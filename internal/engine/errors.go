package engine

import "fmt"

// ExecutionError reports a parsed command with no registered handler.
// With a correctly wired parser this only happens for the identity
// commands (register, login, logout) and exit, which the embedding
// application must intercept before calling Execute.
type ExecutionError struct {
	Command string
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("no handler for command: %s", e.Command)
}
