package parser

import (
	"fmt"

	"github.com/glamstack/glamql/pkg/token"
)

// ParseError represents a malformed command line.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %s: %s", e.Pos, e.Message)
}

// Common error messages
const (
	ErrExpectedCommand = "expected a command at the start"
	ErrUnknownCommand  = "unknown command: %s"
	ErrArgumentCount   = "%s expects %d-%d quoted argument(s), got %d"
)
