// Package token defines the lexical tokens of the glamql command language.
//
// The language is deliberately tiny: a line starts with a command phrase from
// a fixed vocabulary, followed by zero or more double-quoted string literals.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// EOF marks the end of input. It is always the final token.
	EOF TokenType = iota

	// COMMAND is a recognized command phrase, e.g. "apply theme".
	COMMAND

	// STRING is the content of a double-quoted literal, without the quotes.
	STRING
)

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	COMMAND: "COMMAND",
	STRING:  "STRING",
}

// Token is a single lexical token with its position in the input line.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}

// Position identifies a byte offset within a single input line.
// Command lines never span multiple lines, so there is no line number.
type Position struct {
	Offset int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("offset %d", p.Offset)
}
