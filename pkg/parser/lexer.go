package parser

import (
	"strings"

	"github.com/glamstack/glamql/pkg/token"
)

// Lexer tokenizes a single glamql command line.
//
// Tokenization is total: input that matches no command phrase simply yields
// no COMMAND token, and an unterminated quote silently ends literal
// extraction. The EOF token is always appended.
type Lexer struct {
	input string // surrounding whitespace trimmed
	pos   int    // offset where literal scanning begins
}

// NewLexer creates a new Lexer for the given input line.
func NewLexer(input string) *Lexer {
	return &Lexer{input: strings.TrimSpace(input)}
}

// Tokenize returns the full token sequence for the input.
func (l *Lexer) Tokenize() []token.Token {
	var tokens []token.Token
	l.pos = 0

	if cmd, ok := l.matchCommand(); ok {
		tokens = append(tokens, cmd)
		tokens = append(tokens, l.scanLiterals()...)
	}

	tokens = append(tokens, token.Token{
		Type: token.EOF,
		Pos:  token.Position{Offset: len(l.input)},
	})
	return tokens
}

// matchCommand matches the longest vocabulary phrase as a case-insensitive
// prefix of the input. Case folding applies to matching only; the token
// carries the canonical lower-case phrase.
func (l *Lexer) matchCommand() (token.Token, bool) {
	folded := strings.ToLower(l.input)
	for _, phrase := range Vocabulary() {
		if strings.HasPrefix(folded, phrase) {
			l.pos = len(phrase)
			return token.Token{
				Type:    token.COMMAND,
				Literal: phrase,
				Pos:     token.Position{Offset: 0},
			}, true
		}
	}
	return token.Token{}, false
}

// scanLiterals extracts double-quoted segments from the remainder of the
// input, left to right. The quotes themselves are not part of the literal.
// An opening quote with no closing quote stops extraction; anything after
// the break is dropped.
func (l *Lexer) scanLiterals() []token.Token {
	var tokens []token.Token
	rest := l.input[l.pos:]

	for i := 0; i < len(rest); i++ {
		if rest[i] != '"' {
			continue
		}
		j := i + 1
		for j < len(rest) && rest[j] != '"' {
			j++
		}
		if j >= len(rest) {
			break // unterminated quote
		}
		tokens = append(tokens, token.Token{
			Type:    token.STRING,
			Literal: rest[i+1 : j],
			Pos:     token.Position{Offset: l.pos + i},
		})
		i = j
	}
	return tokens
}
