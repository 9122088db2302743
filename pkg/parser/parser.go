// Package parser provides the glamql command-language front end.
//
// # Usage
//
//	cmd, err := parser.Parse(`apply theme "cyberpunk"`)
//	if err != nil {
//	    // handle *parser.ParseError
//	}
//
// # Grammar Overview
//
//	line    → command-phrase argument*
//	argument → '"' text '"'
//
// The command phrase is matched case-insensitively against a fixed
// vocabulary, preferring the longest match. Each command bounds how many
// quoted arguments it accepts; see the arity table in vocabulary.go.
package parser

import (
	"fmt"

	"github.com/glamstack/glamql/pkg/token"
)

// Parser validates a token sequence against the command grammar and
// produces a Command.
type Parser struct {
	tokens []token.Token
	pos    int
}

// NewParser creates a parser for the given token sequence.
func NewParser(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse tokenizes and parses a single command line.
func Parse(input string) (Command, error) {
	return NewParser(NewLexer(input).Tokenize()).Parse()
}

// Parse validates the token sequence and returns the parsed Command.
//
// It fails with *ParseError when the sequence does not start with a COMMAND
// token, when the command is missing from the arity table, or when the
// number of consecutive STRING tokens after the command falls outside the
// command's bound.
func (p *Parser) Parse() (Command, error) {
	if len(p.tokens) == 0 || p.tokens[0].Type != token.COMMAND {
		return nil, &ParseError{Message: ErrExpectedCommand}
	}
	phrase := p.tokens[0].Literal
	p.pos = 1

	// Unreachable with a lexer-produced sequence, but callers may hand us
	// arbitrary tokens.
	r, ok := commandRules[phrase]
	if !ok {
		return nil, p.errorf(ErrUnknownCommand, phrase)
	}

	args := p.collectArguments()
	if len(args) < r.min || len(args) > r.max {
		return nil, p.errorf(ErrArgumentCount, phrase, r.min, r.max, len(args))
	}

	return bind(phrase, args), nil
}

// collectArguments gathers every consecutive STRING token following the
// command, stopping at the first token of any other type.
func (p *Parser) collectArguments() []string {
	var args []string
	for p.pos < len(p.tokens) && p.tokens[p.pos].Type == token.STRING {
		args = append(args, p.tokens[p.pos].Literal)
		p.pos++
	}
	return args
}

// bind turns a validated phrase/arguments pair into its Command variant.
// The arity table guarantees the argument counts assumed here.
func bind(phrase string, args []string) Command {
	switch phrase {
	case CmdApplyTheme:
		return ApplyTheme{Theme: args[0]}
	case CmdAddItem:
		return AddItem{Item: args[0]}
	case CmdRemoveItem:
		return RemoveItem{Item: args[0]}
	case CmdClearInventory:
		return ClearInventory{}
	case CmdAddItemList:
		return AddItemList{Items: args}
	case CmdColorPalette:
		return ColorPalette{Colors: args}
	case CmdAssembleCosmetic:
		return AssembleCosmetic{}
	case CmdRegister:
		return Register{Email: args[0], Password: args[1]}
	case CmdLogin:
		return Login{Email: args[0]}
	case CmdLogout:
		return Logout{}
	case CmdExit:
		return Exit{}
	}
	// commandRules and bind cover the same closed vocabulary.
	panic("parser: phrase missing from bind: " + phrase)
}

func (p *Parser) errorf(format string, args ...any) *ParseError {
	pos := token.Position{}
	if len(p.tokens) > 0 {
		pos = p.tokens[0].Pos
	}
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
