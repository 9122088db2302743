package parser_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glamstack/glamql/pkg/parser"
	"github.com/glamstack/glamql/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// quotedArgs renders k quoted placeholder arguments.
func quotedArgs(k int) string {
	parts := make([]string, k)
	for i := range parts {
		parts[i] = fmt.Sprintf("%q", fmt.Sprintf("arg%d", i))
	}
	return strings.Join(parts, " ")
}

func TestParseCommandVariants(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  parser.Command
	}{
		{
			name:  "apply theme",
			input: `apply theme "cyberpunk"`,
			want:  parser.ApplyTheme{Theme: "cyberpunk"},
		},
		{
			name:  "add item",
			input: `add item "jacket"`,
			want:  parser.AddItem{Item: "jacket"},
		},
		{
			name:  "remove item",
			input: `remove item "jacket"`,
			want:  parser.RemoveItem{Item: "jacket"},
		},
		{
			name:  "clear inventory",
			input: `clear inventory`,
			want:  parser.ClearInventory{},
		},
		{
			name:  "add item list keeps argument order",
			input: `add item list "jacket" "boots" "gloves"`,
			want:  parser.AddItemList{Items: []string{"jacket", "boots", "gloves"}},
		},
		{
			name:  "color palette",
			input: `color palette "black" "neon blue"`,
			want:  parser.ColorPalette{Colors: []string{"black", "neon blue"}},
		},
		{
			name:  "assemble cosmetic",
			input: `assemble cosmetic`,
			want:  parser.AssembleCosmetic{},
		},
		{
			name:  "register",
			input: `register "user@example.com" "hunter22"`,
			want:  parser.Register{Email: "user@example.com", Password: "hunter22"},
		},
		{
			name:  "login",
			input: `login "user@example.com"`,
			want:  parser.Login{Email: "user@example.com"},
		},
		{
			name:  "logout",
			input: `logout`,
			want:  parser.Logout{},
		},
		{
			name:  "exit",
			input: `exit`,
			want:  parser.Exit{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseArityBounds(t *testing.T) {
	bounds := map[string]struct{ min, max int }{
		parser.CmdApplyTheme:       {1, 1},
		parser.CmdAddItem:          {1, 1},
		parser.CmdRemoveItem:       {1, 1},
		parser.CmdClearInventory:   {0, 0},
		parser.CmdAddItemList:      {1, 99},
		parser.CmdColorPalette:     {1, 99},
		parser.CmdAssembleCosmetic: {0, 0},
		parser.CmdRegister:         {2, 2},
		parser.CmdLogin:            {1, 1},
		parser.CmdLogout:           {0, 0},
		parser.CmdExit:             {0, 0},
	}

	for phrase, b := range bounds {
		t.Run(phrase, func(t *testing.T) {
			// Probe the bound edges and one step past each.
			counts := []int{0, b.min - 1, b.min, b.max, b.max + 1, 100}
			for _, k := range counts {
				if k < 0 {
					continue
				}
				input := strings.TrimSpace(phrase + " " + quotedArgs(k))
				cmd, err := parser.Parse(input)

				if k >= b.min && k <= b.max {
					require.NoErrorf(t, err, "k=%d should parse", k)
					assert.Equal(t, phrase, cmd.Name())
					continue
				}

				require.Errorf(t, err, "k=%d should fail", k)
				var perr *parser.ParseError
				require.ErrorAs(t, err, &perr)
				assert.Contains(t, perr.Message, phrase)
				assert.Contains(t, perr.Message, fmt.Sprintf("got %d", k))
			}
		})
	}
}

func TestParseRegisterRequiresTwoArguments(t *testing.T) {
	_, err := parser.Parse(`register "user@example.com"`)

	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Contains(t, perr.Message, "register expects 2-2 quoted argument(s), got 1")
}

func TestParseRejectsMissingCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "unknown phrase", input: `brew coffee`},
		{name: "literal before command", input: `"jacket" add item`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.input)
			var perr *parser.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, parser.ErrExpectedCommand, perr.Message)
		})
	}
}

func TestParseEmptyTokenSequence(t *testing.T) {
	_, err := parser.NewParser(nil).Parse()

	var perr *parser.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, parser.ErrExpectedCommand, perr.Message)
}

func TestParseUnknownCommandToken(t *testing.T) {
	// The lexer never produces a phrase outside the vocabulary, but the
	// parser must still reject fabricated token sequences.
	tokens := []token.Token{
		{Type: token.COMMAND, Literal: "dance"},
		{Type: token.EOF},
	}
	_, err := parser.NewParser(tokens).Parse()

	require.Error(t, err)
	var perr *parser.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Message, "unknown command: dance")
}

func TestParseStopsAtFirstNonLiteral(t *testing.T) {
	// STRING tokens after a non-literal are not collected as arguments.
	tokens := []token.Token{
		{Type: token.COMMAND, Literal: parser.CmdAddItem},
		{Type: token.STRING, Literal: "jacket"},
		{Type: token.EOF},
		{Type: token.STRING, Literal: "boots"},
	}
	cmd, err := parser.NewParser(tokens).Parse()

	require.NoError(t, err)
	assert.Equal(t, parser.AddItem{Item: "jacket"}, cmd)
}
