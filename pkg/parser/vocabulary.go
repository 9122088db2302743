package parser

import "sort"

// Command phrases of the fixed vocabulary. Phrases are matched
// case-insensitively and stored in canonical lower-case form.
const (
	CmdApplyTheme       = "apply theme"
	CmdAddItem          = "add item"
	CmdRemoveItem       = "remove item"
	CmdClearInventory   = "clear inventory"
	CmdAddItemList      = "add item list"
	CmdColorPalette     = "color palette"
	CmdAssembleCosmetic = "assemble cosmetic"
	CmdRegister         = "register"
	CmdLogin            = "login"
	CmdLogout           = "logout"
	CmdExit             = "exit"
)

// rule bounds the number of quoted arguments a command accepts.
type rule struct {
	min, max int
}

// commandRules is the arity table for every phrase in the vocabulary.
var commandRules = map[string]rule{
	CmdApplyTheme:       {1, 1},
	CmdAddItem:          {1, 1},
	CmdRemoveItem:       {1, 1},
	CmdClearInventory:   {0, 0},
	CmdAddItemList:      {1, 99},
	CmdColorPalette:     {1, 99},
	CmdAssembleCosmetic: {0, 0},
	CmdRegister:         {2, 2},
	CmdLogin:            {1, 1},
	CmdLogout:           {0, 0},
	CmdExit:             {0, 0},
}

// phrasesByLength lists the vocabulary longest-first so that prefix matching
// prefers "add item list" over "add item". Several phrases share a prefix,
// so the ordering is load-bearing.
var phrasesByLength = func() []string {
	phrases := make([]string, 0, len(commandRules))
	for phrase := range commandRules {
		phrases = append(phrases, phrase)
	}
	sort.Slice(phrases, func(i, j int) bool {
		if len(phrases[i]) != len(phrases[j]) {
			return len(phrases[i]) > len(phrases[j])
		}
		return phrases[i] < phrases[j]
	})
	return phrases
}()

// Vocabulary returns the command phrases longest-first.
// The returned slice must not be modified.
func Vocabulary() []string {
	return phrasesByLength
}
