package parser

// Command is the parsed representation of one command line.
//
// The vocabulary is closed: every phrase has exactly one concrete type here,
// so executors can dispatch with an exhaustive type switch instead of
// re-comparing strings. The interface is sealed to keep it that way.
type Command interface {
	// Name returns the canonical lower-case command phrase.
	Name() string

	command()
}

// ApplyTheme sets the active theme of a session.
type ApplyTheme struct {
	Theme string
}

// AddItem adds a single item to the session inventory.
type AddItem struct {
	Item string
}

// RemoveItem removes a single item from the session inventory.
type RemoveItem struct {
	Item string
}

// ClearInventory empties the session inventory.
type ClearInventory struct{}

// AddItemList adds several items to the session inventory at once.
type AddItemList struct {
	Items []string
}

// ColorPalette replaces the session color palette.
type ColorPalette struct {
	Colors []string
}

// AssembleCosmetic runs outfit matching against the catalog.
type AssembleCosmetic struct{}

// Register is recognized by the grammar but carries no executor semantics;
// identity handling belongs to the embedding application.
type Register struct {
	Email    string
	Password string
}

// Login is recognized by the grammar but carries no executor semantics.
type Login struct {
	Email string
}

// Logout is recognized by the grammar but carries no executor semantics.
type Logout struct{}

// Exit is recognized by the grammar but carries no executor semantics.
type Exit struct{}

func (ApplyTheme) Name() string       { return CmdApplyTheme }
func (AddItem) Name() string          { return CmdAddItem }
func (RemoveItem) Name() string       { return CmdRemoveItem }
func (ClearInventory) Name() string   { return CmdClearInventory }
func (AddItemList) Name() string      { return CmdAddItemList }
func (ColorPalette) Name() string     { return CmdColorPalette }
func (AssembleCosmetic) Name() string { return CmdAssembleCosmetic }
func (Register) Name() string         { return CmdRegister }
func (Login) Name() string            { return CmdLogin }
func (Logout) Name() string           { return CmdLogout }
func (Exit) Name() string             { return CmdExit }

func (ApplyTheme) command()       {}
func (AddItem) command()          {}
func (RemoveItem) command()       {}
func (ClearInventory) command()   {}
func (AddItemList) command()      {}
func (ColorPalette) command()     {}
func (AssembleCosmetic) command() {}
func (Register) command()         {}
func (Login) command()            {}
func (Logout) command()           {}
func (Exit) command()             {}
