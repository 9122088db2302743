package session_test

import (
	"testing"

	"github.com/glamstack/glamql/internal/session"
	"github.com/stretchr/testify/assert"
)

func TestAddItemNormalizesAndDeduplicates(t *testing.T) {
	s := session.New()

	assert.True(t, s.AddItem("Jacket"))
	assert.False(t, s.AddItem("jacket"), "same item in different case is a duplicate")
	assert.Equal(t, 1, s.InventorySize())
	assert.True(t, s.HasItem("JACKET"))
}

func TestRemoveItemIsCaseInsensitive(t *testing.T) {
	s := session.New()
	s.AddItem("Jacket")

	assert.True(t, s.RemoveItem("JACKET"))
	assert.Equal(t, 0, s.InventorySize())
	assert.False(t, s.RemoveItem("jacket"), "second removal finds nothing")
}

func TestClearInventory(t *testing.T) {
	s := session.New()
	s.AddItem("jacket")
	s.AddItem("boots")

	s.ClearInventory()

	assert.Equal(t, 0, s.InventorySize())
}

func TestItemsSnapshotIsSortedAndLowerCased(t *testing.T) {
	s := session.New()
	s.AddItem("Visor")
	s.AddItem("boots")
	s.AddItem("Jacket")

	assert.Equal(t, []string{"boots", "jacket", "visor"}, s.Items())
}

func TestSeedInventory(t *testing.T) {
	s := session.New()
	s.AddItem("old item")

	s.SeedInventory([]string{"Jacket", "BOOTS", "jacket"})

	assert.Equal(t, []string{"boots", "jacket"}, s.Items())
}

func TestSetThemeLowerCases(t *testing.T) {
	s := session.New()

	s.SetTheme("CyberPunk")

	assert.Equal(t, "cyberpunk", s.Theme())
}

func TestSetPalettePreservesOrder(t *testing.T) {
	s := session.New()

	s.SetPalette([]string{"Neon Blue", "BLACK", "magenta"})

	assert.Equal(t, []string{"neon blue", "black", "magenta"}, s.Palette())
}
