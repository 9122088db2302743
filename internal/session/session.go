// Package session holds the mutable state of one cosmetic assembly session.
//
// A Session is an explicit value owned by the caller. It must not be shared
// across concurrent callers; create one Session per interaction context.
package session

import (
	"sort"
	"strings"
)

// Session tracks the selected theme, the inventory set, and the color
// palette. All entries are stored case-normalized (lower-case); inventory
// entries are unique, and palette order is preserved for display but never
// affects matching.
type Session struct {
	theme     string
	inventory map[string]struct{}
	palette   []string
}

// New creates an empty session.
func New() *Session {
	return &Session{inventory: make(map[string]struct{})}
}

// Theme returns the active theme, or the empty string when none is set.
func (s *Session) Theme() string {
	return s.theme
}

// SetTheme sets the active theme, lower-cased.
func (s *Session) SetTheme(theme string) {
	s.theme = strings.ToLower(theme)
}

// HasItem reports whether the inventory contains the item,
// case-insensitively.
func (s *Session) HasItem(item string) bool {
	_, ok := s.inventory[strings.ToLower(item)]
	return ok
}

// AddItem inserts an item into the inventory. It returns false when the
// item was already present, leaving the inventory unchanged.
func (s *Session) AddItem(item string) bool {
	key := strings.ToLower(item)
	if _, ok := s.inventory[key]; ok {
		return false
	}
	s.inventory[key] = struct{}{}
	return true
}

// RemoveItem removes an item from the inventory. It returns false when the
// item was absent.
func (s *Session) RemoveItem(item string) bool {
	key := strings.ToLower(item)
	if _, ok := s.inventory[key]; !ok {
		return false
	}
	delete(s.inventory, key)
	return true
}

// ClearInventory empties the inventory.
func (s *Session) ClearInventory() {
	s.inventory = make(map[string]struct{})
}

// InventorySize returns the number of items in the inventory.
func (s *Session) InventorySize() int {
	return len(s.inventory)
}

// Items returns a deterministic, sorted snapshot of the inventory in
// lower-cased form. This is the shape handed to the persistence
// collaborator.
func (s *Session) Items() []string {
	items := make([]string, 0, len(s.inventory))
	for item := range s.inventory {
		items = append(items, item)
	}
	sort.Strings(items)
	return items
}

// SeedInventory replaces the inventory with the given items, lower-cased
// and de-duplicated. Used to seed a fresh session from persisted state.
func (s *Session) SeedInventory(items []string) {
	s.inventory = make(map[string]struct{}, len(items))
	for _, item := range items {
		s.inventory[strings.ToLower(item)] = struct{}{}
	}
}

// Palette returns the color palette in the order it was set.
// The returned slice must not be modified.
func (s *Session) Palette() []string {
	return s.palette
}

// SetPalette replaces the palette with the given colors, lower-cased,
// preserving the given order.
func (s *Session) SetPalette(colors []string) {
	palette := make([]string, len(colors))
	for i, c := range colors {
		palette[i] = strings.ToLower(c)
	}
	s.palette = palette
}
