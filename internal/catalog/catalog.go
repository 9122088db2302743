// Package catalog holds the read-only outfit catalog.
//
// The catalog is loaded once at startup and never mutated afterwards, so a
// single Catalog may be shared across concurrent sessions.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Outfit is one themed outfit definition from the catalog document.
type Outfit struct {
	Name   string   `yaml:"name"`
	Theme  string   `yaml:"theme"`
	Items  []string `yaml:"items"`
	Colors []string `yaml:"colors"`
	Image  string   `yaml:"image"`
	Steps  []string `yaml:"steps"`
}

// Catalog is an immutable, ordered collection of outfits.
type Catalog struct {
	outfits []Outfit
}

// New creates a catalog from the given outfits, preserving order.
func New(outfits []Outfit) *Catalog {
	return &Catalog{outfits: outfits}
}

// Load reads and parses the catalog document at path.
// YAML is a superset of JSON, so both document forms are accepted.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a catalog document. Missing fields default to their zero
// values (empty string or nil sequence).
func Parse(data []byte) (*Catalog, error) {
	var outfits []Outfit
	if err := yaml.Unmarshal(data, &outfits); err != nil {
		return nil, err
	}
	return New(outfits), nil
}

// Len returns the number of outfits in the catalog.
func (c *Catalog) Len() int {
	return len(c.outfits)
}

// Outfits returns every outfit in catalog order.
// The returned slice must not be modified.
func (c *Catalog) Outfits() []Outfit {
	return c.outfits
}

// ForTheme returns the outfits whose theme equals the given theme,
// case-insensitively, in catalog order.
func (c *Catalog) ForTheme(theme string) []Outfit {
	folded := strings.ToLower(theme)
	var matched []Outfit
	for _, o := range c.outfits {
		if strings.ToLower(o.Theme) == folded {
			matched = append(matched, o)
		}
	}
	return matched
}

// Themes returns the distinct themes in catalog order, lower-cased.
func (c *Catalog) Themes() []string {
	seen := make(map[string]struct{})
	var themes []string
	for _, o := range c.outfits {
		t := strings.ToLower(o.Theme)
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		themes = append(themes, t)
	}
	return themes
}
