package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/glamstack/glamql/internal/catalog"
	"github.com/glamstack/glamql/internal/session"
)

// OutfitMatch is the transient result of matching one outfit against a
// session. Missing entries are lower-cased and sorted.
type OutfitMatch struct {
	Outfit        catalog.Outfit
	MissingItems  []string
	MissingColors []string
}

// Exact reports whether nothing is missing in either dimension.
func (m OutfitMatch) Exact() bool {
	return len(m.MissingItems) == 0 && len(m.MissingColors) == 0
}

// assembleCosmetic runs the matching algorithm and reports counts.
//
// Preconditions short-circuit with a soft failure message: no theme set,
// empty inventory, then no catalog outfits for the theme. Exact matches are
// always reported preferentially over near matches, and the message carries
// counts only, not outfit identities.
func (e *Executor) assembleCosmetic(sess *session.Session) string {
	if sess.Theme() == "" {
		return "✗ Error: No theme set. Use 'apply theme' first."
	}
	if sess.InventorySize() == 0 {
		return "✗ Error: Inventory is empty. Add items first."
	}
	themeOutfits := e.catalog.ForTheme(sess.Theme())
	if len(themeOutfits) == 0 {
		return fmt.Sprintf("✗ Error: No outfits available for theme '%s'", sess.Theme())
	}

	var exact, near []OutfitMatch
	for _, o := range themeOutfits {
		m := matchOutfit(sess, o)
		if m.Exact() {
			exact = append(exact, m)
		} else {
			near = append(near, m)
		}
	}

	e.logger.Debug("assembled cosmetic",
		"theme", sess.Theme(), "exact", len(exact), "near", len(near))

	if len(exact) > 0 {
		return fmt.Sprintf("✓ Assembled! Found %d exact match(es).", len(exact))
	}
	if len(near) > 0 {
		return fmt.Sprintf("~ Assembled partial: %d near match(es).", len(near))
	}
	return "✗ No matches found for current theme and inventory."
}

// matchOutfit computes the case-insensitive set differences between an
// outfit's requirements and the session. An empty palette means the color
// dimension is unconstrained.
func matchOutfit(sess *session.Session, o catalog.Outfit) OutfitMatch {
	m := OutfitMatch{Outfit: o}

	missing := make(map[string]struct{})
	for _, item := range o.Items {
		if !sess.HasItem(item) {
			missing[strings.ToLower(item)] = struct{}{}
		}
	}
	m.MissingItems = sortedKeys(missing)

	if palette := sess.Palette(); len(palette) > 0 {
		paletteSet := make(map[string]struct{}, len(palette))
		for _, c := range palette {
			paletteSet[c] = struct{}{}
		}
		missingColors := make(map[string]struct{})
		for _, c := range o.Colors {
			if _, ok := paletteSet[strings.ToLower(c)]; !ok {
				missingColors[strings.ToLower(c)] = struct{}{}
			}
		}
		m.MissingColors = sortedKeys(missingColors)
	}

	return m
}

// MatchingOutfits returns the outfits whose theme matches the session and
// whose items are a subset of the inventory (and colors a subset of the
// palette, when one is set), in catalog order.
//
// This is the stricter display query: it applies the same subset logic as
// the exact classification and never surfaces near matches.
func (e *Executor) MatchingOutfits(sess *session.Session) []catalog.Outfit {
	if sess.Theme() == "" {
		return nil
	}

	var matches []catalog.Outfit
	for _, o := range e.catalog.ForTheme(sess.Theme()) {
		if matchOutfit(sess, o).Exact() {
			matches = append(matches, o)
		}
	}
	return matches
}

// Themes lists the distinct catalog themes, for display and completion.
func (e *Executor) Themes() []string {
	return e.catalog.Themes()
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
