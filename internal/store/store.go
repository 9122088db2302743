// Package store persists session inventories.
//
// Persistence is an optional collaborator: the core language and executor
// work with no store at all, and callers hand the store a deterministic,
// sorted, lower-cased inventory snapshot (session.Items) to persist.
package store

import "context"

// Store saves and loads inventory snapshots keyed by profile name.
type Store interface {
	// SaveInventory replaces the persisted inventory for the profile.
	SaveInventory(ctx context.Context, profile string, items []string) error

	// LoadInventory returns the persisted inventory for the profile,
	// in insertion order. A profile that was never saved yields an
	// empty inventory, not an error.
	LoadInventory(ctx context.Context, profile string) ([]string, error)

	// Profiles lists every profile with a persisted inventory.
	Profiles(ctx context.Context) ([]string, error)

	Close() error
}
