package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	// Pure-Go sqlite driver.
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *slog.Logger
}

// NewSQLiteStore creates a new SQLite store instance.
func NewSQLiteStore(logger *slog.Logger) *SQLiteStore {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SQLiteStore{logger: logger}
}

// Open opens a connection to the SQLite database and runs migrations.
// Use ":memory:" for an in-memory database.
func (s *SQLiteStore) Open(path string) error {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if path == ":memory:" {
		// Every pooled connection would otherwise see its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	s.db = db
	s.path = path

	if err := s.Migrate(); err != nil {
		_ = db.Close()
		s.db = nil
		return err
	}

	s.logger.Debug("inventory store opened", "path", path)
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveInventory replaces the persisted inventory for the profile.
// The profile row is created on first save. Items are stored lower-cased;
// callers normally pass session.Items(), which is already normalized.
func (s *SQLiteStore) SaveInventory(ctx context.Context, profile string, items []string) error {
	if s.db == nil {
		return fmt.Errorf("database not opened")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	profileID, err := ensureProfile(ctx, tx, profile)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM inventory_items WHERE profile_id = ?`, profileID); err != nil {
		return fmt.Errorf("failed to clear inventory: %w", err)
	}

	for pos, item := range items {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO inventory_items (profile_id, item, position) VALUES (?, ?, ?)`,
			profileID, strings.ToLower(item), pos); err != nil {
			return fmt.Errorf("failed to insert item %q: %w", item, err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE profiles SET updated_at = ? WHERE id = ?`,
		time.Now().UTC(), profileID); err != nil {
		return fmt.Errorf("failed to touch profile: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit inventory: %w", err)
	}

	s.logger.Debug("inventory saved", "profile", profile, "items", len(items))
	return nil
}

// LoadInventory returns the persisted inventory for the profile.
func (s *SQLiteStore) LoadInventory(ctx context.Context, profile string) ([]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT i.item
		   FROM inventory_items i
		   JOIN profiles p ON p.id = i.profile_id
		  WHERE p.name = ?
		  ORDER BY i.position`, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []string
	for rows.Next() {
		var item string
		if err := rows.Scan(&item); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory rows: %w", err)
	}
	return items, nil
}

// Profiles lists every known profile name, alphabetically.
func (s *SQLiteStore) Profiles(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("database not opened")
	}

	rows, err := s.db.QueryContext(ctx, `SELECT name FROM profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read profile rows: %w", err)
	}
	return names, nil
}

// ensureProfile returns the id of the named profile, creating it if needed.
func ensureProfile(ctx context.Context, tx *sql.Tx, name string) (string, error) {
	var id string
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM profiles WHERE name = ?`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("failed to look up profile: %w", err)
	}

	id = uuid.New().String()
	now := time.Now().UTC()
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO profiles (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		id, name, now, now); err != nil {
		return "", fmt.Errorf("failed to create profile: %w", err)
	}
	return id, nil
}
