// Package engine provides the glamql command executor.
//
// The executor owns no session state of its own: the catalog it is built
// with is immutable, and the Session is threaded explicitly through every
// call. One Executor may therefore serve many sessions.
package engine

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/glamstack/glamql/internal/catalog"
	"github.com/glamstack/glamql/internal/session"
	"github.com/glamstack/glamql/pkg/parser"
)

// Executor applies parsed commands to a session and runs outfit matching
// against the injected catalog.
type Executor struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// Config holds executor configuration.
type Config struct {
	// Catalog is the outfit catalog to match against. Required.
	Catalog *catalog.Catalog
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates an executor for the given catalog.
func New(cfg Config) (*Executor, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("engine: catalog is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Executor{catalog: cfg.Catalog, logger: logger}, nil
}

// Execute applies one parsed command to the session and returns a
// human-readable result message.
//
// State-changing commands mutate the session as a side effect. Business
// outcomes such as a duplicate add or an assemble precondition failure are
// ordinary messages, never errors. Execute fails with *ExecutionError only
// for commands that have no handler here (the identity commands and exit,
// which belong to the embedding application).
func (e *Executor) Execute(sess *session.Session, cmd parser.Command) (string, error) {
	e.logger.Debug("executing command", "command", cmd.Name())

	switch c := cmd.(type) {
	case parser.ApplyTheme:
		return e.applyTheme(sess, c.Theme), nil
	case parser.AddItem:
		return e.addItem(sess, c.Item), nil
	case parser.RemoveItem:
		return e.removeItem(sess, c.Item), nil
	case parser.ClearInventory:
		return e.clearInventory(sess), nil
	case parser.AddItemList:
		return e.addItemList(sess, c.Items), nil
	case parser.ColorPalette:
		return e.setColorPalette(sess, c.Colors), nil
	case parser.AssembleCosmetic:
		return e.assembleCosmetic(sess), nil
	default:
		return "", &ExecutionError{Command: cmd.Name()}
	}
}

func (e *Executor) applyTheme(sess *session.Session, theme string) string {
	sess.SetTheme(theme)
	return fmt.Sprintf("✓ Theme applied: %s", theme)
}

func (e *Executor) addItem(sess *session.Session, item string) string {
	if !sess.AddItem(item) {
		return fmt.Sprintf("⚠ Item '%s' is already in inventory", item)
	}
	return fmt.Sprintf("✓ Added item: %s", item)
}

func (e *Executor) removeItem(sess *session.Session, item string) string {
	if !sess.RemoveItem(item) {
		return fmt.Sprintf("⚠ Item '%s' not in inventory", item)
	}
	return fmt.Sprintf("✓ Removed item: %s", item)
}

func (e *Executor) clearInventory(sess *session.Session) string {
	sess.ClearInventory()
	return "✓ Inventory cleared"
}

func (e *Executor) addItemList(sess *session.Session, items []string) string {
	added := 0
	for _, item := range items {
		if sess.AddItem(item) {
			added++
		}
	}
	return fmt.Sprintf("✓ Added %d items", added)
}

func (e *Executor) setColorPalette(sess *session.Session, colors []string) string {
	sess.SetPalette(colors)
	return fmt.Sprintf("✓ Color palette set: %s", strings.Join(sess.Palette(), ", "))
}
