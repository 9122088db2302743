// Package commands implements the glamql CLI subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/glamstack/glamql/internal/catalog"
	"github.com/glamstack/glamql/internal/cli/config"
	"github.com/glamstack/glamql/internal/engine"
	"github.com/glamstack/glamql/internal/store"
)

// Runtime bundles the loaded configuration and logger for one invocation.
// The root command stores it in the command context.
type Runtime struct {
	Config *config.Config
	Logger *slog.Logger
}

type runtimeKey struct{}

// WithRuntime returns a context carrying the runtime.
func WithRuntime(ctx context.Context, rt *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, rt)
}

// RuntimeFrom retrieves the runtime from the context, falling back to
// defaults so tests can run commands without the root wiring.
func RuntimeFrom(ctx context.Context) *Runtime {
	if rt, ok := ctx.Value(runtimeKey{}).(*Runtime); ok {
		return rt
	}
	return &Runtime{
		Config: &config.Config{
			CatalogPath:  config.DefaultCatalogFile,
			StatePath:    config.DefaultStateFile,
			HistoryFile:  config.DefaultHistoryFile,
			ImageBase:    config.DefaultImageBase,
			OutputFormat: config.DefaultOutput,
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// OpenCatalog loads the configured catalog document.
func (rt *Runtime) OpenCatalog() (*catalog.Catalog, error) {
	c, err := catalog.Load(rt.Config.CatalogPath)
	if err != nil {
		return nil, err
	}
	rt.Logger.Debug("catalog loaded", "path", rt.Config.CatalogPath, "outfits", c.Len())
	return c, nil
}

// NewExecutor loads the catalog and builds an executor around it.
func (rt *Runtime) NewExecutor() (*engine.Executor, error) {
	c, err := rt.OpenCatalog()
	if err != nil {
		return nil, err
	}
	return engine.New(engine.Config{Catalog: c, Logger: rt.Logger})
}

// OpenStore opens the inventory store, creating the state directory first.
func (rt *Runtime) OpenStore() (*store.SQLiteStore, error) {
	statePath := rt.Config.StatePath
	if dir := filepath.Dir(statePath); dir != "." && dir != "" && statePath != ":memory:" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create state directory: %w", err)
		}
	}

	s := store.NewSQLiteStore(rt.Logger)
	if err := s.Open(statePath); err != nil {
		return nil, err
	}
	return s, nil
}
