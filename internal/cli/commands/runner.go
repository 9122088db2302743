package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/glamstack/glamql/internal/engine"
	"github.com/glamstack/glamql/internal/session"
	"github.com/glamstack/glamql/internal/store"
	"github.com/glamstack/glamql/pkg/parser"
)

// runner executes command lines against one session. It is shared by the
// one-shot exec command and the REPL, and owns the CLI-side handling of the
// identity commands the core executor refuses.
type runner struct {
	rt          *Runtime
	exec        *engine.Executor
	sess        *session.Session
	store       store.Store // optional, nil when persistence is disabled
	profile     string      // active profile, "" when none
	out         io.Writer
	showMatches bool
}

func newRunner(rt *Runtime, exec *engine.Executor, st store.Store, out io.Writer, showMatches bool) *runner {
	return &runner{
		rt:          rt,
		exec:        exec,
		sess:        session.New(),
		store:       st,
		profile:     rt.Config.Profile,
		out:         out,
		showMatches: showMatches,
	}
}

// seed restores the active profile's persisted inventory into the session.
func (r *runner) seed(ctx context.Context) error {
	if r.profile == "" || r.store == nil {
		return nil
	}
	items, err := r.store.LoadInventory(ctx, r.profile)
	if err != nil {
		return fmt.Errorf("failed to load inventory for %q: %w", r.profile, err)
	}
	r.sess.SeedInventory(items)
	r.rt.Logger.Debug("session seeded", "profile", r.profile, "items", len(items))
	return nil
}

// persist saves the session inventory snapshot for the active profile.
func (r *runner) persist(ctx context.Context) error {
	if r.profile == "" || r.store == nil {
		return nil
	}
	return r.store.SaveInventory(ctx, r.profile, r.sess.Items())
}

// runLine parses and executes one command line. It returns quit=true when
// the line ends the interaction context. Parse and execution failures are
// hard errors; business outcomes arrive as printed messages.
func (r *runner) runLine(ctx context.Context, line string) (quit bool, err error) {
	cmd, err := parser.Parse(line)
	if err != nil {
		return false, err
	}

	// The identity commands and exit are grammar-recognized but have no
	// executor semantics; they are collaborator concerns handled here.
	switch c := cmd.(type) {
	case parser.Exit:
		if err := r.persist(ctx); err != nil {
			return true, err
		}
		return true, nil
	case parser.Register:
		return false, r.register(ctx, c.Email)
	case parser.Login:
		return false, r.login(ctx, c.Email)
	case parser.Logout:
		return false, r.logout(ctx)
	}

	msg, err := r.exec.Execute(r.sess, cmd)
	if err != nil {
		return false, err
	}
	fmt.Fprintln(r.out, msg)

	if _, ok := cmd.(parser.AssembleCosmetic); ok {
		// Assembling persists the inventory for a logged-in profile and
		// surfaces the matching outfits.
		if err := r.persist(ctx); err != nil {
			return false, err
		}
		if r.showMatches {
			r.renderMatches()
		}
	}
	return false, nil
}

func (r *runner) register(ctx context.Context, profile string) error {
	if r.store == nil {
		fmt.Fprintln(r.out, "⚠ Persistence is disabled; register has no effect")
		return nil
	}
	if err := r.store.SaveInventory(ctx, profile, nil); err != nil {
		return fmt.Errorf("failed to register profile %q: %w", profile, err)
	}
	fmt.Fprintf(r.out, "✓ Registered profile '%s'\n", profile)
	return nil
}

func (r *runner) login(ctx context.Context, profile string) error {
	if r.store == nil {
		fmt.Fprintln(r.out, "⚠ Persistence is disabled; login has no effect")
		return nil
	}
	items, err := r.store.LoadInventory(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to load inventory for %q: %w", profile, err)
	}
	r.profile = profile
	r.sess.SeedInventory(items)
	fmt.Fprintf(r.out, "✓ Logged in as '%s' (%d item(s) restored)\n", profile, len(items))
	return nil
}

func (r *runner) logout(ctx context.Context) error {
	if r.profile == "" {
		fmt.Fprintln(r.out, "⚠ Not logged in")
		return nil
	}
	if err := r.persist(ctx); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "✓ Logged out from '%s'\n", r.profile)
	r.profile = ""
	return nil
}

func (r *runner) themes() []string {
	return r.exec.Themes()
}

func (r *runner) renderMatches() {
	matches := r.exec.MatchingOutfits(r.sess)
	if len(matches) == 0 {
		fmt.Fprintln(r.out, "No matching outfits to display (try adjusting inventory, theme, or palette).")
		return
	}
	renderOutfitDetails(r.out, matches, r.rt.Config.ImageBase)
}
