package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glamstack/glamql/internal/store"
)

// ExecOptions holds options for the exec command.
type ExecOptions struct {
	File        string
	ShowMatches bool
	NoStore     bool
}

// NewExecCommand creates the exec command.
func NewExecCommand() *cobra.Command {
	opts := &ExecOptions{}

	cmd := &cobra.Command{
		Use:   "exec [command line]...",
		Short: "Execute glamql command lines",
		Long: `Execute one or more glamql command lines against a fresh session.

Each argument is a full command line. Alternatively, --file reads a script
with one command per line; blank lines and lines starting with # are
skipped.`,
		Example: `  # Run a few commands in sequence
  glamql exec 'apply theme "cyberpunk"' 'add item list "jacket" "boots"' 'assemble cosmetic'

  # Run a script and show the matching outfits
  glamql exec --file looks.gql --show-matches`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "Script file with one command per line")
	cmd.Flags().BoolVar(&opts.ShowMatches, "show-matches", false, "Render matching outfits after assemble cosmetic")
	cmd.Flags().BoolVar(&opts.NoStore, "no-store", false, "Disable inventory persistence")

	return cmd
}

func runExec(cmd *cobra.Command, args []string, opts *ExecOptions) error {
	ctx := cmd.Context()
	rt := RuntimeFrom(ctx)

	lines, err := collectLines(args, opts.File)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("nothing to execute: pass command lines or --file")
	}

	exec, err := rt.NewExecutor()
	if err != nil {
		return err
	}

	var st store.Store
	if !opts.NoStore && (rt.Config.Profile != "" || usesIdentity(lines)) {
		s, err := rt.OpenStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()
		st = s
	}

	r := newRunner(rt, exec, st, cmd.OutOrStdout(), opts.ShowMatches)
	if err := r.seed(ctx); err != nil {
		return err
	}

	for _, line := range lines {
		quit, err := r.runLine(ctx, line)
		if err != nil {
			return err
		}
		if quit {
			break
		}
	}
	return r.persist(ctx)
}

// usesIdentity reports whether any line starts with an identity command,
// which is the only reason exec needs the store without a configured
// profile.
func usesIdentity(lines []string) bool {
	for _, line := range lines {
		low := strings.ToLower(strings.TrimSpace(line))
		for _, phrase := range []string{"register", "login", "logout"} {
			if strings.HasPrefix(low, phrase) {
				return true
			}
		}
	}
	return false
}

// collectLines gathers command lines from args and an optional script file.
func collectLines(args []string, file string) ([]string, error) {
	lines := make([]string, 0, len(args))
	for _, a := range args {
		if strings.TrimSpace(a) != "" {
			lines = append(lines, a)
		}
	}

	if file == "" {
		return lines, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}
	return lines, nil
}
