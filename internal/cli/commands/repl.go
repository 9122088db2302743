package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/glamstack/glamql/internal/store"
	"github.com/glamstack/glamql/pkg/parser"
)

// NewReplCommand creates the interactive REPL command.
func NewReplCommand() *cobra.Command {
	var noStore bool

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive glamql session",
		Long: `Start an interactive session for the glamql command language.

Commands are executed against one session until 'exit' or .quit. Matching
outfits are rendered after every successful 'assemble cosmetic'.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRepl(cmd, noStore)
		},
	}

	cmd.Flags().BoolVar(&noStore, "no-store", false, "Disable inventory persistence")

	return cmd
}

func runRepl(cmd *cobra.Command, noStore bool) error {
	ctx := cmd.Context()
	rt := RuntimeFrom(ctx)
	out := cmd.OutOrStdout()

	exec, err := rt.NewExecutor()
	if err != nil {
		return err
	}

	var st store.Store
	if !noStore {
		s, err := rt.OpenStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()
		st = s
	}

	historyFile := rt.Config.HistoryFile
	if dir := filepath.Dir(historyFile); dir != "." && dir != "" {
		_ = os.MkdirAll(dir, 0755)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "glamql> ",
		HistoryFile:     historyFile,
		AutoComplete:    newCommandCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintf(out, "glamql REPL (catalog: %s)\n", rt.Config.CatalogPath)
	_, _ = fmt.Fprintln(out, "Type .help for help, 'exit' or .quit to leave")
	_, _ = fmt.Fprintln(out)

	r := newRunner(rt, exec, st, out, true)
	if err := r.seed(ctx); err != nil {
		return err
	}

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := handleDotCommand(out, r, line); quit {
				break
			}
			continue
		}

		quit, err := r.runLine(ctx, line)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		if quit {
			break
		}
	}

	return r.persist(ctx)
}

// handleDotCommand handles REPL meta commands. It returns true to quit.
func handleDotCommand(out io.Writer, r *runner, line string) bool {
	switch strings.ToLower(strings.Fields(line)[0]) {
	case ".quit", ".exit":
		return true

	case ".help":
		printReplHelp(out)

	case ".session":
		theme := r.sess.Theme()
		if theme == "" {
			theme = "(none)"
		}
		_, _ = fmt.Fprintf(out, "Theme:     %s\n", theme)
		_, _ = fmt.Fprintf(out, "Inventory: %s\n", joinOrDash(r.sess.Items()))
		_, _ = fmt.Fprintf(out, "Palette:   %s\n", joinOrDash(r.sess.Palette()))
		if r.profile != "" {
			_, _ = fmt.Fprintf(out, "Profile:   %s\n", r.profile)
		}

	case ".outfits":
		r.renderMatches()

	case ".themes":
		_, _ = fmt.Fprintln(out, joinOrDash(r.themes()))

	default:
		_, _ = fmt.Fprintf(out, "Unknown meta command: %s (try .help)\n", line)
	}
	return false
}

func printReplHelp(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Commands:")
	for _, phrase := range parser.Vocabulary() {
		_, _ = fmt.Fprintf(out, "  %s\n", phrase)
	}
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, "Meta commands:")
	_, _ = fmt.Fprintln(out, "  .session   show the current session state")
	_, _ = fmt.Fprintln(out, "  .outfits   show outfits matching the current session")
	_, _ = fmt.Fprintln(out, "  .themes    list catalog themes")
	_, _ = fmt.Fprintln(out, "  .help      show this help")
	_, _ = fmt.Fprintln(out, "  .quit      leave the REPL")
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "–"
	}
	return strings.Join(items, ", ")
}

// newCommandCompleter completes the command vocabulary and meta commands.
func newCommandCompleter() readline.AutoCompleter {
	items := make([]readline.PrefixCompleterInterface, 0, len(parser.Vocabulary())+5)
	for _, phrase := range parser.Vocabulary() {
		items = append(items, readline.PcItem(phrase))
	}
	for _, meta := range []string{".help", ".session", ".outfits", ".themes", ".quit"} {
		items = append(items, readline.PcItem(meta))
	}
	return readline.NewPrefixCompleter(items...)
}
