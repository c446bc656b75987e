// Package cli wires the unidiff parser into a command-line tool: it reads
// a diff from a file or stdin and prints a diffstat, a JSON summary, or an
// interactive viewer.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/asynkron/unidiff/internal/report"
	"github.com/asynkron/unidiff/internal/tui"
	"github.com/asynkron/unidiff/pkg/unidiff"
)

// Run executes the unidiff CLI with the provided arguments. It returns a
// POSIX-style exit code indicating whether execution succeeded.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	if err := godotenv.Load(); err != nil {
		// A missing .env file is fine, but other errors should be surfaced to help with debugging.
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			fmt.Fprintf(stderr, "failed to load .env: %v\n", err)
			return 1
		}
	}

	defaultEncoding := os.Getenv("UNIDIFF_ENCODING")

	flagSet := flag.NewFlagSet("unidiff", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	encodingLabel := flagSet.String("encoding", defaultEncoding, "IANA charset label used to decode the input bytes (UTF-8 when empty)")
	jsonOut := flagSet.Bool("json", false, "emit a machine-readable summary report instead of the diffstat")
	interactive := flagSet.Bool("tui", false, "browse the parsed diff interactively")

	if err := flagSet.Parse(args); err != nil {
		return 2
	}

	input, err := readInput(flagSet.Args())
	if err != nil {
		fmt.Fprintf(stderr, "failed to read input: %v\n", err)
		return 1
	}

	patch, err := newPatchSet(*encodingLabel)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}
	if err := patch.ParseBytes(input); err != nil {
		fmt.Fprintf(stderr, "failed to parse diff: %v\n", err)
		return 1
	}

	switch {
	case *interactive:
		return tui.Run(ctx, patch)
	case *jsonOut:
		payload, err := report.Marshal(report.Build(patch))
		if err != nil {
			fmt.Fprintf(stderr, "failed to build report: %v\n", err)
			return 1
		}
		fmt.Fprintln(stdout, string(payload))
		return 0
	}

	writeDiffstat(stdout, patch)
	return 0
}

// readInput returns the raw diff bytes: the first positional argument names
// a file, stdin is the fallback.
func readInput(args []string) ([]byte, error) {
	if len(args) > 0 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func newPatchSet(encodingLabel string) (*unidiff.PatchSet, error) {
	if encodingLabel == "" {
		return unidiff.New(), nil
	}
	return unidiff.NewWithEncoding(encodingLabel)
}

var (
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("70"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const maxBarWidth = 40

// writeDiffstat prints a git-style diffstat: one row per file with a
// scaled +/- bar, then a totals line.
func writeDiffstat(w io.Writer, patch *unidiff.PatchSet) {
	pathWidth := 0
	for _, file := range patch.Files() {
		if n := len(file.Path()); n > pathWidth {
			pathWidth = n
		}
	}

	totalAdded, totalRemoved := 0, 0
	for _, file := range patch.Files() {
		added, removed := file.Added(), file.Removed()
		totalAdded += added
		totalRemoved += removed
		plus, minus := barCounts(added, removed)
		bar := addedStyle.Render(strings.Repeat("+", plus)) + removedStyle.Render(strings.Repeat("-", minus))
		fmt.Fprintf(w, " %-*s | %4d %s\n", pathWidth, file.Path(), added+removed, bar)
	}

	fmt.Fprintf(w, " %d file%s changed, %d insertion%s(+), %d deletion%s(-)\n",
		patch.Len(), plural(patch.Len()),
		totalAdded, plural(totalAdded),
		totalRemoved, plural(totalRemoved))
}

// barCounts scales the per-file bar so long files do not overflow the row.
func barCounts(added, removed int) (int, int) {
	total := added + removed
	if total <= maxBarWidth {
		return added, removed
	}
	plus := added * maxBarWidth / total
	return plus, maxBarWidth - plus
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
