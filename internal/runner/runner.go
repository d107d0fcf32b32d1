package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	filterpkg "github.com/nethoundsh/findit/pkg/filter"
	"github.com/nethoundsh/findit/pkg/list"
	outputpkg "github.com/nethoundsh/findit/pkg/output"
	"github.com/nethoundsh/findit/pkg/walk"
)

// AppConfig is everything Run needs for one search.
type AppConfig struct {
	Root         string
	Query        *filterpkg.Query
	Filters      *list.List[filterpkg.Predicate]
	Output       string
	ShowProgress bool
	Verbose      bool

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Run discovers every path under cfg.Root, applies the filter pipeline and
// writes the survivors. Exit codes: 0 = done (even with no matches),
// 1 = output could not be written.
func Run(cfg AppConfig) int {
	stdout, stderr := cfg.Stdout, cfg.Stderr
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	filters := cfg.Filters
	if filters == nil {
		filters = &list.List[filterpkg.Predicate]{}
	}
	query := cfg.Query
	if query == nil {
		query = &filterpkg.Query{}
	}

	var prog *progress
	if cfg.ShowProgress {
		prog = newProgress(stderr)
	}

	opts := walk.Options{}
	if cfg.Verbose {
		opts.OnError = func(_ string, err error) {
			fmt.Fprintln(stderr, color.YellowString("Warning:"), err)
		}
	}
	if prog != nil {
		opts.OnPath = prog.discovered
	}

	paths := walk.Walk(cfg.Root, opts)
	defer paths.Destroy(nil)
	defer filters.Destroy(nil)
	discovered := paths.Len()

	var stats []filterpkg.PassStats
	if prog != nil {
		prog.discoveryDone()
		stats = filterpkg.RunObserved(paths, filters, query, prog)
		prog.wait()
	} else {
		stats = filterpkg.Run(paths, filters, query)
	}

	var err error
	if cfg.Output == "json" {
		err = outputpkg.PrintJSONPaths(stdout, paths)
		if err == nil {
			err = outputpkg.PrintJSONSummary(stdout, cfg.Root, discovered, paths.Len())
		}
	} else {
		err = outputpkg.PrintPaths(stdout, paths)
	}
	if err != nil {
		fmt.Fprintln(stderr, color.RedString("Error:"), "writing output:", err)
		return 1
	}

	if cfg.Verbose {
		printTextSummary(stderr, discovered, paths.Len(), stats)
	}
	return 0
}

func printTextSummary(w io.Writer, discovered, matched int, stats []filterpkg.PassStats) {
	unit := "entries"
	if discovered == 1 {
		unit = "entry"
	}
	for _, s := range stats {
		_, _ = fmt.Fprintf(w, "  -%s: checked %s, removed %s\n",
			s.Predicate, humanize.Comma(int64(s.Checked)), humanize.Comma(int64(s.Removed)))
	}
	matchedStr := color.GreenString("%s", humanize.Comma(int64(matched)))
	if matched == 0 {
		matchedStr = color.YellowString("0")
	}
	_, _ = fmt.Fprintf(w, "Discovered %s %s, %s matched\n", humanize.Comma(int64(discovered)), unit, matchedStr)
}
