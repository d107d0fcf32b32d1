// findit searches a directory hierarchy and prints every path that passes
// the given tests, in the spirit of find(1).
//
// All paths under PATH (PATH itself included) are collected first, then each
// test is applied in command-line order; a path is printed only if it passes
// every test. Paths that cannot be inspected fail the test instead of
// aborting the search.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/nethoundsh/findit/internal/runner"
	filterpkg "github.com/nethoundsh/findit/pkg/filter"
	"github.com/nethoundsh/findit/pkg/list"
)

// version can be overridden at build time with:
//
//	go build -ldflags "-X main.version=v1.2.3"
var version = "dev"

type appConfig struct {
	root     string
	query    *filterpkg.Query
	filters  *list.List[filterpkg.Predicate]
	output   string
	noColor  bool
	progress bool
	verbose  bool
}

var (
	errVersion = errors.New("version requested")
	errUsage   = errors.New("no arguments provided")
)

// errReported wraps parse errors the flag package has already printed,
// together with the usage text.
var errReported = errors.New("invalid arguments")

func main() {
	os.Exit(run(os.Args[1:]))
}

// Exit codes: 0 = search completed, 1 = usage error or output failure.
func run(args []string) int {
	fs := newFlagSet(os.Stderr)
	cfg, err := parseArgs(fs, args)
	if err != nil {
		switch {
		case errors.Is(err, errVersion):
			fmt.Println("findit", version)
			return 0
		case errors.Is(err, flag.ErrHelp):
			return 0
		case errors.Is(err, errUsage):
			fs.Usage()
			return 1
		case errors.Is(err, errReported):
			return 1
		default:
			fmt.Fprintln(os.Stderr, color.RedString("Error:"), err)
			fs.Usage()
			return 1
		}
	}

	if cfg.output == "json" || cfg.noColor {
		color.NoColor = true
	}

	return runner.Run(runner.AppConfig{
		Root:         cfg.root,
		Query:        cfg.query,
		Filters:      cfg.filters,
		Output:       cfg.output,
		ShowProgress: cfg.progress && isatty.IsTerminal(os.Stderr.Fd()),
		Verbose:      cfg.verbose,
	})
}

func newFlagSet(w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("findit", flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() {
		fmt.Fprintf(w, "Usage: findit PATH [OPTIONS]\n\nOptions:\n\n")
		fmt.Fprintf(w, "   -type [f|d]\tFile is of type f for regular file or d for directory\n")
		fmt.Fprintf(w, "   -name pattern\tName of file matches shell pattern\n")
		fmt.Fprintf(w, "   -executable\tFile is executable or directory is searchable by user\n")
		fmt.Fprintf(w, "   -readable\tFile is readable by user\n")
		fmt.Fprintf(w, "   -writable\tFile is writable by user\n")
		fmt.Fprintf(w, "\n   -o text|json\tOutput format (default text)\n")
		fmt.Fprintf(w, "   -no-color\tDisable colored diagnostics\n")
		fmt.Fprintf(w, "   -progress\tShow progress on stderr when it is a terminal\n")
		fmt.Fprintf(w, "   -verbose\tWarn about unreadable directories and print a summary\n")
		fmt.Fprintf(w, "   -version\tPrint version and exit\n")
	}
	return fs
}

// parseArgs registers the options on fs and parses args. Tests are appended
// to the pipeline as their options are seen, so the pipeline follows
// command-line order. Options and PATH may be interleaved; the last PATH wins.
func parseArgs(fs *flag.FlagSet, args []string) (appConfig, error) {
	if len(args) == 0 {
		return appConfig{}, errUsage
	}

	cfg := appConfig{
		root:    ".",
		query:   &filterpkg.Query{},
		filters: &list.List[filterpkg.Predicate]{},
	}

	fs.Var(&typeFlag{cfg: &cfg}, "type", "`f|d`: file is a regular file (f) or directory (d)")
	fs.Var(&nameFlag{cfg: &cfg}, "name", "base name matches shell `pattern`")
	fs.Var(&modeFlag{cfg: &cfg, mode: filterpkg.ModeExec}, "executable", "file is executable or directory is searchable")
	fs.Var(&modeFlag{cfg: &cfg, mode: filterpkg.ModeRead}, "readable", "file is readable")
	fs.Var(&modeFlag{cfg: &cfg, mode: filterpkg.ModeWrite}, "writable", "file is writable")
	output := fs.String("o", "text", "output format: text or json")
	noColor := fs.Bool("no-color", false, "disable colored output")
	progress := fs.Bool("progress", false, "show progress on stderr")
	verbose := fs.Bool("verbose", false, "warn about unreadable directories and print a summary")
	showVersion := fs.Bool("version", false, "print version and exit")

	// flag stops at the first non-flag argument; take it as PATH and resume.
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return appConfig{}, err
			}
			return appConfig{}, fmt.Errorf("%w: %w", errReported, err)
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		cfg.root = rest[0]
		args = rest[1:]
	}

	if *showVersion {
		return appConfig{}, errVersion
	}

	switch *output {
	case "text", "json":
	default:
		return appConfig{}, fmt.Errorf("invalid -o value; must be 'text' or 'json'")
	}

	cfg.output = *output
	cfg.noColor = *noColor
	cfg.progress = *progress
	cfg.verbose = *verbose
	return cfg, nil
}
