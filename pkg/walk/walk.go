// Package walk discovers every path below a root directory.
package walk

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/nethoundsh/findit/pkg/list"
)

// Options holds optional hooks for Walk. Neither hook can stop the walk.
type Options struct {
	// OnError is called for directories that could not be opened or fully
	// read. Such a directory still appears in the result.
	OnError func(path string, err error)
	// OnPath is called after each path is appended.
	OnPath func(path string)
}

// listDir is replaced in tests to simulate unreadable directories.
var listDir = readDir

// frame is a directory whose entries are still being visited.
type frame struct {
	path    string
	entries []fs.DirEntry
	next    int
}

// Discover returns root followed by every path below it, in pre-order.
func Discover(root string) *list.List[string] {
	return Walk(root, Options{})
}

// Walk is Discover with hooks. A directory is listed before its contents and
// a subdirectory's contents come before its later siblings. The root is always
// listed, even if it is not a directory or cannot be read. Directory entry
// order is whatever the filesystem returns. Symlinks are never followed.
//
// Pending directories are kept on an explicit stack, so depth is limited by
// memory rather than the goroutine stack.
func Walk(root string, opts Options) *list.List[string] {
	paths := &list.List[string]{}
	add := func(p string) {
		paths.Append(p)
		if opts.OnPath != nil {
			opts.OnPath(p)
		}
	}

	var stack []frame
	enter := func(dir string) {
		entries, err := listDir(dir)
		if err != nil && opts.OnError != nil {
			opts.OnError(dir, err)
		}
		if len(entries) > 0 {
			stack = append(stack, frame{path: dir, entries: entries})
		}
	}

	add(root)
	// A plain-file root is a complete result, not a read error. Stat follows
	// symlinks here, as opening the root does.
	if fi, err := os.Stat(root); err != nil || fi.IsDir() {
		enter(root)
	}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.entries) {
			stack = stack[:len(stack)-1]
			continue
		}
		e := top.entries[top.next]
		top.next++

		p := join(top.path, e.Name())
		add(p)
		if e.IsDir() {
			// top may be invalidated by the append in enter.
			enter(p)
		}
	}
	return paths
}

// readDir lists dir without sorting. Entries read before an error are kept.
// The directory handle is closed before returning.
func readDir(dir string) (_ []fs.DirEntry, err error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", dir, closeErr)
		}
	}()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return entries, fmt.Errorf("reading directory: %w", err)
	}
	return entries, nil
}

// join appends name to dir with a single separator. Unlike filepath.Join it
// does not clean dir, so "./x" stays "./x".
func join(dir, name string) string {
	if strings.HasSuffix(dir, string(os.PathSeparator)) || strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + string(os.PathSeparator) + name
}
