// Package filter holds the predicates that select discovered paths and the
// pipeline that applies them.
//
// Every predicate reads the same Query, so a pipeline holds at most one
// meaningful instance of each kind. A predicate that cannot inspect a path
// rejects it: filtering never fails.
package filter

import (
	"os"
	"path/filepath"
)

// Predicate decides whether a path survives a filter pass.
type Predicate interface {
	Accept(path string, q *Query) bool
	String() string
}

// TypeFilter accepts entries whose type, read without following symlinks,
// equals q.Type.
type TypeFilter struct{}

func (TypeFilter) Accept(path string, q *Query) bool {
	fi, err := os.Lstat(path)
	if err != nil {
		return false
	}
	switch q.Type {
	case TypeFile:
		return fi.Mode().IsRegular()
	case TypeDir:
		return fi.IsDir()
	default:
		return false
	}
}

func (TypeFilter) String() string { return "type" }

// NameFilter accepts paths whose base name matches the q.Name glob.
type NameFilter struct{}

func (NameFilter) Accept(path string, q *Query) bool {
	return q.matchName(filepath.Base(path))
}

func (NameFilter) String() string { return "name" }

// ModeFilter accepts paths the calling user can access with q.Mode. The check
// uses the real user and group IDs, like access(2).
type ModeFilter struct{}

func (ModeFilter) Accept(path string, q *Query) bool {
	return access(path, q.Mode) == nil
}

func (ModeFilter) String() string { return "mode" }
