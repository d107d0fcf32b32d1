package filter

import (
	"fmt"

	"github.com/gobwas/glob"
)

// EntryType selects the kind of filesystem entry TypeFilter accepts.
type EntryType int

const (
	TypeUnset EntryType = iota
	TypeFile
	TypeDir
)

// ParseEntryType maps the -type argument ("f" or "d") to an EntryType.
func ParseEntryType(s string) (EntryType, error) {
	switch s {
	case "f":
		return TypeFile, nil
	case "d":
		return TypeDir, nil
	default:
		return TypeUnset, fmt.Errorf("invalid type %q; must be 'f' or 'd'", s)
	}
}

func (t EntryType) String() string {
	switch t {
	case TypeFile:
		return "f"
	case TypeDir:
		return "d"
	default:
		return "unset"
	}
}

// AccessMode selects the access right ModeFilter checks for.
type AccessMode int

const (
	ModeUnset AccessMode = iota
	ModeRead
	ModeWrite
	ModeExec
)

func (m AccessMode) String() string {
	switch m {
	case ModeRead:
		return "readable"
	case ModeWrite:
		return "writable"
	case ModeExec:
		return "executable"
	default:
		return "exists"
	}
}

// Query is the configuration shared by every predicate in a pipeline. It is
// filled in while options are parsed and only read afterwards.
type Query struct {
	Type EntryType
	Name string
	Mode AccessMode

	matcher  glob.Glob
	compiled string
}

// SetName validates pattern as a shell glob and stores it.
func (q *Query) SetName(pattern string) error {
	g, err := compileName(pattern)
	if err != nil {
		return err
	}
	q.Name = pattern
	q.matcher = g
	q.compiled = pattern
	return nil
}

// ValidatePattern reports whether pattern is a usable -name glob.
func ValidatePattern(pattern string) error {
	_, err := compileName(pattern)
	return err
}

// matchName reports whether base matches the configured pattern. A Name
// assigned directly rather than through SetName is compiled on demand
// without modifying q.
func (q *Query) matchName(base string) bool {
	g := q.matcher
	if g == nil || q.compiled != q.Name {
		var err error
		if g, err = compileName(q.Name); err != nil {
			return false
		}
	}
	return g.Match(base)
}

// matchNothing is the matcher for patterns containing an empty class.
type matchNothing struct{}

func (matchNothing) Match(string) bool { return false }

// Patterns apply to a single path component, so no separators are passed
// and '*' may match any character.
func compileName(pattern string) (glob.Glob, error) {
	translated, never, err := translatePattern(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid name pattern %q: %w", pattern, err)
	}
	if never {
		return matchNothing{}, nil
	}
	g, err := glob.Compile(translated)
	if err != nil {
		return nil, fmt.Errorf("invalid name pattern %q: %w", pattern, err)
	}
	return g, nil
}
