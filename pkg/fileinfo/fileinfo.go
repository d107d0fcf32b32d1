// Package fileinfo describes a discovered path for JSON output.
package fileinfo

import (
	"io/fs"
	"os"
	"time"

	"github.com/dustin/go-humanize"
)

// Meta describes one filesystem entry for JSON output.
type Meta struct {
	Name        string
	Type        string
	Size        int64
	SizeHuman   string
	Modified    time.Time
	Created     time.Time
	Permissions string
}

// JSONMeta is Meta with times formatted as RFC 3339 strings.
type JSONMeta struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Size        int64  `json:"size"`
	SizeHuman   string `json:"size_human"`
	Modified    string `json:"modified"`
	Created     string `json:"created,omitempty"`
	Permissions string `json:"permissions"`
}

// Lookup describes path without following a final symlink.
func Lookup(path string) (*Meta, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}
	return New(path, fi), nil
}

// New builds a Meta for path from an Lstat result.
func New(path string, fi os.FileInfo) *Meta {
	return &Meta{
		Name:        fi.Name(),
		Type:        TypeName(fi.Mode()),
		Size:        fi.Size(),
		SizeHuman:   humanize.Bytes(uint64(fi.Size())),
		Modified:    fi.ModTime().UTC(),
		Created:     birthTime(path, fi).UTC(),
		Permissions: fi.Mode().String(),
	}
}

// TypeName names the entry type encoded in mode.
func TypeName(mode fs.FileMode) string {
	switch t := mode.Type(); {
	case t == 0:
		return "file"
	case t&fs.ModeDir != 0:
		return "dir"
	case t&fs.ModeSymlink != 0:
		return "symlink"
	case t&fs.ModeNamedPipe != 0:
		return "fifo"
	case t&fs.ModeSocket != 0:
		return "socket"
	case t&fs.ModeCharDevice != 0:
		return "char"
	case t&fs.ModeDevice != 0:
		return "block"
	default:
		return "other"
	}
}

// ToJSON converts meta for encoding. A nil meta gives nil.
func ToJSON(meta *Meta) *JSONMeta {
	if meta == nil {
		return nil
	}
	out := &JSONMeta{
		Name:        meta.Name,
		Type:        meta.Type,
		Size:        meta.Size,
		SizeHuman:   meta.SizeHuman,
		Modified:    meta.Modified.Format(time.RFC3339),
		Permissions: meta.Permissions,
	}
	if !meta.Created.IsZero() {
		out.Created = meta.Created.Format(time.RFC3339)
	}
	return out
}
