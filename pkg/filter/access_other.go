//go:build !unix

package filter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

var errDenied = errors.New("permission denied")

// access approximates access(2) from the permission bits where no such call
// exists.
func access(path string, mode AccessMode) error {
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	switch mode {
	case ModeRead:
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		return f.Close()
	case ModeWrite:
		if fi.Mode().Perm()&0o200 == 0 {
			return errDenied
		}
	case ModeExec:
		if fi.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".exe", ".com", ".bat", ".cmd":
			return nil
		}
		if fi.Mode().Perm()&0o111 == 0 {
			return errDenied
		}
	}
	return nil
}
