//go:build unix

package filter

import "golang.org/x/sys/unix"

func access(path string, mode AccessMode) error {
	var bits uint32
	switch mode {
	case ModeRead:
		bits = unix.R_OK
	case ModeWrite:
		bits = unix.W_OK
	case ModeExec:
		bits = unix.X_OK
	default:
		bits = unix.F_OK
	}
	return unix.Access(path, bits)
}
