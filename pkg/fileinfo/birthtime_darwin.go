//go:build darwin

package fileinfo

import (
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// birthTime reads the creation time of path itself, not of a symlink target.
func birthTime(path string, _ os.FileInfo) time.Time {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return time.Time{}
	}
	sec, nsec := st.Btim.Unix()
	if sec == 0 && nsec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, nsec)
}
