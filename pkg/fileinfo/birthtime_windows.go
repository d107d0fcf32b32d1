//go:build windows

package fileinfo

import (
	"os"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// birthTime asks for the attributes of path directly, so a symlink reports
// its own creation time.
func birthTime(path string, _ os.FileInfo) time.Time {
	name, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return time.Time{}
	}
	var data windows.Win32FileAttributeData
	if err := windows.GetFileAttributesEx(name, windows.GetFileExInfoStandard, (*byte)(unsafe.Pointer(&data))); err != nil {
		return time.Time{}
	}
	if nsec := data.CreationTime.Nanoseconds(); nsec != 0 {
		return time.Unix(0, nsec)
	}
	return time.Time{}
}
