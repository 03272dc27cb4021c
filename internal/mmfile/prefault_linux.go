//go:build linux

package mmfile

import (
	"errors"

	"golang.org/x/sys/unix"
)

// populate uses MADV_POPULATE_READ (Linux 5.14+), which reports EFAULT for
// unreadable pages, and falls back to touching each page on older kernels.
func populate(data []byte) error {
	err := unix.Madvise(data, unix.MADV_POPULATE_READ)
	if err == nil {
		return nil
	}
	if !errors.Is(err, unix.EINVAL) && !errors.Is(err, unix.ENOSYS) {
		return err
	}
	return touchPages(data, unix.Getpagesize())
}
