//go:build unix

package mmfile

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/mgood7123/android-9-patch/pkg/types"
)

// PageSize returns the system page size. Resolve it once at startup and pass
// it through types.Options.
func PageSize() int { return unix.Getpagesize() }

// Create maps length bytes of f starting at offset. The mapping begins at the
// page boundary at or below offset, so pageSize must be the real page size.
// f may be closed once Create returns.
func Create(f *os.File, offset int64, length int, readOnly bool, pageSize int) (*FileMap, error) {
	adjOffset, adjLength, adjust, err := window(offset, length, pageSize)
	if err != nil {
		return nil, err
	}
	m := &FileMap{name: f.Name(), offset: offset, length: length}
	if length == 0 {
		// mmap rejects empty mappings
		return m, nil
	}

	prot := unix.PROT_READ
	if !readOnly {
		prot |= unix.PROT_WRITE
	}
	base, err := unix.Mmap(int(f.Fd()), adjOffset, adjLength, prot, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmfile: mmap(%d, %d) of %s: %w", adjOffset, adjLength, f.Name(), err)
	}
	m.base = base
	m.adjust = adjust
	m.unmap = func() error {
		err := unix.Munmap(base)
		if errors.Is(err, unix.EINVAL) {
			return nil
		}
		return err
	}
	return m, nil
}

// Advise passes an access-pattern hint for the whole mapped window to the
// kernel.
func (m *FileMap) Advise(a types.Advice) error {
	var adv int
	switch a {
	case types.AdviceNormal:
		adv = unix.MADV_NORMAL
	case types.AdviceRandom:
		adv = unix.MADV_RANDOM
	case types.AdviceSequential:
		adv = unix.MADV_SEQUENTIAL
	case types.AdviceWillNeed:
		adv = unix.MADV_WILLNEED
	case types.AdviceDontNeed:
		adv = unix.MADV_DONTNEED
	default:
		return fmt.Errorf("mmfile: unknown advice %d", int(a))
	}
	if len(m.base) == 0 {
		return nil
	}
	if err := unix.Madvise(m.base, adv); err != nil {
		return fmt.Errorf("mmfile: madvise(%s): %w", a, err)
	}
	return nil
}
