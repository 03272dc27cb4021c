//go:build !unix && !windows

package mmfile

import (
	"fmt"
	"os"

	"github.com/mgood7123/android-9-patch/pkg/types"
)

// PageSize returns a nominal page size; nothing is mapped on this platform.
func PageSize() int { return 4096 }

// Create reads length bytes of f starting at offset into memory when mmap is
// not available.
func Create(f *os.File, offset int64, length int, readOnly bool, pageSize int) (*FileMap, error) {
	if _, _, _, err := window(offset, length, pageSize); err != nil {
		return nil, err
	}
	m := &FileMap{name: f.Name(), offset: offset, length: length}
	if length == 0 {
		return m, nil
	}
	data := make([]byte, length)
	if _, err := f.ReadAt(data, offset); err != nil {
		return nil, fmt.Errorf("mmfile: read %d bytes at %d of %s: %w", length, offset, f.Name(), err)
	}
	m.base = data
	m.unmap = func() error { return nil }
	return m, nil
}

// Advise is not supported without mmap.
func (m *FileMap) Advise(types.Advice) error { return ErrAdviceUnsupported }
