//go:build windows

package mmfile

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/mgood7123/android-9-patch/pkg/types"
)

// allocationGranularity is the alignment MapViewOfFile requires for offsets.
const allocationGranularity = 64 << 10

// PageSize returns the mapping granularity, which on Windows is the
// allocation granularity rather than the VM page size.
func PageSize() int { return allocationGranularity }

// Create maps length bytes of f starting at offset through a file mapping
// object. f may be closed once Create returns.
func Create(f *os.File, offset int64, length int, readOnly bool, pageSize int) (*FileMap, error) {
	adjOffset, adjLength, adjust, err := window(offset, length, pageSize)
	if err != nil {
		return nil, err
	}
	m := &FileMap{name: f.Name(), offset: offset, length: length}
	if length == 0 {
		return m, nil
	}

	protect, access := uint32(windows.PAGE_READONLY), uint32(windows.FILE_MAP_READ)
	if !readOnly {
		protect, access = windows.PAGE_READWRITE, windows.FILE_MAP_WRITE
	}
	mapping, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil, protect, 0, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("mmfile: CreateFileMapping(%s): %w", f.Name(), err)
	}
	addr, err := windows.MapViewOfFile(mapping, access,
		uint32(uint64(adjOffset)>>32), uint32(adjOffset), uintptr(adjLength))
	if err != nil {
		windows.CloseHandle(mapping)
		return nil, fmt.Errorf("mmfile: MapViewOfFile(%d, %d) of %s: %w", adjOffset, adjLength, f.Name(), err)
	}

	m.base = unsafe.Slice((*byte)(unsafe.Pointer(addr)), adjLength)
	m.adjust = adjust
	m.unmap = func() error {
		err := windows.UnmapViewOfFile(addr)
		if cerr := windows.CloseHandle(mapping); err == nil {
			err = cerr
		}
		return err
	}
	return m, nil
}

// Advise is not supported on Windows.
func (m *FileMap) Advise(types.Advice) error { return ErrAdviceUnsupported }
