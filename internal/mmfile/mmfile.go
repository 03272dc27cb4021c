// Package mmfile maps files, or page-aligned windows of files, into memory.
package mmfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/mgood7123/android-9-patch/internal/buf"
	"github.com/mgood7123/android-9-patch/pkg/types"
)

// ErrAdviceUnsupported is returned by Advise on platforms without madvise.
var ErrAdviceUnsupported = errors.New("mmfile: access advice not supported")

// FileMap is a mapped window of a file. The window starts at a page boundary
// at or below the requested offset; Data hides the extra leading bytes.
//
// A FileMap is not safe for concurrent Close.
type FileMap struct {
	name   string
	base   []byte
	adjust int
	offset int64
	length int

	unmap func() error
}

// Name returns the name of the file the map was created from.
func (m *FileMap) Name() string { return m.name }

// Data returns the requested bytes, starting at Offset in the file.
func (m *FileMap) Data() []byte {
	if m.base == nil {
		return nil
	}
	return m.base[m.adjust : m.adjust+m.length]
}

// Base returns the whole mapped window, starting at a page boundary.
func (m *FileMap) Base() []byte { return m.base }

// BaseLength returns len(Base()).
func (m *FileMap) BaseLength() int { return len(m.base) }

// Offset returns the file offset of Data()[0].
func (m *FileMap) Offset() int64 { return m.offset }

// Length returns len(Data()).
func (m *FileMap) Length() int { return m.length }

// View returns a bounded view at the start of Data.
func (m *FileMap) View() buf.View { return buf.NewView(m.Data(), 0) }

// Close releases the mapping. Data must not be used afterwards. Closing twice
// is a no-op.
func (m *FileMap) Close() error {
	if m.unmap == nil {
		return nil
	}
	err := m.unmap()
	m.unmap = nil
	m.base = nil
	return err
}

// window computes the page-aligned mapping for [offset, offset+length).
func window(offset int64, length, pageSize int) (adjOffset int64, adjLength, adjust int, err error) {
	if offset < 0 || length < 0 {
		return 0, 0, 0, fmt.Errorf("mmfile: negative offset %d or length %d", offset, length)
	}
	if pageSize <= 0 || pageSize&(pageSize-1) != 0 {
		return 0, 0, 0, fmt.Errorf("mmfile: page size %d is not a power of two", pageSize)
	}
	adjust = int(offset % int64(pageSize))
	adjLength, ok := buf.AddOverflowSafe(length, adjust)
	if !ok {
		return 0, 0, 0, fmt.Errorf("mmfile: adjusted length overflow: length %d adjust %d", length, adjust)
	}
	return offset - int64(adjust), adjLength, adjust, nil
}

// Open maps length bytes of the file at path, starting at offset, using the
// page size and access advice in opts. A negative length maps to the end of
// the file. The file itself is closed before Open returns; the mapping stays
// valid until Close.
func Open(path string, offset int64, length int, opts types.Options) (*FileMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // mapping keeps pages alive

	if length < 0 {
		info, err := f.Stat()
		if err != nil {
			return nil, err
		}
		rest := info.Size() - offset
		if rest < 0 || rest > int64(^uint(0)>>1) {
			return nil, fmt.Errorf("mmfile: cannot map %d bytes at %d of %s", rest, offset, path)
		}
		length = int(rest)
	}

	pageSize := opts.PageSize
	if pageSize == 0 {
		pageSize = PageSize()
	}
	m, err := Create(f, offset, length, true, pageSize)
	if err != nil {
		return nil, err
	}
	if m.BaseLength() > 0 {
		if err := m.Advise(opts.Advice); err != nil && !errors.Is(err, ErrAdviceUnsupported) {
			opts.Log().Warn("madvise failed", "file", path, "advice", opts.Advice.String(), "error", err)
		}
	}
	opts.Log().Debug("mapped file",
		"file", path, "offset", offset, "length", length, "base_length", m.BaseLength())
	return m, nil
}

// Map maps the whole file at path read-only and returns its contents together
// with a cleanup function.
func Map(path string) ([]byte, func() error, error) {
	m, err := Open(path, 0, -1, types.Options{})
	if err != nil {
		return nil, nil, err
	}
	data := m.Data()
	if data == nil {
		data = []byte{}
	}
	return data, m.Close, nil
}
