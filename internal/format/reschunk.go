package format

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/mgood7123/android-9-patch/internal/buf"
)

// ResChunkHeader is the header that appears at the front of every resource
// data chunk.
type ResChunkHeader struct {
	// Type identifies the chunk; its meaning depends on the containing chunk.
	Type uint16
	// HeaderSize is the size of the chunk header in bytes.
	HeaderSize uint16
	// Size is the total size of the chunk, header included.
	Size uint32
}

// ParseResChunkHeader reads the header at v. It fails without reading any
// field when the header does not fit inside the view's buffer.
func ParseResChunkHeader(v buf.View) (ResChunkHeader, error) {
	raw, ok := v.Bytes(ResChunkHeaderSize)
	if !ok {
		return ResChunkHeader{}, fmt.Errorf("res chunk header: %w", ErrTruncated)
	}
	return ResChunkHeader{
		Type:       buf.U16LE(raw[ResTypeOffset:]),
		HeaderSize: buf.U16LE(raw[ResHeaderSizeOffset:]),
		Size:       buf.U32LE(raw[ResSizeOffset:]),
	}, nil
}

// PutResChunkHeader writes h into b, which must hold ResChunkHeaderSize bytes.
func PutResChunkHeader(b []byte, h ResChunkHeader) {
	buf.Resource.PutUint16(b[ResTypeOffset:], h.Type)
	buf.Resource.PutUint16(b[ResHeaderSizeOffset:], h.HeaderSize)
	buf.Resource.PutUint32(b[ResSizeOffset:], h.Size)
}

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// ValidateChunk certifies the resource chunk header at chunk before any of its
// fields are trusted. dataEnd is the offset, in the same buffer as chunk, of
// the first byte past valid data. name labels the chunk in diagnostics.
//
// Checks run in order and the first failure wins:
//
//  1. the header must be addressable and fit inside the buffer;
//  2. headerSize >= minSize;
//  3. size >= headerSize;
//  4. headerSize and size are both 4-byte aligned;
//  5. size does not extend past dataEnd.
//
// Every failure is logged at warn level with the offending values and returned
// as an error wrapping ErrMalformed. On success the caller may read up to size
// bytes from the chunk start. A nil log discards diagnostics.
func ValidateChunk(chunk buf.View, minSize int, dataEnd int, name string, log *slog.Logger) error {
	if log == nil {
		log = discard
	}

	if !chunk.Fits(ResChunkHeaderSize) {
		log.Warn("chunk pointer is out of bounds",
			"chunk", name, "offset", chunk.Offset(), "available", chunk.Remaining())
		return fmt.Errorf("%s: header not addressable: %w", name, ErrMalformed)
	}
	h, err := ParseResChunkHeader(chunk)
	if err != nil {
		return fmt.Errorf("%s: %w", name, ErrMalformed)
	}

	if int(h.HeaderSize) < minSize {
		log.Warn("chunk header size is too small",
			"chunk", name, "headerSize", hex(h.HeaderSize), "minSize", minSize)
		return fmt.Errorf("%s: header size 0x%04x is too small: %w", name, h.HeaderSize, ErrMalformed)
	}
	if uint32(h.HeaderSize) > h.Size {
		log.Warn("chunk size is smaller than header size",
			"chunk", name, "size", hex(h.Size), "headerSize", hex(h.HeaderSize))
		return fmt.Errorf("%s: size 0x%x is smaller than header size 0x%x: %w",
			name, h.Size, h.HeaderSize, ErrMalformed)
	}
	if !IsAligned4(uint32(h.HeaderSize), h.Size) {
		log.Warn("chunk size or header size is not on an integer boundary",
			"chunk", name, "size", hex(h.Size), "headerSize", hex(h.HeaderSize))
		return fmt.Errorf("%s: size 0x%x or headerSize 0x%x is not on an integer boundary: %w",
			name, h.Size, h.HeaderSize, ErrMalformed)
	}

	avail := chunk.Diff(dataEnd)
	if r := chunk.Remaining(); avail > r {
		avail = r
	}
	if avail < 0 || uint64(h.Size) > uint64(avail) {
		log.Warn("chunk data size extends beyond resource end",
			"chunk", name, "size", hex(h.Size), "available", hex(avail))
		return fmt.Errorf("%s: data size 0x%x extends beyond resource end 0x%x: %w",
			name, h.Size, avail, ErrMalformed)
	}
	return nil
}

func hex[T ~uint16 | ~uint32 | ~int](v T) string {
	return fmt.Sprintf("0x%x", v)
}
