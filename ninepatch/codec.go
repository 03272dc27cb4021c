package ninepatch

import (
	"fmt"

	"github.com/mgood7123/android-9-patch/internal/buf"
	"github.com/mgood7123/android-9-patch/internal/format"
)

// Encode serializes h and the three arrays into a newly allocated, zeroed
// buffer of h.SerializedSize() bytes. See EncodeInto.
func Encode(h Header, xDivs, yDivs []int32, colors []uint32) ([]byte, error) {
	out := make([]byte, h.SerializedSize())
	if err := EncodeInto(out, h, xDivs, yDivs, colors); err != nil {
		return nil, err
	}
	return out, nil
}

// EncodeInto serializes h and the three arrays into dst, which must hold at
// least h.SerializedSize() bytes.
//
// The flag byte and the three counts are written as one group, then the four
// padding values, then xDivs, yDivs and colors back to back. The offset fields
// of h are ignored: the offsets written to dst are recomputed from the counts.
// Values are copied as-is, so the output is in whatever representation the
// inputs were in.
//
// The counts in h decide how many entries are taken from each slice; a slice
// shorter than its count yields ErrLengthMismatch. Bytes of dst that no field
// covers are left untouched, so pass a zeroed buffer for deterministic output.
func EncodeInto(dst []byte, h Header, xDivs, yDivs []int32, colors []uint32) error {
	size := h.SerializedSize()
	if len(dst) < size {
		return fmt.Errorf("ninepatch: encode needs %d bytes, have %d: %w", size, len(dst), ErrTruncated)
	}
	if len(xDivs) < int(h.NumXDivs) || len(yDivs) < int(h.NumYDivs) || len(colors) < int(h.NumColors) {
		return fmt.Errorf("ninepatch: encode counts %d/%d/%d exceed arrays %d/%d/%d: %w",
			h.NumXDivs, h.NumYDivs, h.NumColors, len(xDivs), len(yDivs), len(colors), ErrLengthMismatch)
	}

	dst[format.NPFlagOffset] = h.flag()
	dst[format.NPNumXDivsOffset] = h.NumXDivs
	dst[format.NPNumYDivsOffset] = h.NumYDivs
	dst[format.NPNumColorsOffset] = h.NumColors

	format.PutI32(dst, format.NPPaddingLeftOffset, h.Padding.Left)
	format.PutI32(dst, format.NPPaddingRightOffset, h.Padding.Right)
	format.PutI32(dst, format.NPPaddingTopOffset, h.Padding.Top)
	format.PutI32(dst, format.NPPaddingBottomOffset, h.Padding.Bottom)

	off := format.NPHeaderSize
	for _, v := range xDivs[:h.NumXDivs] {
		format.PutI32(dst, off, v)
		off += format.NPEntrySize
	}
	for _, v := range yDivs[:h.NumYDivs] {
		format.PutI32(dst, off, v)
		off += format.NPEntrySize
	}
	for _, v := range colors[:h.NumColors] {
		format.PutU32(dst, off, v)
		off += format.NPEntrySize
	}

	fillOffsets(dst)
	return nil
}

// EncodeInterchange is Encode followed by ToInterchangeOrder: the result is
// ready to be stored in an "npTc" chunk. The flag byte comes from h.
func EncodeInterchange(h Header, xDivs, yDivs []int32, colors []uint32) ([]byte, error) {
	out, err := Encode(h, xDivs, yDivs, colors)
	if err != nil {
		return nil, err
	}
	(&Chunk{data: out}).ToInterchangeOrder()
	return out, nil
}

// Decode reinterprets b as a 9-patch record in place: it marks the record as
// deserialized and recomputes the three offsets from the counts already in b.
// The arrays are not copied and are not byte-swapped; call ToHostOrder on a
// record read from a PNG.
//
// b should have passed validation first. Decode still refuses a buffer
// shorter than the header or than the size its counts imply, returning
// ErrTruncated without modifying b.
func Decode(b []byte) (*Chunk, error) {
	if len(b) < format.NPHeaderSize {
		return nil, fmt.Errorf("ninepatch: decode header: %w", ErrTruncated)
	}
	size := ComputeSize(b[format.NPNumXDivsOffset], b[format.NPNumYDivsOffset], b[format.NPNumColorsOffset])
	if len(b) < size {
		return nil, fmt.Errorf("ninepatch: decode needs %d bytes, have %d: %w", size, len(b), ErrTruncated)
	}
	b[format.NPFlagOffset] = format.NPFlagDeserialized
	fillOffsets(b)
	return &Chunk{data: b}, nil
}

// ToInterchangeOrder converts padding, divs and colors from host order to
// big-endian, in place. Counts and offsets are not touched.
func (c *Chunk) ToInterchangeOrder() {
	c.convert(buf.Host, buf.Interchange)
}

// ToHostOrder converts padding, divs and colors from big-endian to host
// order, in place. It is the exact inverse of ToInterchangeOrder.
func (c *Chunk) ToHostOrder() {
	c.convert(buf.Interchange, buf.Host)
}

func (c *Chunk) convert(from, to buf.Engine) {
	if !c.present() {
		return
	}
	buf.ConvertWords(c.data[format.NPPaddingLeftOffset:format.NPPaddingLeftOffset+format.NPPaddingGroupLen], from, to)
	buf.ConvertWords(c.xDivBytes(), from, to)
	buf.ConvertWords(c.yDivBytes(), from, to)
	buf.ConvertWords(c.colorBytes(), from, to)
}
