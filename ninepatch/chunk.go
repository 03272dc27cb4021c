package ninepatch

import (
	"github.com/mgood7123/android-9-patch/internal/buf"
	"github.com/mgood7123/android-9-patch/internal/format"
)

// HeaderSize is the fixed size of the record header in bytes.
const HeaderSize = format.NPHeaderSize

// Region color hints stored in the colors array.
const (
	NoColor          = format.NoColor
	TransparentColor = format.TransparentColor
)

// Padding holds the content insets of a 9-patch, in pixels.
type Padding struct {
	Left   int32 `json:"left"`
	Right  int32 `json:"right"`
	Top    int32 `json:"top"`
	Bottom int32 `json:"bottom"`
}

// NoPadding is reported when no 9-patch is present.
var NoPadding = Padding{Left: -1, Right: -1, Top: -1, Bottom: -1}

// Header is the logical form of the 32-byte record header.
//
// The wire format packs Deserialized and Invalid into one signed byte; they
// are kept apart here and only merged by Encode.
type Header struct {
	Deserialized bool
	// Invalid marks the record as "not a valid chunk" (flag byte 0xFF).
	Invalid bool

	NumXDivs  uint8
	NumYDivs  uint8
	NumColors uint8

	// Offsets are informational. Encode ignores them and writes recomputed
	// values.
	XDivsOffset  uint32
	YDivsOffset  uint32
	ColorsOffset uint32

	Padding Padding
}

// SerializedSize returns the size of a record with h's counts.
func (h Header) SerializedSize() int {
	return ComputeSize(h.NumXDivs, h.NumYDivs, h.NumColors)
}

func (h Header) flag() byte {
	switch {
	case h.Invalid:
		return format.NPFlagInvalid
	case h.Deserialized:
		return format.NPFlagDeserialized
	default:
		return format.NPFlagFresh
	}
}

// ComputeSize returns 32 + 4*(numXDivs + numYDivs + numColors). The counts are
// bytes, so the result is at most format.NPMaxSize and cannot overflow int.
func ComputeSize(numXDivs, numYDivs, numColors uint8) int {
	return format.NPHeaderSize +
		int(numXDivs)*format.NPEntrySize +
		int(numYDivs)*format.NPEntrySize +
		int(numColors)*format.NPEntrySize
}

// offsets returns the xDivs, yDivs and colors offsets for the given counts.
func offsets(numXDivs, numYDivs uint8) (x, y, colors uint32) {
	x = format.NPHeaderSize
	y = x + uint32(numXDivs)*format.NPEntrySize
	colors = y + uint32(numYDivs)*format.NPEntrySize
	return x, y, colors
}

// fillOffsets recomputes the three offset fields of the record in b from the
// counts already stored there.
func fillOffsets(b []byte) {
	x, y, colors := offsets(b[format.NPNumXDivsOffset], b[format.NPNumYDivsOffset])
	format.PutU32(b, format.NPXDivsOffsetOffset, x)
	format.PutU32(b, format.NPYDivsOffsetOffset, y)
	format.PutU32(b, format.NPColorsOffsetOffset, colors)
}

// Chunk is a typed view over a serialized 9-patch record. Fields are decoded
// on access from the documented offsets; the buffer is never cast to a Go
// struct.
//
// A nil *Chunk stands for "no 9-patch present". Accessors on a nil Chunk
// return zero values and mutators do nothing.
type Chunk struct {
	data []byte
}

// Bytes returns the backing buffer, trimmed to the serialized size.
func (c *Chunk) Bytes() []byte {
	if c == nil || c.data == nil {
		return nil
	}
	return c.data[:c.SerializedSize()]
}

// Release drops the chunk's reference to its buffer. The chunk behaves as
// absent afterwards.
func (c *Chunk) Release() {
	if c != nil {
		c.data = nil
	}
}

func (c *Chunk) present() bool {
	return c != nil && len(c.data) >= HeaderSize
}

// WasDeserialized reports whether Decode has run on the record.
func (c *Chunk) WasDeserialized() bool {
	return c.present() && c.data[format.NPFlagOffset] == format.NPFlagDeserialized
}

// IsInvalid reports whether the flag byte holds the "not a chunk" sentinel.
func (c *Chunk) IsInvalid() bool {
	return c.present() && c.data[format.NPFlagOffset] == format.NPFlagInvalid
}

// NumXDivs returns the number of horizontal divs.
func (c *Chunk) NumXDivs() uint8 {
	if !c.present() {
		return 0
	}
	return c.data[format.NPNumXDivsOffset]
}

// NumYDivs returns the number of vertical divs.
func (c *Chunk) NumYDivs() uint8 {
	if !c.present() {
		return 0
	}
	return c.data[format.NPNumYDivsOffset]
}

// NumColors returns the number of region colors.
func (c *Chunk) NumColors() uint8 {
	if !c.present() {
		return 0
	}
	return c.data[format.NPNumColorsOffset]
}

// XDivsOffset returns the stored offset of the xDivs array.
func (c *Chunk) XDivsOffset() uint32 { return c.u32(format.NPXDivsOffsetOffset) }

// YDivsOffset returns the stored offset of the yDivs array.
func (c *Chunk) YDivsOffset() uint32 { return c.u32(format.NPYDivsOffsetOffset) }

// ColorsOffset returns the stored offset of the colors array.
func (c *Chunk) ColorsOffset() uint32 { return c.u32(format.NPColorsOffsetOffset) }

func (c *Chunk) u32(off int) uint32 {
	if !c.present() {
		return 0
	}
	return format.ReadU32(c.data, off)
}

// SerializedSize returns the record size implied by the stored counts, or 0
// for an absent chunk.
func (c *Chunk) SerializedSize() int {
	if !c.present() {
		return 0
	}
	return ComputeSize(c.NumXDivs(), c.NumYDivs(), c.NumColors())
}

// Padding returns the four padding values in the chunk's current
// representation. An absent chunk reports NoPadding.
func (c *Chunk) Padding() Padding {
	if !c.present() {
		return NoPadding
	}
	return Padding{
		Left:   format.ReadI32(c.data, format.NPPaddingLeftOffset),
		Right:  format.ReadI32(c.data, format.NPPaddingRightOffset),
		Top:    format.ReadI32(c.data, format.NPPaddingTopOffset),
		Bottom: format.ReadI32(c.data, format.NPPaddingBottomOffset),
	}
}

// SetPadding overwrites the four padding values.
func (c *Chunk) SetPadding(p Padding) {
	if !c.present() {
		return
	}
	format.PutI32(c.data, format.NPPaddingLeftOffset, p.Left)
	format.PutI32(c.data, format.NPPaddingRightOffset, p.Right)
	format.PutI32(c.data, format.NPPaddingTopOffset, p.Top)
	format.PutI32(c.data, format.NPPaddingBottomOffset, p.Bottom)
}

// Header returns the logical header, offsets included as stored.
func (c *Chunk) Header() Header {
	if !c.present() {
		return Header{Padding: NoPadding}
	}
	return Header{
		Deserialized: c.WasDeserialized(),
		Invalid:      c.IsInvalid(),
		NumXDivs:     c.NumXDivs(),
		NumYDivs:     c.NumYDivs(),
		NumColors:    c.NumColors(),
		XDivsOffset:  c.XDivsOffset(),
		YDivsOffset:  c.YDivsOffset(),
		ColorsOffset: c.ColorsOffset(),
		Padding:      c.Padding(),
	}
}

// array returns the bytes of the array whose offset field is at offField,
// holding count entries. The array is located at header start + stored
// offset. Returns nil if the stored offset points outside the buffer.
func (c *Chunk) array(offField int, count uint8) []byte {
	if !c.present() || count == 0 {
		return nil
	}
	start := int(format.ReadU32(c.data, offField))
	end, err := buf.CheckListBounds(len(c.data), start, int(count), format.NPEntrySize)
	if err != nil {
		return nil
	}
	return c.data[start:end]
}

func (c *Chunk) xDivBytes() []byte {
	return c.array(format.NPXDivsOffsetOffset, c.NumXDivs())
}

func (c *Chunk) yDivBytes() []byte {
	return c.array(format.NPYDivsOffsetOffset, c.NumYDivs())
}

func (c *Chunk) colorBytes() []byte {
	return c.array(format.NPColorsOffsetOffset, c.NumColors())
}

// XDivs returns a copy of the horizontal divs.
func (c *Chunk) XDivs() []int32 { return readI32s(c.xDivBytes()) }

// YDivs returns a copy of the vertical divs.
func (c *Chunk) YDivs() []int32 { return readI32s(c.yDivBytes()) }

// Colors returns a copy of the region colors.
func (c *Chunk) Colors() []uint32 {
	raw := c.colorBytes()
	if raw == nil {
		return nil
	}
	out := make([]uint32, len(raw)/format.NPEntrySize)
	for i := range out {
		out[i] = format.ReadU32(raw, i*format.NPEntrySize)
	}
	return out
}

// XDiv returns xDivs[i]; ok is false when i is out of range.
func (c *Chunk) XDiv(i int) (int32, bool) { return entryI32(c.xDivBytes(), i) }

// YDiv returns yDivs[i]; ok is false when i is out of range.
func (c *Chunk) YDiv(i int) (int32, bool) { return entryI32(c.yDivBytes(), i) }

// Color returns colors[i]; ok is false when i is out of range.
func (c *Chunk) Color(i int) (uint32, bool) {
	v, ok := entryI32(c.colorBytes(), i)
	return uint32(v), ok
}

// SetXDivs overwrites the horizontal divs. divs must have exactly NumXDivs
// entries.
func (c *Chunk) SetXDivs(divs []int32) error {
	return writeI32s(c.xDivBytes(), divs)
}

// SetYDivs overwrites the vertical divs. divs must have exactly NumYDivs
// entries.
func (c *Chunk) SetYDivs(divs []int32) error {
	return writeI32s(c.yDivBytes(), divs)
}

func readI32s(raw []byte) []int32 {
	if raw == nil {
		return nil
	}
	out := make([]int32, len(raw)/format.NPEntrySize)
	for i := range out {
		out[i] = format.ReadI32(raw, i*format.NPEntrySize)
	}
	return out
}

func writeI32s(raw []byte, vals []int32) error {
	if len(vals)*format.NPEntrySize != len(raw) {
		return ErrLengthMismatch
	}
	for i, v := range vals {
		format.PutI32(raw, i*format.NPEntrySize, v)
	}
	return nil
}

func entryI32(raw []byte, i int) (int32, bool) {
	if i < 0 || (i+1)*format.NPEntrySize > len(raw) {
		return 0, false
	}
	return format.ReadI32(raw, i*format.NPEntrySize), true
}
