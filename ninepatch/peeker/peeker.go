// Package peeker collects 9-patch data from the private PNG chunks of a
// decoded image.
//
// A PNG decoder hands every unknown chunk to ReadChunk. The peeker keeps the
// last well-formed "npTc" record, in host order, plus the optional optical
// ("npLb") and outline ("npOl") insets. Chunks with a recognized tag but the
// wrong length are skipped and recorded as diagnostics; decoding always
// continues.
package peeker

import (
	"fmt"
	"math"

	"github.com/mgood7123/android-9-patch/internal/buf"
	"github.com/mgood7123/android-9-patch/internal/format"
	"github.com/mgood7123/android-9-patch/ninepatch"
	"github.com/mgood7123/android-9-patch/pkg/types"
)

// Insets are the optional layout hints stored next to the 9-patch record.
// Each array is ordered left, top, right, bottom.
type Insets struct {
	Optical       [4]int32 `json:"optical"`
	Outline       [4]int32 `json:"outline"`
	OutlineRadius float32  `json:"outline_radius"`
	OutlineAlpha  uint8    `json:"outline_alpha"`
}

// Peeker accumulates 9-patch state across ReadChunk calls. It is not safe for
// concurrent use.
type Peeker struct {
	opts types.Options

	patch     *ninepatch.Chunk
	patchSize int
	// flag byte of the patch as found in the file
	fileFlag byte
	hasInsets bool
	insets    Insets

	report types.DiagnosticReport
}

// New returns an empty peeker.
func New(opts types.Options) *Peeker {
	return &Peeker{opts: opts}
}

// ReadChunk interprets one PNG chunk. It always returns true so the caller
// keeps decoding; problems are logged and recorded in Diagnostics.
func (p *Peeker) ReadChunk(tag string, data []byte) bool {
	return p.ReadChunkAt(tag, data, -1)
}

// ReadChunkAt is ReadChunk with the payload's offset in the container, used
// only for diagnostics.
func (p *Peeker) ReadChunkAt(tag string, data []byte, offset int) bool {
	switch tag {
	case format.TagNinePatch:
		p.readNinePatch(data, offset)
	case format.TagOpticalInsets:
		if p.checkLen(tag, data, offset, format.OpticalInsetsSize) {
			p.insets.Optical = readInsets(data)
			p.hasInsets = true
		}
	case format.TagOutlineInsets:
		if p.checkLen(tag, data, offset, format.OutlineInsetsSize) {
			p.insets.Outline = readInsets(data)
			p.insets.OutlineRadius = math.Float32frombits(buf.HostU32(data[format.OutlineRadiusOffset:]))
			p.insets.OutlineAlpha = uint8(buf.HostU32(data[format.OutlineAlphaOffset:]) & 0xff)
			p.hasInsets = true
		}
	}
	return true
}

func (p *Peeker) readNinePatch(data []byte, offset int) {
	if len(data) < ninepatch.HeaderSize {
		p.skip(types.SevError, format.TagNinePatch, offset, "payload shorter than header", ninepatch.HeaderSize, len(data))
		return
	}
	size := ninepatch.ComputeSize(
		data[format.NPNumXDivsOffset], data[format.NPNumYDivsOffset], data[format.NPNumColorsOffset])
	if len(data) != size {
		p.skip(types.SevError, format.TagNinePatch, offset, "payload length does not match counts", size, len(data))
		return
	}

	// the payload belongs to the container reader, so decode a private copy
	patch, err := ninepatch.ValidateNinePatchChunk(data)
	if err != nil {
		p.skip(types.SevError, format.TagNinePatch, offset, err.Error(), size, len(data))
		return
	}
	patch.ToHostOrder()

	if p.patch != nil {
		p.report.Add(types.Diagnostic{
			Severity: types.SevInfo, Tag: format.TagNinePatch, Offset: offset,
			Message: "replaces an earlier 9-patch chunk",
		})
		p.patch.Release()
	}
	p.patch = patch
	p.patchSize = size
	p.fileFlag = data[format.NPFlagOffset]
	p.opts.Log().Debug("9-patch chunk decoded",
		"xdivs", patch.NumXDivs(), "ydivs", patch.NumYDivs(), "colors", patch.NumColors(), "size", size)
}

func (p *Peeker) checkLen(tag string, data []byte, offset, want int) bool {
	if len(data) == want {
		return true
	}
	p.skip(types.SevWarning, tag, offset, "payload has the wrong length", want, len(data))
	return false
}

func (p *Peeker) skip(sev types.Severity, tag string, offset int, msg string, want, got int) {
	p.opts.Log().Warn("skipping 9-patch chunk",
		"tag", tag, "reason", msg, "expected", want, "actual", got)
	p.report.Add(types.Diagnostic{
		Severity: sev, Tag: tag, Offset: offset, Message: msg, Expected: want, Actual: got,
	})
}

// readInsets reads four int32 values in host order; the insets chunks are
// written by copying host memory.
func readInsets(data []byte) [4]int32 {
	var out [4]int32
	for i := range out {
		out[i] = buf.HostI32(data[i*4:])
	}
	return out
}

// Patch returns the decoded 9-patch in host order, or nil if none was read.
func (p *Peeker) Patch() *ninepatch.Chunk { return p.patch }

// PatchSize returns the serialized size of the current patch, or 0.
func (p *Peeker) PatchSize() int {
	if p.patch == nil {
		return 0
	}
	return p.patchSize
}

// HasPatch reports whether a 9-patch record was read.
func (p *Peeker) HasPatch() bool { return p.patch != nil }

// Padding returns the patch padding, or ninepatch.NoPadding without a patch.
func (p *Peeker) Padding() ninepatch.Padding {
	return p.patch.Padding()
}

// Insets returns the insets and whether either inset chunk was read.
func (p *Peeker) Insets() (Insets, bool) {
	return p.insets, p.hasInsets
}

// Scale rescales the patch for a resized image. It does nothing without a
// patch.
func (p *Peeker) Scale(scaleX, scaleY float32, scaledWidth, scaledHeight int) {
	p.patch.ScaleWithin(p.opts.Tolerance(), scaleX, scaleY, scaledWidth, scaledHeight)
}

// Diagnostics returns everything that was skipped or replaced so far.
func (p *Peeker) Diagnostics() *types.DiagnosticReport { return &p.report }

// Delete releases the patch and clears all collected state.
func (p *Peeker) Delete() {
	p.patch.Release()
	p.patch = nil
	p.patchSize = 0
	p.fileFlag = 0
	p.hasInsets = false
	p.insets = Insets{}
	p.report = types.DiagnosticReport{}
}

// Encode returns the current patch serialized in file (big-endian) order,
// ready to be written back into an "npTc" chunk. The flag byte is the one the
// chunk was read with. The peeker's own patch stays in host order.
func (p *Peeker) Encode() ([]byte, error) {
	if p.patch == nil {
		return nil, fmt.Errorf("peeker: no 9-patch chunk")
	}
	h := p.patch.Header()
	h.Deserialized = p.fileFlag == format.NPFlagDeserialized
	h.Invalid = p.fileFlag == format.NPFlagInvalid
	return ninepatch.EncodeInterchange(h, p.patch.XDivs(), p.patch.YDivs(), p.patch.Colors())
}
