package peeker

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgood7123/android-9-patch/internal/format"
	"github.com/mgood7123/android-9-patch/internal/testutil"
	"github.com/mgood7123/android-9-patch/ninepatch"
	"github.com/mgood7123/android-9-patch/pkg/types"
)

// -----------------------------------------------------------------------------
// test helpers
// -----------------------------------------------------------------------------

func newPeeker() (*Peeker, *bytes.Buffer) {
	var logs bytes.Buffer
	opts := types.DefaultOptions(4096)
	opts.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(opts), &logs
}

// -----------------------------------------------------------------------------
// npTc
// -----------------------------------------------------------------------------

func TestReadChunk_NinePatch(t *testing.T) {
	p, logs := newPeeker()
	payload := testutil.FilePayload(t, []int32{3, 9}, []int32{2, 6}, []uint32{ninepatch.NoColor}, ninepatch.Padding{Left: 1, Right: 2, Top: 3, Bottom: 4})
	orig := append([]byte(nil), payload...)

	require.True(t, p.ReadChunk("npTc", payload))
	require.True(t, p.HasPatch())
	require.Equal(t, orig, payload, "container bytes must not be modified")

	patch := p.Patch()
	require.True(t, patch.WasDeserialized())
	require.Equal(t, []int32{3, 9}, patch.XDivs())
	require.Equal(t, []int32{2, 6}, patch.YDivs())
	require.Equal(t, []uint32{ninepatch.NoColor}, patch.Colors())
	require.Equal(t, ninepatch.Padding{Left: 1, Right: 2, Top: 3, Bottom: 4}, p.Padding())
	require.Equal(t, len(payload), p.PatchSize())
	require.Contains(t, logs.String(), "9-patch chunk decoded")
}

func TestReadChunk_NinePatchLengthMismatch(t *testing.T) {
	p, logs := newPeeker()
	payload := testutil.FilePayload(t, []int32{3, 9}, nil, nil, ninepatch.Padding{})

	require.True(t, p.ReadChunk("npTc", append(payload, 0, 0, 0, 0)))
	require.False(t, p.HasPatch())
	require.True(t, p.ReadChunk("npTc", payload[:len(payload)-4]))
	require.True(t, p.ReadChunk("npTc", payload[:ninepatch.HeaderSize-1]))
	require.False(t, p.HasPatch())

	require.Equal(t, 3, p.Diagnostics().Summary.Errors)
	require.Contains(t, logs.String(), "skipping 9-patch chunk")
}

func TestReadChunk_NinePatchReplacesPrevious(t *testing.T) {
	p, _ := newPeeker()
	require.True(t, p.ReadChunk("npTc", testutil.FilePayload(t, []int32{1, 2}, nil, nil, ninepatch.Padding{})))
	require.True(t, p.ReadChunk("npTc", testutil.FilePayload(t, []int32{5, 6, 7, 8}, nil, nil, ninepatch.Padding{})))

	require.Equal(t, []int32{5, 6, 7, 8}, p.Patch().XDivs())
	require.Equal(t, 1, p.Diagnostics().Summary.Info)
}

// -----------------------------------------------------------------------------
// insets
// -----------------------------------------------------------------------------

func TestReadChunk_OpticalInsets(t *testing.T) {
	p, _ := newPeeker()
	require.True(t, p.ReadChunk("npLb", testutil.HostWords(1, 2, 3, 4)))

	ins, ok := p.Insets()
	require.True(t, ok)
	require.Equal(t, [4]int32{1, 2, 3, 4}, ins.Optical)
}

func TestReadChunk_OutlineInsets(t *testing.T) {
	p, _ := newPeeker()
	data := testutil.HostWords(5, 6, 7, 8, math.Float32bits(2.5), 0xABCDEF7F)
	require.True(t, p.ReadChunk("npOl", data))

	ins, ok := p.Insets()
	require.True(t, ok)
	require.Equal(t, [4]int32{5, 6, 7, 8}, ins.Outline)
	require.Equal(t, float32(2.5), ins.OutlineRadius)
	require.Equal(t, uint8(0x7F), ins.OutlineAlpha)
}

func TestReadChunk_InsetLengthMismatch(t *testing.T) {
	p, _ := newPeeker()
	require.True(t, p.ReadChunkAt("npLb", testutil.HostWords(1, 2, 3), 0x40))
	require.True(t, p.ReadChunk("npOl", testutil.HostWords(1, 2, 3, 4, 5, 6, 7)))

	_, ok := p.Insets()
	require.False(t, ok)

	report := p.Diagnostics()
	require.Equal(t, 2, report.Summary.Warnings)
	require.Equal(t, 0x40, report.Diagnostics[0].Offset)
	require.Equal(t, 16, report.Diagnostics[0].Expected)
	require.Equal(t, 12, report.Diagnostics[0].Actual)
}

func TestReadChunk_UnknownTagIgnored(t *testing.T) {
	p, _ := newPeeker()
	require.True(t, p.ReadChunk("tEXt", []byte("hello")))
	require.False(t, p.HasPatch())
	require.Empty(t, p.Diagnostics().Diagnostics)
}

// -----------------------------------------------------------------------------
// absent patch, scale, delete, encode
// -----------------------------------------------------------------------------

func TestAbsentPatch(t *testing.T) {
	p, _ := newPeeker()
	require.Equal(t, ninepatch.NoPadding, p.Padding())
	require.Zero(t, p.PatchSize())
	require.NotPanics(t, func() { p.Scale(2, 2, 10, 10) })
	_, err := p.Encode()
	require.Error(t, err)
}

func TestScaleUsesConfiguredTolerance(t *testing.T) {
	p, _ := newPeeker()
	p.opts.ScaleTolerance = 0.1
	require.True(t, p.ReadChunk("npTc", testutil.FilePayload(t, []int32{10, 20}, []int32{10, 20}, nil, ninepatch.Padding{})))

	p.Scale(1.05, 0.5, 100, 100)
	require.Equal(t, []int32{10, 20}, p.Patch().XDivs())
	require.Equal(t, []int32{5, 10}, p.Patch().YDivs())
}

func TestDelete(t *testing.T) {
	p, _ := newPeeker()
	require.True(t, p.ReadChunk("npTc", testutil.FilePayload(t, []int32{1, 2}, nil, nil, ninepatch.Padding{})))
	require.True(t, p.ReadChunk("npLb", testutil.HostWords(1, 2, 3, 4)))
	patch := p.Patch()

	p.Delete()
	require.False(t, p.HasPatch())
	require.Nil(t, patch.Bytes())
	_, ok := p.Insets()
	require.False(t, ok)
}

func TestEncodeRoundTripsThroughReadChunk(t *testing.T) {
	p, _ := newPeeker()
	pad := ninepatch.Padding{Left: 7, Right: 8, Top: 9, Bottom: 10}
	require.True(t, p.ReadChunk("npTc", testutil.FilePayload(t, []int32{2, 4}, []int32{1, 3}, []uint32{1, 0, 1, 0, 1, 0, 1, 0, 1}, pad)))

	out, err := p.Encode()
	require.NoError(t, err)

	q, _ := newPeeker()
	require.True(t, q.ReadChunk("npTc", out))
	require.Equal(t, p.Patch().Bytes(), q.Patch().Bytes())
	require.Equal(t, pad, q.Padding())
}

func TestEncodeKeepsFileFlag(t *testing.T) {
	fresh := testutil.FilePayload(t, []int32{2, 4}, nil, nil, ninepatch.Padding{})
	marked := append([]byte(nil), fresh...)
	marked[format.NPFlagOffset] = format.NPFlagDeserialized

	for _, payload := range [][]byte{fresh, marked} {
		p, _ := newPeeker()
		require.True(t, p.ReadChunk("npTc", payload))
		out, err := p.Encode()
		require.NoError(t, err)
		require.Equal(t, payload[format.NPFlagOffset], out[format.NPFlagOffset])
		require.Equal(t, payload[format.NPPaddingLeftOffset:], out[format.NPPaddingLeftOffset:])
	}
}
