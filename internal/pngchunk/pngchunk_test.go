package pngchunk

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgood7123/android-9-patch/internal/format"
)

func minimalPNG(extra ...[]byte) []byte {
	out := append([]byte(nil), Signature...)
	out = Append(out, "IHDR", make([]byte, 13))
	for _, c := range extra {
		out = append(out, c...)
	}
	out = Append(out, "IDAT", []byte{1, 2, 3})
	return Append(out, "IEND", nil)
}

func TestWalk(t *testing.T) {
	data := minimalPNG(Encode("npTc", []byte{9, 9, 9, 9}))

	chunks, err := All(data)
	require.NoError(t, err)

	var tags []string
	for _, c := range chunks {
		tags = append(tags, c.Tag)
	}
	require.Equal(t, []string{"IHDR", "npTc", "IDAT", "IEND"}, tags)
	require.Equal(t, []byte{9, 9, 9, 9}, chunks[1].Payload)
	require.Equal(t, chunks[1].Payload, data[chunks[1].Offset:chunks[1].Offset+4])
}

func TestWalk_StopsEarly(t *testing.T) {
	data := minimalPNG()
	n := 0
	require.NoError(t, Walk(data, func(c Chunk) bool {
		n++
		return c.Tag != "IHDR"
	}))
	require.Equal(t, 1, n)
}

func TestWalk_IgnoresTrailingBytesAfterIEND(t *testing.T) {
	data := append(minimalPNG(), 0xde, 0xad)
	_, err := All(data)
	require.NoError(t, err)
}

func TestWalk_Errors(t *testing.T) {
	good := minimalPNG()

	_, err := All([]byte("GIF89a.."))
	require.ErrorIs(t, err, format.ErrSignatureMismatch)

	_, err = All(good[:len(good)-6])
	require.ErrorIs(t, err, format.ErrTruncated)

	// drop IEND entirely
	_, err = All(good[:len(good)-12])
	require.ErrorIs(t, err, format.ErrTruncated)

	bad := append([]byte(nil), good...)
	bad[len(Signature)+8] ^= 0xff // first IHDR payload byte
	_, err = All(bad)
	require.ErrorIs(t, err, format.ErrMalformed)
}

func TestReplace(t *testing.T) {
	inserted, err := Replace(minimalPNG(), "npTc", []byte{1, 2})
	require.NoError(t, err)
	require.Equal(t, minimalPNG(Encode("npTc", []byte{1, 2})), inserted)

	replaced, err := Replace(inserted, "npTc", []byte{3, 4, 5, 6})
	require.NoError(t, err)
	require.Equal(t, minimalPNG(Encode("npTc", []byte{3, 4, 5, 6})), replaced)

	noIDAT := Append(append([]byte(nil), Signature...), "IEND", nil)
	_, err = Replace(noIDAT, "npTc", nil)
	require.ErrorIs(t, err, format.ErrMalformed)
}

func TestAppendRejectsBadTag(t *testing.T) {
	require.Panics(t, func() { Encode("np", nil) })
}

func TestIHDR(t *testing.T) {
	h := IHDR{Width: 640, Height: 480, BitDepth: 8, ColorType: 6}
	got, err := ParseIHDR(h.Bytes())
	require.NoError(t, err)
	require.Equal(t, h, got)

	_, err = ParseIHDR(make([]byte, 12))
	require.ErrorIs(t, err, format.ErrMalformed)
}
