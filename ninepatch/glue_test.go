package ninepatch

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgood7123/android-9-patch/internal/format"
)

func TestIsNinePatchChunk(t *testing.T) {
	require.False(t, IsNinePatchChunk(nil))
	require.False(t, IsNinePatchChunk(make([]byte, HeaderSize-1)))
	require.True(t, IsNinePatchChunk(make([]byte, HeaderSize)))

	b := make([]byte, HeaderSize)
	b[0] = format.NPFlagInvalid
	require.False(t, IsNinePatchChunk(b))

	b[0] = format.NPFlagDeserialized
	require.True(t, IsNinePatchChunk(b))
}

func TestValidateNinePatchChunk_CopiesInput(t *testing.T) {
	h, xs, ys, colors := threeByThree()
	src, err := Encode(h, xs, ys, colors)
	require.NoError(t, err)
	orig := append([]byte(nil), src...)

	c, err := ValidateNinePatchChunk(src)
	require.NoError(t, err)
	require.True(t, c.WasDeserialized())
	require.Equal(t, orig, src, "input must not be modified")

	c.SetPadding(Padding{})
	require.Equal(t, orig, src, "chunk must own its storage")
	require.Equal(t, xs, c.XDivs())
}

func TestValidateNinePatchChunk_Rejects(t *testing.T) {
	_, err := ValidateNinePatchChunk(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, ErrTruncated)

	b := make([]byte, HeaderSize)
	b[format.NPNumColorsOffset] = 1
	_, err = ValidateNinePatchChunk(b)
	require.ErrorIs(t, err, ErrTruncated)
}

func TestFingerprint(t *testing.T) {
	h, xs, ys, colors := threeByThree()
	a, err := Encode(h, xs, ys, colors)
	require.NoError(t, err)
	c, err := Decode(append([]byte(nil), a...))
	require.NoError(t, err)

	// Decode sets the flag byte, so the fingerprint changes
	require.NotEqual(t, Fingerprint(a), c.Fingerprint())

	h.Deserialized = true
	b, err := Encode(h, xs, ys, colors)
	require.NoError(t, err)
	require.Equal(t, Fingerprint(b), c.Fingerprint())
}
