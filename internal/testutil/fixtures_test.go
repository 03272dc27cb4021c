package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgood7123/android-9-patch/internal/pngchunk"
	"github.com/mgood7123/android-9-patch/ninepatch"
)

func TestFilePayloadIsBigEndian(t *testing.T) {
	p := FilePayload(t, []int32{1, 0x0102}, nil, nil, ninepatch.Padding{})
	require.Equal(t, byte(0), p[0])
	require.Equal(t, []byte{0, 0, 1, 2}, p[36:40])
}

func TestPNGWalks(t *testing.T) {
	chunks, err := pngchunk.All(PNG(3, 4, pngchunk.Encode("npLb", HostWords(1, 2, 3, 4))))
	require.NoError(t, err)
	require.Len(t, chunks, 4)
	h, err := pngchunk.ParseIHDR(chunks[0].Payload)
	require.NoError(t, err)
	require.Equal(t, uint32(3), h.Width)
}
