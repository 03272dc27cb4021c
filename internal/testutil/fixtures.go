// Package testutil builds 9-patch and PNG fixtures for tests.
package testutil

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/mgood7123/android-9-patch/internal/pngchunk"
	"github.com/mgood7123/android-9-patch/ninepatch"
)

// FilePayload returns an "npTc" payload the way a PNG stores it: values
// big-endian and the flag byte clear.
func FilePayload(t testing.TB, xs, ys []int32, colors []uint32, pad ninepatch.Padding) []byte {
	t.Helper()
	h := ninepatch.Header{
		NumXDivs:  uint8(len(xs)),
		NumYDivs:  uint8(len(ys)),
		NumColors: uint8(len(colors)),
		Padding:   pad,
	}
	out, err := ninepatch.EncodeInterchange(h, xs, ys, colors)
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return out
}

// HostWords packs vals in host order, the layout of the inset chunks.
func HostWords(vals ...uint32) []byte {
	out := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.NativeEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// PNG returns a minimal PNG of the given size with extra encoded chunks
// placed between IHDR and IDAT. The image data is not decodable.
func PNG(width, height uint32, extra ...[]byte) []byte {
	data := append([]byte(nil), pngchunk.Signature...)
	data = pngchunk.Append(data, "IHDR", pngchunk.IHDR{Width: width, Height: height, BitDepth: 8, ColorType: 6}.Bytes())
	for _, c := range extra {
		data = append(data, c...)
	}
	data = pngchunk.Append(data, "IDAT", []byte{0x78, 0x9c, 0x03, 0x00})
	return pngchunk.Append(data, "IEND", nil)
}

// WritePNG writes PNG(width, height, extra...) into a temp dir and returns its
// path.
func WritePNG(t testing.TB, width, height uint32, extra ...[]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "image.9.png")
	if err := os.WriteFile(path, PNG(width, height, extra...), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}
