// Package pngchunk walks the chunk stream of a PNG file.
//
// Only the container is handled: each chunk is length (big-endian u32),
// four-byte type, payload and CRC-32 over type and payload. Image data is
// never decoded.
package pngchunk

import (
	"bytes"
	"fmt"
	"hash/crc32"

	"github.com/mgood7123/android-9-patch/internal/buf"
	"github.com/mgood7123/android-9-patch/internal/format"
)

// Signature is the 8-byte PNG file signature.
var Signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

const (
	lengthSize = 4
	typeSize   = 4
	crcSize    = 4
	overhead   = lengthSize + typeSize + crcSize

	tagIEND = "IEND"
	tagIDAT = "IDAT"
)

// Chunk is one chunk of the stream. Payload aliases the walked buffer.
type Chunk struct {
	Tag     string
	Payload []byte
	// Offset is the position of the payload within the file.
	Offset int
}

// Walk calls fn for every chunk in data, in file order, until fn returns
// false or the IEND chunk has been delivered. Walking stops with an error on a
// bad signature, a chunk that runs past the end of data, or a CRC mismatch.
func Walk(data []byte, fn func(c Chunk) bool) error {
	if !bytes.HasPrefix(data, Signature) {
		return fmt.Errorf("pngchunk: %w", format.ErrSignatureMismatch)
	}
	off := len(Signature)
	for off < len(data) {
		c, next, err := readChunk(data, off)
		if err != nil {
			return err
		}
		if !fn(c) || c.Tag == tagIEND {
			return nil
		}
		off = next
	}
	return fmt.Errorf("pngchunk: no IEND chunk: %w", format.ErrTruncated)
}

// All returns every chunk in data.
func All(data []byte) ([]Chunk, error) {
	var out []Chunk
	err := Walk(data, func(c Chunk) bool {
		out = append(out, c)
		return true
	})
	return out, err
}

func readChunk(data []byte, off int) (Chunk, int, error) {
	head, ok := buf.Slice(data, off, lengthSize+typeSize)
	if !ok {
		return Chunk{}, 0, fmt.Errorf("pngchunk: chunk header at 0x%x: %w", off, format.ErrTruncated)
	}
	n := buf.U32BE(head)
	if n > 1<<31-1 {
		return Chunk{}, 0, fmt.Errorf("pngchunk: chunk length 0x%x at 0x%x: %w", n, off, format.ErrMalformed)
	}
	body, ok := buf.Slice(data, off+lengthSize, typeSize+int(n)+crcSize)
	if !ok {
		return Chunk{}, 0, fmt.Errorf("pngchunk: %q at 0x%x needs %d bytes: %w",
			head[lengthSize:], off, int(n)+overhead, format.ErrTruncated)
	}
	signed := body[:typeSize+int(n)]
	want := buf.U32BE(body[typeSize+int(n):])
	if got := crc32.ChecksumIEEE(signed); got != want {
		return Chunk{}, 0, fmt.Errorf("pngchunk: %q at 0x%x crc 0x%08x, stored 0x%08x: %w",
			signed[:typeSize], off, got, want, format.ErrMalformed)
	}
	c := Chunk{
		Tag:     string(signed[:typeSize]),
		Payload: signed[typeSize:],
		Offset:  off + lengthSize + typeSize,
	}
	return c, off + overhead + int(n), nil
}

// Append appends one encoded chunk to dst.
func Append(dst []byte, tag string, payload []byte) []byte {
	if len(tag) != typeSize {
		panic(fmt.Sprintf("pngchunk: tag %q is not 4 bytes", tag))
	}
	dst = buf.Interchange.AppendUint32(dst, uint32(len(payload)))
	start := len(dst)
	dst = append(dst, tag...)
	dst = append(dst, payload...)
	return buf.Interchange.AppendUint32(dst, crc32.ChecksumIEEE(dst[start:]))
}

// Encode returns one encoded chunk.
func Encode(tag string, payload []byte) []byte {
	return Append(make([]byte, 0, len(payload)+overhead), tag, payload)
}

// Replace rebuilds data with every chunk tagged tag replaced by payload. When
// no such chunk exists, one is inserted before the first IDAT. The input is
// not modified.
func Replace(data []byte, tag string, payload []byte) ([]byte, error) {
	chunks, err := All(data)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(data)+len(payload)+overhead)
	out = append(out, Signature...)
	done := false
	for _, c := range chunks {
		switch {
		case c.Tag == tag:
			if !done {
				out = Append(out, tag, payload)
				done = true
			}
			continue
		case c.Tag == tagIDAT && !done:
			out = Append(out, tag, payload)
			done = true
		}
		out = Append(out, c.Tag, c.Payload)
	}
	if !done {
		return nil, fmt.Errorf("pngchunk: no IDAT chunk to insert %q before: %w", tag, format.ErrMalformed)
	}
	return out, nil
}

// IHDR is the image header.
type IHDR struct {
	Width     uint32 `json:"width"`
	Height    uint32 `json:"height"`
	BitDepth  uint8  `json:"bit_depth"`
	ColorType uint8  `json:"color_type"`
	Interlace uint8  `json:"interlace"`
}

const ihdrSize = 13

// ParseIHDR decodes the payload of an IHDR chunk.
func ParseIHDR(payload []byte) (IHDR, error) {
	if len(payload) != ihdrSize {
		return IHDR{}, fmt.Errorf("pngchunk: IHDR of %d bytes, want %d: %w", len(payload), ihdrSize, format.ErrMalformed)
	}
	return IHDR{
		Width:     buf.U32BE(payload[0:]),
		Height:    buf.U32BE(payload[4:]),
		BitDepth:  payload[8],
		ColorType: payload[9],
		Interlace: payload[12],
	}, nil
}

// Bytes encodes h as an IHDR payload with default compression and filter
// methods.
func (h IHDR) Bytes() []byte {
	out := make([]byte, ihdrSize)
	buf.Interchange.PutUint32(out[0:], h.Width)
	buf.Interchange.PutUint32(out[4:], h.Height)
	out[8] = h.BitDepth
	out[9] = h.ColorType
	out[12] = h.Interlace
	return out
}
