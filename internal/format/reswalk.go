package format

import (
	"fmt"
	"log/slog"

	"github.com/mgood7123/android-9-patch/internal/buf"
)

// ResChunk is a validated chunk found by WalkResChunks.
type ResChunk struct {
	ResChunkHeader
	// Offset is the position of the chunk header in the walked buffer.
	Offset int
	// Depth is 0 for top-level chunks.
	Depth int
}

// Header returns the chunk header bytes, excluding the body.
func (c ResChunk) Header(data []byte) []byte {
	return data[c.Offset : c.Offset+int(c.HeaderSize)]
}

// Body returns the bytes between the end of the header and the end of the
// chunk.
func (c ResChunk) Body(data []byte) []byte {
	return data[c.Offset+int(c.HeaderSize) : c.Offset+int(c.Size)]
}

// WalkResChunks visits the top-level resource chunks in data[start:dataEnd].
// Every chunk is certified with ValidateChunk before fn sees it and walking
// stops with an error at the first chunk that fails. Returning false from fn
// stops the walk without error.
func WalkResChunks(data []byte, start, dataEnd int, log *slog.Logger, fn func(ResChunk) bool) error {
	w := resWalker{data: data, log: log, fn: fn}
	_, err := w.walk(start, dataEnd, 0)
	return err
}

// WalkResTree walks all of data like WalkResChunks and also descends into the
// body of every chunk whose type is in containers, up to maxDepth levels.
// Children are visited right after their parent.
func WalkResTree(data []byte, containers map[uint16]bool, maxDepth int, log *slog.Logger, fn func(ResChunk) bool) error {
	w := resWalker{data: data, log: log, fn: fn, containers: containers, maxDepth: maxDepth}
	_, err := w.walk(0, len(data), 0)
	return err
}

type resWalker struct {
	data       []byte
	log        *slog.Logger
	fn         func(ResChunk) bool
	containers map[uint16]bool
	maxDepth   int
}

// walk returns false when fn asked to stop.
func (w *resWalker) walk(start, end, depth int) (bool, error) {
	if end > len(w.data) {
		end = len(w.data)
	}
	off := start
	for off < end {
		name := fmt.Sprintf("chunk@0x%x", off)
		v := buf.NewView(w.data, off)
		if err := ValidateChunk(v, ResChunkHeaderSize, end, name, w.log); err != nil {
			return false, err
		}
		h, err := ParseResChunkHeader(v)
		if err != nil {
			return false, err
		}
		c := ResChunk{ResChunkHeader: h, Offset: off, Depth: depth}
		if !w.fn(c) {
			return false, nil
		}
		if depth < w.maxDepth && w.containers[h.Type] {
			more, err := w.walk(off+int(h.HeaderSize), off+int(h.Size), depth+1)
			if err != nil || !more {
				return false, err
			}
		}
		off += int(h.Size)
	}
	return true, nil
}
