package main

import (
	"bytes"
	"fmt"

	"github.com/mgood7123/android-9-patch/internal/format"
	"github.com/mgood7123/android-9-patch/internal/mmfile"
	"github.com/mgood7123/android-9-patch/internal/pngchunk"
	"github.com/mgood7123/android-9-patch/ninepatch/peeker"
)

// image is what the commands learn from one PNG file.
type image struct {
	path   string
	size   int
	header pngchunk.IHDR
	tags   []string

	// rawPatch is a copy of the last npTc payload as stored in the file.
	rawPatch       []byte
	rawPatchOffset int

	peeker *peeker.Peeker
}

// loadImage maps path and feeds every chunk to a fresh peeker. The mapping is
// released before returning; everything kept is copied.
func loadImage(path string) (*image, error) {
	m, err := mmfile.Open(path, 0, -1, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer m.Close()
	if err := m.Populate(); err != nil {
		return nil, err
	}

	img := &image{path: path, size: m.Length(), peeker: peeker.New(opts)}
	var headerErr error
	err = pngchunk.Walk(m.Data(), func(c pngchunk.Chunk) bool {
		img.tags = append(img.tags, c.Tag)
		switch c.Tag {
		case "IHDR":
			img.header, headerErr = pngchunk.ParseIHDR(c.Payload)
		case format.TagNinePatch:
			img.rawPatch = bytes.Clone(c.Payload)
			img.rawPatchOffset = c.Offset
		}
		img.peeker.ReadChunkAt(c.Tag, c.Payload, c.Offset)
		return true
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if headerErr != nil {
		return nil, headerErr
	}
	printVerbose("Read %d chunks from %s\n", len(img.tags), path)
	return img, nil
}
