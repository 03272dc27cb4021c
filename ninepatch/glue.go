package ninepatch

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/mgood7123/android-9-patch/internal/format"
)

// IsNinePatchChunk reports whether b can hold a 9-patch record and is not
// marked with the "not a chunk" sentinel. It does not validate the counts.
func IsNinePatchChunk(b []byte) bool {
	if b == nil || len(b) < HeaderSize {
		return false
	}
	return b[format.NPFlagOffset] != format.NPFlagInvalid
}

// ValidateNinePatchChunk copies b into a new buffer owned by the returned
// Chunk and decodes the copy in place. The caller's slice is not modified.
func ValidateNinePatchChunk(b []byte) (*Chunk, error) {
	if len(b) < HeaderSize {
		return nil, fmt.Errorf("ninepatch: chunk of %d bytes: %w", len(b), ErrTruncated)
	}
	storage := make([]byte, len(b))
	copy(storage, b)
	return Decode(storage)
}

// Fingerprint returns the xxHash64 of a serialized record. Two records with
// equal fingerprints are, for practical purposes, bit-identical.
func Fingerprint(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// Fingerprint returns the xxHash64 of the chunk's serialized bytes, or 0 for
// an absent chunk.
func (c *Chunk) Fingerprint() uint64 {
	b := c.Bytes()
	if b == nil {
		return 0
	}
	return Fingerprint(b)
}
