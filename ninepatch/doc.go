// Package ninepatch decodes, encodes and rescales the Android 9-patch record:
// the "npTc" PNG chunk that splits an image into fixed and stretchable
// regions.
//
// # Layout
//
// A record is a 32-byte header followed by three arrays stored back to back in
// the same buffer:
//
//	[header 32B] [xDivs 4*numXDivs] [yDivs 4*numYDivs] [colors 4*numColors]
//
// The header's three offset fields are always recomputed from the counts and
// are never trusted as supplied.
//
// # Representations
//
// Padding, div and color fields are either in "file" order (big-endian, as
// stored in a PNG) or "device" order (host-native). A freshly read PNG chunk
// is in file order:
//
//	c, err := ninepatch.Decode(payload)
//	if err != nil {
//	    return err
//	}
//	c.ToHostOrder()
//
// Converting twice in the same direction corrupts the data. Tracking which
// representation a buffer is in is the caller's job.
//
// # Ownership
//
// Decode reinterprets the caller's buffer in place; nothing is copied and the
// Chunk aliases the slice. Encode and ValidateNinePatchChunk return buffers the
// caller owns. Chunk.Release drops the reference; there is no other release
// path.
//
// # Concurrency
//
// A Chunk has no internal locking. Concurrent readers are fine; any mutating
// call (Decode, the byte-order conversions, Scale, SetPadding, SetXDivs,
// SetYDivs) needs exclusive access to the buffer.
package ninepatch
