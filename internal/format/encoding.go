package format

import "github.com/mgood7123/android-9-patch/internal/buf"

// Host-order field accessors for the 9-patch record.
//
// Offsets inside the record are always host order because they are recomputed
// locally and never transmitted. Padding, div and color fields are host order
// only while the record is in its "device" representation; callers convert
// with buf.ConvertWords before persisting.
//
// These helpers slice with b[off:off+4] so an out-of-range offset panics at the
// call site rather than silently reading a neighbour. Callers bounds-check first.

// PutU32 writes a host-order uint32 at off.
func PutU32(b []byte, off int, v uint32) {
	buf.Host.PutUint32(b[off:off+4], v)
}

// PutI32 writes a host-order int32 at off.
func PutI32(b []byte, off int, v int32) {
	buf.Host.PutUint32(b[off:off+4], uint32(v))
}

// ReadU32 reads a host-order uint32 at off.
func ReadU32(b []byte, off int) uint32 {
	return buf.Host.Uint32(b[off : off+4])
}

// ReadI32 reads a host-order int32 at off.
func ReadI32(b []byte, off int) int32 {
	return int32(buf.Host.Uint32(b[off : off+4]))
}
