// Package buf contains bounds-checked views and endian-safe decoding routines
// for untrusted chunk buffers.
package buf

import "encoding/binary"

// Engine combines binary.ByteOrder and binary.AppendByteOrder so a single
// value can read, write and append fixed-width integers.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var (
	// Host is the in-process ("device") representation of 9-patch fields.
	Host Engine = binary.NativeEndian

	// Interchange is the portable ("file") representation used inside PNG
	// chunks: network order.
	Interchange Engine = binary.BigEndian

	// Resource is the byte order of resource-table chunk headers.
	Resource Engine = binary.LittleEndian
)

// ConvertWords rewrites every complete 4-byte word of b from one byte order to
// another, in place. A trailing partial word is left untouched.
func ConvertWords(b []byte, from, to binary.ByteOrder) {
	if from == to {
		return
	}
	for i := 0; i+4 <= len(b); i += 4 {
		to.PutUint32(b[i:], from.Uint32(b[i:]))
	}
}

// U16LE reads a little-endian uint16 from b. Returns 0 when b is too short.
func U16LE(b []byte) uint16 {
	if len(b) < 2 {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// U32LE reads a little-endian uint32 from b. Returns 0 when b is too short.
func U32LE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// HostU32 reads a host-order uint32 from b. Returns 0 when b is too short.
func HostU32(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return Host.Uint32(b)
}

// HostI32 reads a host-order int32 from b. Returns 0 when b is too short.
func HostI32(b []byte) int32 {
	return int32(HostU32(b))
}
