package buf

import (
	"encoding/binary"
	"testing"
)

func TestEndianHelpers(t *testing.T) {
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}

	if got := U16LE(data); got != 0x2301 {
		t.Fatalf("U16LE = 0x%x, want 0x2301", got)
	}
	if got := U32LE(data); got != 0x67452301 {
		t.Fatalf("U32LE = 0x%x, want 0x67452301", got)
	}
	if got := U32BE(data); got != 0x01234567 {
		t.Fatalf("U32BE = 0x%x, want 0x01234567", got)
	}
	if got := HostU32(data); got != binary.NativeEndian.Uint32(data) {
		t.Fatalf("HostU32 = 0x%x, want native read", got)
	}

	short := []byte{0xAA}
	if U16LE(short) != 0 {
		t.Fatalf("U16LE short should be 0")
	}
	if U32LE(short) != 0 || U32BE(short) != 0 || HostI32(short) != 0 {
		t.Fatalf("short reads should return 0")
	}
}

func TestConvertWordsRoundTrip(t *testing.T) {
	orig := []byte{0x00, 0x00, 0x00, 0x01, 0xde, 0xad, 0xbe, 0xef, 0x7f}
	b := append([]byte(nil), orig...)

	ConvertWords(b, binary.LittleEndian, binary.BigEndian)
	if b[0] != 0x01 || b[3] != 0x00 {
		t.Fatalf("first word not swapped: % x", b[:4])
	}
	if b[8] != 0x7f {
		t.Fatalf("trailing partial word must be untouched")
	}

	ConvertWords(b, binary.BigEndian, binary.LittleEndian)
	for i := range orig {
		if b[i] != orig[i] {
			t.Fatalf("byte %d = 0x%x after round trip, want 0x%x", i, b[i], orig[i])
		}
	}
}

func TestConvertWordsSameOrderIsNoop(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	ConvertWords(b, Interchange, Interchange)
	if b[0] != 1 || b[3] != 4 {
		t.Fatalf("same-order conversion changed bytes: % x", b)
	}
}
