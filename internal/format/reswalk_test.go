package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func rawChunk(typ uint16, headerSize int, body []byte) []byte {
	out := make([]byte, headerSize+len(body))
	PutResChunkHeader(out, ResChunkHeader{Type: typ, HeaderSize: uint16(headerSize), Size: uint32(len(out))})
	copy(out[headerSize:], body)
	return out
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestWalkResChunks(t *testing.T) {
	data := concat(
		rawChunk(ResStringPoolType, 8, make([]byte, 8)),
		rawChunk(ResTableTypeType, 12, make([]byte, 4)),
	)

	var got []ResChunk
	require.NoError(t, WalkResChunks(data, 0, len(data), nil, func(c ResChunk) bool {
		got = append(got, c)
		return true
	}))
	require.Len(t, got, 2)
	require.Equal(t, ResStringPoolType, got[0].Type)
	require.Equal(t, 0, got[0].Offset)
	require.Equal(t, 16, got[1].Offset)
	require.Equal(t, uint16(12), got[1].HeaderSize)
	require.Len(t, got[1].Body(data), 4)
	require.Len(t, got[1].Header(data), 12)
}

func TestWalkResChunks_StopsAtMalformed(t *testing.T) {
	bad := rawChunk(ResStringPoolType, 8, make([]byte, 8))
	PutResChunkHeader(bad, ResChunkHeader{Type: 1, HeaderSize: 8, Size: 64})
	data := concat(rawChunk(ResStringPoolType, 8, nil), bad)

	n := 0
	err := WalkResChunks(data, 0, len(data), nil, func(ResChunk) bool {
		n++
		return true
	})
	require.ErrorIs(t, err, ErrMalformed)
	require.Equal(t, 1, n)
}

func TestWalkResChunks_StopEarly(t *testing.T) {
	data := concat(rawChunk(1, 8, nil), rawChunk(2, 8, nil))
	n := 0
	require.NoError(t, WalkResChunks(data, 0, len(data), nil, func(ResChunk) bool {
		n++
		return false
	}))
	require.Equal(t, 1, n)
}

func TestWalkResTree(t *testing.T) {
	pkg := rawChunk(ResTablePackageType, 8, concat(
		rawChunk(ResTableTypeSpecType, 8, nil),
		rawChunk(ResTableTypeType, 8, make([]byte, 4)),
	))
	table := rawChunk(ResTableType, 12, concat(rawChunk(ResStringPoolType, 8, nil), pkg))

	var names []string
	var depths []int
	require.NoError(t, WalkResTree(table, ResContainerTypes, 4, nil, func(c ResChunk) bool {
		names = append(names, ResTypeName(c.Type))
		depths = append(depths, c.Depth)
		return true
	}))
	require.Equal(t, []string{"TABLE", "STRING_POOL", "TABLE_PACKAGE", "TABLE_TYPE_SPEC", "TABLE_TYPE"}, names)
	require.Equal(t, []int{0, 1, 1, 2, 2}, depths)

	// children must stay inside their parent
	broken := append([]byte(nil), table...)
	PutResChunkHeader(broken[12:], ResChunkHeader{Type: ResStringPoolType, HeaderSize: 8, Size: 0x100})
	require.ErrorIs(t, WalkResTree(broken, ResContainerTypes, 4, nil, func(ResChunk) bool { return true }), ErrMalformed)

	// depth limit
	n := 0
	require.NoError(t, WalkResTree(table, ResContainerTypes, 0, nil, func(ResChunk) bool {
		n++
		return true
	}))
	require.Equal(t, 1, n)
}

func TestResTypeName(t *testing.T) {
	require.Equal(t, "XML_START_ELEMENT", ResTypeName(ResXMLStartElementType))
	require.Equal(t, "0x7777", ResTypeName(0x7777))
}
