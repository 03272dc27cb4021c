// Package format houses the low-level layout of the Android 9-patch record and
// the resource chunk header that frames untrusted resource data. The goal is to
// keep offset arithmetic in one place, allocation-free, and independent from
// the public API so higher-level packages can present the data ergonomically.
package format

import "fmt"

// ============================================================================
// 9-patch record ("npTc") layout
// ============================================================================
//
//	Offset  Size        Field
//	0x00    1           wasDeserialized (0x00/0x01, 0xFF = not a chunk)
//	0x01    1           numXDivs
//	0x02    1           numYDivs
//	0x03    1           numColors
//	0x04    4           xDivsOffset   (host order, recomputed)
//	0x08    4           yDivsOffset   (host order, recomputed)
//	0x0C    4           paddingLeft
//	0x10    4           paddingRight
//	0x14    4           paddingTop
//	0x18    4           paddingBottom
//	0x1C    4           colorsOffset  (host order, recomputed)
//	0x20    4*numXDivs  xDivs[]
//	...     4*numYDivs  yDivs[]
//	...     4*numColors colors[]
const (
	NPFlagOffset          = 0x00
	NPNumXDivsOffset      = 0x01
	NPNumYDivsOffset      = 0x02
	NPNumColorsOffset     = 0x03
	NPXDivsOffsetOffset   = 0x04
	NPYDivsOffsetOffset   = 0x08
	NPPaddingLeftOffset   = 0x0C
	NPPaddingRightOffset  = 0x10
	NPPaddingTopOffset    = 0x14
	NPPaddingBottomOffset = 0x18
	NPColorsOffsetOffset  = 0x1C
	NPHeaderSize          = 0x20
)

// derived lengths.
const (
	// NPPaddingGroupLen covers the four padding fields, copied as one unit.
	NPPaddingGroupLen = NPColorsOffsetOffset - NPPaddingLeftOffset // 16
	// NPEntrySize is the size of one div or color entry.
	NPEntrySize = 4
)

// Flag byte values.
const (
	NPFlagFresh        = 0x00
	NPFlagDeserialized = 0x01
	// NPFlagInvalid is the all-ones byte (historically int8 -1) that marks a
	// buffer as "not a valid chunk".
	NPFlagInvalid = 0xFF
)

// Region color hints.
const (
	// NoColor marks a region that is not a single solid color.
	NoColor uint32 = 0x00000001
	// TransparentColor marks a region that is fully transparent.
	TransparentColor uint32 = 0x00000000
)

// NPMaxSize is the largest possible record: every count at 255.
const NPMaxSize = NPHeaderSize + 3*255*NPEntrySize

// ============================================================================
// Optional inset chunks
// ============================================================================
const (
	// OpticalInsetsSize is the exact payload size of "npLb": four int32 insets.
	OpticalInsetsSize = 4 * 4

	// OutlineInsetsSize is the exact payload size of "npOl": four int32
	// insets, a float32 radius, and a 32-bit slot whose low byte is the alpha.
	OutlineInsetsSize = 6 * 4

	OutlineRadiusOffset = 0x10
	OutlineAlphaOffset  = 0x14
)

// PNG chunk tags carrying 9-patch data.
const (
	TagNinePatch     = "npTc"
	TagOpticalInsets = "npLb"
	TagOutlineInsets = "npOl"
)

// ============================================================================
// Resource chunk header (ResChunk_header)
// ============================================================================
//
//	Offset  Size  Field
//	0x00    2     type
//	0x02    2     headerSize
//	0x04    4     size (header + data)
//
// Resource tables store the header little-endian.
const (
	ResTypeOffset       = 0x00
	ResHeaderSizeOffset = 0x02
	ResSizeOffset       = 0x04
	ResChunkHeaderSize  = 0x08

	// ResAlignmentMask is applied to headerSize|size; both must be 4-byte aligned.
	ResAlignmentMask = 0x3
)

// Resource chunk types.
const (
	ResNullType       uint16 = 0x0000
	ResStringPoolType uint16 = 0x0001
	ResTableType      uint16 = 0x0002
	ResXMLType        uint16 = 0x0003

	ResXMLStartNamespaceType uint16 = 0x0100
	ResXMLEndNamespaceType   uint16 = 0x0101
	ResXMLStartElementType   uint16 = 0x0102
	ResXMLEndElementType     uint16 = 0x0103
	ResXMLCDataType          uint16 = 0x0104
	ResXMLResourceMapType    uint16 = 0x0180

	ResTablePackageType  uint16 = 0x0200
	ResTableTypeType     uint16 = 0x0201
	ResTableTypeSpecType uint16 = 0x0202
	ResTableLibraryType  uint16 = 0x0203
)

// ResContainerTypes are the chunk types whose bodies hold further chunks.
var ResContainerTypes = map[uint16]bool{
	ResTableType:        true,
	ResXMLType:          true,
	ResTablePackageType: true,
}

var resTypeNames = map[uint16]string{
	ResNullType:              "NULL",
	ResStringPoolType:        "STRING_POOL",
	ResTableType:             "TABLE",
	ResXMLType:               "XML",
	ResXMLStartNamespaceType: "XML_START_NAMESPACE",
	ResXMLEndNamespaceType:   "XML_END_NAMESPACE",
	ResXMLStartElementType:   "XML_START_ELEMENT",
	ResXMLEndElementType:     "XML_END_ELEMENT",
	ResXMLCDataType:          "XML_CDATA",
	ResXMLResourceMapType:    "XML_RESOURCE_MAP",
	ResTablePackageType:      "TABLE_PACKAGE",
	ResTableTypeType:         "TABLE_TYPE",
	ResTableTypeSpecType:     "TABLE_TYPE_SPEC",
	ResTableLibraryType:      "TABLE_LIBRARY",
}

// ResTypeName returns the symbolic name of a resource chunk type.
func ResTypeName(t uint16) string {
	if n, ok := resTypeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("0x%04x", t)
}
