package format

// IsAligned4 reports whether every value is a multiple of 4. The check ORs the
// values together so a single mask test covers all of them.
func IsAligned4(vals ...uint32) bool {
	var acc uint32
	for _, v := range vals {
		acc |= v
	}
	return acc&ResAlignmentMask == 0
}
