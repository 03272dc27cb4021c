package buf

// View is a bounds-checked position inside a larger buffer. It plays the role
// of a raw pointer into mapped memory: callers ask whether it is valid, whether
// a structure of n bytes fits at it, and how far it is from another position in
// the same buffer. A View never hands out bytes outside its backing slice.
//
// The zero View is invalid.
type View struct {
	b   []byte
	off int
}

// NewView returns a View at off within b. Out-of-range offsets produce a View
// that reports !Valid() rather than panicking.
func NewView(b []byte, off int) View {
	return View{b: b, off: off}
}

// Valid reports whether the view points at an addressable byte of its buffer.
func (v View) Valid() bool {
	return v.b != nil && v.off >= 0 && v.off < len(v.b)
}

// Offset returns the position of the view within its buffer.
func (v View) Offset() int { return v.off }

// Remaining returns the number of bytes between the view and the end of the
// buffer, or 0 for an invalid view.
func (v View) Remaining() int {
	if !v.Valid() {
		return 0
	}
	return len(v.b) - v.off
}

// Fits reports whether n bytes can be read at the view.
func (v View) Fits(n int) bool {
	return v.Valid() && Has(v.b, v.off, n)
}

// Bytes reinterprets the view as an n-byte record. It only succeeds when the
// whole record lies inside the buffer.
func (v View) Bytes(n int) ([]byte, bool) {
	if !v.Valid() {
		return nil, false
	}
	return Slice(v.b, v.off, n)
}

// Diff returns end - v.Offset(): the number of bytes from the view up to the
// buffer position end.
func (v View) Diff(end int) int {
	return end - v.off
}

// Add returns a view advanced by n bytes. The result may be invalid.
func (v View) Add(n int) View {
	off, ok := AddOverflowSafe(v.off, n)
	if !ok {
		return View{}
	}
	return View{b: v.b, off: off}
}
