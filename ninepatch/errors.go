package ninepatch

import "github.com/mgood7123/android-9-patch/internal/format"

// Errors returned by this package. Test with errors.Is.
var (
	ErrTruncated      = format.ErrTruncated
	ErrLengthMismatch = format.ErrLengthMismatch
	ErrMalformed      = format.ErrMalformed
)
