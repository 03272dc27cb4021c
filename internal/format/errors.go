package format

import "errors"

var (
	// ErrSignatureMismatch indicates a structure had an unexpected magic.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrMalformed indicates a chunk header failed validation and must not be trusted.
	ErrMalformed = errors.New("format: malformed chunk header")
	// ErrLengthMismatch indicates a payload length did not match the size its
	// tag or counts require.
	ErrLengthMismatch = errors.New("format: length mismatch")
)
