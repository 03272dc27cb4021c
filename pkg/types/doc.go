// Package types defines the configuration and diagnostic types shared by the
// 9-patch codec, the chunk peeker, and the command-line tools.
//
// Design goals:
//   - Paranoid bounds checking; never panic on malformed input.
//   - Configuration resolved once at process setup and passed explicitly.
//   - Diagnostics that say which check failed and with which values.
//
// This package has no dependencies beyond the standard library.
package types
