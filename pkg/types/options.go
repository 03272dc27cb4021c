package types

import (
	"io"
	"log/slog"
)

// NearlyZero is the default tolerance used to decide that a scale factor is
// "exactly" 1.0 and must not be applied: 1/4096.
const NearlyZero float32 = 1.0 / (1 << 12)

// Advice is an access-pattern hint for a mapped region.
type Advice int

const (
	AdviceNormal Advice = iota
	AdviceRandom
	AdviceSequential
	AdviceWillNeed
	AdviceDontNeed
)

func (a Advice) String() string {
	switch a {
	case AdviceNormal:
		return "normal"
	case AdviceRandom:
		return "random"
	case AdviceSequential:
		return "sequential"
	case AdviceWillNeed:
		return "willneed"
	case AdviceDontNeed:
		return "dontneed"
	default:
		return "unknown"
	}
}

// Options carries process-wide settings. Build one with DefaultOptions during
// setup and pass it down; nothing in this module reads globals lazily.
type Options struct {
	// Logger receives validation and decode diagnostics.
	// If nil, output is discarded.
	Logger *slog.Logger

	// PageSize is the mapping granularity used by mmfile.Create. It must be a
	// power of two. Resolve it once with mmfile.PageSize().
	PageSize int

	// ScaleTolerance is how close a scale factor must be to 1.0 for scaling of
	// that axis to be skipped. Zero means NearlyZero.
	ScaleTolerance float32

	// Advice is applied to mapped regions right after they are created.
	Advice Advice
}

// DefaultOptions returns options with a discarding logger, the supplied page
// size, and the default scale tolerance.
func DefaultOptions(pageSize int) Options {
	return Options{
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		PageSize:       pageSize,
		ScaleTolerance: NearlyZero,
		Advice:         AdviceSequential,
	}
}

// Log returns the configured logger, or a discarding one.
func (o Options) Log() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o.Logger
}

// Tolerance returns ScaleTolerance, defaulting to NearlyZero.
func (o Options) Tolerance() float32 {
	if o.ScaleTolerance <= 0 {
		return NearlyZero
	}
	return o.ScaleTolerance
}
