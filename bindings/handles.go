// Command bindings builds a C shared library (go build -buildmode=c-shared)
// exposing the 9-patch codec and peeker to non-Go hosts.
//
// Peekers cross the boundary as opaque handles. A host creates one with
// NinePatchPeeker_new, feeds it PNG chunks and releases it with
// NinePatchPeeker_delete, which also clears the host's copy of the handle.
package main

import (
	"log/slog"
	"os"
	"runtime/cgo"

	"github.com/mgood7123/android-9-patch/ninepatch/peeker"
	"github.com/mgood7123/android-9-patch/pkg/types"
)

var opts = func() types.Options {
	o := types.DefaultOptions(0)
	o.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return o
}()

// empty answers queries on invalid handles: no patch, NoPadding, no divs.
var empty = peeker.New(opts)

func newPeeker() uintptr {
	return uintptr(cgo.NewHandle(peeker.New(opts)))
}

// peekerFor resolves a handle. Zero, deleted and foreign handles yield nil.
func peekerFor(h uintptr) (p *peeker.Peeker) {
	if h == 0 {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			// cgo.Handle panics on a handle it never issued
			opts.Log().Warn("invalid peeker handle", "handle", h)
			p = nil
		}
	}()
	p, _ = cgo.Handle(h).Value().(*peeker.Peeker)
	return p
}

// view is peekerFor with empty standing in for an invalid handle.
func view(h uintptr) *peeker.Peeker {
	if p := peekerFor(h); p != nil {
		return p
	}
	return empty
}

// deletePeeker releases the peeker behind *h and zeroes *h so a second delete
// through the same variable is a no-op.
func deletePeeker(h *uintptr) {
	if h == nil || *h == 0 {
		return
	}
	if p := peekerFor(*h); p != nil {
		p.Delete()
		cgo.Handle(*h).Delete()
	}
	*h = 0
}

// padding returns left, top, right, bottom, or all -1 without a patch.
func padding(h uintptr) [4]int32 {
	pad := view(h).Padding()
	return [4]int32{pad.Left, pad.Top, pad.Right, pad.Bottom}
}

// copyInts copies as much of src as fits into dst and returns len(src).
func copyInts[T int32 | uint32](dst, src []T) int {
	copy(dst, src)
	return len(src)
}

func main() {}
