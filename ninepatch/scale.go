package ninepatch

import (
	"math"

	"github.com/mgood7123/android-9-patch/internal/format"
	"github.com/mgood7123/android-9-patch/pkg/types"
)

// ScaleDivs rescales divs in place by scale and keeps the two guarantees the
// renderer depends on: the result is strictly increasing and its last entry is
// at most maxValue.
//
// Each entry is rounded half up (v*scale + 0.5, truncated). An entry that does
// not land above the previous output is moved to previous+1, so runs of equal
// rounded values become a staircase. If the last entry then exceeds maxValue,
// entries are walked right to left and pinned to the highest still-available
// value, stopping as soon as the left neighbour is already below. This squeezes
// the outermost segments first.
func ScaleDivs(divs []int32, scale float32, maxValue int32) {
	if len(divs) == 0 {
		return
	}

	saturated := false
	for i := range divs {
		divs[i] = roundHalfUp(float32(divs[i]) * scale)
		if i > 0 && divs[i] <= divs[i-1] {
			// avoid collisions
			divs[i] = addSat(divs[i-1], 1)
			saturated = saturated || divs[i] == divs[i-1]
		}
	}

	// a bump stuck at the int32 ceiling leaves equal neighbours, which the
	// clamp pass below separates
	last := len(divs) - 1
	if divs[last] <= maxValue && !saturated {
		return
	}
	highest := maxValue
	for i := last; i >= 0; i-- {
		divs[i] = highest
		if i > 0 && divs[i] <= divs[i-1] {
			// keep shifting
			highest = addSat(divs[i], -1)
			continue
		}
		break
	}
}

// ScalePadding rounds p*scale half up. No clamping is applied.
func ScalePadding(p int32, scale float32) int32 {
	return roundHalfUp(float32(p) * scale)
}

// NearlyEqual reports whether a and b differ by at most tol.
func NearlyEqual(a, b, tol float32) bool {
	return float32(math.Abs(float64(a-b))) <= tol
}

// Scale rescales the chunk for an image resized by scaleX and scaleY to
// scaledWidth x scaledHeight pixels, using the default tolerance. See
// ScaleWithin.
func (c *Chunk) Scale(scaleX, scaleY float32, scaledWidth, scaledHeight int) {
	c.ScaleWithin(types.NearlyZero, scaleX, scaleY, scaledWidth, scaledHeight)
}

// ScaleWithin rescales padding and divs in place. The chunk must be in host
// order.
//
// Each axis is handled on its own. An axis whose factor is within tol of 1.0
// is left untouched so an explicit no-op resize adds no rounding drift.
// Otherwise that axis's two padding values are rounded with ScalePadding and
// its divs are scaled with ScaleDivs, bounded by the scaled dimension minus
// one so the last segment never has zero size.
//
// A nil chunk is a silent no-op.
func (c *Chunk) ScaleWithin(tol, scaleX, scaleY float32, scaledWidth, scaledHeight int) {
	if !c.present() {
		return
	}
	p := c.Padding()

	if !NearlyEqual(scaleX, 1, tol) {
		p.Left = ScalePadding(p.Left, scaleX)
		p.Right = ScalePadding(p.Right, scaleX)
		c.scaleAxis(c.xDivBytes(), scaleX, scaledWidth)
	}
	if !NearlyEqual(scaleY, 1, tol) {
		p.Top = ScalePadding(p.Top, scaleY)
		p.Bottom = ScalePadding(p.Bottom, scaleY)
		c.scaleAxis(c.yDivBytes(), scaleY, scaledHeight)
	}

	c.SetPadding(p)
}

func (c *Chunk) scaleAxis(raw []byte, scale float32, dimension int) {
	divs := readI32s(raw)
	if len(divs) == 0 {
		return
	}
	ScaleDivs(divs, scale, clampI32(int64(dimension)-1))
	for i, v := range divs {
		format.PutI32(raw, i*format.NPEntrySize, v)
	}
}

// roundHalfUp truncates v+0.5 toward zero, saturating at the int32 range
// instead of producing an implementation-defined conversion.
func roundHalfUp(v float32) int32 {
	r := float64(v + 0.5)
	switch {
	case math.IsNaN(r):
		return 0
	case r >= math.MaxInt32:
		return math.MaxInt32
	case r <= math.MinInt32:
		return math.MinInt32
	}
	return int32(r)
}

func addSat(v, d int32) int32 {
	return clampI32(int64(v) + int64(d))
}

func clampI32(v int64) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	}
	return int32(v)
}
