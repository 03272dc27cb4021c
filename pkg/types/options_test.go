package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions(4096)
	require.Equal(t, 4096, o.PageSize)
	require.Equal(t, NearlyZero, o.Tolerance())
	require.NotNil(t, o.Log())
	require.Equal(t, AdviceSequential, o.Advice)
}

func TestOptionsZeroValue(t *testing.T) {
	var o Options
	require.NotNil(t, o.Log(), "nil logger must fall back to a discarding logger")
	require.Equal(t, NearlyZero, o.Tolerance())

	o.ScaleTolerance = 0.25
	require.Equal(t, float32(0.25), o.Tolerance())
}

func TestAdviceString(t *testing.T) {
	require.Equal(t, "willneed", AdviceWillNeed.String())
	require.Equal(t, "unknown", Advice(42).String())
}
