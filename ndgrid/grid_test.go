package ndgrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peakfind/maxima"
	"github.com/katalvlaran/peakfind/ndgrid"
)

const (
	B = maxima.BorderIndex
	N = maxima.NotMaximum
)

// newGrid builds a Grid with connectivity k or fails the test.
func newGrid(t *testing.T, k int, dims ...int) *ndgrid.Grid {
	t.Helper()
	fp, err := ndgrid.Connectivity(len(dims), k)
	require.NoError(t, err)
	g, err := ndgrid.NewGrid(dims, fp)
	require.NoError(t, err)

	return g
}

// TestNewGrid_Errors covers shape and footprint validation.
func TestNewGrid_Errors(t *testing.T) {
	fp2, err := ndgrid.Connectivity(2, 1)
	require.NoError(t, err)

	_, err = ndgrid.NewGrid(ndgrid.Shape{3, 3, 3}, fp2)
	assert.ErrorIs(t, err, ndgrid.ErrBadFootprint)

	_, err = ndgrid.NewGrid(ndgrid.Shape{3, 0}, fp2)
	assert.ErrorIs(t, err, ndgrid.ErrBadDimension)

	_, err = ndgrid.NewGrid(ndgrid.Shape{3, 3}, ndgrid.Footprint{})
	assert.ErrorIs(t, err, ndgrid.ErrBadFootprint)
}

// TestGrid_ShapeIsCopy verifies callers cannot change a built Grid through
// its Shape.
func TestGrid_ShapeIsCopy(t *testing.T) {
	g := newGrid(t, 1, 3, 4)
	s := g.Shape()
	s[0] = 100
	assert.Equal(t, ndgrid.Shape{3, 4}, g.Shape())
	assert.Equal(t, 12, g.Size())
	assert.Len(t, g.BorderFlags(), 12)
}

// TestGrid_BorderFlags checks the sentinel layout of a 3×4 grid.
func TestGrid_BorderFlags(t *testing.T) {
	g := newGrid(t, 0, 3, 4)
	assert.Equal(t, []maxima.Flag{
		B, B, B, B,
		B, N, N, B,
		B, B, B, B,
	}, g.BorderFlags())
	assert.Equal(t, []int{4, 1}, g.Strides())
	assert.Len(t, g.Offsets(), 8)

	// A size-2 axis leaves no interior.
	for _, f := range newGrid(t, 0, 2, 5).BorderFlags() {
		assert.Equal(t, B, f)
	}
}

// TestGrid_BorderFlagsKeepOffsetsInside verifies the sentinel invariant on
// a 3-D grid: every offset from a non-border cell stays in range.
func TestGrid_BorderFlagsKeepOffsetsInside(t *testing.T) {
	g := newGrid(t, 3, 4, 5, 6)
	flags := g.BorderFlags()
	require.NoError(t, g.CheckBorders(flags))
	for i, f := range flags {
		if f == B {
			continue
		}
		for _, o := range g.Offsets() {
			j := i + o
			require.True(t, j >= 0 && j < len(flags), "cell %d offset %d escapes", i, o)
		}
	}
}

// TestGrid_CheckBorders reports missing sentinels and length mismatches.
func TestGrid_CheckBorders(t *testing.T) {
	g := newGrid(t, 1, 3, 3)
	flags := g.BorderFlags()
	flags[5] = N
	assert.ErrorIs(t, g.CheckBorders(flags), ndgrid.ErrBorderInvariant)
	assert.ErrorIs(t, g.CheckBorders(flags[:4]), ndgrid.ErrShapeMismatch)
}

// TestMaskAndIndices converts a resolved flag buffer to a mask and
// coordinates.
func TestMaskAndIndices(t *testing.T) {
	g := newGrid(t, 1, 3, 3)
	flags := []maxima.Flag{B, B, B, B, maxima.QueuedMaybeMaximum, B, B, B, B}
	mask := ndgrid.Mask(flags)
	assert.Equal(t, []bool{false, false, false, false, true, false, false, false, false}, mask)

	idx, err := g.Indices(mask)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 1}}, idx)

	_, err = g.Indices(mask[:3])
	assert.ErrorIs(t, err, ndgrid.ErrShapeMismatch)
}
