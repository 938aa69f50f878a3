package ndgrid_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peakfind/ndgrid"
)

// toMask turns a 0/1 grid into a boolean mask.
func toMask(cells []int) []bool {
	mask := make([]bool, len(cells))
	for i, c := range cells {
		mask[i] = c != 0
	}

	return mask
}

// TestConnectedComponents_Face tests ConnectedComponents on a 3×4 mask with
// face connectivity.
//
// Mask:
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 regions of sizes 4 and 2.
func TestConnectedComponents_Face(t *testing.T) {
	g := newGrid(t, 1, 3, 4)
	comps, err := g.ConnectedComponents(toMask([]int{
		0, 1, 1, 0,
		1, 1, 0, 0,
		0, 0, 1, 1,
	}))
	require.NoError(t, err)
	require.Len(t, comps, 2)

	sizes := []int{len(comps[0]), len(comps[1])}
	sort.Ints(sizes)
	assert.Equal(t, []int{2, 4}, sizes)
	assert.Equal(t, 1, comps[0][0], "components are ordered by first cell")
}

// TestConnectedComponents_Diagonal tests a 5×5 X pattern with full
// connectivity: all 9 cells join through diagonal hops.
func TestConnectedComponents_Diagonal(t *testing.T) {
	mask := toMask([]int{
		1, 0, 0, 0, 1,
		0, 1, 0, 1, 0,
		0, 0, 1, 0, 0,
		0, 1, 0, 1, 0,
		1, 0, 0, 0, 1,
	})
	full := newGrid(t, 2, 5, 5)
	comps, err := full.ConnectedComponents(mask)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Len(t, comps[0], 9)

	face := newGrid(t, 1, 5, 5)
	comps, err = face.ConnectedComponents(mask)
	require.NoError(t, err)
	assert.Len(t, comps, 9, "face connectivity isolates every cell")
}

// TestConnectedComponents_NoWrap ensures regions do not join across the
// end of a row.
func TestConnectedComponents_NoWrap(t *testing.T) {
	g := newGrid(t, 0, 2, 3)
	comps, err := g.ConnectedComponents(toMask([]int{
		0, 0, 1,
		0, 0, 0,
	}))
	require.NoError(t, err)
	assert.Len(t, comps, 1)

	comps, err = g.ConnectedComponents(toMask([]int{
		0, 0, 1,
		1, 0, 0,
	}))
	require.NoError(t, err)
	assert.Len(t, comps, 2)
}

// TestLabel_3D labels two 3-D blobs and checks the background.
func TestLabel_3D(t *testing.T) {
	g := newGrid(t, 1, 2, 2, 3)
	mask := toMask([]int{
		1, 0, 0,
		1, 0, 1,

		0, 0, 0,
		0, 0, 1,
	})
	labels, n, err := g.Label(mask)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{
		1, 0, 0,
		1, 0, 2,

		0, 0, 0,
		0, 0, 2,
	}, labels)

	_, _, err = g.Label(mask[:2])
	assert.ErrorIs(t, err, ndgrid.ErrShapeMismatch)
}

// TestLabel_Empty covers an all-false mask.
func TestLabel_Empty(t *testing.T) {
	g := newGrid(t, 1, 2, 2)
	labels, n, err := g.Label(make([]bool, 4))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, []int{0, 0, 0, 0}, labels)
}
