package ndgrid

import (
	"fmt"

	"github.com/katalvlaran/peakfind/maxima"
)

// NewGrid constructs a Grid for shape and fp, precomputing strides and
// neighbor offsets. The shape is copied.
// Returns the errors of NewShape, or ErrBadFootprint if fp's rank differs
// from the shape's or fp has no neighbors.
// Complexity: O(d + 3^d).
func NewGrid(shape Shape, fp Footprint) (*Grid, error) {
	s, err := NewShape(shape...)
	if err != nil {
		return nil, err
	}
	if fp.ndim != s.Ndim() {
		return nil, fmt.Errorf("%w: footprint rank %d, shape rank %d", ErrBadFootprint, fp.ndim, s.Ndim())
	}
	deltas := fp.Deltas()
	if len(deltas) == 0 {
		return nil, fmt.Errorf("%w: no neighbors", ErrBadFootprint)
	}
	strides := s.Strides()

	return &Grid{
		shape:     s,
		footprint: fp,
		strides:   strides,
		deltas:    deltas,
		offsets:   fp.Offsets(strides),
	}, nil
}

// Shape returns a copy of the grid shape.
func (g *Grid) Shape() Shape {
	return append(Shape(nil), g.shape...)
}

// Size returns the number of cells.
func (g *Grid) Size() int {
	return g.shape.Size()
}

// Strides returns a copy of the row-major strides.
func (g *Grid) Strides() []int {
	return append([]int(nil), g.strides...)
}

// Footprint returns the neighborhood the grid was built with.
func (g *Grid) Footprint() Footprint {
	return g.footprint
}

// Offsets returns the precomputed flat neighbor offsets.
// Should be used in all flat-index traversals. The slice must not be
// modified.
// Complexity: O(1).
func (g *Grid) Offsets() []int {
	return g.offsets
}

// BorderFlags allocates a flag buffer for the grid with every cell on the
// first or last index of any axis flagged maxima.BorderIndex and every other
// cell maxima.NotMaximum.
//
// From any cell not flagged BorderIndex, every offset in Offsets lands
// inside the buffer, since footprints never reach further than one cell
// along any axis. An axis of size 1 or 2 makes every cell a border cell.
// Complexity: O(N·d).
func (g *Grid) BorderFlags() []maxima.Flag {
	flags := make([]maxima.Flag, g.Size())
	coord := make([]int, g.shape.Ndim())
	for i := range flags {
		if g.shape.onEdge(coord) {
			flags[i] = maxima.BorderIndex
		}
		g.shape.advance(coord)
	}

	return flags
}

// CheckBorders verifies that flags has one entry per cell and that every
// edge cell is flagged maxima.BorderIndex.
// Returns ErrShapeMismatch or ErrBorderInvariant.
// Complexity: O(N·d).
func (g *Grid) CheckBorders(flags []maxima.Flag) error {
	if len(flags) != g.Size() {
		return fmt.Errorf("%w: %d flags for %d cells", ErrShapeMismatch, len(flags), g.Size())
	}
	coord := make([]int, g.shape.Ndim())
	for i, f := range flags {
		if f != maxima.BorderIndex && g.shape.onEdge(coord) {
			return fmt.Errorf("%w: cell %v is %s", ErrBorderInvariant, g.shape.Coordinate(i), f)
		}
		g.shape.advance(coord)
	}

	return nil
}

// Mask converts a resolved flag buffer into a boolean mask: true exactly
// where the cell belongs to a local maximum. Border cells map to false.
// Complexity: O(N).
func Mask(flags []maxima.Flag) []bool {
	mask := make([]bool, len(flags))
	for i, f := range flags {
		mask[i] = f == maxima.QueuedMaybeMaximum
	}

	return mask
}

// Indices returns the coordinates of every true cell of mask, in row-major
// order. Returns ErrShapeMismatch if mask does not cover the grid.
// Complexity: O(N·d).
func (g *Grid) Indices(mask []bool) ([][]int, error) {
	if len(mask) != g.Size() {
		return nil, fmt.Errorf("%w: %d mask cells for %d grid cells", ErrShapeMismatch, len(mask), g.Size())
	}
	var out [][]int
	for i, on := range mask {
		if on {
			out = append(out, g.shape.Coordinate(i))
		}
	}

	return out, nil
}
