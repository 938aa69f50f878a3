package ndgrid

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// NewShape validates dims and returns them as a Shape.
// Returns ErrEmptyShape for no dimensions and ErrBadDimension for any
// dimension below 1 or when the total cell count does not fit in an int.
func NewShape(dims ...int) (Shape, error) {
	if len(dims) == 0 {
		return nil, ErrEmptyShape
	}
	size := 1
	for axis, d := range dims {
		if d < 1 {
			return nil, fmt.Errorf("%w: axis %d has size %d", ErrBadDimension, axis, d)
		}
		if size > math.MaxInt/d {
			return nil, fmt.Errorf("%w: cell count overflows at axis %d", ErrBadDimension, axis)
		}
		size *= d
	}

	return append(Shape(nil), dims...), nil
}

// Ndim returns the number of dimensions.
func (s Shape) Ndim() int {
	return len(s)
}

// Size returns the number of cells. Shapes built by NewShape never overflow.
// Complexity: O(d).
func (s Shape) Size() int {
	return lo.Reduce(s, func(acc, d int, _ int) int { return acc * d }, 1)
}

// Strides returns row-major element strides; the last axis has stride 1.
// Complexity: O(d).
func (s Shape) Strides() []int {
	strides := make([]int, len(s))
	step := 1
	for axis := len(s) - 1; axis >= 0; axis-- {
		strides[axis] = step
		step *= s[axis]
	}

	return strides
}

// Padded returns the shape grown by one cell on both sides of every axis.
func (s Shape) Padded() Shape {
	return lo.Map(s, func(d int, _ int) int { return d + 2 })
}

// InBounds reports whether coord lies within the shape.
// Complexity: O(d).
func (s Shape) InBounds(coord []int) bool {
	if len(coord) != len(s) {
		return false
	}
	for axis, c := range coord {
		if c < 0 || c >= s[axis] {
			return false
		}
	}

	return true
}

// Index maps coord to its row-major flat index. coord must be in bounds.
// Complexity: O(d).
func (s Shape) Index(coord []int) int {
	idx := 0
	for axis, c := range coord {
		idx = idx*s[axis] + c
	}

	return idx
}

// Coordinate converts a row-major flat index back to coordinates.
// Complexity: O(d).
func (s Shape) Coordinate(idx int) []int {
	coord := make([]int, len(s))
	s.coordinateInto(idx, coord)

	return coord
}

// coordinateInto writes the coordinates of idx into coord without
// allocating.
func (s Shape) coordinateInto(idx int, coord []int) {
	for axis := len(s) - 1; axis >= 0; axis-- {
		coord[axis] = idx % s[axis]
		idx /= s[axis]
	}
}

// onEdge reports whether coord lies on the first or last index of any axis.
func (s Shape) onEdge(coord []int) bool {
	for axis, c := range coord {
		if c == 0 || c == s[axis]-1 {
			return true
		}
	}

	return false
}

// advance steps coord to the next row-major position, like an odometer.
func (s Shape) advance(coord []int) {
	for axis := len(s) - 1; axis >= 0; axis-- {
		coord[axis]++
		if coord[axis] < s[axis] {
			return
		}
		coord[axis] = 0
	}
}
