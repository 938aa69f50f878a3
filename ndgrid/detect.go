package ndgrid

import (
	"fmt"

	"github.com/katalvlaran/peakfind/maxima"
)

// LocalMaxima finds the local maxima of an n-dimensional array stored
// row-major in data with the given dims.
//
// A cell is a local maximum when it belongs to a plateau (connected set of
// equal values under the footprint) none of whose cells has a strictly
// greater neighbor. Returns a mask with one entry per cell.
//
// Behavior:
//  1. Resolve options; build the footprint from Connectivity unless one was
//     given.
//  2. With AllowBorders, pad the array by one cell on every side with its
//     minimum value; otherwise edge cells are never maxima, and an array
//     with any axis shorter than 3 yields an all-false mask.
//  3. Build the border-flagged buffer, run maxima.Find, convert to a mask
//     and crop the padding away.
//
// Errors: ErrOptionViolation, ErrEmptyShape, ErrBadDimension,
// ErrShapeMismatch, ErrBadFootprint.
//
// Complexity: O(N·k) time, O(N) memory.
func LocalMaxima[T maxima.Number](data []T, dims []int, opts ...Option) ([]bool, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	shape, err := NewShape(dims...)
	if err != nil {
		return nil, err
	}
	if len(data) != shape.Size() {
		return nil, fmt.Errorf("%w: %d values for shape %v", ErrShapeMismatch, len(data), dims)
	}
	fp, err := o.footprint(shape.Ndim())
	if err != nil {
		return nil, err
	}

	if !o.AllowBorders {
		g, err := NewGrid(shape, fp)
		if err != nil {
			return nil, err
		}
		flags := g.BorderFlags()
		maxima.Find(maxima.Slice[T](data), flags, g.Offsets())

		return Mask(flags), nil
	}

	padded := shape.Padded()
	g, err := NewGrid(padded, fp)
	if err != nil {
		return nil, err
	}
	img := pad(data, shape, minValue(data))
	flags := g.BorderFlags()
	maxima.Find(maxima.Slice[T](img), flags, g.Offsets())

	return crop(Mask(flags), shape), nil
}

// LocalMinima finds the local minima of data by running LocalMaxima on an
// order-reversed copy. It accepts the same options and reports the same
// errors.
func LocalMinima[T maxima.Number](data []T, dims []int, opts ...Option) ([]bool, error) {
	return LocalMaxima(invert(data), dims, opts...)
}

// footprint returns the explicit footprint or the one implied by
// Connectivity, checked against ndim.
func (o Options) footprint(ndim int) (Footprint, error) {
	if o.Footprint == nil {
		return Connectivity(ndim, o.Connectivity)
	}
	if o.Footprint.ndim != ndim {
		return Footprint{}, fmt.Errorf("%w: footprint rank %d, array rank %d", ErrBadFootprint, o.Footprint.ndim, ndim)
	}

	return *o.Footprint, nil
}

// minValue returns the smallest value in data. NaN values never compare
// smaller and are skipped unless every value is NaN.
func minValue[T maxima.Number](data []T) T {
	m := data[0]
	for _, v := range data[1:] {
		if v < m || m != m {
			m = v
		}
	}

	return m
}

// invert returns a copy of data with the order of its values reversed:
// v → -v for floating-point types, v → -1-v (bitwise complement) for
// integer types, which never overflows for signed or unsigned kinds.
func invert[T maxima.Number](data []T) []T {
	var zero T
	one := zero + 1
	isFloat := one/(one+1) != zero
	out := make([]T, len(data))
	if isFloat {
		for i, v := range data {
			out[i] = zero - v
		}

		return out
	}
	for i, v := range data {
		out[i] = zero - one - v
	}

	return out
}

// pad copies data of the given shape into the center of a buffer grown by
// one cell on every side; the new cells hold fill.
func pad[T maxima.Number](data []T, shape Shape, fill T) []T {
	padded := shape.Padded()
	out := make([]T, padded.Size())
	for i := range out {
		out[i] = fill
	}
	strides := padded.Strides()
	base := 0
	for _, s := range strides {
		base += s
	}
	coord := make([]int, shape.Ndim())
	for _, v := range data {
		idx := base
		for axis, c := range coord {
			idx += c * strides[axis]
		}
		out[idx] = v
		shape.advance(coord)
	}

	return out
}

// crop extracts the interior of a padded mask, undoing pad for shape.
func crop(mask []bool, shape Shape) []bool {
	strides := shape.Padded().Strides()
	base := 0
	for _, s := range strides {
		base += s
	}
	out := make([]bool, shape.Size())
	coord := make([]int, shape.Ndim())
	for i := range out {
		idx := base
		for axis, c := range coord {
			idx += c * strides[axis]
		}
		out[i] = mask[idx]
		shape.advance(coord)
	}

	return out
}
