// Package ndgrid defines shapes, footprints and options for preparing
// n-dimensional arrays.
package ndgrid

// Shape lists the extent of every dimension, slowest-varying first. The last
// dimension is contiguous in memory.
type Shape []int

// Footprint is a 3×…×3 boolean neighborhood centered on a cell. The center
// entry is ignored; every other true entry is a neighbor.
type Footprint struct {
	ndim int
	mask []bool // row-major, len == 3^ndim
}

// Grid is a Shape with a Footprint and the precomputed values the maxima
// core needs. It is immutable once built.
type Grid struct {
	shape     Shape
	footprint Footprint
	strides   []int
	deltas    [][]int // coordinate deltas of every neighbor
	offsets   []int   // flat deltas, parallel to deltas
}

// Options controls LocalMaxima and LocalMinima.
type Options struct {
	// Connectivity selects neighbors that differ from the center in at most
	// this many coordinates. 0 means full connectivity (ndim). Ignored when
	// Footprint is set.
	Connectivity int

	// Footprint, when non-nil, replaces Connectivity.
	Footprint *Footprint

	// AllowBorders lets cells on the edge of the array be maxima by padding
	// the array with its minimum value before detection.
	AllowBorders bool

	// internal error recorded during option parsing
	err error
}

// Option configures Options via functional arguments.
type Option func(*Options)
