package ndgrid

import (
	"fmt"

	"github.com/samber/lo"
)

// MaxRank is the largest footprint rank supported; a footprint stores 3^ndim
// entries.
const MaxRank = 16

// NewFootprint builds a footprint of rank ndim from a row-major mask of
// length 3^ndim. The center entry is ignored.
// Returns ErrBadFootprint when ndim is outside [1, MaxRank], the mask has
// the wrong length, or no neighbor is set.
func NewFootprint(ndim int, mask []bool) (Footprint, error) {
	if ndim < 1 || ndim > MaxRank {
		return Footprint{}, fmt.Errorf("%w: rank %d", ErrBadFootprint, ndim)
	}
	if want := pow3(ndim); len(mask) != want {
		return Footprint{}, fmt.Errorf("%w: mask has %d entries, want %d", ErrBadFootprint, len(mask), want)
	}
	fp := Footprint{ndim: ndim, mask: append([]bool(nil), mask...)}
	if len(fp.Deltas()) == 0 {
		return Footprint{}, fmt.Errorf("%w: no neighbors", ErrBadFootprint)
	}

	return fp, nil
}

// Connectivity returns the footprint of rank ndim whose neighbors differ from
// the center in at most k coordinates. k == 0 or k > ndim yields full
// connectivity. Returns ErrBadFootprint for ndim outside [1, MaxRank] and
// ErrOptionViolation for negative k.
func Connectivity(ndim, k int) (Footprint, error) {
	if ndim < 1 || ndim > MaxRank {
		return Footprint{}, fmt.Errorf("%w: rank %d", ErrBadFootprint, ndim)
	}
	if k < 0 {
		return Footprint{}, fmt.Errorf("%w: connectivity cannot be negative (%d)", ErrOptionViolation, k)
	}
	if k == 0 || k > ndim {
		k = ndim
	}
	cube := Shape(lo.Times(ndim, func(int) int { return 3 }))
	mask := make([]bool, pow3(ndim))
	coord := make([]int, ndim)
	for i := range mask {
		changed := lo.CountBy(coord, func(c int) bool { return c != 1 })
		mask[i] = changed >= 1 && changed <= k
		cube.advance(coord)
	}

	return Footprint{ndim: ndim, mask: mask}, nil
}

// Ndim returns the rank of the footprint.
func (fp Footprint) Ndim() int {
	return fp.ndim
}

// Deltas returns the coordinate delta (each component in {-1, 0, 1}) of every
// neighbor, in row-major footprint order.
func (fp Footprint) Deltas() [][]int {
	var deltas [][]int
	coord := make([]int, fp.ndim)
	cube := Shape(lo.Times(fp.ndim, func(int) int { return 3 }))
	for _, on := range fp.mask {
		d := lo.Map(coord, func(c int, _ int) int { return c - 1 })
		if on && lo.SomeBy(d, func(c int) bool { return c != 0 }) {
			deltas = append(deltas, d)
		}
		cube.advance(coord)
	}

	return deltas
}

// Offsets returns the flat index delta of every neighbor for the given
// strides, parallel to Deltas.
func (fp Footprint) Offsets(strides []int) []int {
	return lo.Map(fp.Deltas(), func(d []int, _ int) int {
		off := 0
		for axis, c := range d {
			off += c * strides[axis]
		}

		return off
	})
}

// pow3 returns 3^n.
func pow3(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 3
	}

	return p
}
