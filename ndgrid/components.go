package ndgrid

import (
	"fmt"

	"github.com/katalvlaran/peakfind/rqueue"
)

// ConnectedComponents finds all contiguous regions of true cells in mask,
// according to the grid footprint. Unlike the maxima core it checks bounds
// explicitly, so it works on any mask regardless of border flags.
// Returns a slice of components; each component is a slice of flat indices
// in breadth-first order, and components are ordered by their first cell.
// Returns ErrShapeMismatch if mask does not cover the grid.
//
// Time:   O(N·k·d), where k = number of neighbors.
// Memory: O(N) for visited flags and output.
func (g *Grid) ConnectedComponents(mask []bool) ([][]int, error) {
	total := g.Size()
	if len(mask) != total {
		return nil, fmt.Errorf("%w: %d mask cells for %d grid cells", ErrShapeMismatch, len(mask), total)
	}
	seen := make([]bool, total)
	var comps [][]int
	q := rqueue.New(0)
	cur := make([]int, g.shape.Ndim())
	nb := make([]int, g.shape.Ndim())

	for i0, on := range mask {
		if !on || seen[i0] {
			continue
		}
		// BFS to collect component
		q.Clear()
		q.Push(i0)
		seen[i0] = true
		for u, ok := q.Pop(); ok; u, ok = q.Pop() {
			g.shape.coordinateInto(u, cur)
			for k, d := range g.deltas {
				for axis := range nb {
					nb[axis] = cur[axis] + d[axis]
				}
				if !g.shape.InBounds(nb) {
					continue
				}
				v := u + g.offsets[k]
				if mask[v] && !seen[v] {
					seen[v] = true
					q.Push(v)
				}
			}
		}
		// The queue history is the component in visit order.
		q.Restore()
		comp := make([]int, 0, q.Pushed())
		for u, ok := q.Pop(); ok; u, ok = q.Pop() {
			comp = append(comp, u)
		}
		comps = append(comps, comp)
	}

	return comps, nil
}

// Label assigns each connected component of mask a label 1..n, following
// the order of ConnectedComponents. Background cells are 0.
// Returns the labels, n, and ErrShapeMismatch if mask does not cover the grid.
func (g *Grid) Label(mask []bool) ([]int, int, error) {
	comps, err := g.ConnectedComponents(mask)
	if err != nil {
		return nil, 0, err
	}
	labels := make([]int, len(mask))
	for i, comp := range comps {
		for _, idx := range comp {
			labels[idx] = i + 1
		}
	}

	return labels, len(comps), nil
}
