// Package ndgrid prepares n-dimensional arrays for the maxima core and turns
// its flag buffer back into usable results.
//
// What:
//
//   - Grid couples a row-major Shape with a 3×…×3 Footprint and precomputes
//     strides and flat neighbor offsets.
//   - BorderFlags builds the flag buffer with every edge cell flagged
//     maxima.BorderIndex, the sentinel the core relies on instead of bounds
//     checks. CheckBorders verifies the same invariant on a caller buffer.
//   - LocalMaxima and LocalMinima run the whole pipeline on a flat slice and
//     return a boolean mask; with AllowBorders the array is padded with its
//     minimum so edge cells may qualify.
//   - Indices, ConnectedComponents and Label convert a mask into
//     coordinates or labeled regions.
//
// Why:
//
//   - Peak picking in images, volumes and spectra.
//   - Seeding watershed or region-growing segmentation.
//   - Terrain analysis: summits and ridges on height maps.
//
// Complexity:
//
//   - BorderFlags, Mask, Indices:   O(N·d), Memory: O(N).
//   - LocalMaxima / LocalMinima:    O(N·k), Memory: O(N) (k = neighbors).
//   - ConnectedComponents / Label:  O(N·k·d), Memory: O(N).
//
// Options:
//
//   - WithConnectivity(k): neighbors differing in at most k coordinates
//     (1 = faces only, 0 or ndim = full).
//   - WithFootprint(fp): an explicit footprint, overriding connectivity.
//   - WithAllowBorders(b): whether cells on the array edge may be maxima.
//
// Errors:
//
//   - ErrEmptyShape, ErrBadDimension: unusable dimensions.
//   - ErrShapeMismatch: data or buffer length differs from the shape size.
//   - ErrBadFootprint: footprint extents are not all 3, it has no neighbor,
//     or it does not match the array rank.
//   - ErrBorderInvariant: an edge cell is not flagged BorderIndex.
//   - ErrOptionViolation: an invalid Option was supplied.
package ndgrid
