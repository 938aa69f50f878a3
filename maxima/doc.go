// Package maxima detects local maxima in a flattened n-dimensional array by
// plateau flood fill.
//
// What:
//
//   - Find resolves a flag buffer in place: every non-border cell ends up
//     NotMaximum or QueuedMaybeMaximum (part of a local maximum).
//   - A plateau (connected set of equal values under the offset table) is
//     a maximum only if none of its cells touches a strictly greater
//     neighbor and none of its same-value neighbors is a border cell.
//   - When the offset table contains both +1 and -1 a one-dimensional
//     prefilter along the fastest axis narrows the set of seeds; otherwise
//     every non-border cell is a seed.
//
// Border sentinel:
//
//	The caller flags every cell lying on the first or last index of any
//	dimension as BorderIndex. Border cells are compared but never expanded,
//	so walking any offset from a non-border cell stays inside the buffer.
//	This replaces a bounds check per neighbor with a data invariant. A
//	buffer that breaks the invariant may panic with an index out of range;
//	FindChecked verifies it up front.
//
// Complexity:
//
//   - Time:   O(N·k) where k = len(offsets); each cell is queued at most
//     twice (fill and optional undo).
//   - Memory: O(P) for the reused queue, P = largest plateau.
//
// Errors (FindChecked only):
//
//   - ErrLengthMismatch: image and flags differ in length.
//   - ErrNoOffsets, ErrZeroOffset: unusable offset table.
//   - ErrBorderInvariant: an offset escapes the buffer from a non-border cell.
//   - ErrBadFlag: the flag buffer holds something other than NotMaximum or
//     BorderIndex before the call.
//
// The algorithm is sequential. Separate calls on separate buffers share no
// state.
package maxima
