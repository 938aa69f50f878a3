// Package rqueue provides a FIFO queue of flat array indices that can
// replay its own push history.
//
// What:
//
//   - Queue is a growable slice with two cursors: a write cursor for Push
//     and a read cursor for Pop.
//   - Restore rewinds the read cursor to the start of the current epoch
//     (everything pushed since the last Clear), so a second drain re-yields
//     every item in original push order, including items already popped.
//
// Why:
//
//   - Flood fills that tentatively mark cells can undo all of their marks
//     by draining the queue a second time, with no separate visited list.
//   - Clear keeps the backing storage, so one Queue serves many fills
//     without reallocating.
//
// Complexity:
//
//   - Push: amortized O(1). Pop, Restore, Clear: O(1).
//   - Memory: O(P) where P is the largest epoch seen.
//
// A Queue is not safe for concurrent use.
package rqueue
