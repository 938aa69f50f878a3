package maxima

import (
	"fmt"

	"github.com/katalvlaran/peakfind/rqueue"
)

// Find resolves flags in place so that every non-border cell of img is
// QueuedMaybeMaximum when it belongs to a local maximum and NotMaximum
// otherwise. BorderIndex cells are left untouched.
//
// Preconditions (not checked; see FindChecked):
//   - img.Len() == len(flags);
//   - flags holds BorderIndex on every cell at the first or last index of
//     any dimension and NotMaximum elsewhere;
//   - offsets is non-empty, excludes 0, and from any non-border cell every
//     offset lands inside the buffer.
//
// Steps:
//  1. Mark candidates: runs along the fastest axis when offsets contain
//     both +1 and -1, every non-border cell otherwise.
//  2. Scan left to right; each cell still MaybeMaximum seeds one plateau
//     fill. Cells resolved by an earlier fill are skipped, so each plateau
//     is filled exactly once.
//
// Complexity: O(N·k) time, O(P) extra memory.
func Find[T Number](img Image[T], flags []Flag, offsets []int) {
	if hasFastAxis(offsets) {
		markRuns(img, flags)
	} else {
		markAll(flags)
	}

	f := filler[T]{
		img:     img,
		flags:   flags,
		offsets: offsets,
		queue:   rqueue.New(0),
	}
	for i := range flags {
		if flags[i] == MaybeMaximum {
			f.fill(i)
		}
	}
}

// FindChecked validates the preconditions of Find and then runs it.
// On error flags is left unmodified.
//
// Complexity: O(N·k) for the checks in addition to Find itself.
func FindChecked[T Number](img Image[T], flags []Flag, offsets []int) error {
	if err := validate(img, flags, offsets); err != nil {
		return err
	}
	Find(img, flags, offsets)

	return nil
}

// validate checks lengths, the offset table, the initial flag states, and
// that no offset escapes the buffer from a non-border cell.
func validate[T Number](img Image[T], flags []Flag, offsets []int) error {
	n := len(flags)
	if img.Len() != n {
		return fmt.Errorf("%w: image %d, flags %d", ErrLengthMismatch, img.Len(), n)
	}
	if len(offsets) == 0 {
		return ErrNoOffsets
	}
	for _, o := range offsets {
		if o == 0 {
			return ErrZeroOffset
		}
	}
	for i, f := range flags {
		if f != NotMaximum && f != BorderIndex {
			return fmt.Errorf("%w: cell %d is %s", ErrBadFlag, i, f)
		}
	}
	if n == 0 {
		return nil
	}
	if flags[0] != BorderIndex || flags[n-1] != BorderIndex {
		return fmt.Errorf("%w: first and last cells must be border", ErrBorderInvariant)
	}
	for i, f := range flags {
		if f == BorderIndex {
			continue
		}
		for _, o := range offsets {
			if j := i + o; j < 0 || j >= n {
				return fmt.Errorf("%w: cell %d with offset %d reaches %d", ErrBorderInvariant, i, o, j)
			}
		}
	}

	return nil
}
