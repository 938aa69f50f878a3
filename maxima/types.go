package maxima

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by FindChecked.
var (
	// ErrLengthMismatch indicates the image and flag buffers differ in length.
	ErrLengthMismatch = errors.New("maxima: image and flags must have equal length")

	// ErrNoOffsets indicates an empty neighbor offset table.
	ErrNoOffsets = errors.New("maxima: neighbor offset table is empty")

	// ErrZeroOffset indicates the offset table contains the zero offset.
	ErrZeroOffset = errors.New("maxima: neighbor offset table contains 0")

	// ErrBorderInvariant indicates a neighbor offset leaves the buffer from a
	// cell that is not flagged BorderIndex.
	ErrBorderInvariant = errors.New("maxima: border sentinel invariant violated")

	// ErrBadFlag indicates an unexpected state in the input flag buffer.
	ErrBadFlag = errors.New("maxima: flag buffer must hold only NotMaximum and BorderIndex")
)

// Flag is the per-cell state of the flag buffer.
type Flag uint8

const (
	// NotMaximum marks a cell that is not part of a local maximum.
	NotMaximum Flag = 0
	// QueuedMaybeMaximum marks a cell under exploration, and after Find a
	// cell that belongs to a local maximum.
	QueuedMaybeMaximum Flag = 1
	// MaybeMaximum marks a candidate pending flood fill.
	MaybeMaximum Flag = 2
	// BorderIndex marks a cell on the edge of some dimension. Find never
	// reassigns it.
	BorderIndex Flag = 3
)

// String returns a short name for f.
func (f Flag) String() string {
	switch f {
	case NotMaximum:
		return "not-maximum"
	case QueuedMaybeMaximum:
		return "maximum"
	case MaybeMaximum:
		return "maybe-maximum"
	case BorderIndex:
		return "border"
	default:
		return fmt.Sprintf("Flag(%d)", uint8(f))
	}
}

// Number is the set of element types Find accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Image is read-only indexed access to a flat image buffer.
//
// At is called only with indices the border invariant keeps in range;
// implementations need not check bounds beyond what the language does.
type Image[T Number] interface {
	Len() int
	At(i int) T
}

// Slice adapts a plain slice to Image.
type Slice[T Number] []T

// Len returns the number of cells.
func (s Slice[T]) Len() int { return len(s) }

// At returns the value at flat index i.
func (s Slice[T]) At(i int) T { return s[i] }
