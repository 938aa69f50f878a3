package ndgrid

import "errors"

var (
	// ErrEmptyShape indicates a shape with no dimensions.
	ErrEmptyShape = errors.New("ndgrid: shape must have at least one dimension")
	// ErrBadDimension indicates a dimension smaller than one.
	ErrBadDimension = errors.New("ndgrid: every dimension must be at least 1")
	// ErrShapeMismatch indicates a buffer whose length is not the shape size.
	ErrShapeMismatch = errors.New("ndgrid: buffer length does not match shape")
	// ErrBadFootprint indicates an unusable footprint.
	ErrBadFootprint = errors.New("ndgrid: footprint must be 3 wide in every dimension with at least one neighbor")
	// ErrBorderInvariant indicates an edge cell missing its BorderIndex flag.
	ErrBorderInvariant = errors.New("ndgrid: edge cell is not flagged as border")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("ndgrid: invalid option supplied")
)
