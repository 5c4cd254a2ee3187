package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNegativePenalty indicates a cell value below zero.
	ErrNegativePenalty = errors.New("gridgraph: penalties must be non-negative")
	// ErrBadThreshold indicates a PassThreshold below 1, which would make 0 walkable.
	ErrBadThreshold = errors.New("gridgraph: pass threshold must be at least 1")
)
