package gridgraph

import "errors"

var (
	// ErrGridNil indicates a nil GridSample was passed to Build.
	ErrGridNil = errors.New("gridgraph: grid is nil")
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)
