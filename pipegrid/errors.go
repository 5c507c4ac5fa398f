package pipegrid

import "errors"

var (
	// ErrEmptyGrid indicates the input text holds no cells.
	ErrEmptyGrid = errors.New("pipegrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pipegrid: all rows must have the same length")
	// ErrNoStart indicates the grid has no start marker.
	ErrNoStart = errors.New("pipegrid: no start marker in grid")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("pipegrid: position out of bounds")
)
