package pipegrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for pipegrid operations.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("pipegrid: input grid must have at least one row and one column")
	// ErrInvalidSymbol indicates a character outside the pipe-map alphabet.
	ErrInvalidSymbol = errors.New("pipegrid: invalid symbol")
	// ErrDimension indicates rows of differing lengths.
	ErrDimension = errors.New("pipegrid: all rows must have the same length")
	// ErrMissingStart indicates the map has no start cell.
	ErrMissingStart = errors.New("pipegrid: no start cell")
	// ErrDuplicateStart indicates the map has more than one start cell.
	ErrDuplicateStart = errors.New("pipegrid: more than one start cell")
	// ErrTopology indicates the pipes violate the single simple loop guarantee.
	ErrTopology = errors.New("pipegrid: topology violates single-loop guarantee")
)

// InvalidSymbolError reports the first unparseable character.
type InvalidSymbolError struct {
	Row, Col int
	Symbol   rune
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("%v %q at row %d, column %d", ErrInvalidSymbol, e.Symbol, e.Row, e.Col)
}

func (e *InvalidSymbolError) Unwrap() error { return ErrInvalidSymbol }

// DimensionError reports the first row whose length differs from row 0.
type DimensionError struct {
	Row       int
	Want, Got int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v: row %d has %d columns, want %d", ErrDimension, e.Row, e.Got, e.Want)
}

func (e *DimensionError) Unwrap() error { return ErrDimension }

// TopologyError reports a cell whose connections break the loop guarantee.
// Found is the number of connections discovered, where meaningful.
type TopologyError struct {
	Position Position
	Found    int
	Reason   string
}

func (e *TopologyError) Error() string {
	return fmt.Sprintf("%v: %s at %v", ErrTopology, e.Reason, e.Position)
}

func (e *TopologyError) Unwrap() error { return ErrTopology }
