// Package pipegrid parses a pipe-maze map into an immutable Grid and answers
// connectivity questions about it.
//
// What:
//
//   - Parse/Read turn text into a rectangular Grid of Cells plus the start position.
//   - Six pipe Shapes ( | - L J 7 F ), each exposing exactly two connector Directions.
//   - Ground ( . ) has no connectors; Start ( S ) is a wildcard whose connectors are
//     discovered by probing its four neighbors.
//   - ConnectionAt applies the directional-acceptance rule: stepping East into a pipe
//     requires that pipe to have a West connector, and so on.
//   - Connections returns the two neighbors a cell links to.
//
// Symbols:
//
//	.  Ground        |  NorthSouth    -  EastWest
//	S  Start         L  NorthEast     J  NorthWest
//	                 7  SouthWest     F  SouthEast
//
// Complexity:
//
//   - Parse:        O(R×C) time and memory.
//   - ConnectionAt: O(1).
//   - Connections:  O(1) (at most four probes for the start cell).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrInvalidSymbol:  a character outside ". S | - L J 7 F" (see *InvalidSymbolError).
//   - ErrDimension:      rows of differing lengths (see *DimensionError).
//   - ErrMissingStart:   no S cell.
//   - ErrDuplicateStart: more than one S cell.
//   - ErrTopology:       connectivity violates the single-loop guarantee (see *TopologyError).
package pipegrid
