package pipegrid

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// Grid is a rectangular pipe map. It is immutable once built and safe for
// concurrent readers.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major
	start      Position
}

// Parse builds a Grid from text, one line per row.
// A trailing "\r" on each line and a single trailing newline are ignored.
// Returns ErrEmptyGrid for empty input, *InvalidSymbolError for the first
// unknown character, *DimensionError for the first ragged row, and
// ErrMissingStart/ErrDuplicateStart unless exactly one S is present.
// Complexity: O(R×C) time and memory.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	g := &Grid{rows: len(lines), start: Position{Row: -1, Col: -1}}
	for row, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		col := 0
		for _, r := range line {
			cell, ok := cellForSymbol(r)
			if !ok {
				return nil, &InvalidSymbolError{Row: row, Col: col, Symbol: r}
			}
			if cell.Kind == Start {
				p := Position{Row: row, Col: col}
				if g.start.Row >= 0 {
					return nil, fmt.Errorf("%w: %v and %v", ErrDuplicateStart, g.start, p)
				}
				g.start = p
			}
			g.cells = append(g.cells, cell)
			col++
		}
		if row == 0 {
			if col == 0 {
				return nil, ErrEmptyGrid
			}
			g.cols = col
			g.cells = append(make([]Cell, 0, g.rows*g.cols), g.cells...)
		} else if col != g.cols {
			return nil, &DimensionError{Row: row, Want: g.cols, Got: col}
		}
	}
	if g.start.Row < 0 {
		return nil, ErrMissingStart
	}

	return g, nil
}

// Read consumes r fully and parses it with Parse.
func Read(r io.Reader) (*Grid, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("pipegrid: read: %w", err)
	}
	return Parse(string(b))
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the position of the S cell.
func (g *Grid) Start() Position { return g.start }

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the cell at p. Positions outside the grid read as Ground.
func (g *Grid) At(p Position) Cell {
	if !g.InBounds(p) {
		return Cell{Kind: Ground}
	}
	return g.cells[g.Index(p)]
}

// Index maps p to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// Coordinate converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// Positions yields every position in row-major order.
func (g *Grid) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for i := range g.cells {
			if !yield(g.Coordinate(i)) {
				return
			}
		}
	}
}

// String renders the grid back to its map text, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for i, c := range g.cells {
		if i > 0 && i%g.cols == 0 {
			b.WriteByte('\n')
		}
		b.WriteRune(c.Symbol())
	}
	return b.String()
}
