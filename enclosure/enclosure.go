package enclosure

import (
	"slices"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

// Inside reports whether p lies inside polygon by even-odd ray casting.
// The polygon is closed implicitly (last vertex connects to the first).
// Vertices themselves are not special-cased; callers exclude them.
// Complexity: O(L).
func Inside(p pipegrid.Position, polygon []pipegrid.Position) bool {
	in := false
	n := len(polygon)
	for i := 0; i < n; i++ {
		if crosses(p, polygon[i], polygon[(i+1)%n]) {
			in = !in
		}
	}
	return in
}

// crosses reports whether the ray from p toward increasing columns crosses
// edge (a, b). The crossing column a.Col + (p.Row-a.Row)*(b.Col-a.Col)/(b.Row-a.Row)
// is compared against p.Col without division.
func crosses(p, a, b pipegrid.Position) bool {
	if (a.Row < p.Row) == (b.Row < p.Row) {
		return false
	}
	dr := b.Row - a.Row
	lhs := (p.Col - a.Col) * dr
	rhs := (p.Row - a.Row) * (b.Col - a.Col)
	if dr > 0 {
		return rhs > lhs
	}
	return rhs < lhs
}

// CountEnclosed returns the number of cells of g that are not polygon
// vertices and lie inside polygon.
// Returns ErrGridNil or ErrOptionViolation for invalid input.
func CountEnclosed(g *pipegrid.Grid, polygon []pipegrid.Position, opts ...Option) (int, error) {
	rows, o, err := classify(g, polygon, opts)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, cols := range rows {
		total += len(cols)
	}
	o.Logger.V(1).Info("enclosure counted",
		"method", o.Method.String(),
		"workers", o.Workers,
		"vertices", len(polygon),
		"enclosed", total)
	return total, nil
}

// Interior lists the interior cells of g in row-major order.
func Interior(g *pipegrid.Grid, polygon []pipegrid.Position, opts ...Option) ([]pipegrid.Position, error) {
	rows, _, err := classify(g, polygon, opts)
	if err != nil {
		return nil, err
	}
	var out []pipegrid.Position
	for r, cols := range rows {
		for _, c := range cols {
			out = append(out, pipegrid.Position{Row: r, Col: c})
		}
	}
	return out, nil
}

// rowClassifier returns the interior columns of a single row.
type rowClassifier interface {
	interior(row int) []int
}

// classify validates input, picks a strategy and runs it over every row.
func classify(g *pipegrid.Grid, polygon []pipegrid.Position, opts []Option) ([][]int, Options, error) {
	if g == nil {
		return nil, Options{}, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o, o.err
	}

	onLoop := make([]bool, g.Rows()*g.Cols())
	for _, v := range polygon {
		if g.InBounds(v) {
			onLoop[g.Index(v)] = true
		}
	}
	base := classifier{grid: g, onLoop: onLoop}

	var rc rowClassifier
	switch o.Method {
	case Scanline:
		rc = newScanner(base, polygon)
	default:
		rc = rayCaster{classifier: base, polygon: polygon}
	}

	out := make([][]int, g.Rows())
	if o.Workers <= 1 {
		for r := range out {
			out[r] = rc.interior(r)
		}
		return out, o, nil
	}

	var grp errgroup.Group
	grp.SetLimit(o.Workers)
	for r := range out {
		grp.Go(func() error {
			out[r] = rc.interior(r)
			return nil
		})
	}
	return out, o, grp.Wait()
}

// classifier holds the read-only state shared by both strategies.
type classifier struct {
	grid   *pipegrid.Grid
	onLoop []bool
}

func (c classifier) vertex(row, col int) bool {
	return c.onLoop[row*c.grid.Cols()+col]
}

// rayCaster tests every edge for every cell.
type rayCaster struct {
	classifier
	polygon []pipegrid.Position
}

func (rc rayCaster) interior(row int) []int {
	var cols []int
	for col := 0; col < rc.grid.Cols(); col++ {
		if rc.vertex(row, col) {
			continue
		}
		if Inside(pipegrid.Position{Row: row, Col: col}, rc.polygon) {
			cols = append(cols, col)
		}
	}
	return cols
}

// scanner keeps, for every row, the sorted crossing columns of the edges that
// straddle it under the half-open row test.
type scanner struct {
	classifier
	crossings [][]float64
}

func newScanner(base classifier, polygon []pipegrid.Position) scanner {
	rows := base.grid.Rows()
	crossings := make([][]float64, rows)
	n := len(polygon)
	for i := 0; i < n; i++ {
		a, b := polygon[i], polygon[(i+1)%n]
		if a.Row == b.Row {
			continue
		}
		// (a.Row < r) != (b.Row < r) holds exactly for lo < r <= hi.
		lo, hi := min(a.Row, b.Row), max(a.Row, b.Row)
		for r := max(lo+1, 0); r <= min(hi, rows-1); r++ {
			x := float64(a.Col) + float64((r-a.Row)*(b.Col-a.Col))/float64(b.Row-a.Row)
			crossings[r] = append(crossings[r], x)
		}
	}
	for _, xs := range crossings {
		slices.Sort(xs)
	}
	return scanner{classifier: base, crossings: crossings}
}

func (s scanner) interior(row int) []int {
	xs := s.crossings[row]
	if len(xs) == 0 {
		return nil
	}
	var cols []int
	for col := 0; col < s.grid.Cols(); col++ {
		if s.vertex(row, col) {
			continue
		}
		c := float64(col)
		// crossings strictly right of col
		right := len(xs) - sort.Search(len(xs), func(i int) bool { return xs[i] > c })
		if right%2 == 1 {
			cols = append(cols, col)
		}
	}
	return cols
}
