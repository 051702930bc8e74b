package pipegrid

// ConnectionAt returns the neighbor one step from p in direction d if that
// neighbor accepts a connection from p's side.
//
//   - Off-grid or Ground neighbors yield false.
//   - A Start neighbor is a wildcard and always accepts.
//   - A Pipe neighbor accepts only if its shape has a connector pointing
//     back toward p, e.g. moving East requires a West connector.
//
// Complexity: O(1).
func (g *Grid) ConnectionAt(p Position, d Direction) (Position, bool) {
	to := p.Add(d)
	if !g.InBounds(to) {
		return Position{}, false
	}
	switch c := g.cells[g.Index(to)]; c.Kind {
	case Start:
		return to, true
	case Pipe:
		if c.Shape.Accepts(d) {
			return to, true
		}
	}
	return Position{}, false
}

// Connections returns the two neighbors the cell at p links to.
//
// Pipe cells use their declared connectors; Start cells are probed with
// StartConnections. Ground cells, and pipes with a connector that dangles
// off-grid or into a non-accepting cell, yield a *TopologyError.
func (g *Grid) Connections(p Position) ([2]Position, error) {
	c := g.At(p)
	switch c.Kind {
	case Pipe:
		return g.declaredConnections(p, c.Shape)
	case Start:
		if p == g.start {
			return g.StartConnections()
		}
	}
	return [2]Position{}, &TopologyError{Position: p, Reason: "ground cell has no connections"}
}

// declaredConnections follows both connectors of shape s placed at p.
func (g *Grid) declaredConnections(p Position, s Shape) ([2]Position, error) {
	var out [2]Position
	for i, d := range s.Connectors() {
		to, ok := g.ConnectionAt(p, d)
		if !ok {
			return out, &TopologyError{
				Position: p,
				Found:    i,
				Reason:   s.String() + " connector " + d.String() + " is dangling",
			}
		}
		out[i] = to
	}
	return out, nil
}

// StartConnections probes the start cell's four neighbors (East, South,
// North, West) and returns the two that accept a connection.
// Any count other than two is a *TopologyError.
func (g *Grid) StartConnections() ([2]Position, error) {
	var out [2]Position
	found := 0
	for _, d := range probeOrder {
		to, ok := g.ConnectionAt(g.start, d)
		if !ok {
			continue
		}
		if found < len(out) {
			out[found] = to
		}
		found++
	}
	if found != len(out) {
		return [2]Position{}, &TopologyError{
			Position: g.start,
			Found:    found,
			Reason:   "start cell must connect to exactly two neighbors",
		}
	}
	return out, nil
}

// StartShape infers the pipe shape hidden under the start cell from its
// two probed connections.
func (g *Grid) StartShape() (Shape, error) {
	conns, err := g.StartConnections()
	if err != nil {
		return 0, err
	}
	a := direction(g.start, conns[0])
	b := direction(g.start, conns[1])
	s, ok := ShapeFor(a, b)
	if !ok {
		return 0, &TopologyError{Position: g.start, Found: 2, Reason: "start connections form no pipe shape"}
	}
	return s, nil
}

// direction returns the unit step from a to an orthogonally adjacent b.
func direction(a, b Position) Direction {
	return Direction{DRow: b.Row - a.Row, DCol: b.Col - a.Col}
}
