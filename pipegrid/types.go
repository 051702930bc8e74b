package pipegrid

import "fmt"

// Direction is a unit step on the grid along a single axis.
// It is used for connector lookups only and never stored in a Grid.
type Direction struct {
	DRow, DCol int
}

var (
	North = Direction{DRow: -1}
	South = Direction{DRow: +1}
	East  = Direction{DCol: +1}
	West  = Direction{DCol: -1}
)

// probeOrder is the order in which the start cell's neighbors are probed.
var probeOrder = [4]Direction{East, South, North, West}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	return Direction{DRow: -d.DRow, DCol: -d.DCol}
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case South:
		return "S"
	case East:
		return "E"
	case West:
		return "W"
	}
	return fmt.Sprintf("(%d,%d)", d.DRow, d.DCol)
}

// Position is a (row, column) pair. It doubles as a grid index and as a
// polygon vertex.
type Position struct {
	Row, Col int
}

// Add returns the position one step away in direction d.
func (p Position) Add(d Direction) Position {
	return Position{Row: p.Row + d.DRow, Col: p.Col + d.DCol}
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Shape is one of the six pipe segments.
type Shape uint8

const (
	NorthSouth Shape = iota // |
	EastWest                // -
	NorthEast               // L
	NorthWest               // J
	SouthWest               // 7
	SouthEast               // F
)

// shapeTable holds the connector pair and symbol of every Shape.
var shapeTable = [...]struct {
	connectors [2]Direction
	symbol     rune
	name       string
}{
	NorthSouth: {[2]Direction{South, North}, '|', "NorthSouth"},
	EastWest:   {[2]Direction{West, East}, '-', "EastWest"},
	NorthEast:  {[2]Direction{North, East}, 'L', "NorthEast"},
	NorthWest:  {[2]Direction{North, West}, 'J', "NorthWest"},
	SouthWest:  {[2]Direction{West, South}, '7', "SouthWest"},
	SouthEast:  {[2]Direction{East, South}, 'F', "SouthEast"},
}

// Shapes lists every Shape in declaration order.
var Shapes = [...]Shape{NorthSouth, EastWest, NorthEast, NorthWest, SouthWest, SouthEast}

// Connectors returns the two directions the shape links to.
func (s Shape) Connectors() [2]Direction {
	return shapeTable[s].connectors
}

// HasConnector reports whether the shape links toward d.
func (s Shape) HasConnector(d Direction) bool {
	c := shapeTable[s].connectors
	return c[0] == d || c[1] == d
}

// Accepts reports whether a step moving in direction d may enter a cell of
// this shape, i.e. whether the shape has a connector pointing back at d.Opposite().
func (s Shape) Accepts(d Direction) bool {
	return s.HasConnector(d.Opposite())
}

// Symbol returns the map character of the shape.
func (s Shape) Symbol() rune {
	return shapeTable[s].symbol
}

// String implements fmt.Stringer.
func (s Shape) String() string {
	if int(s) >= len(shapeTable) {
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
	return shapeTable[s].name
}

// ShapeFor returns the shape whose connectors are exactly {a, b}, in either order.
func ShapeFor(a, b Direction) (Shape, bool) {
	for _, s := range Shapes {
		if s.HasConnector(a) && s.HasConnector(b) && a != b {
			return s, true
		}
	}
	return 0, false
}

// Kind discriminates the three cell variants.
type Kind uint8

const (
	// Ground has no connectors.
	Ground Kind = iota
	// Start has an unknown shape; its connectors are discovered by probing.
	Start
	// Pipe has the two connectors of its Shape.
	Pipe
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Ground:
		return "Ground"
	case Start:
		return "Start"
	case Pipe:
		return "Pipe"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Cell is a single grid cell. Shape is meaningful only when Kind == Pipe.
type Cell struct {
	Kind  Kind
	Shape Shape
}

// PipeCell returns a Pipe cell of shape s.
func PipeCell(s Shape) Cell {
	return Cell{Kind: Pipe, Shape: s}
}

// Symbol returns the map character of the cell.
func (c Cell) Symbol() rune {
	switch c.Kind {
	case Start:
		return 'S'
	case Pipe:
		return c.Shape.Symbol()
	}
	return '.'
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	if c.Kind == Pipe {
		return "Pipe(" + c.Shape.String() + ")"
	}
	return c.Kind.String()
}

// cellForSymbol maps a map character to its Cell.
func cellForSymbol(r rune) (Cell, bool) {
	switch r {
	case '.':
		return Cell{Kind: Ground}, true
	case 'S':
		return Cell{Kind: Start}, true
	}
	for _, s := range Shapes {
		if s.Symbol() == r {
			return PipeCell(s), true
		}
	}
	return Cell{}, false
}
