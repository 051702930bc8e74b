package pipegrid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

const squareMap = `.....
.S-7.
.|.|.
.L-J.
.....`

const windingMap = `..F7.
.FJ|.
SJ.L7
|F--J
LJ...`

//----------------------------------------------------------------------------//
// Parse Tests
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects every malformed input with the
// matching sentinel.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		err  error
	}{
		{"Empty", "", pipegrid.ErrEmptyGrid},
		{"OnlyNewline", "\n", pipegrid.ErrEmptyGrid},
		{"InvalidSymbol", "S.X\n...", pipegrid.ErrInvalidSymbol},
		{"Ragged", "S..\n..", pipegrid.ErrDimension},
		{"RaggedLonger", "S.\n...", pipegrid.ErrDimension},
		{"BlankMiddleRow", "S.\n\n..", pipegrid.ErrDimension},
		{"NoStart", "F7\nLJ", pipegrid.ErrMissingStart},
		{"TwoStarts", "S-S", pipegrid.ErrDuplicateStart},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := pipegrid.Parse(tc.text)
			if !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.text, err, tc.err)
			}
			if g != nil {
				t.Errorf("Parse(%q) returned a grid alongside an error", tc.text)
			}
		})
	}
}

// TestParse_InvalidSymbolDetail checks that the first offender is reported.
func TestParse_InvalidSymbolDetail(t *testing.T) {
	_, err := pipegrid.Parse("S-7\n|#|\nL-x")

	var symErr *pipegrid.InvalidSymbolError
	require.ErrorAs(t, err, &symErr)
	require.Equal(t, 1, symErr.Row)
	require.Equal(t, 1, symErr.Col)
	require.Equal(t, '#', symErr.Symbol)
}

// TestParse_DimensionDetail checks the reported row and lengths.
func TestParse_DimensionDetail(t *testing.T) {
	_, err := pipegrid.Parse("S-7\n|.|\nL-J-")

	var dimErr *pipegrid.DimensionError
	require.ErrorAs(t, err, &dimErr)
	require.Equal(t, pipegrid.DimensionError{Row: 2, Want: 3, Got: 4}, *dimErr)
}

// TestParse_Cells mirrors the canonical winding map and checks cell mapping.
func TestParse_Cells(t *testing.T) {
	g, err := pipegrid.Parse(windingMap)
	require.NoError(t, err)

	require.Equal(t, 5, g.Rows())
	require.Equal(t, 5, g.Cols())
	require.Equal(t, pipegrid.Position{Row: 2, Col: 0}, g.Start())

	cases := []struct {
		p    pipegrid.Position
		want pipegrid.Cell
	}{
		{pipegrid.Position{Row: 0, Col: 0}, pipegrid.Cell{Kind: pipegrid.Ground}},
		{pipegrid.Position{Row: 0, Col: 2}, pipegrid.PipeCell(pipegrid.SouthEast)},
		{pipegrid.Position{Row: 0, Col: 3}, pipegrid.PipeCell(pipegrid.SouthWest)},
		{pipegrid.Position{Row: 1, Col: 3}, pipegrid.PipeCell(pipegrid.NorthSouth)},
		{pipegrid.Position{Row: 2, Col: 1}, pipegrid.PipeCell(pipegrid.NorthWest)},
		{pipegrid.Position{Row: 2, Col: 3}, pipegrid.PipeCell(pipegrid.NorthEast)},
		{pipegrid.Position{Row: 3, Col: 2}, pipegrid.PipeCell(pipegrid.EastWest)},
		{pipegrid.Position{Row: 4, Col: 1}, pipegrid.PipeCell(pipegrid.NorthWest)},
		{pipegrid.Position{Row: 2, Col: 0}, pipegrid.Cell{Kind: pipegrid.Start}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, g.At(tc.p), "cell at %v", tc.p)
	}
}

// TestParse_LineEndings accepts CRLF input and a trailing newline.
func TestParse_LineEndings(t *testing.T) {
	g, err := pipegrid.Parse("S-7\r\n|.|\r\nL-J\r\n")
	require.NoError(t, err)
	require.Equal(t, 3, g.Rows())
	require.Equal(t, 3, g.Cols())
	require.Equal(t, pipegrid.Position{}, g.Start())
	require.Equal(t, "S-7\n|.|\nL-J", g.String())
}

// TestRead parses from an io.Reader.
func TestRead(t *testing.T) {
	g, err := pipegrid.Read(strings.NewReader(squareMap + "\n"))
	require.NoError(t, err)
	require.Equal(t, squareMap, g.String())
	require.Equal(t, pipegrid.Position{Row: 1, Col: 1}, g.Start())
}

//----------------------------------------------------------------------------//
// Accessor Tests
//----------------------------------------------------------------------------//

// TestInBounds checks InBounds and the Ground fallback of At.
func TestInBounds(t *testing.T) {
	g, err := pipegrid.Parse("S-7\n|.|")
	require.NoError(t, err)

	for _, p := range []pipegrid.Position{{0, 0}, {1, 2}, {0, 2}} {
		require.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []pipegrid.Position{{-1, 0}, {0, 3}, {2, 0}, {1, -1}} {
		require.False(t, g.InBounds(p), "InBounds(%v)", p)
		require.Equal(t, pipegrid.Ground, g.At(p).Kind)
	}
}

// TestPositions walks the grid row-major and checks Index/Coordinate agree.
func TestPositions(t *testing.T) {
	g, err := pipegrid.Parse("S-7\n|.|")
	require.NoError(t, err)

	var got []pipegrid.Position
	for p := range g.Positions() {
		require.Equal(t, p, g.Coordinate(g.Index(p)))
		got = append(got, p)
	}
	require.Equal(t, []pipegrid.Position{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}, got)

	// early break must stop iteration
	n := 0
	for range g.Positions() {
		n++
		if n == 2 {
			break
		}
	}
	require.Equal(t, 2, n)
}
