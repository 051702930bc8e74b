package pipegrid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/pipegrid"
)

func pos(r, c int) pipegrid.Position { return pipegrid.Position{Row: r, Col: c} }

// TestConnectionAt covers the directional-acceptance rule on the winding map.
func TestConnectionAt(t *testing.T) {
	g, err := pipegrid.Parse(windingMap)
	require.NoError(t, err)

	cases := []struct {
		name string
		from pipegrid.Position
		dir  pipegrid.Direction
		want pipegrid.Position
		ok   bool
	}{
		{"StartIntoJ", pos(2, 0), pipegrid.East, pos(2, 1), true},
		{"StartIntoGround", pos(2, 0), pipegrid.North, pipegrid.Position{}, false},
		{"StartOffGrid", pos(2, 0), pipegrid.West, pipegrid.Position{}, false},
		{"JIntoF", pos(2, 1), pipegrid.North, pos(1, 1), true},
		{"FInto7", pos(0, 2), pipegrid.East, pos(0, 3), true},
		{"FOffGrid", pos(0, 2), pipegrid.North, pipegrid.Position{}, false},
		{"LInto7", pos(2, 3), pipegrid.East, pos(2, 4), true},
		{"LIntoDashFromAbove", pos(2, 3), pipegrid.South, pipegrid.Position{}, false},
		{"PipeIntoStart", pos(3, 0), pipegrid.North, pos(2, 0), true},
		{"DashIntoGround", pos(3, 2), pipegrid.North, pipegrid.Position{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := g.ConnectionAt(tc.from, tc.dir)
			require.Equal(t, tc.ok, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestConnectionAt_AcceptanceTable checks every shape against every entry
// direction in a 3×3 map with the shape in the middle.
func TestConnectionAt_AcceptanceTable(t *testing.T) {
	accepting := map[pipegrid.Direction][]pipegrid.Shape{
		pipegrid.East:  {pipegrid.EastWest, pipegrid.SouthWest, pipegrid.NorthWest},
		pipegrid.West:  {pipegrid.EastWest, pipegrid.SouthEast, pipegrid.NorthEast},
		pipegrid.South: {pipegrid.NorthSouth, pipegrid.NorthEast, pipegrid.NorthWest},
		pipegrid.North: {pipegrid.NorthSouth, pipegrid.SouthWest, pipegrid.SouthEast},
	}
	for _, s := range pipegrid.Shapes {
		text := "S..\n." + string(s.Symbol()) + ".\n..."
		g, err := pipegrid.Parse(text)
		require.NoError(t, err)
		center := pos(1, 1)

		for d, shapes := range accepting {
			from := pipegrid.Position{Row: center.Row - d.DRow, Col: center.Col - d.DCol}
			_, ok := g.ConnectionAt(from, d)
			assert.Equal(t, contains(shapes, s), ok, "%v entered moving %v", s, d)
		}
	}
}

func contains(shapes []pipegrid.Shape, s pipegrid.Shape) bool {
	for _, x := range shapes {
		if x == s {
			return true
		}
	}
	return false
}

// TestConnections mirrors the canonical winding-map lookups.
func TestConnections(t *testing.T) {
	g, err := pipegrid.Parse(windingMap)
	require.NoError(t, err)

	got, err := g.Connections(pos(2, 0))
	require.NoError(t, err)
	require.Equal(t, [2]pipegrid.Position{pos(2, 1), pos(3, 0)}, got)

	got, err = g.Connections(pos(2, 1))
	require.NoError(t, err)
	require.Equal(t, [2]pipegrid.Position{pos(1, 1), pos(2, 0)}, got)

	got, err = g.Connections(pos(3, 2))
	require.NoError(t, err)
	require.Equal(t, [2]pipegrid.Position{pos(3, 1), pos(3, 3)}, got)
}

// TestConnections_Topology checks the failure paths of both lookups.
func TestConnections_Topology(t *testing.T) {
	t.Run("Ground", func(t *testing.T) {
		g, err := pipegrid.Parse(windingMap)
		require.NoError(t, err)
		_, err = g.Connections(pos(0, 0))
		require.ErrorIs(t, err, pipegrid.ErrTopology)
	})

	t.Run("DanglingConnector", func(t *testing.T) {
		g, err := pipegrid.Parse("-S-")
		require.NoError(t, err)
		_, err = g.Connections(pos(0, 0))

		var topo *pipegrid.TopologyError
		require.ErrorAs(t, err, &topo)
		require.Equal(t, pos(0, 0), topo.Position)
		require.Equal(t, 0, topo.Found)
	})

	t.Run("StartThreeNeighbors", func(t *testing.T) {
		g, err := pipegrid.Parse(".|.\n-S-\n...")
		require.NoError(t, err)
		_, err = g.StartConnections()

		var topo *pipegrid.TopologyError
		require.ErrorAs(t, err, &topo)
		require.Equal(t, 3, topo.Found)
		require.Equal(t, pos(1, 1), topo.Position)
	})

	t.Run("StartOneNeighbor", func(t *testing.T) {
		g, err := pipegrid.Parse("S-")
		require.NoError(t, err)
		_, err = g.Connections(g.Start())

		var topo *pipegrid.TopologyError
		require.ErrorAs(t, err, &topo)
		require.Equal(t, 1, topo.Found)
	})

	t.Run("StartIsolated", func(t *testing.T) {
		g, err := pipegrid.Parse("...\n.S.\n...")
		require.NoError(t, err)
		_, err = g.StartConnections()
		require.ErrorIs(t, err, pipegrid.ErrTopology)
	})
}

// TestStartShape infers the hidden shape under S.
func TestStartShape(t *testing.T) {
	cases := []struct {
		name string
		text string
		want pipegrid.Shape
	}{
		{"Winding", windingMap, pipegrid.SouthEast},
		{"Square", squareMap, pipegrid.SouthEast},
		{"Vertical", "F7\nS|\nLJ", pipegrid.NorthSouth},
		{"Corner", "F-7\n|.|\nL-S", pipegrid.NorthWest},
		{"Horizontal", "F-S-7\nL---J", pipegrid.EastWest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := pipegrid.Parse(tc.text)
			require.NoError(t, err)
			got, err := g.StartShape()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
