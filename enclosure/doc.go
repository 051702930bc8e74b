// Package enclosure classifies grid cells against a closed polygon of grid
// positions (typically a looptrace.Loop) and counts the cells strictly inside.
//
// What
//
//   - Inside: even-odd ray casting for a single position.
//   - CountEnclosed / Interior: classify every cell that is not a polygon
//     vertex and count or list the interior ones.
//
// Crossing rule
//
// A horizontal ray leaves p toward increasing columns. Edge (a, b) counts when
//
//	(a.Row < p.Row) != (b.Row < p.Row)        half-open row test
//	crossing column > p.Col                    strict column test
//
// The half-open row test counts a shared vertex exactly once. Winding
// direction and the choice of first vertex do not matter.
//
// Methods
//
//   - RayCast:  test every edge for every cell.        O(R×C×L)
//   - Scanline: bucket edge crossings per row, sort, and binary-search them.
//     O(R×L log L + R×C×log L)
//
// Rows have no shared mutable state, so WithWorkers classifies them in
// parallel; results do not depend on the method or the worker count.
package enclosure
