// Package looptrace walks the single pipe loop of a pipegrid.Grid with two
// pointers leaving the start cell in opposite directions.
//
// What
//
//   - Distance: steps until the pointers meet, i.e. the graph distance from the
//     start to the farthest point on the loop (ceil(len(Loop)/2)).
//   - Farthest: the position where the pointers meet.
//   - Loop:     every loop cell in cyclic adjacency order, starting at the start
//     cell. Usable directly as a polygon by package enclosure.
//
// How
//
//	pointer0, pointer1 := start's two connections;  previous0 = previous1 = start
//	repeat:
//	    each pointer moves to whichever connection is not its previous cell
//	    distance++
//	until pointer0 == pointer1
//
// pointer0's path forms the first half of Loop; pointer1's path, reversed,
// closes it back to the start.
//
// Errors
//
//   - pipegrid.ErrTopology: the start does not link to exactly two cells, a
//     pointer finds no way forward, a pointer re-enters the start, or the walk
//     exceeds the step limit. Failures are wrapped with the step number.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrGridNil: a nil grid was passed.
//
// Complexity: O(L) time and memory, L = loop length. The walk is inherently
// sequential.
package looptrace
