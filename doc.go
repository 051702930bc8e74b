// Package pipeloop solves the pipe-maze puzzle: a 2-D map of pipe segments
// holding exactly one closed loop through a start cell S.
//
// 🚰 What does it compute?
//
//	• Distance: steps along the loop from S to the farthest loop cell.
//	• Enclosed: cells not on the loop that lie strictly inside it.
//
// Under the hood the work is split across three subpackages:
//
//	pipegrid/   map parsing, pipe shapes, directional connectivity
//	looptrace/  two-pointer walk producing the distance and the loop polygon
//	enclosure/  even-odd ray casting (brute force or scanline, optionally parallel)
//
// Quick ASCII example:
//
//	.....
//	.S-7.
//	.|.|.
//	.L-J.
//	.....
//
// has Distance 4 (S to the J corner) and Enclosed 1 (the centre cell).
//
//	res, err := pipeloop.Solve(text)
//	fmt.Println(res.Distance, res.Enclosed)
package pipeloop
