// Package hexalgo is a small toolkit of grid algorithms for hexagonal maps:
// incremental breadth-first search and two line-of-sight strategies, all
// generic over the integer type of the coordinates.
//
// What is inside:
//
//	• hex:     axial coordinates, directions, angles, distance, lines
//	• bfs:     Traverser, closest-first destinations with backtracking
//	• los:     Shadowcast (angle-recursive) and Trace (line + flood) sweeps
//	• hexgrid: a bounded map of terrain values tying the above together
//
// Why:
//
//   - Game maps: pathing, "nearest X" lookups, fog of war
//   - Callback-driven: the caller owns the world, the algorithms own nothing
//   - Pure Go: no cgo; the only third-party module is testify, for tests
//   - Hooks and slog loggers for inspection without forking
//
// Quick ASCII example (pointy-top, axial q to the East, r to the South-East):
//
//	   NW  NE
//	 W   ()   E
//	   SW  SE
//
// Runnable demos live in examples/:
//
//	go run ./examples
package hexalgo
