// Package hex provides the axial hexagonal-grid algebra used by the bfs, los
// and hexgrid packages: coordinates, the six directions, 60° angle rotation,
// neighbor enumeration, hex distance and straight-line interpolation.
//
// What
//
//   - Coordinate[I] is an axial (Q, R) cell, generic over any signed integer
//     type. It is comparable and therefore usable as a map key.
//   - Direction enumerates the six unit steps, clockwise from East
//     (pointy-top layout, R grows "down").
//   - Angle rotates a Direction by multiples of 60°.
//   - LineWithEdges interpolates a straight line between two cells and yields,
//     for every step, a Pair of candidate cells. The two candidates differ only
//     where the ideal line runs exactly along a shared cell edge.
//
// Why
//
//	Line drawing on a hex grid is ambiguous whenever the line crosses a vertex
//	or follows an edge. Returning both roundings lets callers pick a
//	tie-breaking policy instead of inheriting an arbitrary one.
//
// Complexity
//
//   - Add, Neighbors, Distance, DirectionTo: O(1).
//   - LineWithEdges: O(n) time and memory, n = Distance(a, b).
//
// Usage
//
//	a := hex.New(0, 0)
//	b := a.Add(hex.East).Add(hex.SouthEast)
//	fmt.Println(a.Distance(b))               // 2
//	fmt.Println(hex.East.Rotate(hex.Left))   // NorthEast
//	for _, p := range a.LineWithEdges(b) { ... }
package hex
