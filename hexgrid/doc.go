// Package hexgrid treats a bounded 2D slice of terrain values as a hex map,
// supplying the predicates the bfs and los packages need and composing them
// into everyday game queries.
//
// What:
//
//   - HexGrid wraps a rectangular [][]int in parallelogram layout:
//     values[r][q] is the cell at axial (q, r).
//   - Cells with value ≥ WallThreshold are walls: impassable and fully opaque.
//     Other values are terrain opaqueness (0 and 1 are clear floor, larger
//     values such as smoke or foliage dim the light passing through).
//   - Cells outside the grid behave as walls.
//   - ConnectedComponents, ShortestPath, NearestMatching, FirstStep and
//     Reachable run a bfs.Traverser over passable cells.
//   - CheapestPath and TravelCosts run Dijkstra with StepCost (the cell
//     value, at least 1) as the price of stepping onto a cell.
//   - Tunnel digs the cheapest connection between two rooms with the same
//     weighted search, pricing every wall crossed at 1 and floor at 0.
//   - FieldOfView runs one of the los variants and keeps, per cell, the
//     highest light any sweep reported.
//
// Why:
//
//   - Game maps: room detection, "walk to the nearest X", fog of war.
//
// Complexity (N = W×H):
//
//   - ConnectedComponents: O(N) time and memory.
//   - ShortestPath, NearestMatching, FirstStep: O(N) worst case.
//   - CheapestPath, TravelCosts: O(N log N).
//   - Tunnel: O(N log N) time, O(N) memory.
//   - FieldOfView: see package los; bounded by the light radius, not by N.
//
// Options:
//
//   - GridOptions.WallThreshold: minimum value considered a wall.
//   - GridOptions.WallOpacity:   opaqueness of walls and off-grid cells.
//   - GridOptions.Logger:        forwarded to the bfs and los runs.
//
// Errors:
//
//   - ErrEmptyGrid:       input grid has no rows or no columns.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrInvalidOptions:  WallThreshold or WallOpacity below 1.
//   - ErrOutOfBounds:     a query coordinate lies outside the grid.
//   - ErrNoPath:          no walk connects the requested cells.
//   - ErrComponentIndex:  Tunnel got a room index out of range.
//   - ErrUnknownVariant:  FieldOfView got a Variant outside the defined set.
package hexgrid
