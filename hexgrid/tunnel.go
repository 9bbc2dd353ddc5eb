package hexgrid

import (
	"math"
)

// digCost prices a dig: walls cost 1, other in-bounds cells are free.
func (g *HexGrid) digCost(c Coord) (int, bool) {
	switch {
	case !g.InBounds(c):
		return 0, false
	case g.IsWall(c):
		return 1, true
	}
	return 0, true
}

// Tunnel finds the cheapest way to dig from room srcRoom to room dstRoom,
// as numbered by ConnectedComponents(). Every wall cell dug through costs 1
// and passable cells are free; off-grid cells are never entered.
// It returns the cell indices (row-major) from a cell of srcRoom to the
// first cell of dstRoom reached, both inclusive, and the number of walls dug.
// Returns ErrComponentIndex for a bad room index.
//
// Complexity: O(N log N) with N = W×H.
func (g *HexGrid) Tunnel(srcRoom, dstRoom int) (path []int, cost int, err error) {
	rooms := g.ConnectedComponents()
	if srcRoom < 0 || srcRoom >= len(rooms) || dstRoom < 0 || dstRoom >= len(rooms) {
		return nil, 0, ErrComponentIndex
	}
	inDst := make([]bool, g.Width*g.Height)
	for _, i := range rooms[dstRoom] {
		inDst[i] = true
	}

	r := g.newCostRunner(g.digCost, math.MaxInt, rooms[srcRoom]...)
	target := r.process(func(i int) bool { return inDst[i] })
	if target < 0 {
		return nil, 0, ErrNoPath
	}
	return r.path(target), r.dist[target], nil
}
