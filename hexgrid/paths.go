package hexgrid

import (
	"fmt"

	"github.com/katalvlaran/hexalgo/bfs"
)

// traverser builds a Traverser over passable cells with the grid's logger.
func (g *HexGrid) traverser(from Coord, isDest bfs.PredicateFunc[int], opts ...bfs.Option[int]) *bfs.Traverser[int] {
	opts = append([]bfs.Option[int]{bfs.WithLogger[int](g.logger)}, opts...)
	t, err := bfs.NewTraverser[int](g.Passable, isDest, from, opts...)
	if err != nil {
		// both predicates are non-nil and the options are built here
		panic("hexgrid: " + err.Error())
	}
	return t
}

// ShortestPath returns a shortest walk from one cell to another, both
// inclusive, stepping only through passable cells. The destination itself
// may be a wall: the walk then ends by stepping onto it, as when opening a
// door.
// Returns ErrOutOfBounds if either cell is off the grid, or ErrNoPath.
// Complexity: O(W·H) worst case.
func (g *HexGrid) ShortestPath(from, to Coord) ([]Coord, error) {
	if !g.InBounds(from) || !g.InBounds(to) {
		return nil, fmt.Errorf("%w: %v -> %v", ErrOutOfBounds, from, to)
	}
	t := g.traverser(from, func(c Coord) bool { return c == to })
	if _, ok := t.Find(); !ok {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, from, to)
	}
	return t.Path(to)
}

// NearestMatching returns up to n in-bounds cells satisfying match, closest
// first by walking distance from from. Ties keep breadth-first discovery
// order. A non-positive n returns nil.
// Returns ErrOutOfBounds if from is off the grid.
func (g *HexGrid) NearestMatching(from Coord, match func(Coord) bool, n int) ([]Coord, error) {
	if !g.InBounds(from) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, from)
	}
	if n <= 0 || match == nil {
		return nil, nil
	}
	t := g.traverser(from, func(c Coord) bool { return g.InBounds(c) && match(c) })
	var out []Coord
	for len(out) < n {
		c, ok := t.Find()
		if !ok {
			break
		}
		out = append(out, c)
	}
	return out, nil
}

// FirstStep returns the neighbor of from to step onto in order to approach
// the closest cell satisfying match, together with that cell's walking
// distance. When from itself matches, it is returned with distance 0.
// Returns ErrOutOfBounds if from is off the grid, ErrNoPath when nothing
// reachable matches.
func (g *HexGrid) FirstStep(from Coord, match func(Coord) bool) (Coord, int, error) {
	if !g.InBounds(from) {
		return Coord{}, 0, fmt.Errorf("%w: %v", ErrOutOfBounds, from)
	}
	if match == nil {
		return Coord{}, 0, ErrNoPath
	}
	t := g.traverser(from, func(c Coord) bool { return g.InBounds(c) && match(c) })
	goal, ok := t.Find()
	if !ok {
		return Coord{}, 0, fmt.Errorf("%w: nothing matches near %v", ErrNoPath, from)
	}
	step, _ := t.BacktraceLast(goal)
	dist, _ := t.Distance(goal)
	return step, int(dist), nil
}

// Reachable returns every passable cell within maxSteps walking steps of
// from, mapped to its distance. A wall at from reaches nothing.
// Returns ErrOutOfBounds if from is off the grid.
func (g *HexGrid) Reachable(from Coord, maxSteps int) (map[Coord]int, error) {
	if !g.InBounds(from) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, from)
	}
	out := make(map[Coord]int)
	switch {
	case maxSteps < 0 || !g.Passable(from):
		return out, nil
	case maxSteps == 0:
		out[from] = 0
		return out, nil
	}
	t := g.traverser(from, g.Passable, bfs.WithMaxDepth[int](maxSteps))
	for c, ok := t.Find(); ok; c, ok = t.Find() {
		d, _ := t.Distance(c)
		out[c] = int(d)
	}
	return out, nil
}
