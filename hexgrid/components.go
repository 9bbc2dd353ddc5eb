package hexgrid

import (
	"github.com/katalvlaran/hexalgo/bfs"
)

// ConnectedComponents finds all contiguous regions ("rooms") of passable
// cells under six-neighbor hex adjacency.
// Returns a slice of components; each component is a slice of cell indices
// (row-major) in breadth-first order from its first cell in row-major order.
// Components themselves are ordered by that first cell.
//
// To convert an index back to a coordinate, use Coordinate(idx).
//
// Time:   O(W·H·6).
// Memory: O(W·H) for visited flags and output.
func (g *HexGrid) ConnectedComponents() [][]int {
	seen := make([]bool, g.Width*g.Height)
	var comps [][]int

	for r := 0; r < g.Height; r++ {
		for q := 0; q < g.Width; q++ {
			c0 := Coord{Q: q, R: r}
			if !g.Passable(c0) || seen[g.index(c0)] {
				continue
			}
			t, err := bfs.NewTraverser[int](g.Passable, g.Passable, c0, bfs.WithLogger[int](g.logger))
			if err != nil {
				panic("hexgrid: " + err.Error())
			}
			var comp []int
			for c, ok := t.Find(); ok; c, ok = t.Find() {
				i := g.index(c)
				seen[i] = true
				comp = append(comp, i)
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// ComponentOf returns the row-major index list of the room containing c,
// or nil when c is not passable.
func (g *HexGrid) ComponentOf(c Coord) []int {
	if !g.Passable(c) {
		return nil
	}
	t, err := bfs.NewTraverser[int](g.Passable, g.Passable, c, bfs.WithLogger[int](g.logger))
	if err != nil {
		panic("hexgrid: " + err.Error())
	}
	var comp []int
	for n, ok := t.Find(); ok; n, ok = t.Find() {
		comp = append(comp, g.index(n))
	}
	return comp
}
