package hexgrid

import (
	"container/heap"
	"fmt"
	"math"
)

// StepCost is the cost of stepping onto c: its value, at least 1. Smoke and
// rubble slow a walk down the same way they dim light.
// Returns false for walls and off-grid cells, which cannot be stepped onto.
func (g *HexGrid) StepCost(c Coord) (int, bool) {
	if !g.Passable(c) {
		return 0, false
	}
	return max(g.CellValues[c.R][c.Q], 1), true
}

// CheapestPath returns the walk from one cell to another with the lowest
// total StepCost, both ends inclusive, together with that cost. Unlike
// ShortestPath, walls are never entered, not even as the destination.
// Returns ErrOutOfBounds if either cell is off the grid, or ErrNoPath.
//
// Complexity: O(N log N) with N = W×H.
func (g *HexGrid) CheapestPath(from, to Coord) ([]Coord, int, error) {
	if !g.InBounds(from) || !g.InBounds(to) {
		return nil, 0, fmt.Errorf("%w: %v -> %v", ErrOutOfBounds, from, to)
	}
	target := g.index(to)
	r := g.newCostRunner(g.StepCost, math.MaxInt, g.index(from))
	if r.process(func(i int) bool { return i == target }) < 0 {
		return nil, 0, fmt.Errorf("%w: %v -> %v", ErrNoPath, from, to)
	}

	idx := r.path(target)
	path := make([]Coord, len(idx))
	for i, at := range idx {
		path[i] = g.Coordinate(at)
	}
	return path, r.dist[target], nil
}

// TravelCosts returns every cell reachable from from with a total StepCost
// of at most budget, mapped to that cost. from itself costs 0.
// Returns ErrOutOfBounds if from is off the grid.
func (g *HexGrid) TravelCosts(from Coord, budget int) (map[Coord]int, error) {
	if !g.InBounds(from) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, from)
	}
	out := make(map[Coord]int)
	if budget < 0 {
		return out, nil
	}
	r := g.newCostRunner(g.StepCost, budget, g.index(from))
	r.process(nil)
	for i, d := range r.dist {
		if d <= budget {
			out[g.Coordinate(i)] = d
		}
	}
	return out, nil
}

// stepFunc prices entering a cell; false means the cell cannot be entered.
type stepFunc func(c Coord) (int, bool)

// costRunner holds the mutable state for a single weighted search.
type costRunner struct {
	g       *HexGrid
	step    stepFunc
	budget  int   // entries costing more are never settled
	dist    []int // index → best known cost, MaxInt if unreached
	prev    []int // index → predecessor index, -1 for none
	settled []bool
	pq      costPQ
}

// newCostRunner seeds a search with every source index at cost 0.
func (g *HexGrid) newCostRunner(step stepFunc, budget int, sources ...int) *costRunner {
	n := g.Width * g.Height
	r := &costRunner{
		g:       g,
		step:    step,
		budget:  budget,
		dist:    make([]int, n),
		prev:    make([]int, n),
		settled: make([]bool, n),
	}
	for i := range r.dist {
		r.dist[i] = math.MaxInt
		r.prev[i] = -1
	}
	heap.Init(&r.pq)
	for _, src := range sources {
		r.dist[src] = 0
		heap.Push(&r.pq, costItem{idx: src, cost: 0})
	}
	return r
}

// process settles cells in increasing cost until the heap is empty, the
// budget is exceeded, or stop accepts a settled cell. It returns that cell,
// or -1 when stop never fired.
// Stale heap entries are skipped (lazy decrease-key).
func (r *costRunner) process(stop func(idx int) bool) int {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(costItem)
		u := item.idx
		if r.settled[u] {
			continue
		}
		if item.cost > r.budget {
			break
		}
		r.settled[u] = true
		if stop != nil && stop(u) {
			return u
		}
		r.relax(u)
	}
	return -1
}

// relax tries to improve the cost of every enterable neighbor of u.
func (r *costRunner) relax(u int) {
	for _, c := range r.g.Coordinate(u).Neighbors() {
		w, ok := r.step(c)
		if !ok {
			continue
		}
		v := r.g.index(c)
		if r.settled[v] {
			continue
		}
		if nd := r.dist[u] + w; nd < r.dist[v] {
			r.dist[v] = nd
			r.prev[v] = u
			heap.Push(&r.pq, costItem{idx: v, cost: nd})
		}
	}
}

// path follows predecessors back from target to its source, both inclusive.
func (r *costRunner) path(target int) []int {
	var out []int
	for at := target; at >= 0; at = r.prev[at] {
		out = append(out, at)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// costItem is one heap entry: a cell index and the cost it was pushed with.
type costItem struct {
	idx  int
	cost int
}

// costPQ is a min-heap of costItem ordered by cost, then by index so that
// equal-cost walks resolve deterministically.
type costPQ []costItem

func (pq costPQ) Len() int { return len(pq) }

func (pq costPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return pq[i].idx < pq[j].idx
}

func (pq costPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a costItem.
func (pq *costPQ) Push(x any) { *pq = append(*pq, x.(costItem)) }

// Pop is called by heap.Pop.
func (pq *costPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
