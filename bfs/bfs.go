// Package bfs provides an incremental breadth-first search over a hex grid,
// returning destinations closest-first along with their predecessor links.
package bfs

import (
	"log/slog"

	"github.com/katalvlaran/hexalgo/hex"
)

// Traverser finds coordinates satisfying isDest, in non-decreasing walk
// distance from start, through coordinates satisfying canPass.
//
// A Traverser is not safe for concurrent use. It owns its queue and
// visited map for its whole lifetime; separate Traversers share nothing.
type Traverser[I hex.Integer] struct {
	canPass PredicateFunc[I]
	isDest  PredicateFunc[I]
	start   hex.Coordinate[I]
	opts    Options[I]
	queue   []hex.Coordinate[I]
	visited map[hex.Coordinate[I]]visit[I]
}

// NewTraverser creates a Traverser seeded with start at distance 0.
// start is its own predecessor.
// Returns ErrNilPredicate if either predicate is nil, or ErrOptionViolation
// for bad options.
func NewTraverser[I hex.Integer](canPass, isDest PredicateFunc[I], start hex.Coordinate[I], opts ...Option[I]) (*Traverser[I], error) {
	if canPass == nil || isDest == nil {
		return nil, ErrNilPredicate
	}
	o := DefaultOptions[I]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	t := &Traverser[I]{
		canPass: canPass,
		isDest:  isDest,
		start:   start,
		opts:    o,
		visited: make(map[hex.Coordinate[I]]visit[I]),
	}
	t.enqueue(start, start, 0)
	return t, nil
}

// Start returns the coordinate the search grows from.
func (t *Traverser[I]) Start() hex.Coordinate[I] {
	return t.start
}

// Visited returns how many coordinates have been discovered so far.
func (t *Traverser[I]) Visited() int {
	return len(t.visited)
}

// Find returns the next closest coordinate satisfying isDest.
//
// It can be called repeatedly; each call resumes where the previous one
// stopped. A popped coordinate is expanded before the destination check,
// so the queue stays complete for later calls. Destinations that are not
// passable are still reported but never expanded.
// Returns false once every reachable coordinate has been examined.
func (t *Traverser[I]) Find() (hex.Coordinate[I], bool) {
	for len(t.queue) > 0 {
		pos := t.dequeue()

		if t.canPass(pos) {
			t.expand(pos)
		}
		if t.isDest(pos) {
			t.opts.Logger.Debug("bfs: destination found",
				slog.String("pos", pos.String()),
				slog.Uint64("dist", uint64(t.visited[pos].dist)))
			return pos, true
		}
	}
	t.opts.Logger.Debug("bfs: search space exhausted",
		slog.String("start", t.start.String()),
		slog.Int("visited", len(t.visited)))
	var zero hex.Coordinate[I]
	return zero, false
}

// Backtrace returns the coordinate pos was discovered from: the neighbor
// of pos one step closer to start. For start itself it returns start.
// Returns false for coordinates that were not visited yet.
func (t *Traverser[I]) Backtrace(pos hex.Coordinate[I]) (hex.Coordinate[I], bool) {
	v, ok := t.visited[pos]
	return v.prev, ok
}

// BacktraceLast follows Backtrace links from pos and returns the neighbor
// of start that begins the path to pos, i.e. the first step to take.
// For start itself it returns start.
// Returns false for coordinates that were not visited yet.
func (t *Traverser[I]) BacktraceLast(pos hex.Coordinate[I]) (hex.Coordinate[I], bool) {
	for {
		v, ok := t.visited[pos]
		if !ok {
			var zero hex.Coordinate[I]
			return zero, false
		}
		if v.prev == t.start {
			return pos, true
		}
		pos = v.prev
	}
}

// Distance returns the number of steps from start to pos.
// Returns false for coordinates that were not visited yet.
func (t *Traverser[I]) Distance(pos hex.Coordinate[I]) (uint32, bool) {
	v, ok := t.visited[pos]
	return v.dist, ok
}

// Path reconstructs the walk from start to pos, both inclusive.
// Returns ErrNotVisited if pos was not reached.
func (t *Traverser[I]) Path(pos hex.Coordinate[I]) ([]hex.Coordinate[I], error) {
	v, ok := t.visited[pos]
	if !ok {
		return nil, ErrNotVisited
	}
	path := make([]hex.Coordinate[I], v.dist+1)
	for i := int(v.dist); i >= 0; i-- {
		path[i] = pos
		pos = t.visited[pos].prev
	}
	return path, nil
}

// enqueue records pos as discovered from prev and appends it to the queue.
func (t *Traverser[I]) enqueue(pos, prev hex.Coordinate[I], dist uint32) {
	t.visited[pos] = visit[I]{prev: prev, dist: dist}
	t.opts.OnEnqueue(pos, dist)
	t.queue = append(t.queue, pos)
}

// dequeue pops the first coordinate and invokes OnDequeue.
func (t *Traverser[I]) dequeue() hex.Coordinate[I] {
	pos := t.queue[0]
	t.queue = t.queue[1:]
	t.opts.OnDequeue(pos, t.visited[pos].dist)
	return pos
}

// expand discovers every not yet visited neighbor of pos.
func (t *Traverser[I]) expand(pos hex.Coordinate[I]) {
	v, ok := t.visited[pos]
	if !ok {
		panic("bfs: expanding coordinate " + pos.String() + " that was never visited")
	}
	if t.opts.MaxDepth > 0 && v.dist >= t.opts.MaxDepth {
		return
	}
	dist := v.dist + 1
	for _, n := range pos.Neighbors() {
		// first discovery wins
		if _, seen := t.visited[n]; !seen {
			t.enqueue(n, pos, dist)
		}
	}
}
