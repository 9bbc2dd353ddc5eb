// Package bfs provides an incremental breadth-first Traverser over an
// unbounded hex grid, returning destinations closest-first.
//
// What
//
//   - The grid is implicit: the caller supplies canPass (may the search step
//     through this cell) and isDest (is this cell a reportable goal).
//   - Find returns the next closest destination. It can be called again and
//     again; each call resumes the same search, so destinations come out in
//     non-decreasing walk distance.
//   - Every discovered cell keeps one record {predecessor, distance}, written
//     on first discovery and never updated. Backtrace, BacktraceLast,
//     Distance and Path read those records.
//   - A destination that is itself impassable is still reported, but the
//     search does not continue through it.
//
// Why
//
//   - Roguelike AI: "walk towards the nearest item/enemy/exit", then ask for
//     the next one if the first is taken.
//   - BacktraceLast answers "which step do I take now" without building the
//     whole path.
//
// Determinism
//
//	Neighbors are expanded in hex.AllDirections order, so with deterministic
//	predicates the discovery order and every recorded predecessor are
//	reproducible. Non-deterministic predicates void that guarantee.
//
// Complexity (V = discovered cells)
//
//   - Time:   O(V) predicate calls and map operations over all Find calls.
//   - Memory: O(V) for the queue and the visited map.
//
// Usage
//
//	canPass := func(c hex.Coordinate[int]) bool { return !walls[c] }
//	isDest := func(c hex.Coordinate[int]) bool { return items[c] }
//	t, err := bfs.NewTraverser(canPass, isDest, hero)
//	if err != nil {
//		// ErrNilPredicate or ErrOptionViolation
//	}
//	if item, ok := t.Find(); ok {
//		step, _ := t.BacktraceLast(item)
//		// move hero to step
//	}
//
// Options
//
//   - WithOnEnqueue(fn): hook on first discovery of a cell.
//   - WithOnDequeue(fn): hook when a cell leaves the queue.
//   - WithMaxDepth(d):   do not expand cells at distance ≥ d (d > 0).
//   - WithLogger(l):     Debug-level slog events.
//
// Errors
//
//   - ErrNilPredicate     if canPass or isDest is nil.
//   - ErrOptionViolation  for invalid options (e.g. negative MaxDepth, or one above math.MaxUint32).
//   - ErrNotVisited       from Path for a cell the search has not reached.
//
// Absence is otherwise reported with a false second return value; the
// Traverser never fails during Find.
package bfs
