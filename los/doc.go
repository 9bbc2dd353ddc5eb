// Package los computes line of sight on a hex grid with distance-based
// light attenuation through partially opaque cells.
//
// What
//
//   - Shadowcast: recursive angular fans from the viewer. Each of the
//     requested sweep directions spawns a three-way fan; branches collapse
//     into straight rays once they repeat a direction and split in two on a
//     boundary between fans. Cheap per cell, approximate at fan edges.
//   - Trace: a directional flood whose every cell is confirmed by an
//     explicit straight-line check. Hex lines are ambiguous along cell edges,
//     so the check follows both candidate lines and accepts the cell if
//     either gets through. Accurate, at O(distance) work per cell.
//   - Light: every cell on the way absorbs max(opaqueness, 1) of the initial
//     light; a ray ends when nothing is left. Opaqueness 1 is "clear air",
//     anything ≥ the initial light is a wall.
//
// Why
//
//	Fog-of-war and vision for roguelike and tactical games, where smoke,
//	foliage or dim rooms should shorten sight instead of blocking it.
//
// Policies (Shadowcast only)
//
//   - PreOpacity (default): a cell is reported with the light that reached
//     it, before its own opaqueness is deducted; cells flanking the sweep
//     axis are reported directly to close gaps near the axis.
//   - PostOpacity: a cell is reported with the light left after it; no
//     flanking cells are added.
//
// Determinism
//
//	Cells are visited depth-first in a fixed order: sweeps in the order of
//	dirs, branches Forward, Left, Right. Callbacks are assumed deterministic.
//	Reports are not deduplicated across sweeps or branches; callers that need
//	one value per cell should keep the maximum light (see hexgrid.FieldOfView).
//
// Complexity (L = initial light)
//
//   - Shadowcast: O(3^2·2^L) branches per sweep in the worst case, O(L) stack.
//   - Trace:      O(L^3) per sweep (O(L^2) cells, O(L) line check each).
//   - Both use an explicit work stack; deep light never grows the call stack.
//
// Options
//
//   - WithPolicy(p):  PreOpacity or PostOpacity.
//   - WithLogger(l):  Debug-level per-sweep summaries via log/slog.
//
// Errors
//
//   - ErrNilCallback       if opaqueness or visible is nil.
//   - ErrInvalidDirection  if dirs holds a value outside the six directions.
//   - ErrOptionViolation   for invalid options.
package los
