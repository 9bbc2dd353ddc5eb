package los

import (
	"log/slog"

	"github.com/katalvlaran/hexalgo/hex"
)

// tracer runs Trace sweeps with one set of callbacks.
type tracer[I hex.Integer] struct {
	opaqueness OpaquenessFunc[I]
	visible    VisibleFunc[I]
	light      I
	origin     hex.Coordinate[I]
	stack      []hex.Coordinate[I]
}

// Trace floods outward from origin once per direction in dirs, deciding
// the visibility of every cell it reaches with an explicit straight-line
// check (see checkLine), and calls visible with the light left at the cell.
//
// From every directly visible cell the flood continues one step forward
// and one step 60° to either side of the sweep direction, so each sweep
// covers a 120° wedge. A cell whose own line is blocked is still reported
// when one of its two neighbors flanking the ray beyond it is directly
// visible, with that neighbor's light; the flood stops at such a cell.
// That light can exceed what the cell's own line gave, so raising an
// opaqueness may raise the light reported for a cell it cuts off.
//
// Every sweep keeps its own visited set, so a cell is examined at most
// once per sweep but may be reported again by another sweep.
// Returns ErrNilCallback, ErrInvalidDirection or ErrOptionViolation before
// any work is done; otherwise nil. The Policy option is ignored.
//
// Complexity: O(A·L) per sweep, where A is the number of cells examined
// (bounded by the light radius) and L the light radius.
func Trace[I hex.Integer](opaqueness OpaquenessFunc[I], visible VisibleFunc[I], light I, origin hex.Coordinate[I], dirs []hex.Direction, opts ...Option) error {
	o, err := prepare(opaqueness, visible, dirs, opts)
	if err != nil {
		return err
	}

	t := &tracer[I]{opaqueness: opaqueness, visible: visible, light: light, origin: origin}
	for _, d := range dirs {
		examined, reported := t.sweep(d)
		o.Logger.Debug("los: trace sweep done",
			slog.String("origin", origin.String()),
			slog.String("dir", d.String()),
			slog.Int("examined", examined),
			slog.Int("reported", reported))
	}
	return nil
}

// sweep floods one wedge and returns how many cells it examined and reported.
func (t *tracer[I]) sweep(dir hex.Direction) (examined, reported int) {
	visited := make(map[hex.Coordinate[I]]struct{})
	t.stack = append(t.stack[:0], t.origin)
	for len(t.stack) > 0 {
		pos := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]

		if _, seen := visited[pos]; seen {
			continue
		}
		visited[pos] = struct{}{}

		if direct, left := checkLine(t.opaqueness, t.light, t.origin, pos); direct {
			t.visible(pos, left)
			reported++
			// pushed reversed: Forward is examined first, then Left, then Right
			t.stack = append(t.stack,
				pos.Add(dir.Rotate(hex.Right)),
				pos.Add(dir.Rotate(hex.Left)),
				pos.Add(dir),
			)
			continue
		}
		if left, ok := t.viaFlank(pos); ok {
			t.visible(pos, left)
			reported++
		}
	}
	return len(visited), reported
}

// viaFlank checks the two neighbors of pos that flank the ray from origin
// beyond pos and returns the light of the first one directly visible.
func (t *tracer[I]) viaFlank(pos hex.Coordinate[I]) (I, bool) {
	ray := t.origin.DirectionTo(pos)
	for _, a := range [2]hex.Angle{hex.Left, hex.Right} {
		if direct, left := checkLine(t.opaqueness, t.light, t.origin, pos.Add(ray.Rotate(a))); direct {
			return left, true
		}
	}
	return 0, false
}

// checkLine traces both candidate lines from start to pos and reports
// whether at least one of them reaches pos with light to spare.
//
// Each line sums the cost of every cell before pos (start included) and
// stops summing once the sum reaches light. A line reaches pos while its
// sum stays below light. The light left is computed from the cheaper
// reaching line; it is 0 when neither line reaches pos.
func checkLine[I hex.Integer](opaqueness OpaquenessFunc[I], light I, start, pos hex.Coordinate[I]) (bool, I) {
	line := start.LineWithEdges(pos)
	var sumA, sumB I
	for _, p := range line[:len(line)-1] {
		openA, openB := sumA < light, sumB < light
		if !openA && !openB {
			break
		}
		var ca I
		if openA {
			ca = cost(opaqueness, p.A)
			sumA = accumulate(sumA, ca, light)
		}
		if openB {
			if openA && p.B == p.A {
				sumB = accumulate(sumB, ca, light)
			} else {
				sumB = accumulate(sumB, cost(opaqueness, p.B), light)
			}
		}
	}

	reachA, reachB := sumA < light, sumB < light
	switch {
	case reachA && reachB:
		return true, light - min(sumA, sumB)
	case reachA:
		return true, light - sumA
	case reachB:
		return true, light - sumB
	}
	return false, 0
}

// accumulate adds c to sum, saturating at limit.
func accumulate[I hex.Integer](sum, c, limit I) I {
	if c >= limit-sum {
		return limit
	}
	return sum + c
}
