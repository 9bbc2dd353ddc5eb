package los

import (
	"log/slog"

	"github.com/katalvlaran/hexalgo/hex"
)

// castStep is one pending cell of a Shadowcast sweep.
//
// steps counts how many directions are known: 0 at the origin, 1 after the
// first step (dir set), 2 from then on (dir and pdir set).
type castStep[I hex.Integer] struct {
	pos       hex.Coordinate[I]
	light     I
	main      hex.Direction
	dir, pdir hex.Direction
	steps     uint8
}

// caster runs Shadowcast sweeps with one set of callbacks.
type caster[I hex.Integer] struct {
	opaqueness OpaquenessFunc[I]
	visible    VisibleFunc[I]
	policy     Policy
	reported   int
	stack      []castStep[I]
}

// Shadowcast starts one sweep from origin for every direction in dirs and
// calls visible for each cell the sweeps reach.
//
// Each sweep fans out from origin along its direction and the two
// directions 60° to either side. A branch keeps going while light remains;
// every cell deducts max(opaqueness, 1) from it. Once a branch has taken
// the same direction twice it continues as a straight ray; when its last
// two directions differ it follows both.
//
// Reporting follows the Policy option (PreOpacity by default). Cells are
// not deduplicated: overlapping sweeps and branches report them again.
// Returns ErrNilCallback, ErrInvalidDirection or ErrOptionViolation before
// any work is done; otherwise nil.
//
// Complexity: the number of branches grows with light, not with map size;
// traversal uses an explicit stack, so deep light does not grow the call stack.
func Shadowcast[I hex.Integer](opaqueness OpaquenessFunc[I], visible VisibleFunc[I], light I, origin hex.Coordinate[I], dirs []hex.Direction, opts ...Option) error {
	o, err := prepare(opaqueness, visible, dirs, opts)
	if err != nil {
		return err
	}

	c := &caster[I]{opaqueness: opaqueness, policy: o.Policy}
	c.visible = func(p hex.Coordinate[I], l I) {
		c.reported++
		visible(p, l)
	}
	for _, d := range dirs {
		c.reported = 0
		c.sweep(origin, light, d)
		o.Logger.Debug("los: shadowcast sweep done",
			slog.String("origin", origin.String()),
			slog.String("dir", d.String()),
			slog.String("policy", o.Policy.String()),
			slog.Int("reported", c.reported))
	}
	return nil
}

// sweep processes cells depth-first, in the same order a recursive
// formulation would visit them.
func (c *caster[I]) sweep(origin hex.Coordinate[I], light I, main hex.Direction) {
	c.stack = append(c.stack[:0], castStep[I]{pos: origin, light: light, main: main})
	for len(c.stack) > 0 {
		s := c.stack[len(c.stack)-1]
		c.stack = c.stack[:len(c.stack)-1]

		left, ok := c.enter(s)
		if !ok {
			continue
		}
		next, n := c.branches(s, left)
		// reversed so the first branch is popped first
		for i := n - 1; i >= 0; i-- {
			d := next[i]
			child := castStep[I]{pos: s.pos.Add(d), light: left, main: d, dir: d, pdir: s.dir, steps: 2}
			if s.steps == 0 {
				child.main = s.main
				child.steps = 1
			}
			c.stack = append(c.stack, child)
		}
	}
}

// enter reports s.pos according to the policy and returns the light left
// after it, or false when the branch ends here.
func (c *caster[I]) enter(s castStep[I]) (I, bool) {
	left, ok := deduct(s.light, cost(c.opaqueness, s.pos))
	if c.policy == PreOpacity {
		c.visible(s.pos, s.light)
	} else {
		c.visible(s.pos, left)
	}
	return left, ok
}

// branches picks the directions to continue in. Under PreOpacity it also
// reports the flanking cells that widen the fan, with the light left at s.
func (c *caster[I]) branches(s castStep[I], left I) ([3]hex.Direction, int) {
	pre := c.policy == PreOpacity
	switch s.steps {
	case 0:
		l, r := s.main.Rotate(hex.Left), s.main.Rotate(hex.Right)
		if pre {
			c.visible(s.pos.Add(s.main), left)
			c.visible(s.pos.Add(l), left)
			c.visible(s.pos.Add(r), left)
		}
		return [3]hex.Direction{s.main, l, r}, 3
	case 1:
		if s.dir == s.main {
			if pre {
				c.reportFlanks(s, left)
			}
			return [3]hex.Direction{s.dir, s.dir.Rotate(hex.Left), s.dir.Rotate(hex.Right)}, 3
		}
		if pre {
			c.visible(s.pos.Add(s.main), left)
		}
		return [3]hex.Direction{s.dir, s.main}, 2
	default:
		if pre && s.dir == s.main {
			c.reportFlanks(s, left)
		}
		if s.dir == s.pdir {
			return [3]hex.Direction{s.dir}, 1
		}
		return [3]hex.Direction{s.dir, s.pdir}, 2
	}
}

func (c *caster[I]) reportFlanks(s castStep[I], left I) {
	c.visible(s.pos.Add(s.main.Rotate(hex.Right)), left)
	c.visible(s.pos.Add(s.main.Rotate(hex.Left)), left)
}
