// Package bfs provides tunable options and error definitions
// for the breadth-first Traverser over a hex grid.
package bfs

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/hexalgo/hex"
)

// Sentinel errors for Traverser construction and path reconstruction.
var (
	// ErrNilPredicate is returned when canPass or isDest is nil.
	ErrNilPredicate = errors.New("bfs: predicate is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotVisited is returned by Path for a coordinate the search never reached.
	ErrNotVisited = errors.New("bfs: coordinate not visited")
)

// PredicateFunc classifies a single coordinate. Traverser assumes it is
// deterministic: a predicate that changes its answer between calls makes
// the search order and distances non-reproducible.
type PredicateFunc[I hex.Integer] func(c hex.Coordinate[I]) bool

// Option configures Traverser behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation by NewTraverser.
type Option[I hex.Integer] func(*Options[I])

// Options holds parameters and callbacks that customize a Traverser.
type Options[I hex.Integer] struct {
	// OnEnqueue is called when a coordinate is first discovered,
	// with its distance from start.
	OnEnqueue func(c hex.Coordinate[I], dist uint32)

	// OnDequeue is called when a coordinate is popped from the queue,
	// before the passability and destination checks.
	OnDequeue func(c hex.Coordinate[I], dist uint32)

	// MaxDepth, if > 0, stops expansion of coordinates at that distance,
	// so nothing deeper than MaxDepth is ever discovered.
	// A value of 0 disables the limit.
	MaxDepth uint32

	// Logger receives Debug-level traversal events.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks, no depth limit
// and a logger that discards everything.
func DefaultOptions[I hex.Integer]() Options[I] {
	return Options[I]{
		OnEnqueue: func(hex.Coordinate[I], uint32) {},
		OnDequeue: func(hex.Coordinate[I], uint32) {},
		MaxDepth:  0,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithOnEnqueue registers a callback run on first discovery.
func WithOnEnqueue[I hex.Integer](fn func(c hex.Coordinate[I], dist uint32)) Option[I] {
	return func(o *Options[I]) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback run when a coordinate leaves the queue.
func WithOnDequeue[I hex.Integer](fn func(c hex.Coordinate[I], dist uint32)) Option[I] {
	return func(o *Options[I]) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth limits how far the search expands.
//
//	d > 0: coordinates at distance d are still reported but not expanded
//	d == 0: explicit no depth limit
//	d < 0 or d > math.MaxUint32: invalid option → ErrOptionViolation
func WithMaxDepth[I hex.Integer](d int) Option[I] {
	return func(o *Options[I]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case uint64(d) > math.MaxUint32:
			o.err = fmt.Errorf("%w: MaxDepth %d exceeds %d", ErrOptionViolation, d, uint32(math.MaxUint32))
		default:
			o.MaxDepth = uint32(d)
		}
	}
}

// WithLogger routes traversal events to l. A nil logger is ignored.
func WithLogger[I hex.Integer](l *slog.Logger) Option[I] {
	return func(o *Options[I]) {
		if l != nil {
			o.Logger = l
		}
	}
}

// visit is the record kept for every discovered coordinate.
// It is written once, on discovery, and never updated.
type visit[I hex.Integer] struct {
	prev hex.Coordinate[I]
	dist uint32
}
