// Package los defines options, policies and error definitions for
// line-of-sight computation over a hex grid.
package los

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/hexalgo/hex"
)

// Sentinel errors for LOS execution.
var (
	// ErrNilCallback is returned when opaqueness or visible is nil.
	ErrNilCallback = errors.New("los: callback is nil")

	// ErrInvalidDirection is returned when a sweep direction is not one of the six.
	ErrInvalidDirection = errors.New("los: invalid sweep direction")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("los: invalid option supplied")
)

// OpaquenessFunc returns the light a cell absorbs. By convention 1 is fully
// transparent and anything ≥ the initial light is fully opaque. Values below
// 1 are treated as 1 so every sweep is bounded by the initial light.
type OpaquenessFunc[I hex.Integer] func(c hex.Coordinate[I]) I

// VisibleFunc is called for every cell judged visible, with the light
// associated with that cell (see Policy). A cell may be reported more than
// once: sweeps are independent and reports are not deduplicated.
type VisibleFunc[I hex.Integer] func(c hex.Coordinate[I], light I)

// Policy selects how Shadowcast reports cells.
type Policy uint8

const (
	// PreOpacity reports a cell with the light arriving at it, before its
	// opaqueness is deducted. The fan is widened by reporting the cells
	// flanking the sweep axis directly.
	PreOpacity Policy = iota

	// PostOpacity deducts a cell's opaqueness first and reports the light
	// left after it, never below 0. No extra flanking cells are reported.
	PostOpacity
)

func (p Policy) String() string {
	switch p {
	case PreOpacity:
		return "PreOpacity"
	case PostOpacity:
		return "PostOpacity"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// Option configures LOS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters shared by Shadowcast and Trace.
type Options struct {
	// Policy is used by Shadowcast only.
	Policy Policy

	// Logger receives Debug-level per-sweep summaries.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with PreOpacity and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Policy: PreOpacity,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithPolicy selects the Shadowcast reporting policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		if p != PreOpacity && p != PostOpacity {
			o.err = fmt.Errorf("%w: unknown policy %v", ErrOptionViolation, p)
			return
		}
		o.Policy = p
	}
}

// WithLogger routes sweep summaries to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// prepare validates the common arguments of Shadowcast and Trace.
func prepare[I hex.Integer](opaqueness OpaquenessFunc[I], visible VisibleFunc[I], dirs []hex.Direction, opts []Option) (Options, error) {
	if opaqueness == nil || visible == nil {
		return Options{}, ErrNilCallback
	}
	for _, d := range dirs {
		if !d.Valid() {
			return Options{}, fmt.Errorf("%w: %v", ErrInvalidDirection, d)
		}
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

// cost is the light c absorbs, never less than 1.
func cost[I hex.Integer](opaqueness OpaquenessFunc[I], c hex.Coordinate[I]) I {
	if o := opaqueness(c); o > 1 {
		return o
	}
	return 1
}

// deduct returns light minus c, or false when c consumes it entirely.
func deduct[I hex.Integer](light, c I) (I, bool) {
	if c >= light {
		return 0, false
	}
	return light - c, true
}
