package hexgrid

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/hexalgo/hex"
	"github.com/katalvlaran/hexalgo/los"
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantShadowcast:
		return "Shadowcast"
	case VariantShadowcastPost:
		return "ShadowcastPost"
	case VariantTrace:
		return "Trace"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// FieldOfView computes what a viewer standing on origin sees with the given
// light, using the selected variant. With no dirs all six sweeps run;
// otherwise only the listed ones, which yields a view cone.
//
// The result maps every visible in-bounds cell to the highest light any
// sweep reported for it. Walls and off-grid cells absorb WallOpacity.
// Returns ErrOutOfBounds if origin is off the grid, ErrUnknownVariant, or
// a wrapped los error for invalid directions.
func (g *HexGrid) FieldOfView(origin Coord, light int, v Variant, dirs ...hex.Direction) (map[Coord]int, error) {
	if !g.InBounds(origin) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, origin)
	}
	if len(dirs) == 0 {
		dirs = hex.AllDirections[:]
	}

	seen := make(map[Coord]int)
	visible := func(c Coord, l int) {
		if !g.InBounds(c) {
			return
		}
		if old, ok := seen[c]; !ok || l > old {
			seen[c] = l
		}
	}

	opts := []los.Option{los.WithLogger(g.logger)}
	var err error
	switch v {
	case VariantShadowcast:
		err = los.Shadowcast(g.Opaqueness, visible, light, origin, dirs, opts...)
	case VariantShadowcastPost:
		err = los.Shadowcast(g.Opaqueness, visible, light, origin, dirs, append(opts, los.WithPolicy(los.PostOpacity))...)
	case VariantTrace:
		err = los.Trace(g.Opaqueness, visible, light, origin, dirs, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownVariant, v)
	}
	if err != nil {
		return nil, fmt.Errorf("hexgrid: field of view: %w", err)
	}

	g.logger.Debug("hexgrid: field of view",
		slog.String("origin", origin.String()),
		slog.String("variant", v.String()),
		slog.Int("light", light),
		slog.Int("visible", len(seen)))
	return seen, nil
}

// VisibleMatching returns the cells in the field of view of origin that
// satisfy match, ordered by hex distance from origin and then row-major.
func (g *HexGrid) VisibleMatching(origin Coord, light int, v Variant, match func(Coord) bool) ([]Coord, error) {
	fov, err := g.FieldOfView(origin, light, v)
	if err != nil {
		return nil, err
	}
	var out []Coord
	for c := range fov {
		if match == nil || match(c) {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b Coord) int {
		if d := cmp.Compare(origin.Distance(a), origin.Distance(b)); d != 0 {
			return d
		}
		return cmp.Compare(g.index(a), g.index(b))
	})
	return out, nil
}
