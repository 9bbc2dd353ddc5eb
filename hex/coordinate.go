package hex

import (
	"fmt"
	"math"
)

// New builds a Coordinate from its axial components.
func New[I Integer](q, r I) Coordinate[I] {
	return Coordinate[I]{Q: q, R: r}
}

// S returns the implicit third cube coordinate.
func (c Coordinate[I]) S() I {
	return -c.Q - c.R
}

// Add returns the cell one step from c in direction d.
func (c Coordinate[I]) Add(d Direction) Coordinate[I] {
	dq, dr := d.Offset()
	return Coordinate[I]{Q: c.Q + I(dq), R: c.R + I(dr)}
}

// Plus returns the component-wise sum of c and o.
func (c Coordinate[I]) Plus(o Coordinate[I]) Coordinate[I] {
	return Coordinate[I]{Q: c.Q + o.Q, R: c.R + o.R}
}

// Neighbors returns the six adjacent cells in AllDirections order.
func (c Coordinate[I]) Neighbors() [NumDirections]Coordinate[I] {
	var out [NumDirections]Coordinate[I]
	for i, d := range AllDirections {
		out[i] = c.Add(d)
	}
	return out
}

// Distance returns the number of steps between c and o.
func (c Coordinate[I]) Distance(o Coordinate[I]) I {
	return (abs(c.Q-o.Q) + abs(c.R-o.R) + abs(c.S()-o.S())) / 2
}

// DirectionTo returns the Direction whose 60° sector contains the ray from
// c to o. Rays exactly on a sector boundary round away from East.
// For o == c the result is East.
func (c Coordinate[I]) DirectionTo(o Coordinate[I]) Direction {
	dq := float64(o.Q) - float64(c.Q)
	dr := float64(o.R) - float64(c.R)
	x := math.Sqrt(3) * (dq + dr/2)
	y := 1.5 * dr
	sector := int(math.Round(math.Atan2(y, x)/(math.Pi/3))) % NumDirections
	if sector < 0 {
		sector += NumDirections
	}
	return Direction(sector)
}

func (c Coordinate[I]) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

func abs[I Integer](v I) I {
	if v < 0 {
		return -v
	}
	return v
}
