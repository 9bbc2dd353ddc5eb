package hex

import "fmt"

// Integer is the numeric capability a Coordinate is parameterized over:
// equality and hashing (map keys), ordered arithmetic, and conversion from
// small untyped constants.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Direction is one of the six unit steps on the grid, numbered clockwise.
type Direction uint8

const (
	East Direction = iota
	SouthEast
	SouthWest
	West
	NorthWest
	NorthEast
)

// NumDirections is the number of distinct directions.
const NumDirections = 6

// AllDirections lists every Direction in clockwise order starting at East.
var AllDirections = [NumDirections]Direction{East, SouthEast, SouthWest, West, NorthWest, NorthEast}

// axial offsets matching the Direction order.
var offsets = [NumDirections][2]int{
	{1, 0},  // East
	{0, 1},  // SouthEast
	{-1, 1}, // SouthWest
	{-1, 0}, // West
	{0, -1}, // NorthWest
	{1, -1}, // NorthEast
}

var directionNames = [NumDirections]string{"East", "SouthEast", "SouthWest", "West", "NorthWest", "NorthEast"}

// Valid reports whether d is one of the six defined directions.
func (d Direction) Valid() bool {
	return d < NumDirections
}

// Offset returns the axial (q, r) delta of a single step in d.
func (d Direction) Offset() (q, r int) {
	o := offsets[d%NumDirections]
	return o[0], o[1]
}

// Rotate turns d clockwise by a.
func (d Direction) Rotate(a Angle) Direction {
	return Direction((uint8(d) + uint8(a)%NumDirections) % NumDirections)
}

// Opposite is shorthand for d.Rotate(Back).
func (d Direction) Opposite() Direction {
	return d.Rotate(Back)
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Angle is a clockwise rotation in 60° steps.
type Angle uint8

const (
	Forward Angle = iota
	Right
	RightBack
	Back
	LeftBack
	Left
)

var angleNames = [NumDirections]string{"Forward", "Right", "RightBack", "Back", "LeftBack", "Left"}

func (a Angle) String() string {
	if a >= NumDirections {
		return fmt.Sprintf("Angle(%d)", uint8(a))
	}
	return angleNames[a]
}

// Coordinate is an axial hex-grid cell. The implicit third cube component
// is S = -Q - R. Coordinates are plain values and never mutated in place.
type Coordinate[I Integer] struct {
	Q, R I
}

// Pair holds the two candidate cells of one interpolation step.
// When the line does not touch a cell edge, A == B.
type Pair[I Integer] struct {
	A, B Coordinate[I]
}
