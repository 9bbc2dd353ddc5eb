package hex

import "math"

// edgeNudge shifts the interpolated cube point off shared edges so that
// rounding can report both neighboring cells.
const edgeNudge = 1e-6

// LineWithEdges interpolates the straight line from c to dest.
// It returns Distance(c, dest)+1 pairs; the first pair is (c, c) and the
// last is (dest, dest). Each pair holds the cell obtained by rounding the
// point nudged towards +Q+R and the one nudged towards -Q-R, so both
// candidates are reported wherever the line follows a cell edge.
//
// Time and memory: O(n), n = Distance(c, dest).
func (c Coordinate[I]) LineWithEdges(dest Coordinate[I]) []Pair[I] {
	n := int(c.Distance(dest))
	out := make([]Pair[I], 0, n+1)
	if n == 0 {
		return append(out, Pair[I]{A: c, B: c})
	}

	aq, ar := float64(c.Q), float64(c.R)
	dq, dr := float64(dest.Q)-aq, float64(dest.R)-ar
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		q, r := aq+dq*t, ar+dr*t
		out = append(out, Pair[I]{
			A: round[I](q+edgeNudge, r+edgeNudge),
			B: round[I](q-edgeNudge, r-edgeNudge),
		})
	}
	return out
}

// round snaps a fractional axial point to the nearest cell using cube rounding.
func round[I Integer](fq, fr float64) Coordinate[I] {
	fs := -fq - fr
	q, r, s := math.Round(fq), math.Round(fr), math.Round(fs)
	dq, dr, ds := math.Abs(q-fq), math.Abs(r-fr), math.Abs(s-fs)
	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	}
	return Coordinate[I]{Q: I(q), R: I(r)}
}
