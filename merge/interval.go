package merge

import "math"

// Interval is any value spanning a time range in seconds.
type Interval interface {
	Bounds() (start, end float64)
}

// Overlap returns the length of the intersection of a and b, zero when they
// do not touch. Degenerate spans (end < start) contribute nothing.
func Overlap(a, b Interval) float64 {
	as, ae := a.Bounds()
	bs, be := b.Bounds()
	return math.Max(0, math.Min(ae, be)-math.Max(as, bs))
}

// Duration returns the length of x, clamped to zero for degenerate spans so
// malformed upstream data cannot push negative durations into rankings.
func Duration(x Interval) float64 {
	s, e := x.Bounds()
	return math.Max(0, e-s)
}

// Distance returns the gap between a and b, zero when they overlap or touch.
func Distance(a, b Interval) float64 {
	as, ae := a.Bounds()
	bs, be := b.Bounds()
	return math.Max(0, math.Max(bs-ae, as-be))
}
