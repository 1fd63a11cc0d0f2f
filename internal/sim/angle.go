package sim

import "math"

// AngularError returns the shortest signed angular difference
// desired - current, normalized to (-180, 180]. Both inputs may be
// arbitrary reals; headings are only conceptually modulo 360.
//
// Boundary convention: +180 is kept, -180 maps to +180.
func AngularError(desired, current float64) float64 {
	e := math.Mod(desired-current, 360)
	if e > 180 {
		e -= 360
	} else if e <= -180 {
		e += 360
	}
	return e
}

// WrapHeading normalizes a heading to [0, 360) for display. The simulation
// itself stores headings unwrapped; only the error computation wraps.
func WrapHeading(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}
