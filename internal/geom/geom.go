// Package geom holds the numeric primitives behind spirograph curve
// generation: integer ratio reduction, closure-period computation, and the
// parametric position functions for the two trochoid families.
//
// Everything in this package is a pure function. The closure period computed
// here is the single source of truth for "how many times around" a curve
// goes; point sampling and span derivation must both consume it rather than
// recompute it.
package geom

import "math"

// Point is a 2D point in curve coordinates. The renderer decides what the
// units mean; the engine never clamps or converts them.
type Point struct {
	X float64
	Y float64
}

// Near reports whether p and q coincide within tol in both coordinates.
func (p Point) Near(q Point, tol float64) bool {
	return math.Abs(p.X-q.X) <= tol && math.Abs(p.Y-q.Y) <= tol
}

// CurveKind selects which trochoid family a request describes.
type CurveKind int

const (
	// Hypotrochoid is traced by a pen attached to a circle rolling along
	// the inside of the fixed track.
	Hypotrochoid CurveKind = iota
	// Epitrochoid is traced by a pen attached to a circle rolling along
	// the outside of the fixed track.
	Epitrochoid
)

func (k CurveKind) String() string {
	switch k {
	case Hypotrochoid:
		return "hypotrochoid"
	case Epitrochoid:
		return "epitrochoid"
	default:
		return "unknown"
	}
}

// Valid reports whether k names a known curve kind.
func (k CurveKind) Valid() bool {
	return k == Hypotrochoid || k == Epitrochoid
}

// GCD returns the greatest common divisor of a and b. GCD(0, 0) is 0.
func GCD(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
func LCM(a, b uint64) uint64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / GCD(a, b) * b
}

// PositionAt evaluates the parametric trochoid equations at parameter t.
//
// t is measured in pen rotations around the track centre, not radians, so
// t in [0, laps] sweeps exactly one closure period. track and roller are
// the fixed and rolling circle radii, pen is the offset from the roller
// centre to the tracing point.
func PositionAt(kind CurveKind, track, roller, pen float64, t float64) Point {
	theta := 2 * math.Pi * t
	if kind == Epitrochoid {
		sum := track + roller
		k := sum / roller
		return Point{
			X: sum*math.Cos(theta) - pen*math.Cos(k*theta),
			Y: sum*math.Sin(theta) - pen*math.Sin(k*theta),
		}
	}
	diff := track - roller
	k := diff / roller
	return Point{
		X: diff*math.Cos(theta) + pen*math.Cos(k*theta),
		Y: diff*math.Sin(theta) - pen*math.Sin(k*theta),
	}
}
