package geom

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnrepresentableRatio is returned when a pair of radii has no closing
// integer ratio within tolerance and the denominator bound. Callers report
// it and abort; no fallback geometry is ever substituted.
var ErrUnrepresentableRatio = errors.New("ratio has no bounded integer representation")

const (
	// ratioTolerance is the relative error allowed between the real ratio
	// and its integer approximation.
	ratioTolerance = 1e-9

	// maxRatioTerm bounds both terms of the reduced ratio. This bounds the
	// closure period, and with it the sample count, for pathological
	// inputs.
	maxRatioTerm = 10_000_000
)

// ReduceRatio converts the real ratio a/b to a minimal integer pair (p, q)
// with gcd(p, q) == 1 and |p/q - a/b| within relative tolerance.
//
// The search walks continued-fraction convergents of a/b, which are coprime
// by construction, and stops as soon as one lands inside tolerance. If no
// convergent with both terms at most maxRatioTerm does, the ratio is
// reported as unrepresentable.
func ReduceRatio(a, b float64) (p, q uint64, err error) {
	if !(a > 0) || !(b > 0) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return 0, 0, fmt.Errorf("ratio %v/%v: %w", a, b, ErrUnrepresentableRatio)
	}

	x := a / b
	if x > float64(maxRatioTerm) || x < 1/float64(maxRatioTerm) {
		return 0, 0, fmt.Errorf("ratio %v/%v out of range: %w", a, b, ErrUnrepresentableRatio)
	}

	// Convergent recurrence: h_i = a_i*h_{i-1} + h_{i-2}, same for k.
	var (
		h0, k0 uint64 = 0, 1
		h1, k1 uint64 = 1, 0
		rem           = x
	)
	for iter := 0; iter < 64; iter++ {
		ai := math.Floor(rem)
		if ai > float64(maxRatioTerm) {
			break
		}
		h2 := uint64(ai)*h1 + h0
		k2 := uint64(ai)*k1 + k0
		if h2 > maxRatioTerm || k2 > maxRatioTerm {
			break
		}
		h0, k0, h1, k1 = h1, k1, h2, k2

		approx := float64(h1) / float64(k1)
		if math.Abs(approx-x) <= ratioTolerance*x {
			return h1, k1, nil
		}

		frac := rem - ai
		if frac == 0 {
			break
		}
		rem = 1 / frac
	}

	return 0, 0, fmt.Errorf("ratio %v/%v: %w", a, b, ErrUnrepresentableRatio)
}

// Period is the minimal closing traversal of a trochoid: the pen completes
// Laps rotations around the track centre while the roller completes Spins
// rotations relative to the track. gcd(Laps, Spins) == 1.
type Period struct {
	Laps  uint64
	Spins uint64
}

// ClosurePeriod computes the closure period for the given radii.
//
// Convention: Laps/Spins is the reduced form of roller/track, so for
// track=100, roller=30 the curve closes after 3 laps and 10 spins. The same
// convention feeds both point sampling and span derivation.
func ClosurePeriod(track, roller float64) (Period, error) {
	p, q, err := ReduceRatio(roller, track)
	if err != nil {
		return Period{}, err
	}
	if p == 0 || q == 0 {
		return Period{}, fmt.Errorf("degenerate ratio %d/%d: %w", p, q, ErrUnrepresentableRatio)
	}
	return Period{Laps: p, Spins: q}, nil
}
