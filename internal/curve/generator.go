package curve

import (
	"github.com/banshee-data/spirograph/internal/geom"
)

// baseResolution is the smallest samples-per-lap DefaultResolution will
// return. 360 keeps one sample per degree of pen travel.
const baseResolution = 360

// DefaultResolution picks a samples-per-lap value for the given closure
// period: the smallest multiple of period.Spins that is at least 360. The
// multiple-of-spins property guarantees spin spans divide the sampled
// points exactly (laps and spins are coprime after reduction).
func DefaultResolution(period geom.Period) int {
	spins := int(period.Spins)
	if spins <= 0 {
		return baseResolution
	}
	res := baseResolution
	if rem := res % spins; rem != 0 {
		res += spins - rem
	}
	return res
}

// Generate samples one full closure period of the requested curve and
// derives its lap and spin span partitions.
//
// resolution is the number of samples per lap. Precondition: for exact
// spin-span boundaries, resolution*laps must be divisible by spins — use
// DefaultResolution to satisfy this. An uneven resolution is not a runtime
// failure; the last spin span simply absorbs the remainder.
//
// The returned curve stores laps*resolution+1 points: the closing point
// that equals the first within floating tolerance is appended, so spans
// describe actual stored points rather than an implied wrap.
func Generate(req Request, resolution int) (*Curve, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if resolution <= 0 {
		return nil, &InvalidRequestError{Field: "resolution", Reason: "must be > 0"}
	}

	period, err := geom.ClosurePeriod(req.TrackRadius, req.RollerRadius)
	if err != nil {
		return nil, err
	}

	laps := int(period.Laps)
	total := laps*resolution + 1

	points := make([]geom.Point, total)
	for i := range points {
		t := float64(i) / float64(resolution)
		points[i] = geom.PositionAt(req.Kind, req.TrackRadius, req.RollerRadius, req.PenOffset, t)
	}

	c := &Curve{
		Points:        points,
		LapSpans:      partition(total, laps, SpanLap),
		SpinSpans:     partition(total, int(period.Spins), SpanSpin),
		Laps:          period.Laps,
		Spins:         period.Spins,
		SamplesPerLap: resolution,
		LobeCount:     lobeCount(req, period),
	}
	return c, nil
}

// partition splits total points into count contiguous spans of equal
// stride. The last span also covers the closing point (and any remainder
// from an uneven resolution), so the partition always ends at total.
func partition(total, count int, kind SpanKind) []Span {
	stride := (total - 1) / count
	spans := make([]Span, count)
	for i := range spans {
		start := i * stride
		end := start + stride
		if i == count-1 {
			end = total
		}
		spans[i] = Span{Start: start, End: end, Kind: kind, Ordinal: uint64(i)}
	}
	return spans
}

// lobeCount reports the cusp count: a hypotrochoid whose pen sits exactly
// on the roller rim is a hypocycloid with one cusp per spin. Every other
// configuration has no cusps.
func lobeCount(req Request, period geom.Period) uint64 {
	if req.Kind == geom.Hypotrochoid && req.PenOffset == req.RollerRadius {
		return period.Spins
	}
	return 0
}
