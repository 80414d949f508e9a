package curve

import "github.com/banshee-data/spirograph/internal/geom"

// SpanKind tags the semantic meaning of a point span.
type SpanKind int

const (
	// SpanLap covers one full revolution of the pen around the track
	// centre.
	SpanLap SpanKind = iota
	// SpanSpin covers one full revolution of the roller relative to the
	// track.
	SpanSpin
)

func (k SpanKind) String() string {
	if k == SpanSpin {
		return "spin"
	}
	return "lap"
}

// Span is a contiguous index range over a curve's points. Start is
// inclusive, End exclusive; Start < End <= len(points). Spans of one kind
// partition the whole point sequence with no gaps or overlaps, ordinals
// counting from 0.
type Span struct {
	Start   int
	End     int
	Kind    SpanKind
	Ordinal uint64
}

// Len returns the number of points the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Curve is a generated spirograph curve: points in traversal order plus
// two independent, simultaneous partitions of them into lap and spin
// spans. The final stored point closes the curve, equalling the first
// within floating tolerance.
//
// The metadata fields are derived facts; treat them as read-only.
type Curve struct {
	Points    []geom.Point
	LapSpans  []Span
	SpinSpans []Span

	// Laps and Spins are the closure period the curve was sampled over.
	Laps  uint64
	Spins uint64

	// SamplesPerLap is the resolution the curve was generated with.
	SamplesPerLap int

	// LobeCount is the cusp count when the curve has cusps (hypotrochoid
	// with pen offset equal to the roller radius), else 0. Informational
	// only; nothing downstream depends on it.
	LobeCount uint64
}
