// Package analysis derives human-facing facts about a curve request: how
// fast it closes, how dense and symmetric it will look, and where its
// points sit in the plane. Nothing in the engine depends on this package;
// it feeds the CLI guidance text and the viewer's axis ranges.
package analysis

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/spirograph/internal/curve"
	"github.com/banshee-data/spirograph/internal/geom"
)

// RepeatMetrics summarises closure behaviour for display. It works on
// integer-rounded radii, the way a physical kit is labelled.
//
// SpinsToClose here counts rotations of the roller about its own centre
// (|R-r| or R+r over the gcd, depending on kind). That is a different
// quantity from the engine's spin-span count, which counts rotations
// relative to the track; both are correct, for different questions.
type RepeatMetrics struct {
	GCD          int
	LapsToClose  int
	SpinsToClose int
	Ratio        float64
	OffsetFactor float64
}

// ComputeRepeatMetrics derives RepeatMetrics from a request.
func ComputeRepeatMetrics(req curve.Request) RepeatMetrics {
	track := maxInt(1, int(req.TrackRadius))
	roller := maxInt(1, int(req.RollerRadius))
	g := maxInt(1, int(geom.GCD(uint64(track), uint64(roller))))

	spinNumerator := track + roller
	if req.Kind == geom.Hypotrochoid {
		spinNumerator = absInt(track - roller)
	}

	return RepeatMetrics{
		GCD:          g,
		LapsToClose:  maxInt(1, roller/g),
		SpinsToClose: maxInt(1, spinNumerator/g),
		Ratio:        req.TrackRadius / req.RollerRadius,
		OffsetFactor: req.PenOffset / req.RollerRadius,
	}
}

// ClassifyClosureStructure buckets how quickly the curve repeats.
func ClassifyClosureStructure(laps, spins int) string {
	complexity := maxInt(laps, spins)
	switch {
	case complexity < 8:
		return "simple"
	case complexity < 30:
		return "moderate"
	default:
		return "complex"
	}
}

// ClassifySymmetryFeel estimates how symmetric the pattern will read:
// near-integer track/roller ratios with modest closure repeats look
// strongly symmetric, far-from-integer ratios with many repeats look weak.
func ClassifySymmetryFeel(m RepeatMetrics) string {
	distance := math.Abs(m.Ratio - math.Round(m.Ratio))
	complexity := maxInt(m.LapsToClose, m.SpinsToClose)
	switch {
	case distance < 0.08 && complexity <= 40:
		return "strong"
	case distance >= 0.20 && complexity >= 20:
		return "weak"
	default:
		return "moderate"
	}
}

func offsetBandWeight(offsetFactor float64) float64 {
	switch {
	case offsetFactor < 0.3:
		return 0.2
	case offsetFactor < 0.9:
		return 0.6
	case offsetFactor < 1.2:
		return 1.0
	case offsetFactor < 1.8:
		return 1.5
	default:
		return 1.8
	}
}

// DensityScore estimates visual density from closure repeats, ratio, and
// pen offset band.
func DensityScore(m RepeatMetrics) float64 {
	closure := 0.6*float64(m.LapsToClose) + 0.4*float64(m.SpinsToClose)
	ratioScaled := math.Max(0, math.Min(2, (m.Ratio-1)/3))
	ratioFactor := 0.7 + 0.15*ratioScaled
	offsetMultiplier := 0.8 + 0.2*offsetBandWeight(m.OffsetFactor)
	return closure * ratioFactor * offsetMultiplier
}

// ClassifyDensity buckets a density score for display.
func ClassifyDensity(score float64) string {
	switch {
	case score < 8:
		return "low"
	case score < 25:
		return "medium"
	case score < 80:
		return "high"
	default:
		return "very high"
	}
}

// DescribeOffsetTendency narrates the effect of the pen offset band for
// the given curve kind.
func DescribeOffsetTendency(offsetFactor float64, kind geom.CurveKind) string {
	inner := "inner"
	if kind == geom.Epitrochoid {
		inner = "outer"
	}
	switch {
	case offsetFactor < 0.3:
		return fmt.Sprintf("pen near center; soft low-amplitude %s petals", inner)
	case offsetFactor < 0.9:
		return fmt.Sprintf("pen inside roller; softer %s arcs", inner)
	case offsetFactor < 1.2:
		return fmt.Sprintf("pen near roller rim; classic spiky %s form", inner)
	case offsetFactor < 1.8:
		return fmt.Sprintf("pen outside roller; loopy %s self-intersections", inner)
	default:
		return fmt.Sprintf("pen far outside roller; very loopy %s crossings", inner)
	}
}

// DescribeRatioComplexity narrates the effect of the track/roller ratio.
func DescribeRatioComplexity(ratio float64) string {
	switch {
	case ratio < 2.0:
		return "lower ratio; tends toward simpler large-scale structure"
	case ratio < 4.0:
		return "moderate ratio; likely moderate repeat detail"
	default:
		return "higher ratio; tends toward finer repeated detail"
	}
}

func describeCurveKind(kind geom.CurveKind) string {
	if kind == geom.Epitrochoid {
		return "rolling outside fixed circle (epitrochoid)"
	}
	return "rolling inside fixed circle (hypotrochoid)"
}

func densityNotes(m RepeatMetrics, label string) string {
	var drivers []string
	if maxInt(m.LapsToClose, m.SpinsToClose) >= 30 {
		drivers = append(drivers, "high closure repeats")
	} else if maxInt(m.LapsToClose, m.SpinsToClose) < 8 {
		drivers = append(drivers, "low closure repeats")
	}
	if m.OffsetFactor >= 1.2 {
		drivers = append(drivers, "higher d/r (loopier style)")
	} else if m.OffsetFactor < 0.3 {
		drivers = append(drivers, "low d/r (softer style)")
	}
	if len(drivers) == 0 {
		drivers = append(drivers, "balanced closure repeats and d/r")
	}
	return fmt.Sprintf("%s visual density is driven by %s", label, strings.Join(drivers, ", "))
}

// Describe assembles the full analysis block for a request, one line per
// entry, ready for terminal display.
func Describe(req curve.Request) []string {
	m := ComputeRepeatMetrics(req)
	density := DensityScore(m)
	densityLabel := ClassifyDensity(density)

	return []string{
		fmt.Sprintf("Curve type: %s", describeCurveKind(req.Kind)),
		fmt.Sprintf("Radius ratio R/r: %.3f -> %s", m.Ratio, DescribeRatioComplexity(m.Ratio)),
		fmt.Sprintf("Offset factor d/r: %.3f -> %s", m.OffsetFactor, DescribeOffsetTendency(m.OffsetFactor, req.Kind)),
		fmt.Sprintf("gcd(R, r): %d -> approx lobes: %d", m.GCD, maxInt(1, int(req.TrackRadius))/m.GCD),
		fmt.Sprintf("Closure repeats: laps~%d, spins~%d (structure: %s)",
			m.LapsToClose, m.SpinsToClose, ClassifyClosureStructure(m.LapsToClose, m.SpinsToClose)),
		fmt.Sprintf("Symmetry feel: %s", ClassifySymmetryFeel(m)),
		fmt.Sprintf("Estimated density: %s (score %.1f); %s", densityLabel, density, densityNotes(m, densityLabel)),
	}
}

// Extent is the bounding box and centroid of a point sequence.
type Extent struct {
	MinX, MaxX float64
	MinY, MaxY float64
	CenterX    float64
	CenterY    float64
}

// CurveExtent computes the extent of a generated curve's points.
func CurveExtent(points []geom.Point) Extent {
	if len(points) == 0 {
		return Extent{}
	}

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.X
		ys[i] = p.Y
	}

	return Extent{
		MinX:    floats.Min(xs),
		MaxX:    floats.Max(xs),
		MinY:    floats.Min(ys),
		MaxY:    floats.Max(ys),
		CenterX: stat.Mean(xs, nil),
		CenterY: stat.Mean(ys, nil),
	}
}

// SquareBounds returns a symmetric [-b, b] range that contains the extent
// on both axes, padded by the given fraction. Square axes keep the curve
// undistorted on screen.
func (e Extent) SquareBounds(pad float64) float64 {
	b := math.Max(math.Max(math.Abs(e.MinX), math.Abs(e.MaxX)),
		math.Max(math.Abs(e.MinY), math.Abs(e.MaxY)))
	if b == 0 {
		return 1
	}
	return b * (1 + pad)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
