package render

import (
	"github.com/banshee-data/spirograph/internal/curve"
	"github.com/banshee-data/spirograph/internal/geom"
)

// Path is one drawable polyline: a sub-slice of the source curve's points
// (shared, never copied), a color, and a stroke width.
type Path struct {
	Points []geom.Point
	Color  Color
	Width  float64
}

// Plan is an ordered list of drawable paths covering the full point range
// of its source curve. Successive paths share one boundary point so the
// drawn line has no visible seams.
type Plan struct {
	Paths []Path
}

// PointCount returns the number of points in the underlying curve covered
// by the plan, counting shared boundary points once.
func (p Plan) PointCount() int {
	total := 0
	for i, path := range p.Paths {
		total += len(path.Points)
		if i > 0 {
			total-- // boundary point shared with the previous path
		}
	}
	return total
}

// BuildPlan partitions a generated curve into colored paths according to
// the settings.
//
// The only failure is an UnsupportedColorModeError: an unknown mode, or a
// group size of 0 for an every-N mode (grouping every span by itself would
// silently reinterpret the mode as per-span, so it is rejected instead).
func BuildPlan(c *curve.Curve, settings Settings) (Plan, error) {
	switch settings.Mode {
	case Fixed:
		return wholeCurvePlan(c, settings, settings.Color), nil
	case RandomPerRun:
		return wholeCurvePlan(c, settings, randomColor(settings.Rand)), nil
	case RandomPerLap:
		return groupedPlan(c, c.LapSpans, 1, settings), nil
	case RandomPerSpin:
		return groupedPlan(c, c.SpinSpans, 1, settings), nil
	case RandomEveryNLaps, RandomEveryNSpins:
		if settings.GroupSize < 1 {
			return Plan{}, &UnsupportedColorModeError{Mode: settings.Mode, Reason: "group size must be >= 1"}
		}
		spans := c.LapSpans
		if settings.Mode == RandomEveryNSpins {
			spans = c.SpinSpans
		}
		return groupedPlan(c, spans, settings.GroupSize, settings), nil
	default:
		return Plan{}, &UnsupportedColorModeError{Mode: settings.Mode, Reason: "unknown mode"}
	}
}

func wholeCurvePlan(c *curve.Curve, settings Settings, color Color) Plan {
	return Plan{Paths: []Path{{
		Points: c.Points,
		Color:  color,
		Width:  settings.Width,
	}}}
}

// groupedPlan emits one path per group of n consecutive spans, merging
// adjacent spans that share a group rather than repeating same-colored
// paths. Each path extends one point past its last span so it joins the
// next path without a gap.
func groupedPlan(c *curve.Curve, spans []curve.Span, n int, settings Settings) Plan {
	groups := (len(spans) + n - 1) / n
	paths := make([]Path, 0, groups)

	for g := 0; g < groups; g++ {
		first := spans[g*n]
		last := spans[min(g*n+n, len(spans))-1]

		end := last.End
		if end < len(c.Points) {
			end++ // share the boundary point with the next path
		}

		paths = append(paths, Path{
			Points: c.Points[first.Start:end],
			Color:  randomColor(settings.Rand),
			Width:  settings.Width,
		})
	}

	return Plan{Paths: paths}
}
