// Command curve-stats prints one curve's derived numbers as JSON: closure
// period, sample counts, span partitions, repeat metrics, and extent.
// Useful for eyeballing a parameter set without starting the studio.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/banshee-data/spirograph/internal/analysis"
	"github.com/banshee-data/spirograph/internal/curve"
	"github.com/banshee-data/spirograph/internal/geom"
)

var (
	track      = flag.Float64("track", 100, "Fixed track radius R")
	roller     = flag.Float64("roller", 30, "Rolling circle radius r")
	pen        = flag.Float64("pen", 50, "Pen offset d")
	kindName   = flag.String("kind", "hypotrochoid", "Curve kind: hypotrochoid or epitrochoid")
	resolution = flag.Int("resolution", 0, "Samples per lap (0 = automatic)")
)

type statsOutput struct {
	Request       curve.Request          `json:"request"`
	Laps          uint64                 `json:"laps"`
	Spins         uint64                 `json:"spins"`
	SamplesPerLap int                    `json:"samples_per_lap"`
	Points        int                    `json:"points"`
	LapSpans      int                    `json:"lap_spans"`
	SpinSpans     int                    `json:"spin_spans"`
	LobeCount     uint64                 `json:"lobe_count,omitempty"`
	Metrics       analysis.RepeatMetrics `json:"metrics"`
	Extent        analysis.Extent        `json:"extent"`
	Notes         []string               `json:"notes"`
}

func parseKind(name string) (geom.CurveKind, error) {
	switch name {
	case "hypotrochoid", "hypo":
		return geom.Hypotrochoid, nil
	case "epitrochoid", "epi":
		return geom.Epitrochoid, nil
	}
	return 0, fmt.Errorf("unknown curve kind %q", name)
}

func main() {
	flag.Parse()

	kind, err := parseKind(*kindName)
	if err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	req := curve.Request{
		TrackRadius:  *track,
		RollerRadius: *roller,
		PenOffset:    *pen,
		Kind:         kind,
	}

	res := *resolution
	if res <= 0 {
		period, err := geom.ClosurePeriod(req.TrackRadius, req.RollerRadius)
		if err != nil {
			log.Fatalf("Failed to derive closure period: %v", err)
		}
		res = curve.DefaultResolution(period)
	}

	c, err := curve.Generate(req, res)
	if err != nil {
		log.Fatalf("Failed to generate curve: %v", err)
	}

	out := statsOutput{
		Request:       req,
		Laps:          c.Laps,
		Spins:         c.Spins,
		SamplesPerLap: c.SamplesPerLap,
		Points:        len(c.Points),
		LapSpans:      len(c.LapSpans),
		SpinSpans:     len(c.SpinSpans),
		LobeCount:     c.LobeCount,
		Metrics:       analysis.ComputeRepeatMetrics(req),
		Extent:        analysis.CurveExtent(c.Points),
		Notes:         analysis.Describe(req),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		log.Fatalf("Failed to encode stats: %v", err)
	}
}
