package main

import (
	"fmt"

	"github.com/banshee-data/spirograph/internal/geom"
)

// Guidance text shown before each typed parameter. The hints describe how
// the value shapes the curve, so the user can aim rather than guess.

func guideTrackRadius() string {
	return `R is the fixed track circle. It sets the overall scale of the drawing;
the pattern's shape comes from the ratios R/r and d/r, not from R itself.
Values around 100-320 fill the viewer nicely.`
}

func guideRollerRadius(track float64, kind geom.CurveKind) string {
	where := "inside"
	if kind == geom.Epitrochoid {
		where = "outside"
	}
	return fmt.Sprintf(`r is the circle rolling %s the track (R=%.0f).
The ratio R/r drives the repeat detail:
  R/r near 2-4    large simple lobes
  R/r near 4-9    classic medium patterns
  R/r above 9     fine dense detail
Values of r sharing a large factor with R close quickly (few laps);
coprime values take many laps and fill in densely. r larger than R is
allowed and turns the geometry inside out.`, where, track)
}

func guidePenOffset(roller float64, kind geom.CurveKind) string {
	petals := "inner petals"
	if kind == geom.Epitrochoid {
		petals = "outer petals"
	}
	return fmt.Sprintf(`d is the pen's distance from the rolling circle's centre (r=%.0f).
The band d/r sets the stroke character:
  d/r below 0.3   soft low-amplitude %s
  d/r 0.3-0.9     rounded arcs
  d/r near 1      classic spiky cusps (d = r pinches to points)
  d/r above 1.2   loops and self-intersections
d well past r gets very loopy.`, roller, petals)
}
