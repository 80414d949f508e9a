package viewer

import (
	"bytes"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/banshee-data/spirograph/internal/analysis"
	"github.com/banshee-data/spirograph/internal/render"
)

// defaultMaxPoints caps the chart payload. Dense curves are downsampled by
// stride per path; override with the max_points query param.
const defaultMaxPoints = 20000

// handleCurveChart renders the latest plan as an ECharts line page, one
// series per drawable path so each keeps its own color.
// Query params:
//   - max_points (optional) to reduce payload size
func (ws *WebServer) handleCurveChart(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	snap := ws.snapshot()
	if snap == nil {
		ws.writeJSONError(w, http.StatusNotFound, "no curve generated yet")
		return
	}

	maxPoints := defaultMaxPoints
	if mp := r.URL.Query().Get("max_points"); mp != "" {
		if v, err := strconv.Atoi(mp); err == nil && v >= 100 && v <= 200000 {
			maxPoints = v
		}
	}

	stride := 1
	if total := len(snap.Curve.Points); total > maxPoints {
		stride = int(math.Ceil(float64(total) / float64(maxPoints)))
	}

	// Square, symmetric axes keep the curve undistorted.
	bound := analysis.CurveExtent(snap.Curve.Points).SquareBounds(0.05)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Spirograph",
			Theme:     "dark",
			Width:     "900px",
			Height:    "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s R=%g r=%g d=%g", snap.Request.Kind, snap.Request.TrackRadius, snap.Request.RollerRadius, snap.Request.PenOffset),
			Subtitle: fmt.Sprintf("run=%s laps=%d spins=%d points=%d paths=%d stride=%d",
				snap.RunID, snap.Curve.Laps, snap.Curve.Spins, len(snap.Curve.Points), len(snap.Plan.Paths), stride),
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: -bound, Max: bound, Show: opts.Bool(false)}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: -bound, Max: bound, Show: opts.Bool(false)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	)

	for i, path := range snap.Plan.Paths {
		line.AddSeries(fmt.Sprintf("path-%d", i), pathSeries(path, stride),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: path.Color.Hex(), Width: float32(path.Width)}),
		)
	}

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		ws.writeJSONError(w, http.StatusInternalServerError, fmt.Sprintf("failed to render chart: %v", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// pathSeries converts a drawable path to chart data, keeping the final
// point even when downsampling so paths still join up.
func pathSeries(path render.Path, stride int) []opts.LineData {
	data := make([]opts.LineData, 0, len(path.Points)/stride+2)
	for i := 0; i < len(path.Points); i += stride {
		p := path.Points[i]
		data = append(data, opts.LineData{Value: []interface{}{p.X, p.Y}})
	}
	if last := len(path.Points) - 1; last%stride != 0 {
		p := path.Points[last]
		data = append(data, opts.LineData{Value: []interface{}{p.X, p.Y}})
	}
	return data
}
