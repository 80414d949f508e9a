package viewer

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/spirograph/internal/curve"
	"github.com/banshee-data/spirograph/internal/geom"
	"github.com/banshee-data/spirograph/internal/render"
)

func publishedServer(t *testing.T) *WebServer {
	t.Helper()

	c, err := curve.Generate(curve.Request{
		TrackRadius: 100, RollerRadius: 30, PenOffset: 50, Kind: geom.Hypotrochoid,
	}, 360)
	require.NoError(t, err)

	plan, err := render.BuildPlan(c, render.Settings{
		Mode:  render.RandomPerLap,
		Width: 1,
		Rand:  rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)

	ws := NewWebServer(WebServerConfig{Address: ":0"})
	ws.Publish(Snapshot{
		RunID:     "run-1",
		Request:   curve.Request{TrackRadius: 100, RollerRadius: 30, PenOffset: 50, Kind: geom.Hypotrochoid},
		Curve:     c,
		Plan:      plan,
		CreatedAt: time.Now(),
	})
	return ws
}

func TestHandleCurveInfo(t *testing.T) {
	t.Parallel()

	t.Run("empty server reports not found", func(t *testing.T) {
		t.Parallel()
		ws := NewWebServer(WebServerConfig{Address: ":0"})
		rec := httptest.NewRecorder()
		ws.setupRoutes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/curve", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("published snapshot is served", func(t *testing.T) {
		t.Parallel()
		ws := publishedServer(t)
		rec := httptest.NewRecorder()
		ws.setupRoutes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/curve", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var info curveInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, "run-1", info.RunID)
		assert.Equal(t, uint64(3), info.Laps)
		assert.Equal(t, uint64(10), info.Spins)
		assert.Equal(t, 1081, info.PointCount)
		assert.Equal(t, 3, info.PathCount)
		assert.Equal(t, "hypotrochoid", info.CurveKind)
	})
}

func TestHandleCurveChart(t *testing.T) {
	t.Parallel()

	t.Run("renders an html chart page", func(t *testing.T) {
		t.Parallel()
		ws := publishedServer(t)
		rec := httptest.NewRecorder()
		ws.setupRoutes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "echarts")
	})

	t.Run("unknown path is a 404", func(t *testing.T) {
		t.Parallel()
		ws := publishedServer(t)
		rec := httptest.NewRecorder()
		ws.setupRoutes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("empty server reports not found", func(t *testing.T) {
		t.Parallel()
		ws := NewWebServer(WebServerConfig{Address: ":0"})
		rec := httptest.NewRecorder()
		ws.setupRoutes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	ws := NewWebServer(WebServerConfig{Address: ":0"})
	rec := httptest.NewRecorder()
	ws.setupRoutes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
