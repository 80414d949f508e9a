// Package viewer serves the current curve over HTTP. It is the drawing
// surface of the system: the session loop publishes a snapshot after each
// generation and the browser page renders the plan's colored paths. The
// engine never depends on this package.
package viewer

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/banshee-data/spirograph/internal/curve"
	"github.com/banshee-data/spirograph/internal/render"
)

// Snapshot is one published run: the request, its generated curve, and the
// plan built from it.
type Snapshot struct {
	RunID     string
	Request   curve.Request
	Curve     *curve.Curve
	Plan      render.Plan
	CreatedAt time.Time
}

// WebServer handles the HTTP interface for viewing curves. It holds the
// latest snapshot under a mutex; handlers only read it.
type WebServer struct {
	address string
	server  *http.Server

	mu     sync.RWMutex
	latest *Snapshot
}

// WebServerConfig contains configuration options for the web server.
type WebServerConfig struct {
	Address string
}

// NewWebServer creates a web server with the provided configuration.
func NewWebServer(config WebServerConfig) *WebServer {
	ws := &WebServer{address: config.Address}
	ws.server = &http.Server{
		Addr:    ws.address,
		Handler: ws.setupRoutes(),
	}
	return ws
}

func (ws *WebServer) setupRoutes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", ws.handleCurveChart)
	mux.HandleFunc("/api/curve", ws.handleCurveInfo)
	mux.HandleFunc("/healthz", ws.handleHealth)
	return mux
}

// Publish replaces the snapshot the handlers serve.
func (ws *WebServer) Publish(snap Snapshot) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.latest = &snap
}

func (ws *WebServer) snapshot() *Snapshot {
	ws.mu.RLock()
	defer ws.mu.RUnlock()
	return ws.latest
}

// URL returns the address the server listens on as a browsable URL.
func (ws *WebServer) URL() string {
	return fmt.Sprintf("http://localhost%s", ws.address)
}

// Start begins serving in a goroutine and shuts down when ctx is
// cancelled.
func (ws *WebServer) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("viewer server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := ws.server.Shutdown(shutdownCtx); err != nil {
		log.Printf("viewer shutdown error: %v", err)
	}
	return nil
}

func (ws *WebServer) writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// curveInfo is the JSON shape of /api/curve.
type curveInfo struct {
	RunID         string    `json:"run_id"`
	CreatedAt     time.Time `json:"created_at"`
	TrackRadius   float64   `json:"track_radius"`
	RollerRadius  float64   `json:"roller_radius"`
	PenOffset     float64   `json:"pen_offset"`
	CurveKind     string    `json:"curve_kind"`
	Laps          uint64    `json:"laps"`
	Spins         uint64    `json:"spins"`
	LobeCount     uint64    `json:"lobe_count"`
	SamplesPerLap int       `json:"samples_per_lap"`
	PointCount    int       `json:"point_count"`
	LapSpanCount  int       `json:"lap_span_count"`
	SpinSpanCount int       `json:"spin_span_count"`
	PathCount     int       `json:"path_count"`
}

func (ws *WebServer) handleCurveInfo(w http.ResponseWriter, r *http.Request) {
	snap := ws.snapshot()
	if snap == nil {
		ws.writeJSONError(w, http.StatusNotFound, "no curve generated yet")
		return
	}

	info := curveInfo{
		RunID:         snap.RunID,
		CreatedAt:     snap.CreatedAt,
		TrackRadius:   snap.Request.TrackRadius,
		RollerRadius:  snap.Request.RollerRadius,
		PenOffset:     snap.Request.PenOffset,
		CurveKind:     snap.Request.Kind.String(),
		Laps:          snap.Curve.Laps,
		Spins:         snap.Curve.Spins,
		LobeCount:     snap.Curve.LobeCount,
		SamplesPerLap: snap.Curve.SamplesPerLap,
		PointCount:    len(snap.Curve.Points),
		LapSpanCount:  len(snap.Curve.LapSpans),
		SpinSpanCount: len(snap.Curve.SpinSpans),
		PathCount:     len(snap.Plan.Paths),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(info); err != nil {
		log.Printf("failed to encode curve info: %v", err)
	}
}
