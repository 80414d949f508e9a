// Package session owns the state of one interactive run of the studio:
// the current curve kind, render settings, randomness profile, per-field
// locks, the evolution baseline, and a log of generated runs. It is the
// only stateful object in the system and is never shared between
// goroutines.
package session

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/banshee-data/spirograph/internal/curve"
	"github.com/banshee-data/spirograph/internal/evolve"
	"github.com/banshee-data/spirograph/internal/geom"
	"github.com/banshee-data/spirograph/internal/render"
)

// RunRecord is one generated curve in the session history.
type RunRecord struct {
	ID        string
	Request   curve.Request
	Laps      uint64
	Spins     uint64
	Points    int
	CreatedAt time.Time
}

// State is the mutable session state. Zero values are not useful; use New.
type State struct {
	Kind       geom.CurveKind
	Complexity evolve.Complexity
	Constraint evolve.Constraint

	ColorMode     render.ColorMode
	Color         render.Color
	LapsPerColor  int
	SpinsPerColor int
	LineWidth     float64

	// Resolution overrides samples-per-lap when positive; 0 picks
	// curve.DefaultResolution per generated curve.
	Resolution int

	Locks     evolve.Locks
	Evolution *evolve.State

	runs       []RunRecord
	renderRand *rand.Rand
}

// New creates a session with the original program's defaults: extended
// constraints, random-every-10-spins coloring, and a fresh evolution
// state in mode none.
func New(seed int64) *State {
	return &State{
		Kind:          geom.Hypotrochoid,
		Complexity:    evolve.Medium,
		Constraint:    evolve.Extended,
		ColorMode:     render.RandomEveryNSpins,
		Color:         render.Color{A: 255}, // black
		LapsPerColor:  20,
		SpinsPerColor: 10,
		LineWidth:     1.0,
		Evolution:     evolve.NewState(seed),
		renderRand:    rand.New(rand.NewSource(seed + 1)),
	}
}

// Interval resolves the group size for the current color mode: laps per
// color for every-N-laps, spins per color for every-N-spins, 1 otherwise.
func (s *State) Interval() int {
	switch s.ColorMode {
	case render.RandomEveryNLaps:
		return maxInt(1, s.LapsPerColor)
	case render.RandomEveryNSpins:
		return maxInt(1, s.SpinsPerColor)
	default:
		return 1
	}
}

// RenderSettings assembles the render settings for the next plan from the
// session's display state and its render randomness source.
func (s *State) RenderSettings() render.Settings {
	return render.Settings{
		Mode:      s.ColorMode,
		Color:     s.Color,
		Width:     s.LineWidth,
		GroupSize: s.Interval(),
		Rand:      s.renderRand,
	}
}

// ResolutionFor picks the samples-per-lap for a period: the session
// override when set, otherwise the period's default.
func (s *State) ResolutionFor(period geom.Period) int {
	if s.Resolution > 0 {
		return s.Resolution
	}
	return curve.DefaultResolution(period)
}

// NextRandomRequest draws the next request from the evolution state under
// the session's profile and locks.
func (s *State) NextRandomRequest() curve.Request {
	return s.Evolution.Next(s.Kind, s.Complexity, s.Constraint, s.Locks)
}

// RecordRun logs a successful generation, tags it with a fresh run ID,
// and feeds the request back into the evolution baseline.
func (s *State) RecordRun(req curve.Request, c *curve.Curve) RunRecord {
	rec := RunRecord{
		ID:        uuid.NewString(),
		Request:   req,
		Laps:      c.Laps,
		Spins:     c.Spins,
		Points:    len(c.Points),
		CreatedAt: time.Now(),
	}
	s.runs = append(s.runs, rec)
	s.Evolution.Observe(req)
	return rec
}

// Runs returns the session history, oldest first.
func (s *State) Runs() []RunRecord { return s.runs }

// LastRequest returns the most recent successfully generated request.
func (s *State) LastRequest() (curve.Request, bool) {
	return s.Evolution.LastRequest()
}

// ToggleKind flips between the two curve kinds and returns the new one.
func (s *State) ToggleKind() geom.CurveKind {
	if s.Kind == geom.Hypotrochoid {
		s.Kind = geom.Epitrochoid
	} else {
		s.Kind = geom.Hypotrochoid
	}
	return s.Kind
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
