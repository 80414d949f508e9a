// Package evolve mutates curve parameters across successive runs. It owns
// the drift/jump state machine: the session feeds every successful request
// back in through Observe, and Next constructs the following random request
// from the recorded baseline, the complexity and constraint profiles, and
// any per-field locks.
//
// The engine and the plan builder never see this package; it only shapes
// the next request before generation.
package evolve

import (
	"fmt"
	"math/rand"

	"github.com/banshee-data/spirograph/internal/curve"
	"github.com/banshee-data/spirograph/internal/geom"
)

// Mode is the parameter evolution mode. It changes only on explicit user
// action, never as a side effect of generation.
type Mode int

const (
	// None draws every parameter fresh, with no memory of previous runs.
	None Mode = iota
	// Drift nudges each parameter by a bounded random delta around the
	// previous run's value.
	Drift
	// Jump mostly drifts but occasionally takes a large step across the
	// parameter window.
	Jump
)

var modeNames = map[Mode]string{None: "none", Drift: "drift", Jump: "jump"}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Complexity biases random parameter selection toward simpler or denser
// patterns.
type Complexity int

const (
	Simple Complexity = iota
	Medium
	Dense
)

var complexityNames = map[Complexity]string{Simple: "simple", Medium: "medium", Dense: "dense"}

func (c Complexity) String() string {
	if n, ok := complexityNames[c]; ok {
		return n
	}
	return fmt.Sprintf("complexity(%d)", int(c))
}

// Constraint bounds how far random parameters may leave physical
// spirograph territory.
type Constraint int

const (
	// Physical stays close to a real kit: roller strictly inside the track.
	Physical Constraint = iota
	// Extended allows roller radii up to twice the track and pens past the
	// roller rim.
	Extended
	// Wild is very permissive; expect frequent self-intersections.
	Wild
)

var constraintNames = map[Constraint]string{Physical: "physical", Extended: "extended", Wild: "wild"}

func (c Constraint) String() string {
	if n, ok := constraintNames[c]; ok {
		return n
	}
	return fmt.Sprintf("constraint(%d)", int(c))
}

// Locks pins individual parameters during random runs. A nil field leaves
// the parameter free to evolve.
type Locks struct {
	TrackRadius  *int
	RollerRadius *int
	PenOffset    *int
}

const (
	trackRadiusMin = 100
	trackRadiusMax = 320

	// maxLapsToClose caps how slowly a randomly chosen roller may close;
	// candidates above it are retried.
	maxLapsToClose       = 200
	rollerSearchAttempts = 80

	jumpChance = 0.25
	jumpScale  = 0.5

	// defaultStepSize is the drift window as a fraction of the parameter
	// window.
	defaultStepSize = 0.25
	driftFloor      = 3
)

// State is the session-scoped evolution state. It is owned by a single
// session loop and is not safe for concurrent use.
type State struct {
	mode     Mode
	stepSize float64
	last     *curve.Request
	rng      *rand.Rand
}

// NewState creates a State in mode None with the default step size and a
// source seeded with seed.
func NewState(seed int64) *State {
	return NewStateWithRand(rand.New(rand.NewSource(seed)))
}

// NewStateWithRand creates a State around an injected randomness source.
func NewStateWithRand(rng *rand.Rand) *State {
	return &State{stepSize: defaultStepSize, rng: rng}
}

// Mode returns the current evolution mode.
func (s *State) Mode() Mode { return s.mode }

// SetMode switches the evolution mode. The recorded baseline is kept, so
// switching into drift mid-session drifts from the last observed request.
func (s *State) SetMode(m Mode) { s.mode = m }

// StepSize returns the drift window fraction.
func (s *State) StepSize() float64 { return s.stepSize }

// SetStepSize adjusts the drift window fraction. Non-positive values are
// ignored.
func (s *State) SetStepSize(v float64) {
	if v > 0 {
		s.stepSize = v
	}
}

// Observe records a successfully generated request as the evolution
// baseline. It runs unconditionally, in every mode, so a later switch to
// drift always has a defined starting point.
func (s *State) Observe(req curve.Request) {
	r := req
	s.last = &r
}

// LastRequest returns the recorded baseline, if any.
func (s *State) LastRequest() (curve.Request, bool) {
	if s.last == nil {
		return curve.Request{}, false
	}
	return *s.last, true
}

// Next constructs the next random request. Locked fields are taken
// verbatim; free fields are drawn according to the current mode, the
// complexity and constraint profiles, and the recorded baseline. Results
// are clamped into the request's domain invariants rather than rejected,
// since random runs happen without user correction.
func (s *State) Next(kind geom.CurveKind, complexity Complexity, constraint Constraint, locks Locks) curve.Request {
	track := s.pick(locks.TrackRadius, func() int { return s.nextTrackRadius() })
	roller := s.pick(locks.RollerRadius, func() int { return s.nextRollerRadius(track, complexity, constraint) })
	pen := s.pick(locks.PenOffset, func() int { return s.nextPenOffset(roller, complexity, constraint) })
	return curve.Request{
		TrackRadius:  float64(track),
		RollerRadius: float64(roller),
		PenOffset:    float64(pen),
		Kind:         kind,
	}
}

func (s *State) pick(locked *int, draw func() int) int {
	if locked != nil {
		return *locked
	}
	return draw()
}

func (s *State) nextTrackRadius() int {
	return s.evolveValue(s.prevTrack(), trackRadiusMin, trackRadiusMax)
}

// nextRollerRadius draws a roller inside the complexity profile's ratio
// window, capped by the constraint mode, retrying for a candidate that
// closes within maxLapsToClose laps. If none of the attempts closes fast
// enough the fastest-closing candidate wins.
func (s *State) nextRollerRadius(track int, complexity Complexity, constraint Constraint) int {
	ratioMin, ratioMax := complexity.ratioWindow()

	limit := track - 1
	switch constraint {
	case Extended:
		limit = track * 2
	case Wild:
		limit = track * 3
	}
	if limit < 2 {
		limit = 2
	}

	lo := maxInt(2, int(float64(track)/ratioMax))
	hi := minInt(limit, int(float64(track)/ratioMin))
	if hi < lo {
		hi = lo
	}

	prev := s.prevRoller()
	bestR, bestLaps := 0, 0
	for attempt := 0; attempt < rollerSearchAttempts; attempt++ {
		candidate := maxInt(2, s.evolveValue(prev, lo, hi))
		laps := lapsToClose(track, candidate)
		if laps <= maxLapsToClose {
			return candidate
		}
		if bestR == 0 || laps < bestLaps {
			bestR, bestLaps = candidate, laps
		}
	}
	return bestR
}

func (s *State) nextPenOffset(roller int, complexity Complexity, constraint Constraint) int {
	factor := complexity.offsetFactorMax()
	if constraint == Wild {
		factor *= 1.5
	}
	hi := int(float64(roller) * factor)
	if hi < 1 {
		hi = 1
	}
	return s.evolveValue(s.prevPen(), 1, hi)
}

func (c Complexity) ratioWindow() (lo, hi float64) {
	switch c {
	case Simple:
		return 2.5, 4.5
	case Dense:
		return 5.0, 14.0
	default:
		return 3.5, 9.0
	}
}

func (c Complexity) offsetFactorMax() float64 {
	switch c {
	case Simple:
		return 1.2
	case Dense:
		return 2.2
	default:
		return 1.6
	}
}

// evolveValue draws the next value for a parameter windowed to [lo, hi].
// Mode None, or a missing baseline, draws uniformly. Jump takes a large
// step with probability jumpChance; otherwise the value drifts by at most
// max(driftFloor, span*stepSize) and is clamped back into the window.
func (s *State) evolveValue(prev *int, lo, hi int) int {
	if prev == nil || s.mode == None {
		return s.uniform(lo, hi)
	}

	span := hi - lo
	if s.mode == Jump && s.rng.Float64() < jumpChance {
		jump := int(float64(span) * jumpScale)
		return clampInt(*prev+s.uniform(-jump, jump), lo, hi)
	}

	drift := maxInt(driftFloor, int(float64(span)*s.stepSize))
	return clampInt(*prev+s.uniform(-drift, drift), lo, hi)
}

func (s *State) uniform(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *State) prevTrack() *int {
	if s.last == nil {
		return nil
	}
	v := int(s.last.TrackRadius)
	return &v
}

func (s *State) prevRoller() *int {
	if s.last == nil {
		return nil
	}
	v := int(s.last.RollerRadius)
	return &v
}

func (s *State) prevPen() *int {
	if s.last == nil {
		return nil
	}
	v := int(s.last.PenOffset)
	return &v
}

// lapsToClose is the integer closure shortcut for integer radii: the
// roller divided by gcd with the track.
func lapsToClose(track, roller int) int {
	g := geom.GCD(uint64(track), uint64(roller))
	if g == 0 {
		return 1
	}
	return maxInt(1, roller/int(g))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
