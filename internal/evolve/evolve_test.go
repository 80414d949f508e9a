package evolve

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/spirograph/internal/curve"
	"github.com/banshee-data/spirograph/internal/geom"
)

func TestObserveRecordsBaselineUnconditionally(t *testing.T) {
	t.Parallel()

	for _, mode := range Modes() {
		state := NewState(1)
		state.SetMode(mode)

		_, ok := state.LastRequest()
		assert.False(t, ok)

		req := curve.Request{TrackRadius: 200, RollerRadius: 70, PenOffset: 40, Kind: geom.Hypotrochoid}
		state.Observe(req)

		got, ok := state.LastRequest()
		require.True(t, ok, "mode %s", mode)
		assert.Equal(t, req, got)
	}
}

func TestObserveCopiesTheRequest(t *testing.T) {
	t.Parallel()

	state := NewState(1)
	req := curve.Request{TrackRadius: 200, RollerRadius: 70, PenOffset: 40, Kind: geom.Hypotrochoid}
	state.Observe(req)

	req.TrackRadius = 999
	got, _ := state.LastRequest()
	assert.Equal(t, float64(200), got.TrackRadius)
}

// Every request Next constructs must satisfy the curve request invariants,
// for every combination of mode, complexity, and constraint.
func TestNextAlwaysProducesValidRequests(t *testing.T) {
	t.Parallel()

	state := NewState(7)
	for _, mode := range Modes() {
		state.SetMode(mode)
		for _, complexity := range Complexities() {
			for _, constraint := range Constraints() {
				for iter := 0; iter < 50; iter++ {
					req := state.Next(geom.Hypotrochoid, complexity, constraint, Locks{})
					require.NoError(t, req.Validate(),
						"mode=%s complexity=%s constraint=%s req=%+v", mode, complexity, constraint, req)
					state.Observe(req)
				}
			}
		}
	}
}

func TestNextPhysicalConstraintKeepsRollerInsideTrack(t *testing.T) {
	t.Parallel()

	state := NewState(11)
	for iter := 0; iter < 200; iter++ {
		req := state.Next(geom.Hypotrochoid, Medium, Physical, Locks{})
		assert.Less(t, req.RollerRadius, req.TrackRadius)
	}
}

func TestNextDriftStaysNearBaseline(t *testing.T) {
	t.Parallel()

	state := NewState(3)
	state.SetMode(Drift)
	state.Observe(curve.Request{TrackRadius: 200, RollerRadius: 50, PenOffset: 30, Kind: geom.Hypotrochoid})

	// Track window is [100, 320], so the drift delta is bounded by
	// max(3, 220*0.25) = 55.
	for iter := 0; iter < 100; iter++ {
		req := state.Next(geom.Hypotrochoid, Medium, Extended, Locks{})
		assert.InDelta(t, 200, req.TrackRadius, 55)
		assert.GreaterOrEqual(t, req.TrackRadius, float64(trackRadiusMin))
		assert.LessOrEqual(t, req.TrackRadius, float64(trackRadiusMax))
	}
}

func TestNextDriftClampsIntoWindow(t *testing.T) {
	t.Parallel()

	state := NewState(5)
	state.SetMode(Drift)
	// Baseline far below the track window: drifted values clamp up to the
	// window floor instead of being rejected.
	state.Observe(curve.Request{TrackRadius: 10, RollerRadius: 4, PenOffset: 2, Kind: geom.Hypotrochoid})

	for iter := 0; iter < 50; iter++ {
		req := state.Next(geom.Hypotrochoid, Simple, Physical, Locks{})
		assert.GreaterOrEqual(t, req.TrackRadius, float64(trackRadiusMin))
		require.NoError(t, req.Validate())
	}
}

func TestNextHonorsLocks(t *testing.T) {
	t.Parallel()

	track, roller, pen := 240, 96, 60
	state := NewState(9)
	state.SetMode(Jump)

	for iter := 0; iter < 20; iter++ {
		req := state.Next(geom.Epitrochoid, Dense, Wild, Locks{
			TrackRadius:  &track,
			RollerRadius: &roller,
			PenOffset:    &pen,
		})
		assert.Equal(t, float64(240), req.TrackRadius)
		assert.Equal(t, float64(96), req.RollerRadius)
		assert.Equal(t, float64(60), req.PenOffset)
		assert.Equal(t, geom.Epitrochoid, req.Kind)
		state.Observe(req)
	}
}

func TestNextIsReproducibleUnderFixedSeed(t *testing.T) {
	t.Parallel()

	run := func() []curve.Request {
		state := NewStateWithRand(rand.New(rand.NewSource(21)))
		state.SetMode(Drift)
		var out []curve.Request
		for iter := 0; iter < 20; iter++ {
			req := state.Next(geom.Hypotrochoid, Medium, Extended, Locks{})
			state.Observe(req)
			out = append(out, req)
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestModeChangesOnlyViaSetMode(t *testing.T) {
	t.Parallel()

	state := NewState(13)
	assert.Equal(t, None, state.Mode())

	state.Observe(curve.Request{TrackRadius: 100, RollerRadius: 30, PenOffset: 50, Kind: geom.Hypotrochoid})
	state.Next(geom.Hypotrochoid, Medium, Extended, Locks{})
	assert.Equal(t, None, state.Mode())

	state.SetMode(Jump)
	assert.Equal(t, Jump, state.Mode())
}

func TestParseRoundTrips(t *testing.T) {
	t.Parallel()

	for _, m := range Modes() {
		got, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	for _, c := range Complexities() {
		got, err := ParseComplexity(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	for _, c := range Constraints() {
		got, err := ParseConstraint(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := ParseMode("sideways")
	assert.Error(t, err)
}

func TestStepSize(t *testing.T) {
	t.Parallel()

	state := NewState(1)
	assert.Equal(t, defaultStepSize, state.StepSize())

	state.SetStepSize(0.5)
	assert.Equal(t, 0.5, state.StepSize())

	state.SetStepSize(-1)
	assert.Equal(t, 0.5, state.StepSize(), "non-positive step sizes are ignored")
}
