package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/spirograph/internal/curve"
	"github.com/banshee-data/spirograph/internal/geom"
	"github.com/banshee-data/spirograph/internal/render"
)

func TestInterval(t *testing.T) {
	t.Parallel()

	s := New(1)

	s.ColorMode = render.RandomEveryNLaps
	s.LapsPerColor = 5
	assert.Equal(t, 5, s.Interval())

	s.ColorMode = render.RandomEveryNSpins
	s.SpinsPerColor = 8
	assert.Equal(t, 8, s.Interval())

	s.SpinsPerColor = 0
	assert.Equal(t, 1, s.Interval(), "degenerate per-color counts floor at 1")

	s.ColorMode = render.Fixed
	assert.Equal(t, 1, s.Interval())
}

func TestResolutionFor(t *testing.T) {
	t.Parallel()

	s := New(1)
	period := geom.Period{Laps: 3, Spins: 7}

	assert.Equal(t, 364, s.ResolutionFor(period), "auto resolution is a multiple of spins")

	s.Resolution = 500
	assert.Equal(t, 500, s.ResolutionFor(period))
}

func TestRecordRun(t *testing.T) {
	t.Parallel()

	s := New(1)
	req := curve.Request{TrackRadius: 100, RollerRadius: 30, PenOffset: 50, Kind: geom.Hypotrochoid}
	c, err := curve.Generate(req, 360)
	require.NoError(t, err)

	rec := s.RecordRun(req, c)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, uint64(3), rec.Laps)
	assert.Equal(t, 1081, rec.Points)

	require.Len(t, s.Runs(), 1)

	last, ok := s.LastRequest()
	require.True(t, ok, "recording a run updates the evolution baseline")
	assert.Equal(t, req, last)

	rec2 := s.RecordRun(req, c)
	assert.NotEqual(t, rec.ID, rec2.ID)
	assert.Len(t, s.Runs(), 2)
}

func TestToggleKind(t *testing.T) {
	t.Parallel()

	s := New(1)
	assert.Equal(t, geom.Hypotrochoid, s.Kind)
	assert.Equal(t, geom.Epitrochoid, s.ToggleKind())
	assert.Equal(t, geom.Hypotrochoid, s.ToggleKind())
}

func TestRenderSettingsReflectSessionState(t *testing.T) {
	t.Parallel()

	s := New(1)
	s.ColorMode = render.RandomEveryNSpins
	s.SpinsPerColor = 6
	s.LineWidth = 2

	settings := s.RenderSettings()
	assert.Equal(t, render.RandomEveryNSpins, settings.Mode)
	assert.Equal(t, 6, settings.GroupSize)
	assert.Equal(t, 2.0, settings.Width)
	assert.NotNil(t, settings.Rand)
}
