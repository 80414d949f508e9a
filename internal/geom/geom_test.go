package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionAtStart(t *testing.T) {
	t.Parallel()

	t.Run("hypotrochoid starts on positive x axis", func(t *testing.T) {
		t.Parallel()
		p := PositionAt(Hypotrochoid, 100, 30, 50, 0)
		assert.InDelta(t, 120, p.X, 1e-12) // (R-r)+d
		assert.InDelta(t, 0, p.Y, 1e-12)
	})

	t.Run("epitrochoid starts on positive x axis", func(t *testing.T) {
		t.Parallel()
		p := PositionAt(Epitrochoid, 100, 30, 50, 0)
		assert.InDelta(t, 80, p.X, 1e-12) // (R+r)-d
		assert.InDelta(t, 0, p.Y, 1e-12)
	})
}

// The curve must return to its starting point after exactly Laps pen
// rotations, for both kinds and for impossible geometries.
func TestPositionAtClosure(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name          string
		kind          CurveKind
		track, roller float64
		pen           float64
	}{
		{"classic hypotrochoid", Hypotrochoid, 100, 30, 50},
		{"classic epitrochoid", Epitrochoid, 100, 30, 50},
		{"roller exceeds track", Hypotrochoid, 30, 100, 20},
		{"pen exceeds roller", Epitrochoid, 120, 45, 90},
		{"non integer radii", Hypotrochoid, 102.5, 41, 30},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			period, err := ClosurePeriod(tc.track, tc.roller)
			require.NoError(t, err)

			start := PositionAt(tc.kind, tc.track, tc.roller, tc.pen, 0)
			end := PositionAt(tc.kind, tc.track, tc.roller, tc.pen, float64(period.Laps))
			assert.True(t, start.Near(end, 1e-6), "start %v end %v", start, end)
		})
	}
}

func TestPositionAtDegeneratePen(t *testing.T) {
	t.Parallel()

	// With pen offset 0 the hypotrochoid collapses to a circle of radius R-r.
	for _, tt := range []float64{0, 0.25, 0.5, 1.75} {
		p := PositionAt(Hypotrochoid, 100, 30, 0, tt)
		r := math.Hypot(p.X, p.Y)
		assert.InDelta(t, 70, r, 1e-9)
	}
}

func TestCurveKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hypotrochoid", Hypotrochoid.String())
	assert.Equal(t, "epitrochoid", Epitrochoid.String())
	assert.True(t, Hypotrochoid.Valid())
	assert.False(t, CurveKind(17).Valid())
}
