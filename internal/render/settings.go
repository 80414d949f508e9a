package render

import (
	"errors"
	"fmt"
	"math/rand"
)

// ColorMode selects how colors are assigned to path segments. The six
// modes are the full taxonomy.
type ColorMode int

const (
	// Fixed draws the whole curve as one path in Settings.Color.
	Fixed ColorMode = iota
	// RandomPerRun draws the whole curve as one path in a single random
	// color chosen per plan.
	RandomPerRun
	// RandomPerLap colors each lap span independently.
	RandomPerLap
	// RandomEveryNLaps colors each group of GroupSize consecutive laps.
	RandomEveryNLaps
	// RandomPerSpin colors each spin span independently.
	RandomPerSpin
	// RandomEveryNSpins colors each group of GroupSize consecutive spins.
	RandomEveryNSpins
)

var colorModeNames = map[ColorMode]string{
	Fixed:             "fixed",
	RandomPerRun:      "random_per_run",
	RandomPerLap:      "random_per_lap",
	RandomEveryNLaps:  "random_every_n_laps",
	RandomPerSpin:     "random_per_spin",
	RandomEveryNSpins: "random_every_n_spins",
}

func (m ColorMode) String() string {
	if name, ok := colorModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("color_mode(%d)", int(m))
}

// Valid reports whether m is one of the six known modes.
func (m ColorMode) Valid() bool {
	_, ok := colorModeNames[m]
	return ok
}

// ParseColorMode resolves a mode name as printed by String.
func ParseColorMode(name string) (ColorMode, error) {
	for mode, n := range colorModeNames {
		if n == name {
			return mode, nil
		}
	}
	return 0, &UnsupportedColorModeError{Mode: -1, Reason: fmt.Sprintf("unknown mode name %q", name)}
}

// ColorModes lists the six modes in menu order.
func ColorModes() []ColorMode {
	return []ColorMode{Fixed, RandomPerRun, RandomPerLap, RandomEveryNLaps, RandomPerSpin, RandomEveryNSpins}
}

// ErrUnsupportedColorMode is the sentinel wrapped by every plan-building
// failure. Given a valid curve, plan construction cannot fail any other
// way.
var ErrUnsupportedColorMode = errors.New("unsupported color mode")

// UnsupportedColorModeError reports render settings the builder rejects.
type UnsupportedColorModeError struct {
	Mode   ColorMode
	Reason string
}

func (e *UnsupportedColorModeError) Error() string {
	return fmt.Sprintf("unsupported color mode %s: %s", e.Mode, e.Reason)
}

func (e *UnsupportedColorModeError) Unwrap() error { return ErrUnsupportedColorMode }

// Settings configures plan construction.
//
// Rand is the randomness source for the random color modes. It is injected
// rather than taken from a package global so a fixed seed reproduces the
// same plan. Width must be positive; it applies uniformly to every path.
type Settings struct {
	Mode      ColorMode
	Color     Color
	Width     float64
	GroupSize int
	Rand      *rand.Rand
}
