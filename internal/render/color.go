// Package render maps a generated curve into colored drawable paths. A
// render plan is decoupled from curve geometry: the renderer that consumes
// it needs no knowledge of laps, spins, or radii, and the engine needs no
// knowledge of the drawing surface.
package render

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Color is an 8-bit RGBA color. No domain invariant beyond byte range.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Hex returns the color as "#rrggbb" (alpha is dropped; the web surface
// treats paths as opaque).
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var namedColors = map[string]Color{
	"black":   {0, 0, 0, 255},
	"white":   {255, 255, 255, 255},
	"red":     {255, 0, 0, 255},
	"green":   {0, 128, 0, 255},
	"blue":    {0, 0, 255, 255},
	"yellow":  {255, 255, 0, 255},
	"cyan":    {0, 255, 255, 255},
	"magenta": {255, 0, 255, 255},
	"gray":    {128, 128, 128, 255},
	"grey":    {128, 128, 128, 255},
}

// ParseColor interprets a user-entered color: a known name, "#rrggbb" (or
// "rrggbb"), or "r,g,b" decimal triple. Unparseable input returns the
// fallback unchanged.
func ParseColor(value string, fallback Color) Color {
	cleaned := strings.ToLower(strings.TrimSpace(value))
	if cleaned == "" {
		return fallback
	}

	if c, ok := namedColors[cleaned]; ok {
		return c
	}

	hex := strings.TrimPrefix(cleaned, "#")
	if len(hex) == 6 {
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
		}
	}

	if strings.Contains(cleaned, ",") {
		parts := strings.Split(cleaned, ",")
		if len(parts) == 3 {
			var ch [3]uint8
			for i, part := range parts {
				v, err := strconv.Atoi(strings.TrimSpace(part))
				if err != nil || v < 0 || v > 255 {
					return fallback
				}
				ch[i] = uint8(v)
			}
			return Color{R: ch[0], G: ch[1], B: ch[2], A: 255}
		}
	}

	return fallback
}

// randomColor draws an opaque color from the injected source.
func randomColor(rng *rand.Rand) Color {
	return Color{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
		A: 255,
	}
}
