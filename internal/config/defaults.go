// Package config loads optional session defaults from a JSON file. Fields
// omitted from the file keep their built-in values, so partial configs are
// safe.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/banshee-data/spirograph/internal/evolve"
	"github.com/banshee-data/spirograph/internal/render"
	"github.com/banshee-data/spirograph/internal/session"
)

// Defaults mirrors the adjustable session settings. Pointer fields
// distinguish "absent" from zero values.
type Defaults struct {
	Complexity    *string  `json:"complexity,omitempty"`
	Constraint    *string  `json:"constraint,omitempty"`
	Evolution     *string  `json:"evolution,omitempty"`
	ColorMode     *string  `json:"color_mode,omitempty"`
	Color         *string  `json:"color,omitempty"`
	LineWidth     *float64 `json:"line_width,omitempty"`
	LapsPerColor  *int     `json:"laps_per_color,omitempty"`
	SpinsPerColor *int     `json:"spins_per_color,omitempty"`
	Resolution    *int     `json:"resolution,omitempty"`
	Listen        *string  `json:"listen,omitempty"`
}

// maxFileSize bounds config reads (1MB).
const maxFileSize = 1 * 1024 * 1024

// Load reads a Defaults from a JSON file. The path must have a .json
// extension and stay under the max file size.
func Load(path string) (*Defaults, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var d Defaults
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &d, nil
}

// Apply copies the present fields onto the session state. Unknown enum
// names are reported rather than silently skipped.
func (d *Defaults) Apply(s *session.State) error {
	if d.Complexity != nil {
		c, err := evolve.ParseComplexity(*d.Complexity)
		if err != nil {
			return err
		}
		s.Complexity = c
	}
	if d.Constraint != nil {
		c, err := evolve.ParseConstraint(*d.Constraint)
		if err != nil {
			return err
		}
		s.Constraint = c
	}
	if d.Evolution != nil {
		m, err := evolve.ParseMode(*d.Evolution)
		if err != nil {
			return err
		}
		s.Evolution.SetMode(m)
	}
	if d.ColorMode != nil {
		m, err := render.ParseColorMode(*d.ColorMode)
		if err != nil {
			return err
		}
		s.ColorMode = m
	}
	if d.Color != nil {
		s.Color = render.ParseColor(*d.Color, s.Color)
	}
	if d.LineWidth != nil && *d.LineWidth > 0 {
		s.LineWidth = *d.LineWidth
	}
	if d.LapsPerColor != nil && *d.LapsPerColor > 0 {
		s.LapsPerColor = *d.LapsPerColor
	}
	if d.SpinsPerColor != nil && *d.SpinsPerColor > 0 {
		s.SpinsPerColor = *d.SpinsPerColor
	}
	if d.Resolution != nil && *d.Resolution > 0 {
		s.Resolution = *d.Resolution
	}
	return nil
}
