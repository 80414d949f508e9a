package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/banshee-data/spirograph/internal/evolve"
	"github.com/banshee-data/spirograph/internal/render"
	"github.com/banshee-data/spirograph/internal/session"
)

func testPrompter(input string) (*prompter, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return newPrompter(bufio.NewScanner(strings.NewReader(input)), out), out
}

func TestPromptInt(t *testing.T) {
	t.Parallel()

	t.Run("blank takes default", func(t *testing.T) {
		t.Parallel()
		p, _ := testPrompter("\n")
		assert.Equal(t, 10, p.promptInt("count", 10, 1, 100))
	})

	t.Run("invalid input reprompts", func(t *testing.T) {
		t.Parallel()
		p, out := testPrompter("nope\n500\n42\n")
		assert.Equal(t, 42, p.promptInt("count", 10, 1, 100))
		assert.Contains(t, out.String(), "between 1 and 100")
	})

	t.Run("eof falls back to default", func(t *testing.T) {
		t.Parallel()
		p, _ := testPrompter("")
		assert.Equal(t, 10, p.promptInt("count", 10, 1, 100))
	})
}

func TestPromptFloat(t *testing.T) {
	t.Parallel()

	p, _ := testPrompter("2.5\n")
	assert.Equal(t, 2.5, p.promptFloat("pause", 1, 0, 10))
}

func TestPromptChoice(t *testing.T) {
	t.Parallel()

	t.Run("accepts a listed name", func(t *testing.T) {
		t.Parallel()
		p, _ := testPrompter("dense\n")
		assert.Equal(t, "dense", p.promptChoice("Complexity", "medium", nameList(evolve.Complexities())))
	})

	t.Run("unknown name reprompts, blank keeps current", func(t *testing.T) {
		t.Parallel()
		p, out := testPrompter("sparkle\n\n")
		assert.Equal(t, "medium", p.promptChoice("Complexity", "medium", nameList(evolve.Complexities())))
		assert.Contains(t, out.String(), "Pick one of")
	})
}

func TestPromptLock(t *testing.T) {
	t.Parallel()

	p, _ := testPrompter("120\n")
	lock := p.promptLock("Lock R", nil)
	if assert.NotNil(t, lock) {
		assert.Equal(t, 120, *lock)
	}

	existing := 50
	p, _ = testPrompter("-\n")
	assert.Nil(t, p.promptLock("Lock R", &existing))

	p, _ = testPrompter("\n")
	kept := p.promptLock("Lock R", &existing)
	if assert.NotNil(t, kept) {
		assert.Equal(t, 50, *kept)
	}
}

func TestDescribeLocks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", describeLocks(evolve.Locks{}))

	track, pen := 200, 40
	assert.Equal(t, "R=200 d=40", describeLocks(evolve.Locks{TrackRadius: &track, PenOffset: &pen}))
}

func TestEditGeometryUsesLastRequestAsDefaults(t *testing.T) {
	t.Parallel()

	s := session.New(1)
	p, out := testPrompter("\n\n\n")

	req, ok := p.editGeometry(s)
	assert.True(t, ok)
	assert.Equal(t, 100.0, req.TrackRadius)
	assert.Equal(t, 30.0, req.RollerRadius)
	assert.Equal(t, 50.0, req.PenOffset)
	assert.Equal(t, s.Kind, req.Kind)
	assert.Contains(t, out.String(), "R/r")
}

func TestEditSettingsFixedColor(t *testing.T) {
	t.Parallel()

	s := session.New(1)
	// complexity, constraints, evolution, color mode, color, width, resolution
	p, _ := testPrompter("simple\nphysical\nnone\nfixed\n#dc143c\n2\n0\n")

	p.editSettings(s)
	assert.Equal(t, evolve.Simple, s.Complexity)
	assert.Equal(t, evolve.Physical, s.Constraint)
	assert.Equal(t, render.Fixed, s.ColorMode)
	assert.Equal(t, render.Color{R: 0xdc, G: 0x14, B: 0x3c, A: 255}, s.Color)
	assert.Equal(t, 2.0, s.LineWidth)
}
