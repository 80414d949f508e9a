package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/banshee-data/spirograph/internal/analysis"
	"github.com/banshee-data/spirograph/internal/curve"
	"github.com/banshee-data/spirograph/internal/evolve"
	"github.com/banshee-data/spirograph/internal/render"
	"github.com/banshee-data/spirograph/internal/session"
)

// prompter wraps terminal input and output for the menu loop. Reads go
// through a scanner so tests can drive it with a string.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(in *bufio.Scanner, out io.Writer) *prompter {
	return &prompter{in: in, out: out}
}

func nameList[T fmt.Stringer](items []T) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.String()
	}
	return names
}

// readLine prints the prompt and reads one line. ok is false on EOF.
func (p *prompter) readLine(prompt string) (string, bool) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		return "", false
	}
	return p.in.Text(), true
}

// promptInt asks for an integer in [lo, hi]. Blank input takes the
// default; invalid input re-prompts.
func (p *prompter) promptInt(label string, def, lo, hi int) int {
	for {
		line, ok := p.readLine(fmt.Sprintf("%s [%d]: ", label, def))
		if !ok {
			return def
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return def
		}
		v, err := strconv.Atoi(line)
		if err != nil || v < lo || v > hi {
			fmt.Fprintf(p.out, "Enter a whole number between %d and %d.\n", lo, hi)
			continue
		}
		return v
	}
}

// promptFloat asks for a number in [lo, hi]. Blank input takes the
// default; invalid input re-prompts.
func (p *prompter) promptFloat(label string, def, lo, hi float64) float64 {
	for {
		line, ok := p.readLine(fmt.Sprintf("%s [%g]: ", label, def))
		if !ok {
			return def
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return def
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil || v < lo || v > hi {
			fmt.Fprintf(p.out, "Enter a number between %g and %g.\n", lo, hi)
			continue
		}
		return v
	}
}

// promptChoice asks for one of the listed names. Blank keeps the current
// value; unknown names re-prompt.
func (p *prompter) promptChoice(label, current string, names []string) string {
	for {
		line, ok := p.readLine(fmt.Sprintf("%s (%s) [%s]: ", label, strings.Join(names, "/"), current))
		if !ok {
			return current
		}
		line = strings.ToLower(strings.TrimSpace(line))
		if line == "" {
			return current
		}
		for _, n := range names {
			if line == n {
				return line
			}
		}
		fmt.Fprintf(p.out, "Pick one of: %s.\n", strings.Join(names, ", "))
	}
}

func (p *prompter) printStatus(s *session.State) {
	locks := describeLocks(s.Locks)
	fmt.Fprintf(p.out, "[%s | %s complexity | %s constraints | evolution %s | colors %s | locks %s]\n",
		s.Kind, s.Complexity, s.Constraint, s.Evolution.Mode(), s.ColorMode, locks)
}

func describeLocks(l evolve.Locks) string {
	var parts []string
	if l.TrackRadius != nil {
		parts = append(parts, fmt.Sprintf("R=%d", *l.TrackRadius))
	}
	if l.RollerRadius != nil {
		parts = append(parts, fmt.Sprintf("r=%d", *l.RollerRadius))
	}
	if l.PenOffset != nil {
		parts = append(parts, fmt.Sprintf("d=%d", *l.PenOffset))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

func (p *prompter) printRun(rec session.RunRecord, c *curve.Curve) {
	req := rec.Request
	fmt.Fprintf(p.out, "\nRun %s: %s R=%.0f r=%.0f d=%.0f -> %d laps, %d spins, %d points\n",
		rec.ID[:8], req.Kind, req.TrackRadius, req.RollerRadius, req.PenOffset,
		c.Laps, c.Spins, len(c.Points))
	if c.LobeCount > 0 {
		fmt.Fprintf(p.out, "Pen on roller rim: expect %d lobes.\n", c.LobeCount)
	}
}

func (p *prompter) printAnalysis(req curve.Request) {
	fmt.Fprintln(p.out)
	for _, line := range analysis.Describe(req) {
		fmt.Fprintf(p.out, "  %s\n", line)
	}
}

// editGeometry walks the user through typing R, r, and d, printing the
// guidance block before each value. ok is false when input ends early.
func (p *prompter) editGeometry(s *session.State) (curve.Request, bool) {
	base := curve.Request{TrackRadius: 100, RollerRadius: 30, PenOffset: 50}
	if last, ok := s.LastRequest(); ok {
		base = last
	}
	base.Kind = s.Kind

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, guideTrackRadius())
	track := p.promptFloat("Fixed track radius R", base.TrackRadius, 1, 1e6)

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, guideRollerRadius(track, s.Kind))
	roller := p.promptFloat("Rolling circle radius r", base.RollerRadius, 0.001, 1e6)

	fmt.Fprintln(p.out)
	fmt.Fprintln(p.out, guidePenOffset(roller, s.Kind))
	pen := p.promptFloat("Pen offset d", base.PenOffset, 0.001, 1e6)

	return curve.Request{TrackRadius: track, RollerRadius: roller, PenOffset: pen, Kind: s.Kind}, true
}

// editLocks edits the per-parameter locks for random runs. A number locks
// the value, "-" clears the lock, blank keeps it.
func (p *prompter) editLocks(s *session.State) {
	fmt.Fprintln(p.out, "\nLocks hold a value fixed across random runs. Enter a number to lock, - to unlock, blank to keep.")
	s.Locks.TrackRadius = p.promptLock("Lock R (fixed track radius)", s.Locks.TrackRadius)
	s.Locks.RollerRadius = p.promptLock("Lock r (rolling radius)", s.Locks.RollerRadius)
	s.Locks.PenOffset = p.promptLock("Lock d (pen offset)", s.Locks.PenOffset)
	fmt.Fprintf(p.out, "Locks: %s\n", describeLocks(s.Locks))
}

func (p *prompter) promptLock(label string, current *int) *int {
	state := "free"
	if current != nil {
		state = strconv.Itoa(*current)
	}
	for {
		line, ok := p.readLine(fmt.Sprintf("%s [%s]: ", label, state))
		if !ok {
			return current
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			return current
		case line == "-":
			return nil
		default:
			v, err := strconv.Atoi(line)
			if err != nil || v < 1 {
				fmt.Fprintln(p.out, "Enter a positive whole number, - to unlock, or blank to keep.")
				continue
			}
			return &v
		}
	}
}

// editSettings edits the session's randomness profile and display state.
func (p *prompter) editSettings(s *session.State) {
	fmt.Fprintln(p.out)

	name := p.promptChoice("Complexity", s.Complexity.String(), nameList(evolve.Complexities()))
	if c, err := evolve.ParseComplexity(name); err == nil {
		s.Complexity = c
	}

	name = p.promptChoice("Constraints", s.Constraint.String(), nameList(evolve.Constraints()))
	if c, err := evolve.ParseConstraint(name); err == nil {
		s.Constraint = c
	}

	name = p.promptChoice("Evolution", s.Evolution.Mode().String(), nameList(evolve.Modes()))
	if m, err := evolve.ParseMode(name); err == nil {
		s.Evolution.SetMode(m)
	}
	if s.Evolution.Mode() == evolve.Drift || s.Evolution.Mode() == evolve.Jump {
		s.Evolution.SetStepSize(p.promptFloat("Drift step size (fraction of window)", s.Evolution.StepSize(), 0.01, 1))
	}

	name = p.promptChoice("Color mode", s.ColorMode.String(), nameList(render.ColorModes()))
	if m, err := render.ParseColorMode(name); err == nil {
		s.ColorMode = m
	}

	switch s.ColorMode {
	case render.Fixed:
		line, ok := p.readLine(fmt.Sprintf("Color (name, #rrggbb, or r,g,b) [%s]: ", s.Color.Hex()))
		if ok && strings.TrimSpace(line) != "" {
			s.Color = render.ParseColor(strings.TrimSpace(line), s.Color)
		}
	case render.RandomEveryNLaps:
		s.LapsPerColor = p.promptInt("Laps per color", s.LapsPerColor, 1, 10000)
	case render.RandomEveryNSpins:
		s.SpinsPerColor = p.promptInt("Spins per color", s.SpinsPerColor, 1, 10000)
	}

	s.LineWidth = p.promptFloat("Line width", s.LineWidth, 0.1, 50)
	s.Resolution = p.promptInt("Samples per lap (0 = automatic)", s.Resolution, 0, 1_000_000)
}
