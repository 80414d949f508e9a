package evolve

import "fmt"

// Modes lists the evolution modes in menu order.
func Modes() []Mode { return []Mode{None, Drift, Jump} }

// Complexities lists the complexity profiles in menu order.
func Complexities() []Complexity { return []Complexity{Simple, Medium, Dense} }

// Constraints lists the constraint modes in menu order.
func Constraints() []Constraint { return []Constraint{Physical, Extended, Wild} }

// ParseMode resolves a mode name as printed by Mode.String.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown evolution mode %q", name)
}

// ParseComplexity resolves a complexity name as printed by
// Complexity.String.
func ParseComplexity(name string) (Complexity, error) {
	for c, n := range complexityNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown complexity %q", name)
}

// ParseConstraint resolves a constraint name as printed by
// Constraint.String.
func ParseConstraint(name string) (Constraint, error) {
	for c, n := range constraintNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown constraint mode %q", name)
}
