// Package curve turns a geometry request into an ordered point sequence
// with lap and spin span metadata. Generation is deterministic: the same
// request and resolution always produce bit-identical output.
package curve

import (
	"errors"
	"fmt"

	"github.com/banshee-data/spirograph/internal/geom"
)

// ErrInvalidRequest is the sentinel wrapped by every request validation
// failure. Match with errors.Is; the concrete error names the field.
var ErrInvalidRequest = errors.New("invalid curve request")

// InvalidRequestError reports a request that violates a domain invariant,
// naming the offending field verbatim so the caller can surface it.
type InvalidRequestError struct {
	Field  string
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return fmt.Sprintf("invalid curve request: %s: %s", e.Field, e.Reason)
}

func (e *InvalidRequestError) Unwrap() error { return ErrInvalidRequest }

// Request describes one spirograph curve. It is a plain value; construct it
// directly and pass it to Generate.
//
// RollerRadius may exceed TrackRadius and PenOffset may exceed
// RollerRadius: "impossible geometry" (impossible for a physical kit) is
// legal and draws fine.
type Request struct {
	TrackRadius  float64
	RollerRadius float64
	PenOffset    float64
	Kind         geom.CurveKind
}

// Validate checks the request's domain invariants. It returns an
// InvalidRequestError naming the first violated field, or nil.
func (r Request) Validate() error {
	if !(r.TrackRadius > 0) {
		return &InvalidRequestError{Field: "track_radius", Reason: fmt.Sprintf("must be > 0, got %v", r.TrackRadius)}
	}
	if !(r.RollerRadius > 0) {
		return &InvalidRequestError{Field: "roller_radius", Reason: fmt.Sprintf("must be > 0, got %v", r.RollerRadius)}
	}
	if !(r.PenOffset >= 0) {
		return &InvalidRequestError{Field: "pen_offset", Reason: fmt.Sprintf("must be >= 0, got %v", r.PenOffset)}
	}
	if !r.Kind.Valid() {
		return &InvalidRequestError{Field: "curve_kind", Reason: fmt.Sprintf("unknown kind %d", r.Kind)}
	}
	return nil
}
