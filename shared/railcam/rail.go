// Package railcam implements a rail-constrained follow camera: a soft-window
// anchor tracker, curve-driven blending between rail configurations and an
// exponentially smoothed follow driver. It has no dependency on ebitengine,
// donburi or resolv so it can be driven by any tick loop.
package railcam

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidRail  = errors.New("railcam: invalid rail")
	ErrUnknownCurve = errors.New("railcam: unknown curve preset")
)

// Limits holds the movement window applied to the constrained anchor.
type Limits struct {
	HorizontalOnly      bool
	HorizontalDeadzone  float64
	VerticalDeadzone    float64
	MaxHorizontalOffset float64
	MaxVerticalOffset   float64
}

// RailInfo is a camera preset activated when the player enters a rail volume.
// Angle[0] is tilt, Angle[1] is pan, Angle[2] is carried but unused.
type RailInfo struct {
	Angle              [3]float64
	Distance           float64
	TransitionDuration float64
	TransitionCurve    Curve
	CurveName          string     // Preset name the curve came from, if any
	CurveKeys          []Keyframe // Control points the curve came from, if any
	Limits
}

// DefaultRailInfo returns a rail with the stock distance, timing and limits.
func DefaultRailInfo() RailInfo {
	return RailInfo{
		Distance:           10,
		TransitionDuration: 1,
		TransitionCurve:    EaseInOut(),
		CurveName:          CurveEaseInOut,
		Limits: Limits{
			HorizontalDeadzone:  2,
			VerticalDeadzone:    1,
			MaxHorizontalOffset: 8,
			MaxVerticalOffset:   5,
		},
	}
}

func (r RailInfo) Pan() float64  { return r.Angle[1] }
func (r RailInfo) Tilt() float64 { return r.Angle[0] }

// Validate reports the first field that is negative or not finite.
func (r RailInfo) Validate() error {
	fields := []struct {
		name string
		v    float64
	}{
		{"distance", r.Distance},
		{"horizontalDeadzone", r.HorizontalDeadzone},
		{"verticalDeadzone", r.VerticalDeadzone},
		{"maxHorizontalOffset", r.MaxHorizontalOffset},
		{"maxVerticalOffset", r.MaxVerticalOffset},
	}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidRail, f.name)
		}
		if f.v < 0 {
			return fmt.Errorf("%w: %s must be >= 0, got %g", ErrInvalidRail, f.name, f.v)
		}
	}
	for i, a := range r.Angle {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return fmt.Errorf("%w: angle[%d] is not finite", ErrInvalidRail, i)
		}
	}
	if math.IsNaN(r.TransitionDuration) || math.IsInf(r.TransitionDuration, 0) {
		return fmt.Errorf("%w: transitionDuration is not finite", ErrInvalidRail)
	}
	return nil
}

func (r RailInfo) curve() Curve {
	if r.TransitionCurve == nil {
		return EaseInOut()
	}
	return r.TransitionCurve
}
