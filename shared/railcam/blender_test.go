package railcam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func railTo(angle [3]float64, distance, duration float64, curve Curve) RailInfo {
	r := DefaultRailInfo()
	r.Angle = angle
	r.Distance = distance
	r.TransitionDuration = duration
	r.TransitionCurve = curve
	return r
}

func TestBlend_Endpoints(t *testing.T) {
	b := Activate(railTo([3]float64{20, 40, 1}, 12, 2, EaseInOut()), [3]float64{0, 0, 0}, 6)

	angle, distance, done := b.Sample(0)
	assert.False(t, done)
	assert.Equal(t, [3]float64{0, 0, 0}, angle)
	assert.Equal(t, 6.0, distance)

	angle, distance, done = b.Sample(2)
	assert.True(t, done)
	assert.Equal(t, [3]float64{20, 40, 1}, angle)
	assert.Equal(t, 12.0, distance)

	_, _, done = b.Sample(5)
	assert.True(t, done)
}

func TestBlend_Midpoint(t *testing.T) {
	b := Activate(railTo([3]float64{10, 0, 0}, 20, 1, Linear()), [3]float64{}, 10)

	angle, distance, done := b.Sample(0.25)
	assert.False(t, done)
	assert.InDelta(t, 2.5, angle[0], 1e-9)
	assert.InDelta(t, 12.5, distance, 1e-9)
}

func TestBlend_ZeroDurationCompletesImmediately(t *testing.T) {
	for _, d := range []float64{0, -1} {
		b := Activate(railTo([3]float64{0, 90, 0}, 5, d, nil), [3]float64{}, 10)
		angle, distance, done := b.Sample(0)
		assert.True(t, done)
		assert.Equal(t, [3]float64{0, 90, 0}, angle)
		assert.Equal(t, 5.0, distance)
	}
}

func TestBlend_OvershootIsNotClamped(t *testing.T) {
	overshoot := func(float64) float64 { return 1.5 }
	b := Activate(railTo([3]float64{}, 20, 1, overshoot), [3]float64{}, 10)

	_, distance, done := b.Sample(0.5)
	assert.False(t, done)
	assert.InDelta(t, 25.0, distance, 1e-9)
}

func TestBlend_Advance(t *testing.T) {
	b := Activate(railTo([3]float64{}, 4, 0.5, Linear()), [3]float64{}, 0)

	_, distance, done := b.Advance(0.25)
	assert.False(t, done)
	assert.InDelta(t, 2.0, distance, 1e-9)

	_, distance, done = b.Advance(0.25)
	assert.True(t, done)
	assert.Equal(t, 4.0, distance)
}
