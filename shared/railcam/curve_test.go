package railcam

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEaseInOut_MatchesSmoothstep(t *testing.T) {
	c := EaseInOut()
	for _, x := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
		want := x * x * (3 - 2*x)
		assert.InDelta(t, want, c(x), 1e-9, "t=%v", x)
	}
}

func TestKeyframes(t *testing.T) {
	c := Keyframes(
		Keyframe{Time: 1, Value: 1},
		Keyframe{Time: 0, Value: 0, OutTangent: 1},
		Keyframe{Time: 0.5, Value: 0.5, InTangent: 1, OutTangent: 1},
	)

	assert.InDelta(t, 0.0, c(-1), 1e-9, "clamped below")
	assert.InDelta(t, 0.5, c(0.5), 1e-9)
	assert.InDelta(t, 0.25, c(0.25), 1e-9, "unit tangents on a line stay linear")
	assert.InDelta(t, 1.0, c(3), 1e-9, "clamped above")
}

func TestKeyframes_Empty(t *testing.T) {
	c := Keyframes()
	assert.Equal(t, 0.3, c(0.3))
}

func TestPreset(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			c, err := Preset(name)
			require.NoError(t, err)
			assert.InDelta(t, 0.0, c(0), 1e-5)
			assert.InDelta(t, 1.0, c(1), 1e-5)
		})
	}
}

func TestPreset_DefaultsToEaseInOut(t *testing.T) {
	c, err := Preset("")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, c(0.5), 1e-9)
}

func TestPreset_Unknown(t *testing.T) {
	_, err := Preset("wobble")
	assert.True(t, errors.Is(err, ErrUnknownCurve))
}

func TestPreset_OutBackOvershoots(t *testing.T) {
	c, err := Preset("out-back")
	require.NoError(t, err)

	peak := 0.0
	for i := 0; i <= 100; i++ {
		peak = max(peak, c(float64(i)/100))
	}
	assert.Greater(t, peak, 1.0)
}
