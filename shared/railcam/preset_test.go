package railcam

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const presetDoc = `
corridor:
  angle: [10, 90, 0]
  distance: 5
  transitionDuration: 0.5
  curve: out-back
  horizontalOnly: true
tower:
  angle: [35, 0, 0]
  keyframes:
    - {time: 0, value: 0, out: 1}
    - {time: 1, value: 1, in: 1}
defaults: {}
`

func TestLoadPresets(t *testing.T) {
	presets, err := LoadPresets(strings.NewReader(presetDoc))
	require.NoError(t, err)
	require.Len(t, presets, 3)

	corridor := presets["corridor"]
	assert.Equal(t, [3]float64{10, 90, 0}, corridor.Angle)
	assert.Equal(t, 5.0, corridor.Distance)
	assert.Equal(t, 0.5, corridor.TransitionDuration)
	assert.Equal(t, "out-back", corridor.CurveName)
	assert.True(t, corridor.HorizontalOnly)
	assert.Equal(t, 2.0, corridor.HorizontalDeadzone, "unset fields keep defaults")

	tower := presets["tower"]
	require.Len(t, tower.CurveKeys, 2)
	assert.InDelta(t, 0.3, tower.TransitionCurve(0.3), 1e-9)
	assert.Equal(t, 10.0, tower.Distance)

	def := DefaultRailInfo()
	got := presets["defaults"]
	assert.Equal(t, def.Limits, got.Limits)
	assert.Equal(t, def.Distance, got.Distance)
	assert.Equal(t, CurveEaseInOut, got.CurveName)
}

func TestLoadPresets_Empty(t *testing.T) {
	presets, err := LoadPresets(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, presets)
}

func TestLoadPresets_Invalid(t *testing.T) {
	tests := map[string]struct {
		doc  string
		want error
	}{
		"negative distance": {"a: {distance: -1}", ErrInvalidRail},
		"negative deadzone": {"a: {verticalDeadzone: -0.5}", ErrInvalidRail},
		"unknown curve":     {"a: {curve: wobble}", ErrUnknownCurve},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadPresets(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestLoadPresets_Malformed(t *testing.T) {
	_, err := LoadPresets(strings.NewReader("a: [unclosed"))
	assert.Error(t, err)
}

func TestMarshalPresets_RoundTrip(t *testing.T) {
	in, err := LoadPresets(strings.NewReader(presetDoc))
	require.NoError(t, err)

	data, err := MarshalPresets(in)
	require.NoError(t, err)

	out, err := LoadPresets(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, out, len(in))

	for name, want := range in {
		got := out[name]
		assert.Equal(t, want.Angle, got.Angle, name)
		assert.Equal(t, want.Distance, got.Distance, name)
		assert.Equal(t, want.Limits, got.Limits, name)
		assert.Equal(t, want.CurveName, got.CurveName, name)
		assert.Equal(t, want.CurveKeys, got.CurveKeys, name)
	}
}
