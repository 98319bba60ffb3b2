package systems

import (
	"testing"

	"github.com/automoto/railcam/components"
	cfg "github.com/automoto/railcam/config"
	"github.com/automoto/railcam/shared/railcam"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// press advances input one frame with exactly ids held.
func press(input *components.InputData, ids ...cfg.ActionID) {
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, id := range ids {
		input.Current[id] = true
	}
}

func testPresets() map[string]railcam.RailInfo {
	side := railcam.DefaultRailInfo()
	side.Angle = [3]float64{10, 0, 0}
	top := railcam.DefaultRailInfo()
	top.Angle = [3]float64{60, 0, 0}
	top.Distance = 15
	return map[string]railcam.RailInfo{"side": side, "top": top}
}

func newInputDriver() *railcam.Driver {
	player := railcam.PositionFunc(func() (mgl64.Vec3, bool) { return mgl64.Vec3{}, true })
	return railcam.NewDriver(player, railcam.FixedDelta(0.1))
}

func TestHandleCameraInput_AuthoringFlow(t *testing.T) {
	s := useMemStore(t)
	d := newInputDriver()
	input := &components.InputData{}
	settings := &components.SettingsData{Presets: testPresets(), PresetName: "side"}

	press(input, cfg.ActionToggleAuthoring)
	handleCameraInput(d, input, settings)
	require.True(t, d.Authoring())
	assert.Equal(t, [3]float64{10, 0, 0}, d.CopyCurrent().Angle, "entering applies the selected preset")

	press(input, cfg.ActionNextPreset)
	handleCameraInput(d, input, settings)
	assert.Equal(t, "top", settings.PresetName)
	assert.Equal(t, 15.0, d.CopyCurrent().Distance)

	press(input, cfg.ActionPanRight, cfg.ActionZoomIn)
	handleCameraInput(d, input, settings)
	got := d.CopyCurrent()
	assert.Equal(t, cfg.Camera.NudgeAngle, got.Angle[1])
	assert.InDelta(t, 15-cfg.Camera.NudgeDistance, got.Distance, 1e-9)

	press(input, cfg.ActionSavePreset)
	handleCameraInput(d, input, settings)
	assert.Equal(t, cfg.Camera.NudgeAngle, settings.Presets["top"].Angle[1])
	assert.NotEmpty(t, s.items[presetsKey])

	press(input, cfg.ActionToggleAuthoring)
	handleCameraInput(d, input, settings)
	assert.False(t, d.Authoring())
}

func TestHandleCameraInput_NudgesIgnoredAtRuntime(t *testing.T) {
	d := newInputDriver()
	input := &components.InputData{}
	settings := &components.SettingsData{Presets: testPresets(), PresetName: "side"}

	press(input, cfg.ActionPanRight, cfg.ActionNextPreset)
	handleCameraInput(d, input, settings)
	assert.Equal(t, 0.0, d.CopyCurrent().Angle[1])
	assert.Equal(t, "side", settings.PresetName)
}

func TestHandleCameraInput_ResetFollow(t *testing.T) {
	pos := mgl64.Vec3{}
	player := railcam.PositionFunc(func() (mgl64.Vec3, bool) { return pos, true })
	d := railcam.NewDriver(player, railcam.FixedDelta(0.1))
	d.Tick()

	pos = mgl64.Vec3{30, 0, 0}
	input := &components.InputData{}
	press(input, cfg.ActionResetFollow)
	handleCameraInput(d, input, &components.SettingsData{})

	st := d.State()
	assert.Equal(t, pos, st.RailAnchor)
	assert.Equal(t, pos, st.ConstrainedAnchor)
}

func TestNextPreset(t *testing.T) {
	presets := testPresets()

	name, ok := nextPreset(presets, "side")
	assert.True(t, ok)
	assert.Equal(t, "top", name)

	name, _ = nextPreset(presets, "top")
	assert.Equal(t, "side", name, "wraps around")

	name, _ = nextPreset(presets, "missing")
	assert.Equal(t, "side", name)

	_, ok = nextPreset(nil, "side")
	assert.False(t, ok)
}

func TestPlayerPositionAndAuthoring(t *testing.T) {
	e := newTestWorld(t)

	p, ok := PlayerPosition(e.World)()
	require.True(t, ok)
	assert.Equal(t, mgl64.Vec3{0.5, 2, 0}, p)

	assert.False(t, isAuthoring(e))
	testCamera(t, e).Driver.SetAuthoring(true)
	assert.True(t, isAuthoring(e))
}

func TestUpdateRailCamera_MirrorsPose(t *testing.T) {
	e := newTestWorld(t)
	camera := testCamera(t, e)

	UpdateRailCamera(e)
	assert.Equal(t, camera.Driver.Pose(), camera.Pose)
	assert.NotEqual(t, mgl64.Vec3{}, camera.Pose.Position)
}
