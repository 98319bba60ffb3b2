package scenes

import (
	"testing"

	"github.com/automoto/railcam/assets"
	"github.com/automoto/railcam/components"
	cfg "github.com/automoto/railcam/config"
	"github.com/automoto/railcam/shared/leveldata"
	"github.com/automoto/railcam/shared/railcam"
	"github.com/automoto/railcam/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestPopulate_ShippedLevel(t *testing.T) {
	levels, names, err := assets.LoadLevels()
	require.NoError(t, err)
	presets, err := assets.LoadPresets()
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	require.NoError(t, populate(e, levels, names, cfg.Level.Default, presets))

	rails := 0
	tags.RailTrigger.Each(e.World, func(*donburi.Entry) { rails++ })
	assert.Equal(t, len(levels[cfg.Level.Default].Rails), rails)

	cameraEntry, ok := components.Camera.First(e.World)
	require.True(t, ok)
	camera := components.Camera.Get(cameraEntry)
	require.NotNil(t, camera.Driver)
	assert.Equal(t, "approach", camera.ActiveRail, "camera starts on the rail under the spawn")
	assert.False(t, camera.Driver.Authoring())
	assert.Equal(t, camera.Driver.Pose(), camera.Pose)
}

func TestPopulate_EditMode(t *testing.T) {
	saved := cfg.Debug
	cfg.Debug.EditMode = true
	t.Cleanup(func() { cfg.Debug = saved })

	levels, names, err := assets.LoadLevels()
	require.NoError(t, err)
	presets, err := assets.LoadPresets()
	require.NoError(t, err)

	e := ecs.NewECS(donburi.NewWorld())
	require.NoError(t, populate(e, levels, names, "", presets))

	cameraEntry, _ := components.Camera.First(e.World)
	d := components.Camera.Get(cameraEntry).Driver
	assert.True(t, d.Authoring())
	assert.Equal(t, presets[cfg.Debug.Preset].Angle, d.CopyCurrent().Angle)
}

func TestPopulate_UnknownLevel(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	err := populate(e, map[string]*leveldata.RailLevel{}, []string{"a"}, "a", nil)
	assert.Error(t, err)
}

func TestStartPose(t *testing.T) {
	rail := railcam.DefaultRailInfo()
	p := mgl64.Vec3{3, 1, 0}

	pose := startPose(p, rail)
	assert.InDelta(t, 3, pose.Position[0], 1e-9)
	assert.InDelta(t, 1, pose.Position[1], 1e-9)
	assert.InDelta(t, 10, pose.Position[2], 1e-9)

	forward := pose.Rotation.Rotate(mgl64.Vec3{0, 0, 1})
	assert.InDelta(t, -1, forward[2], 1e-9, "looks back at the player")

	rail.Distance = 0
	pose = startPose(p, rail)
	assert.Equal(t, p, pose.Position)
}

func TestContainsPoint(t *testing.T) {
	vol := leveldata.RailVolume{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, containsPoint(vol, 0, 0))
	assert.False(t, containsPoint(vol, 10, 5))
}
