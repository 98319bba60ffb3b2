package systems

import (
	"testing"

	"github.com/automoto/railcam/components"
	cfg "github.com/automoto/railcam/config"
	"github.com/automoto/railcam/shared/leveldata"
	"github.com/automoto/railcam/shared/railcam"
	"github.com/automoto/railcam/systems/factory"
	"github.com/automoto/railcam/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// testLevel is two side-by-side rails, 5x4 world units each.
func testLevel() *leveldata.RailLevel {
	side := railcam.DefaultRailInfo()
	turned := railcam.DefaultRailInfo()
	turned.Angle = [3]float64{0, 90, 0}
	turned.Distance = 6
	return &leveldata.RailLevel{
		Name:      "test",
		MapWidth:  160,
		MapHeight: 64,
		Spawn:     leveldata.SpawnPoint{X: 8, Y: 32},
		Rails: []leveldata.RailVolume{
			{Name: "a", X: 0, Y: 0, W: 80, H: 64, Info: side},
			{Name: "b", X: 80, Y: 0, W: 80, H: 64, Info: turned},
		},
	}
}

// newTestWorld builds a headless world with the level, its rails, the
// player and a camera stepping at 10Hz.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	level := testLevel()
	e := ecs.NewECS(donburi.NewWorld())

	_, err := factory.CreateLevel(e, map[string]*leveldata.RailLevel{"test": level}, []string{"test"}, "test")
	require.NoError(t, err)
	factory.CreateSpace(e, level.MapWidth, level.MapHeight, cfg.Level.SpaceCellSize, cfg.Level.SpaceCellSize)
	for _, vol := range level.Rails {
		factory.CreateRailTrigger(e, vol)
	}
	factory.CreatePlayer(e, level)
	factory.CreateCamera(e, PlayerPosition(e.World), railcam.FixedDelta(0.1))
	return e
}

func testCamera(t *testing.T, e *ecs.ECS) *components.CameraData {
	t.Helper()
	entry, ok := components.Camera.First(e.World)
	require.True(t, ok)
	return components.Camera.Get(entry)
}

// movePlayer teleports the player and its trigger footprint.
func movePlayer(t *testing.T, e *ecs.ECS, p mgl64.Vec3) {
	t.Helper()
	entry, ok := tags.Player.First(e.World)
	require.True(t, ok)
	components.Player.Get(entry).Position = p

	levelEntry, ok := components.Level.First(e.World)
	require.True(t, ok)
	SyncFootprint(components.Object.Get(entry), components.Level.Get(levelEntry).CurrentLevel, p)
}
