package factory

import (
	"github.com/automoto/railcam/archetypes"
	"github.com/automoto/railcam/components"
	"github.com/automoto/railcam/shared/railcam"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns the camera entity with a rail driver that reads the
// player through player and steps with clock.
func CreateCamera(ecs *ecs.ECS, player railcam.PositionProvider, clock railcam.DeltaSource, opts ...railcam.Option) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	driver := railcam.NewDriver(player, clock, opts...)
	components.Camera.Set(camera, &components.CameraData{
		Driver: driver,
		Pose:   driver.Pose(),
	})
	return camera
}
