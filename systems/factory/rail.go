package factory

import (
	"github.com/automoto/railcam/archetypes"
	"github.com/automoto/railcam/components"
	"github.com/automoto/railcam/shared/leveldata"
	"github.com/automoto/railcam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRailTrigger spawns a trigger volume for a rail parsed from the level.
func CreateRailTrigger(ecs *ecs.ECS, vol leveldata.RailVolume) *donburi.Entry {
	rail := archetypes.RailTrigger.Spawn(ecs)

	obj := resolv.NewObject(vol.X, vol.Y, vol.W, vol.H, tags.ResolvRail)
	obj.Data = rail
	components.Object.SetValue(rail, components.ObjectData{Object: obj})
	components.RailTrigger.SetValue(rail, components.RailTriggerData{
		Name: vol.Name,
		Info: vol.Info,
	})
	addToSpace(ecs, obj)

	return rail
}
