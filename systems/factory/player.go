package factory

import (
	"github.com/automoto/railcam/archetypes"
	"github.com/automoto/railcam/components"
	cfg "github.com/automoto/railcam/config"
	"github.com/automoto/railcam/shared/leveldata"
	"github.com/automoto/railcam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at the level's spawn point. Its resolv
// footprint lives in map pixels so it can overlap rail volumes.
func CreatePlayer(ecs *ecs.ECS, level *leveldata.RailLevel) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	ppu := cfg.Level.PixelsPerUnit
	pos := level.ToWorld(level.Spawn.X, level.Spawn.Y, ppu, cfg.Level.PlayerDepth)
	size := cfg.Player.Size * ppu

	obj := resolv.NewObject(level.Spawn.X-size/2, level.Spawn.Y-size/2, size, size, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{Position: pos})
	addToSpace(ecs, obj)

	return player
}
