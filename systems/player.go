package systems

import (
	"github.com/automoto/railcam/components"
	cfg "github.com/automoto/railcam/config"
	"github.com/automoto/railcam/shared/leveldata"
	"github.com/automoto/railcam/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer moves the player from input and keeps its trigger footprint
// in sync. Movement is frozen while authoring so the camera can be tuned
// around a fixed subject.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}

	if isAuthoring(e) {
		player.Velocity = mgl64.Vec3{}
	} else {
		player.Velocity = playerVelocity(getOrCreateInput(e), cfg.Player.MoveSpeed)
	}

	dt := tickDelta()
	player.Position = clampToLevel(player.Position.Add(player.Velocity.Mul(dt)), level, cfg.Level.PixelsPerUnit)

	SyncFootprint(obj, level, player.Position)
}

// playerVelocity maps held movement actions to a world-space velocity.
func playerVelocity(input *components.InputData, speed float64) mgl64.Vec3 {
	var v mgl64.Vec3
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		v[0] -= speed
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		v[0] += speed
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		v[1] += speed
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		v[1] -= speed
	}
	return v
}

// clampToLevel keeps p inside the level's world-space bounds.
func clampToLevel(p mgl64.Vec3, level *leveldata.RailLevel, pixelsPerUnit float64) mgl64.Vec3 {
	maxX := float64(level.MapWidth) / pixelsPerUnit
	maxY := float64(level.MapHeight) / pixelsPerUnit
	p[0] = mgl64.Clamp(p[0], 0, maxX)
	p[1] = mgl64.Clamp(p[1], 0, maxY)
	return p
}

// SyncFootprint centres the resolv object on the player's map position.
func SyncFootprint(obj *components.ObjectData, level *leveldata.RailLevel, pos mgl64.Vec3) {
	if obj == nil || obj.Object == nil {
		return
	}
	px, py := level.ToMap(pos, cfg.Level.PixelsPerUnit)
	obj.X = px - obj.W/2
	obj.Y = py - obj.H/2
	obj.Update()
}

// tickDelta is the fixed simulation step in seconds.
func tickDelta() float64 {
	return 1 / float64(ebiten.TPS())
}
