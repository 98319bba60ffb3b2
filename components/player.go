package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// PlayerData holds the followed player's world state. Y is up; the player
// moves on the X/Y plane at a fixed depth.
type PlayerData struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3
}

var Player = donburi.NewComponentType[PlayerData]()
