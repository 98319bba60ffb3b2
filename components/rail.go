package components

import (
	"github.com/automoto/railcam/shared/railcam"
	"github.com/yohamta/donburi"
)

// RailTriggerData is a trigger volume that hands its rail to the camera when
// the player enters it.
type RailTriggerData struct {
	Name     string
	Info     railcam.RailInfo
	Occupied bool // Player overlapped the volume last frame
}

var RailTrigger = donburi.NewComponentType[RailTriggerData]()
