package components

import (
	"github.com/automoto/railcam/shared/railcam"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Driver     *railcam.Driver
	Pose       railcam.Pose // Mirrored from Driver after each tick
	ActiveRail string       // Name of the last activated rail volume
}

var Camera = donburi.NewComponentType[CameraData]()
