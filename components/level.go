package components

import (
	"github.com/automoto/railcam/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.RailLevel
	Levels       map[string]*leveldata.RailLevel
	Names        []string
}

var Level = donburi.NewComponentType[LevelData]()
