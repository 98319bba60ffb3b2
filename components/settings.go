package components

import (
	"github.com/automoto/railcam/shared/railcam"
	"github.com/yohamta/donburi"
)

// SettingsData holds runtime toggles and the presets available while
// authoring.
type SettingsData struct {
	Debug      bool
	Presets    map[string]railcam.RailInfo
	PresetName string // Preset being edited in authoring mode
}

var Settings = donburi.NewComponentType[SettingsData]()
