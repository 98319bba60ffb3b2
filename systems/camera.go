package systems

import (
	"log"

	"github.com/automoto/railcam/components"
	cfg "github.com/automoto/railcam/config"
	"github.com/automoto/railcam/shared/railcam"
	"github.com/automoto/railcam/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerPosition reads the player entity's position from the world on each
// call. It reports false while there is no player.
func PlayerPosition(world donburi.World) railcam.PositionFunc {
	return func() (mgl64.Vec3, bool) {
		entry, ok := tags.Player.First(world)
		if !ok {
			return mgl64.Vec3{}, false
		}
		return components.Player.Get(entry).Position, true
	}
}

// TickDelta is the driver's delta source for the ebiten loop.
var TickDelta = railcam.DeltaFunc(tickDelta)

// UpdateRailCamera handles authoring controls, ticks the rail camera and
// mirrors its pose into the camera component.
func UpdateRailCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if camera.Driver == nil {
		return
	}

	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)
	handleCameraInput(camera.Driver, input, settings)

	camera.Driver.Tick()
	camera.Pose = camera.Driver.Pose()
}

func handleCameraInput(d *railcam.Driver, input *components.InputData, settings *components.SettingsData) {
	if GetAction(input, cfg.ActionToggleAuthoring).JustPressed {
		enterAuthoring := !d.Authoring()
		if enterAuthoring {
			if preset, ok := settings.Presets[settings.PresetName]; ok {
				d.ApplyForEditing(preset)
			}
		}
		d.SetAuthoring(enterAuthoring)
	}
	if GetAction(input, cfg.ActionResetFollow).JustPressed {
		d.ResetFollow()
	}

	if !d.Authoring() {
		return
	}

	if GetAction(input, cfg.ActionNextPreset).JustPressed {
		if name, ok := nextPreset(settings.Presets, settings.PresetName); ok {
			settings.PresetName = name
			d.ApplyForEditing(settings.Presets[name])
			d.SetAuthoring(true)
		}
	}

	var pan, tilt, dist float64
	if GetAction(input, cfg.ActionPanLeft).Pressed {
		pan -= cfg.Camera.NudgeAngle
	}
	if GetAction(input, cfg.ActionPanRight).Pressed {
		pan += cfg.Camera.NudgeAngle
	}
	if GetAction(input, cfg.ActionTiltUp).Pressed {
		tilt += cfg.Camera.NudgeAngle
	}
	if GetAction(input, cfg.ActionTiltDown).Pressed {
		tilt -= cfg.Camera.NudgeAngle
	}
	if GetAction(input, cfg.ActionZoomIn).Pressed {
		dist -= cfg.Camera.NudgeDistance
	}
	if GetAction(input, cfg.ActionZoomOut).Pressed {
		dist += cfg.Camera.NudgeDistance
	}
	if pan != 0 || tilt != 0 || dist != 0 {
		d.Nudge(pan, tilt, dist)
	}

	if GetAction(input, cfg.ActionSavePreset).JustPressed {
		name := settings.PresetName
		if name == "" {
			name = "custom"
		}
		rail := d.CopyCurrent()
		if settings.Presets == nil {
			settings.Presets = map[string]railcam.RailInfo{}
		}
		settings.Presets[name] = rail
		if err := SavePreset(name, rail); err != nil {
			log.Printf("Warning: Could not save preset %q: %v", name, err)
		}
	}
}

// nextPreset returns the preset name after current in sorted order, wrapping
// around.
func nextPreset(presets map[string]railcam.RailInfo, current string) (string, bool) {
	names := sortedPresetNames(presets)
	if len(names) == 0 {
		return "", false
	}
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)], true
		}
	}
	return names[0], true
}

// isAuthoring reports whether the rail camera is in authoring mode.
func isAuthoring(e *ecs.ECS) bool {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return false
	}
	d := components.Camera.Get(cameraEntry).Driver
	return d != nil && d.Authoring()
}
