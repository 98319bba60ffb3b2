package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/railcam/components"
	cfg "github.com/automoto/railcam/config"
	"github.com/automoto/railcam/fonts"
	"github.com/automoto/railcam/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const overlayLineHeight = 16

// DrawRailDebug draws the camera anchors, the deadzone and limit boxes and a
// text readout of the rig state.
func DrawRailDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	pr, camera, ok := cameraProjector(e, screen)
	if !ok || camera.Driver == nil {
		return
	}
	info := camera.Driver.Debug()

	if playerEntry, ok := tags.Player.First(e.World); ok {
		p := components.Player.Get(playerEntry).Position
		pr.line(screen, p, info.ConstrainedAnchor, 1, cfg.Colors.Constrained)
	}
	pr.marker(screen, info.ConstrainedAnchor, 0.25, cfg.Colors.Constrained)
	pr.wireBox(screen, info.ConstrainedAnchor, info.DeadzoneSize, cfg.Colors.Deadzone)
	pr.marker(screen, info.RailAnchor, 0.3, cfg.Colors.RailAnchor)
	pr.wireBox(screen, info.RailAnchor, info.LimitSize, cfg.Colors.Limit)

	face := fonts.MonoSmall.Get()
	for i, line := range overlayLines(camera, settings) {
		text.Draw(screen, line, face, 8, overlayLineHeight*(i+1), cfg.Colors.Text)
	}
}

// overlayLines formats the rig state for the debug readout.
func overlayLines(camera *components.CameraData, settings *components.SettingsData) []string {
	st := camera.Driver.State()
	mode := "runtime"
	if camera.Driver.Authoring() {
		mode = "authoring [" + settings.PresetName + "]"
	}
	rail := camera.ActiveRail
	if rail == "" {
		rail = "-"
	}

	lines := []string{
		fmt.Sprintf("mode: %s  rail: %s", mode, rail),
		fmt.Sprintf("tilt %.1f  pan %.1f  dist %.2f", st.CurrentAngle[0], st.CurrentAngle[1], st.CurrentDistance),
		fmt.Sprintf("constrained (%.2f, %.2f, %.2f)", st.ConstrainedAnchor[0], st.ConstrainedAnchor[1], st.ConstrainedAnchor[2]),
		fmt.Sprintf("camera (%.2f, %.2f, %.2f)", camera.Pose.Position[0], camera.Pose.Position[1], camera.Pose.Position[2]),
	}
	if st.Transitioning {
		lines = append(lines, fmt.Sprintf("transition %.2fs", st.Elapsed))
	}
	if camera.Driver.Authoring() {
		lines = append(lines, strings.Join([]string{"J/L pan", "I/K tilt", "U/O zoom", "Tab preset", "F5 save"}, "  "))
	}
	return lines
}
