package scenes

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/automoto/railcam/assets"
	"github.com/automoto/railcam/components"
	cfg "github.com/automoto/railcam/config"
	"github.com/automoto/railcam/shared/leveldata"
	"github.com/automoto/railcam/shared/railcam"
	"github.com/automoto/railcam/systems"
	factory2 "github.com/automoto/railcam/systems/factory"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// RailScene is a level with a player walking through camera rail volumes.
type RailScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	watcher      *systems.PresetWatcher
	once         sync.Once
}

// NewRailScene creates the rail camera scene
func NewRailScene(sc SceneChanger) *RailScene {
	return &RailScene{sceneChanger: sc}
}

func (rs *RailScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *RailScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Colors.Background)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

// Close releases the preset watcher.
func (rs *RailScene) Close() error {
	if rs.watcher == nil {
		return nil
	}
	return rs.watcher.Close()
}

func (rs *RailScene) configure() {
	levels, names, err := assets.LoadLevels()
	if err != nil {
		panic("failed to load levels: " + err.Error())
	}
	presets := loadAllPresets()

	if cfg.Debug.EditMode && cfg.Debug.PresetDir != "" {
		w, err := systems.NewPresetWatcher(cfg.Debug.PresetDir)
		if err != nil {
			log.Printf("Warning: Could not watch presets in %s: %v", cfg.Debug.PresetDir, err)
		} else {
			rs.watcher = w
		}
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Input must run before anything that reads actions
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.NewPresetReloadSystem(rs.watcher))
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdateRailTriggers)
	e.AddSystem(systems.UpdateRailCamera)

	e.AddRenderer(cfg.Default, systems.DrawWorld)
	e.AddRenderer(cfg.Default, systems.DrawRailDebug)

	if err := populate(e, levels, names, cfg.Level.Default, presets); err != nil {
		panic(err)
	}
	rs.ecs = e
}

// loadAllPresets layers the embedded presets, the presets directory and the
// presets saved from authoring mode, later sources winning.
func loadAllPresets() map[string]railcam.RailInfo {
	presets, err := assets.LoadPresets()
	if err != nil {
		log.Printf("Warning: Could not load bundled presets: %v", err)
		presets = map[string]railcam.RailInfo{}
	}

	if cfg.Debug.PresetDir != "" {
		p := filepath.Join(cfg.Debug.PresetDir, cfg.Debug.PresetFile)
		if f, err := os.Open(p); err == nil {
			fromDir, err := railcam.LoadPresets(f)
			f.Close()
			if err != nil {
				log.Printf("Warning: Could not parse %s: %v", p, err)
			} else {
				presets = systems.MergePresets(presets, fromDir)
			}
		}
	}

	saved, err := systems.LoadSavedPresets()
	if err != nil {
		log.Printf("Warning: Could not parse saved presets: %v", err)
		return presets
	}
	return systems.MergePresets(presets, saved)
}

// populate creates the level, space, rail triggers, player and camera. The
// camera starts snapped to the rail under the spawn point.
func populate(e *ecs.ECS, levels map[string]*leveldata.RailLevel, names []string, levelName string, presets map[string]railcam.RailInfo) error {
	levelEntry, err := factory2.CreateLevel(e, levels, names, levelName)
	if err != nil {
		return err
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level.MapWidth <= 0 || level.MapHeight <= 0 {
		return fmt.Errorf("level %q has no size", level.Name)
	}

	factory2.CreateSpace(e, level.MapWidth, level.MapHeight, cfg.Level.SpaceCellSize, cfg.Level.SpaceCellSize)

	start := railcam.DefaultRailInfo()
	startRail := ""
	for _, vol := range level.Rails {
		entry := factory2.CreateRailTrigger(e, vol)
		if startRail == "" && containsPoint(vol, level.Spawn.X, level.Spawn.Y) {
			start = vol.Info
			startRail = vol.Name
			components.RailTrigger.Get(entry).Occupied = true
		}
	}

	player := factory2.CreatePlayer(e, level)
	playerPos := components.Player.Get(player).Position

	camera := factory2.CreateCamera(e,
		systems.PlayerPosition(e.World),
		systems.TickDelta,
		railcam.WithRail(start),
		railcam.WithFollowSpeeds(cfg.Camera.FollowSmoothnessPosition, cfg.Camera.FollowSmoothnessRotation),
		railcam.WithResetOnRailChange(cfg.Camera.ResetOnRailChange),
		railcam.WithPose(startPose(playerPos, start)),
	)
	cameraData := components.Camera.Get(camera)
	cameraData.ActiveRail = startRail

	settings := systems.GetOrCreateSettings(e)
	settings.Presets = presets
	if cfg.Debug.EditMode {
		if preset, ok := presets[settings.PresetName]; ok {
			cameraData.Driver.ApplyForEditing(preset)
		}
		cameraData.Driver.SetAuthoring(true)
	}
	return nil
}

// startPose places the camera at its rail offset looking at p.
func startPose(p mgl64.Vec3, rail railcam.RailInfo) railcam.Pose {
	offset := railcam.OffsetFor(rail.Angle, rail.Distance)
	pose := railcam.Pose{Position: p.Add(offset), Rotation: railcam.LookRotation(offset.Mul(-1), railcam.Up)}
	if offset.Len() < 1e-6 {
		pose.Rotation = railcam.LookRotation(mgl64.Vec3{0, 0, -1}, railcam.Up)
	}
	return pose
}

func containsPoint(vol leveldata.RailVolume, x, y float64) bool {
	return x >= vol.X && x < vol.X+vol.W && y >= vol.Y && y < vol.Y+vol.H
}
