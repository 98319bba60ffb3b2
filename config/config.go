package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by the rail scene.
const Default ecs.LayerID = 0

// CameraConfig contains rail camera behavior configuration
type CameraConfig struct {
	FollowSmoothnessPosition float64 // Position follow speed (higher = faster)
	FollowSmoothnessRotation float64 // Rotation follow speed (higher = faster)
	ResetOnRailChange        bool    // Re-base anchors on the player when a rail activates

	// Projection
	FieldOfView float64 // Vertical field of view in degrees
	NearPlane   float64 // Points closer than this are not drawn

	// Authoring nudges per frame
	NudgeAngle    float64 // degrees
	NudgeDistance float64 // world units
}

// LevelConfig contains level loading and unit conversion values
type LevelConfig struct {
	Dir           string  // Directory holding .tmx files inside the assets FS
	Default       string  // Level stem loaded at startup
	PixelsPerUnit float64 // Tiled pixels per world unit
	SpaceCellSize int     // resolv cell size in pixels
	PlayerDepth   float64 // World Z the player moves on
}

// PlayerConfig contains demo player configuration values
type PlayerConfig struct {
	MoveSpeed float64 // World units per second
	Size      float64 // World units, used for the trigger footprint and drawing
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	EditMode    bool   // Start in authoring mode
	PresetDir   string // Directory watched for preset YAML while authoring
	PresetFile  string // Preset file name inside PresetDir
	Preset      string // Preset applied when entering authoring mode
	ShowOverlay bool   // Draw anchors, limit boxes and text overlay
}

// ColorConfig contains debug drawing colors
type ColorConfig struct {
	Background  color.RGBA
	Player      color.RGBA
	Constrained color.RGBA
	Deadzone    color.RGBA
	Limit       color.RGBA
	RailAnchor  color.RGBA
	Rail        color.RGBA
	ActiveRail  color.RGBA
	Text        color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var Level LevelConfig
var Player PlayerConfig
var Debug DebugConfig
var Colors ColorConfig

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Camera = CameraConfig{
		FollowSmoothnessPosition: 10,
		FollowSmoothnessRotation: 10,
		ResetOnRailChange:        true,

		FieldOfView: 60,
		NearPlane:   0.1,

		NudgeAngle:    1,
		NudgeDistance: 0.1,
	}

	Level = LevelConfig{
		Dir:           "levels",
		Default:       "railyard",
		PixelsPerUnit: 16,
		SpaceCellSize: 16,
		PlayerDepth:   0,
	}

	Player = PlayerConfig{
		MoveSpeed: 8,
		Size:      1,
	}

	Debug = DebugConfig{
		PresetFile:  "rails.yaml",
		Preset:      "side",
		ShowOverlay: true,
	}

	Colors = ColorConfig{
		Background:  color.RGBA{R: 18, G: 18, B: 24, A: 255},
		Player:      color.RGBA{R: 0, G: 100, B: 255, A: 255},
		Constrained: color.RGBA{R: 0, G: 255, B: 60, A: 255},
		Deadzone:    color.RGBA{R: 255, G: 255, B: 0, A: 128},
		Limit:       color.RGBA{R: 255, G: 0, B: 0, A: 204},
		RailAnchor:  color.RGBA{R: 255, G: 0, B: 255, A: 255},
		Rail:        color.RGBA{R: 60, G: 100, B: 160, A: 255},
		ActiveRail:  color.RGBA{R: 100, G: 180, B: 255, A: 255},
		Text:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}
