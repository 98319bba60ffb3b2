// Package leveldata provides TMX rail-level parsing.
// It has no dependencies on ebitengine, donburi or resolv; pure data only.
package leveldata

import (
	"github.com/automoto/railcam/shared/railcam"
	"github.com/go-gl/mathgl/mgl64"
)

// RailLevel holds the camera rails and spawn parsed from a TMX level file.
// Rectangles stay in map pixels (Y down); use ToWorld for world units.
type RailLevel struct {
	Name      string
	Rails     []RailVolume
	Spawn     SpawnPoint
	MapWidth  int
	MapHeight int
}

// RailVolume is a trigger rectangle that activates Info when the player
// enters it.
type RailVolume struct {
	Name       string
	X, Y, W, H float64
	Info       railcam.RailInfo
}

// SpawnPoint is the player start in map pixels.
type SpawnPoint struct {
	X, Y float64
}

// ToWorld converts a map pixel position to world units (Y up) at depth z.
func (l *RailLevel) ToWorld(px, py, pixelsPerUnit, z float64) mgl64.Vec3 {
	return mgl64.Vec3{
		px / pixelsPerUnit,
		(float64(l.MapHeight) - py) / pixelsPerUnit,
		z,
	}
}

// ToMap converts a world position back to map pixels.
func (l *RailLevel) ToMap(p mgl64.Vec3, pixelsPerUnit float64) (px, py float64) {
	return p[0] * pixelsPerUnit, float64(l.MapHeight) - p[1]*pixelsPerUnit
}
