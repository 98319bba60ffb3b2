package railcam

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// UpdateConstrained moves constrained toward player once the player leaves the
// deadzone window, then hard-clamps it around anchor. X is horizontal, Y is
// vertical and Z (depth) always snaps to the player.
func UpdateConstrained(player, anchor, constrained mgl64.Vec3, l Limits) mgl64.Vec3 {
	offset := player.Sub(constrained)

	constrained[0] += deadzoneStep(offset[0], l.HorizontalDeadzone)
	if l.HorizontalOnly {
		constrained[1] = player[1]
	} else {
		constrained[1] += deadzoneStep(offset[1], l.VerticalDeadzone)
	}
	constrained[2] = player[2]

	constrained[0] = mgl64.Clamp(constrained[0], anchor[0]-l.MaxHorizontalOffset, anchor[0]+l.MaxHorizontalOffset)
	if !l.HorizontalOnly {
		constrained[1] = mgl64.Clamp(constrained[1], anchor[1]-l.MaxVerticalOffset, anchor[1]+l.MaxVerticalOffset)
	}
	return constrained
}

// deadzoneStep returns how far the tracked point must move so the offset
// sits back on the deadzone edge, or 0 while inside it.
func deadzoneStep(offset, deadzone float64) float64 {
	abs := math.Abs(offset)
	if abs <= deadzone {
		return 0
	}
	excess := abs - deadzone
	if offset < 0 {
		return -excess
	}
	return excess
}
