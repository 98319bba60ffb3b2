package railcam

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// SphericalOffset converts a look angle pair and distance into the camera's
// offset from its target. Its squared length is
// distance²·(1 + sin²(pan)·sin²(tilt)), so the result is longer than distance
// whenever both angles are non-zero. Camera feel is tuned against this exact
// form; do not replace it with a textbook spherical conversion.
func SphericalOffset(panDeg, tiltDeg, distance float64) mgl64.Vec3 {
	pan := mgl64.DegToRad(panDeg)
	tilt := mgl64.DegToRad(tiltDeg)
	return mgl64.Vec3{
		math.Sin(pan) * distance,
		math.Sin(tilt) * distance,
		math.Cos(tilt) * math.Cos(pan) * distance,
	}
}

// OffsetFor is SphericalOffset for an Angle triple as stored on RailInfo.
func OffsetFor(angle [3]float64, distance float64) mgl64.Vec3 {
	return SphericalOffset(angle[1], angle[0], distance)
}
