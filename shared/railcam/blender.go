package railcam

// minDuration keeps normalized time defined for zero-length transitions.
const minDuration = 1e-6

// Blend interpolates angle and distance from a start snapshot toward a rail's
// targets.
type Blend struct {
	StartAngle     [3]float64
	StartDistance  float64
	TargetAngle    [3]float64
	TargetDistance float64
	Duration       float64
	Curve          Curve
	Elapsed        float64
}

// Activate starts a blend from the given current values toward cfg.
func Activate(cfg RailInfo, currentAngle [3]float64, currentDistance float64) Blend {
	return Blend{
		StartAngle:     currentAngle,
		StartDistance:  currentDistance,
		TargetAngle:    cfg.Angle,
		TargetDistance: cfg.Distance,
		Duration:       cfg.TransitionDuration,
		Curve:          cfg.curve(),
	}
}

// Sample evaluates the blend at elapsed seconds. Once normalized time reaches
// 1 the exact targets are returned with done set. Before that the curve value
// drives an unclamped lerp, so curves that leave [0,1] overshoot.
func (b Blend) Sample(elapsed float64) (angle [3]float64, distance float64, done bool) {
	t := elapsed / max(b.Duration, minDuration)
	if b.Duration <= 0 || t >= 1 {
		return b.TargetAngle, b.TargetDistance, true
	}

	curve := b.Curve
	if curve == nil {
		curve = EaseInOut()
	}
	c := curve(t)
	for i := range angle {
		angle[i] = lerpUnclamped(b.StartAngle[i], b.TargetAngle[i], c)
	}
	return angle, lerpUnclamped(b.StartDistance, b.TargetDistance, c), false
}

// Advance adds dt to the blend's elapsed time and samples it.
func (b *Blend) Advance(dt float64) (angle [3]float64, distance float64, done bool) {
	b.Elapsed += dt
	return b.Sample(b.Elapsed)
}

func lerpUnclamped(a, b, t float64) float64 {
	return a + (b-a)*t
}
