package railcam

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// Curve shapes normalized transition time. Values outside [0,1] are allowed
// and produce overshoot in the blend.
type Curve func(t float64) float64

// Keyframe is a curve control point with Hermite tangents.
type Keyframe struct {
	Time       float64 `yaml:"time"`
	Value      float64 `yaml:"value"`
	InTangent  float64 `yaml:"in,omitempty"`
	OutTangent float64 `yaml:"out,omitempty"`
}

const (
	CurveEaseInOut = "ease-in-out"
	CurveLinear    = "linear"
)

var easePresets = map[string]ease.TweenFunc{
	CurveLinear:      ease.Linear,
	"in-quad":        ease.InQuad,
	"out-quad":       ease.OutQuad,
	"in-out-quad":    ease.InOutQuad,
	"in-cubic":       ease.InCubic,
	"out-cubic":      ease.OutCubic,
	"in-out-cubic":   ease.InOutCubic,
	"in-out-sine":    ease.InOutSine,
	"out-expo":       ease.OutExpo,
	"in-back":        ease.InBack,
	"out-back":       ease.OutBack,
	"in-out-back":    ease.InOutBack,
	"out-elastic":    ease.OutElastic,
	"out-bounce":     ease.OutBounce,
	"in-out-elastic": ease.InOutElastic,
}

// EaseInOut is the stock transition curve: a Hermite segment from (0,0) to
// (1,1) with flat tangents.
func EaseInOut() Curve {
	return Keyframes(Keyframe{Time: 0, Value: 0}, Keyframe{Time: 1, Value: 1})
}

func Linear() Curve {
	return func(t float64) float64 { return t }
}

// FromEase adapts a gween easing function to a Curve over unit time.
func FromEase(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Preset returns a named curve.
func Preset(name string) (Curve, error) {
	if name == "" || name == CurveEaseInOut {
		return EaseInOut(), nil
	}
	fn, ok := easePresets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
	}
	return FromEase(fn), nil
}

// PresetNames lists the names accepted by Preset, sorted.
func PresetNames() []string {
	names := []string{CurveEaseInOut}
	for name := range easePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Keyframes builds a piecewise cubic Hermite curve. Input outside the key
// range is clamped to the first or last key. With no keys the curve is
// linear.
func Keyframes(keys ...Keyframe) Curve {
	if len(keys) == 0 {
		return Linear()
	}
	ks := make([]Keyframe, len(keys))
	copy(ks, keys)
	sort.Slice(ks, func(i, j int) bool { return ks[i].Time < ks[j].Time })

	return func(t float64) float64 {
		if t <= ks[0].Time {
			return ks[0].Value
		}
		last := ks[len(ks)-1]
		if t >= last.Time {
			return last.Value
		}
		i := sort.Search(len(ks), func(i int) bool { return ks[i].Time > t }) - 1
		return hermite(ks[i], ks[i+1], t)
	}
}

func hermite(k0, k1 Keyframe, t float64) float64 {
	dt := k1.Time - k0.Time
	if dt <= 0 {
		return k1.Value
	}
	s := (t - k0.Time) / dt
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	return h00*k0.Value + h10*k0.OutTangent*dt + h01*k1.Value + h11*k1.InTangent*dt
}
