package railcam

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// presetRecord is the on-disk form of a RailInfo. Curves are stored by name
// or as keyframes, never as code.
type presetRecord struct {
	Angle               [3]float64 `yaml:"angle,flow"`
	Distance            float64    `yaml:"distance"`
	TransitionDuration  float64    `yaml:"transitionDuration"`
	Curve               string     `yaml:"curve,omitempty"`
	Keyframes           []Keyframe `yaml:"keyframes,omitempty"`
	HorizontalOnly      bool       `yaml:"horizontalOnly"`
	HorizontalDeadzone  float64    `yaml:"horizontalDeadzone"`
	VerticalDeadzone    float64    `yaml:"verticalDeadzone"`
	MaxHorizontalOffset float64    `yaml:"maxHorizontalOffset"`
	MaxVerticalOffset   float64    `yaml:"maxVerticalOffset"`
}

func recordFromRail(r RailInfo) presetRecord {
	rec := presetRecord{
		Angle:               r.Angle,
		Distance:            r.Distance,
		TransitionDuration:  r.TransitionDuration,
		Curve:               r.CurveName,
		Keyframes:           r.CurveKeys,
		HorizontalOnly:      r.HorizontalOnly,
		HorizontalDeadzone:  r.HorizontalDeadzone,
		VerticalDeadzone:    r.VerticalDeadzone,
		MaxHorizontalOffset: r.MaxHorizontalOffset,
		MaxVerticalOffset:   r.MaxVerticalOffset,
	}
	if len(rec.Keyframes) > 0 {
		rec.Curve = ""
	}
	return rec
}

func (rec presetRecord) rail() (RailInfo, error) {
	r := RailInfo{
		Angle:              rec.Angle,
		Distance:           rec.Distance,
		TransitionDuration: rec.TransitionDuration,
		Limits: Limits{
			HorizontalOnly:      rec.HorizontalOnly,
			HorizontalDeadzone:  rec.HorizontalDeadzone,
			VerticalDeadzone:    rec.VerticalDeadzone,
			MaxHorizontalOffset: rec.MaxHorizontalOffset,
			MaxVerticalOffset:   rec.MaxVerticalOffset,
		},
	}
	if len(rec.Keyframes) > 0 {
		r.CurveKeys = rec.Keyframes
		r.TransitionCurve = Keyframes(rec.Keyframes...)
	} else {
		curve, err := Preset(rec.Curve)
		if err != nil {
			return RailInfo{}, err
		}
		r.TransitionCurve = curve
		r.CurveName = rec.Curve
		if r.CurveName == "" {
			r.CurveName = CurveEaseInOut
		}
	}
	if err := r.Validate(); err != nil {
		return RailInfo{}, err
	}
	return r, nil
}

// LoadPresets decodes a YAML document mapping preset names to rails. Fields
// left out of an entry keep their DefaultRailInfo values. Every entry is
// validated; the first failure aborts the load.
func LoadPresets(r io.Reader) (map[string]RailInfo, error) {
	var nodes map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&nodes); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]RailInfo{}, nil
		}
		return nil, fmt.Errorf("railcam: decode presets: %w", err)
	}

	presets := make(map[string]RailInfo, len(nodes))
	for name, node := range nodes {
		rec := recordFromRail(DefaultRailInfo())
		if err := node.Decode(&rec); err != nil {
			return nil, fmt.Errorf("railcam: decode preset %q: %w", name, err)
		}
		rail, err := rec.rail()
		if err != nil {
			return nil, fmt.Errorf("railcam: preset %q: %w", name, err)
		}
		presets[name] = rail
	}
	return presets, nil
}

// MarshalPresets encodes presets as YAML, sorted by name.
func MarshalPresets(presets map[string]RailInfo) ([]byte, error) {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)

	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, name := range names {
		var value yaml.Node
		if err := value.Encode(recordFromRail(presets[name])); err != nil {
			return nil, fmt.Errorf("railcam: encode preset %q: %w", name, err)
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name},
			&value,
		)
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("railcam: encode presets: %w", err)
	}
	return out, nil
}
