package systems

import (
	"bytes"
	"encoding/json"
	"log"
	"sort"

	cfg "github.com/automoto/railcam/config"
	"github.com/automoto/railcam/shared/railcam"
	"github.com/quasilyte/gdata"
)

const (
	tuningKey  = "tuning"
	presetsKey = "presets"
)

// ItemStore is the subset of *gdata.Manager used for persistence.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// Tuning represents the camera tuning stored on disk
type Tuning struct {
	FollowPosition    float64 `json:"followPosition"`
	FollowRotation    float64 `json:"followRotation"`
	ResetOnRailChange bool    `json:"resetOnRailChange"`
}

var store ItemStore

// InitPersistence initializes the gdata manager for tuning and preset storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "railcam",
	})
	if err != nil {
		return err
	}
	store = m
	return nil
}

// UseStore replaces the persistence backend. Passing nil disables
// persistence.
func UseStore(s ItemStore) {
	store = s
}

// LoadTuning loads camera tuning from disk. It returns nil when nothing has
// been saved yet.
func LoadTuning() (*Tuning, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(tuningKey)
	if err != nil {
		log.Printf("Warning: Could not load tuning: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var t Tuning
	if err := json.Unmarshal(data, &t); err != nil {
		log.Printf("Warning: Could not parse saved tuning: %v", err)
		return nil, err
	}
	return &t, nil
}

// SaveTuning saves camera tuning to disk
func SaveTuning(t *Tuning) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return store.SaveItem(tuningKey, data)
}

// CurrentTuning captures the camera config as a Tuning.
func CurrentTuning() *Tuning {
	return &Tuning{
		FollowPosition:    cfg.Camera.FollowSmoothnessPosition,
		FollowRotation:    cfg.Camera.FollowSmoothnessRotation,
		ResetOnRailChange: cfg.Camera.ResetOnRailChange,
	}
}

// ApplyTuning overrides the camera config with saved values.
func ApplyTuning(t *Tuning) {
	if t == nil {
		return
	}
	cfg.Camera.FollowSmoothnessPosition = t.FollowPosition
	cfg.Camera.FollowSmoothnessRotation = t.FollowRotation
	cfg.Camera.ResetOnRailChange = t.ResetOnRailChange
}

// LoadSavedPresets returns the presets saved from authoring mode.
func LoadSavedPresets() (map[string]railcam.RailInfo, error) {
	if store == nil {
		return map[string]railcam.RailInfo{}, nil
	}
	data, err := store.LoadItem(presetsKey)
	if err != nil {
		log.Printf("Warning: Could not load presets: %v", err)
		return map[string]railcam.RailInfo{}, nil
	}
	return railcam.LoadPresets(bytes.NewReader(data))
}

// SavePreset adds or replaces a preset in the saved set.
func SavePreset(name string, rail railcam.RailInfo) error {
	if store == nil {
		return nil
	}
	presets, err := LoadSavedPresets()
	if err != nil {
		// A corrupt saved set is replaced rather than blocking new saves
		log.Printf("Warning: Discarding unreadable saved presets: %v", err)
		presets = map[string]railcam.RailInfo{}
	}
	presets[name] = rail

	data, err := railcam.MarshalPresets(presets)
	if err != nil {
		return err
	}
	return store.SaveItem(presetsKey, data)
}

// MergePresets layers overrides on top of base and returns a new map.
func MergePresets(base, overrides map[string]railcam.RailInfo) map[string]railcam.RailInfo {
	out := make(map[string]railcam.RailInfo, len(base)+len(overrides))
	for name, r := range base {
		out[name] = r
	}
	for name, r := range overrides {
		out[name] = r
	}
	return out
}

func sortedPresetNames(presets map[string]railcam.RailInfo) []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
