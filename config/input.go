package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionToggleAuthoring
	ActionSavePreset
	ActionResetFollow
	ActionToggleOverlay
	ActionNextPreset
	ActionPanLeft
	ActionPanRight
	ActionTiltUp
	ActionTiltDown
	ActionZoomIn
	ActionZoomOut
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft:        {Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}},
			ActionMoveRight:       {Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD}},
			ActionMoveUp:          {Keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyW}},
			ActionMoveDown:        {Keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyS}},
			ActionToggleAuthoring: {Keys: []ebiten.Key{ebiten.KeyF1}},
			ActionSavePreset:      {Keys: []ebiten.Key{ebiten.KeyF5}},
			ActionResetFollow:     {Keys: []ebiten.Key{ebiten.KeyR}},
			ActionToggleOverlay:   {Keys: []ebiten.Key{ebiten.KeyF3}},
			ActionNextPreset:      {Keys: []ebiten.Key{ebiten.KeyTab}},
			// Authoring nudges
			ActionPanLeft:  {Keys: []ebiten.Key{ebiten.KeyJ}},
			ActionPanRight: {Keys: []ebiten.Key{ebiten.KeyL}},
			ActionTiltUp:   {Keys: []ebiten.Key{ebiten.KeyI}},
			ActionTiltDown: {Keys: []ebiten.Key{ebiten.KeyK}},
			ActionZoomIn:   {Keys: []ebiten.Key{ebiten.KeyU}},
			ActionZoomOut:  {Keys: []ebiten.Key{ebiten.KeyO}},
		},
	}
}
