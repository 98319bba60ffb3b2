package factory

import (
	"fmt"

	"github.com/automoto/railcam/archetypes"
	"github.com/automoto/railcam/components"
	"github.com/automoto/railcam/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity with name as the current level. An
// empty name selects the first level in names.
func CreateLevel(ecs *ecs.ECS, levels map[string]*leveldata.RailLevel, names []string, name string) (*donburi.Entry, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no levels loaded")
	}
	if name == "" {
		name = names[0]
	}
	current, ok := levels[name]
	if !ok {
		return nil, fmt.Errorf("unknown level %q", name)
	}

	level := archetypes.Level.Spawn(ecs)
	components.Level.Set(level, &components.LevelData{
		CurrentLevel: current,
		Levels:       levels,
		Names:        names,
	})
	return level, nil
}
