package systems

import (
	"github.com/automoto/railcam/components"
	"github.com/automoto/railcam/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateRailTriggers activates a rail on the camera when the player enters
// its volume. Staying inside does not re-trigger; leaving and re-entering
// does.
func UpdateRailTriggers(e *ecs.ECS) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObj := components.Object.Get(playerEntry)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	inside := overlappingRails(playerObj.Object)

	tags.RailTrigger.Each(e.World, func(entry *donburi.Entry) {
		trigger := components.RailTrigger.Get(entry)
		if !railEntered(trigger, inside[entry.Entity()]) {
			return
		}
		if camera.Driver != nil {
			camera.Driver.Activate(trigger.Info)
		}
		camera.ActiveRail = trigger.Name
	})
}

// overlappingRails returns the rail entities whose volume overlaps obj.
// resolv's Check is a cell-level broadphase, so candidates are confirmed
// with Overlaps. Touching edges count as overlapping.
func overlappingRails(obj *resolv.Object) map[donburi.Entity]bool {
	inside := map[donburi.Entity]bool{}
	if obj == nil {
		return inside
	}
	check := obj.Check(0, 0, tags.ResolvRail)
	if check == nil {
		return inside
	}
	for _, railObj := range check.ObjectsByTags(tags.ResolvRail) {
		railEntry, ok := railObj.Data.(*donburi.Entry)
		if !ok || railEntry == nil {
			continue
		}
		if obj.Overlaps(railObj) {
			inside[railEntry.Entity()] = true
		}
	}
	return inside
}

// railEntered records whether the player is inside the trigger and reports
// the outside-to-inside edge.
func railEntered(trigger *components.RailTriggerData, inside bool) bool {
	entered := inside && !trigger.Occupied
	trigger.Occupied = inside
	return entered
}
