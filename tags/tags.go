package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	RailTrigger = donburi.NewTag().SetName("RailTrigger")
)

// Resolv tags for trigger overlap
const (
	ResolvPlayer = "Player"
	ResolvRail   = "rail"
)
