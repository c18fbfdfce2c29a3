package session

import (
	"github.com/automoto/pixelrunner/systems"
	"github.com/yohamta/donburi"
)

// ScoreService reports collectable counts from the live item collection.
// It only reads the world.
type ScoreService struct {
	world donburi.World
}

func (s ScoreService) Total() int {
	total, _ := systems.CountCollectables(s.world)
	return total
}

func (s ScoreService) Remaining() int {
	_, remaining := systems.CountCollectables(s.world)
	return remaining
}
