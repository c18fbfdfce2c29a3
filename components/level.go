package components

import (
	"github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/shared/terrain"
	"github.com/yohamta/donburi"
)

// MapData is the per-session game map: its terrain mask and progress state.
// Items, enemies and particles live as their own entities in the same world.
type MapData struct {
	Name  string
	State config.MapStateID
	Mask  *terrain.Mask

	Tick         int // ticks simulated since the map was populated
	CompletedAt  int // tick at which the map reached Completed, 0 before
	NextParticle int // id assigned to the next spawned particle
}

func (m *MapData) Width() int  { return m.Mask.Width() }
func (m *MapData) Height() int { return m.Mask.Height() }

var Map = donburi.NewComponentType[MapData]()
