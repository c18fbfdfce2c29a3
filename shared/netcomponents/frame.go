package netcomponents

import "github.com/yohamta/donburi"

// NetSprite is an animated entity in viewport coordinates.
type NetSprite struct {
	Key       string
	X, Y      int
	Direction int
	State     int // config.StateID
	Frame     int // 1-based
	CellX     int // sprite sheet offset
	CellY     int
	CellW     int
	CellH     int
}

type NetParticle struct {
	Kind  int
	X, Y  int
	Size  int
	RGBA  uint32
	Alpha float64
}

// NetFrameData is the drawable content of one tick.
type NetFrameData struct {
	Tick      uint64
	Player    NetSprite
	Items     []NetSprite
	Enemies   []NetSprite
	Particles []NetParticle
	Sounds    []int // config.SoundID
}

var NetFrame = donburi.NewComponentType[NetFrameData]()
