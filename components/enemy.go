package components

import (
	"github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/shared/gamemath"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	Kind       config.EnemyKind
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration

	X, Y             int
	OriginX, OriginY int // patrol anchor and spawn row
	PrevX            int
	Direction        int
	PatrolDistance   int

	State       config.Activity
	Colliding   bool
	HitTimer    int  // ticks left in the hit animation
	Interacting bool // proximity condition currently holds
	Finished    bool // runner reached the end of its path

	FireTimer int // shooter: ticks until the next shot
	TargetX   int // shooter: player's last known center
	TargetY   int

	AnimState config.StateID
}

func (e *EnemyData) Rect() gamemath.Rect {
	return gamemath.Rect{X: e.X, Y: e.Y, W: e.TypeConfig.Width, H: e.TypeConfig.Height}
}

var Enemy = donburi.NewComponentType[EnemyData]()
