package components

import (
	"github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/shared/gamemath"
	"github.com/yohamta/donburi"
)

// PlayerData is the kinematic and intent state of the session's player.
// Position is integer pixels with (X, Y) the top-left corner of the footprint.
type PlayerData struct {
	X, Y          int
	Width, Height int

	VX float64 // horizontal speed magnitude, direction comes from Direction
	VY float64 // jump rise speed, zero whenever Jumping is false

	// FallSpeed tracks gravity while airborne and not jumping so that VY
	// belongs to the jump state machine alone.
	FallSpeed float64

	// Intent, written from input and consumed at tick start
	Moving        bool
	Direction     int // config.DirectionLeft or config.DirectionRight
	JumpRequested bool

	Jumping     bool
	JumpAnchor  int // target y of the current jump, 0 when grounded
	JumpReached bool

	Colliding bool
	HitTimer  int // ticks left in the hit reaction

	DustTimer int // ticks until the next dust puff

	State config.StateID
}

// Rect returns the player's footprint.
func (p *PlayerData) Rect() gamemath.Rect {
	return gamemath.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Grounded reports whether the player stands on its floor boundary.
func (p *PlayerData) Grounded(b *BoundariesData) bool {
	return !p.Jumping && p.Y >= b.Bottom
}

var Player = donburi.NewComponentType[PlayerData]()

// BoundariesData holds the clear-path limits around the player footprint,
// derived from the terrain mask every tick.
type BoundariesData struct {
	Left, Right int
	Top, Bottom int
}

var Boundaries = donburi.NewComponentType[BoundariesData]()
