package session

import (
	"sync/atomic"

	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
)

// intent holds player input between ticks. The input goroutine writes the
// flags; Tick consumes them atomically so the two never share physics state.
type intent struct {
	left    atomic.Bool
	right   atomic.Bool
	lastDir atomic.Int32 // most recently pressed direction
	jump    atomic.Bool  // latched until the next tick consumes it
	restart atomic.Bool
}

func (in *intent) apply(typ cfg.InputType, action cfg.ActionID) {
	pressed := typ == cfg.InputStart
	switch action {
	case cfg.ActionLeft:
		in.left.Store(pressed)
		if pressed {
			in.lastDir.Store(cfg.DirectionLeft)
		}
	case cfg.ActionRight:
		in.right.Store(pressed)
		if pressed {
			in.lastDir.Store(cfg.DirectionRight)
		}
	case cfg.ActionJump:
		if pressed {
			in.jump.Store(true)
		}
	}
}

// consume copies the current intent onto the player. Only intent fields are
// written.
func (in *intent) consume(p *components.PlayerData) {
	left, right := in.left.Load(), in.right.Load()
	p.Moving = left || right
	switch {
	case left && right:
		p.Direction = int(in.lastDir.Load())
	case left:
		p.Direction = cfg.DirectionLeft
	case right:
		p.Direction = cfg.DirectionRight
	}
	if in.jump.Swap(false) {
		p.JumpRequested = true
	}
}

func (in *intent) reset() {
	in.left.Store(false)
	in.right.Store(false)
	in.jump.Store(false)
	in.lastDir.Store(cfg.DirectionRight)
}
