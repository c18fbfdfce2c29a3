package components

import (
	"fmt"

	"github.com/automoto/pixelrunner/assets/animations"
	"github.com/automoto/pixelrunner/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Table            *animations.Table
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Animations       map[config.StateID]*animations.Animation
	Metadata         animations.FrameMetadata
}

// SetAnimation switches to the animation of a state, restarting it when the
// state changes. Returns an error if the state has no frame table.
func (a *AnimationData) SetAnimation(state config.StateID) error {
	if a.CurrentSheet == state && a.CurrentAnimation != nil {
		return nil
	}

	anim, ok := a.Animations[state]
	if !ok {
		return fmt.Errorf("sprite %q state %s: %w", a.Table.Key(), state, animations.ErrMissingFrame)
	}
	a.CurrentAnimation = anim
	a.CurrentSheet = state
	a.CurrentAnimation.Restart()
	return nil
}

var Animation = donburi.NewComponentType[AnimationData]()
