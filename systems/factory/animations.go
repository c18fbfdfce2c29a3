package factory

import (
	"github.com/automoto/pixelrunner/assets/animations"
	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
)

// GenerateAnimations creates an AnimationData component for a sprite key
// (e.g., "player", "runner") with one animation per configured state, starting
// in the initial state.
func GenerateAnimations(key string, initial cfg.StateID) (*components.AnimationData, error) {
	table, err := animations.NewTable(key)
	if err != nil {
		return nil, err
	}

	animData := &components.AnimationData{
		Table:      table,
		Animations: make(map[cfg.StateID]*animations.Animation),
	}
	for _, state := range cfg.RequiredStates[key] {
		def, err := table.Def(state)
		if err != nil {
			return nil, err
		}
		animData.Animations[state] = animations.NewAnimation(def.Frames, def.Speed)
	}

	if err := animData.SetAnimation(initial); err != nil {
		return nil, err
	}
	md, err := table.Metadata(initial, animData.CurrentAnimation.Frame())
	if err != nil {
		return nil, err
	}
	animData.Metadata = md
	return animData, nil
}
