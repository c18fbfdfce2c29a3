package systems

import (
	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/yohamta/donburi"
)

// UpdateAnimations selects every entity's state, advances its frame counter
// and resolves the sprite cell. A state or frame without a cell is returned
// as an error wrapping animations.ErrMissingFrame.
func UpdateAnimations(w donburi.World) error {
	var firstErr error
	advance := func(entry *donburi.Entry, state cfg.StateID) {
		if firstErr != nil {
			return
		}
		firstErr = advanceAnimation(entry, state)
	}

	if playerEntry, ok := components.Player.First(w); ok {
		player := components.Player.Get(playerEntry)
		player.State = PlayerState(player, components.Boundaries.Get(playerEntry))
		advance(playerEntry, player.State)
	}

	components.Item.Each(w, func(entry *donburi.Entry) {
		item := components.Item.Get(entry)
		item.AnimState = ItemState(item)
		advance(entry, item.AnimState)
	})

	components.Enemy.Each(w, func(entry *donburi.Entry) {
		enemy := components.Enemy.Get(entry)
		enemy.AnimState = EnemyState(enemy)
		advance(entry, enemy.AnimState)
	})

	return firstErr
}

// PlayerState picks the player's animation state. A hit reaction wins over
// movement, which wins over idle.
func PlayerState(p *components.PlayerData, b *components.BoundariesData) cfg.StateID {
	switch {
	case p.Colliding:
		return cfg.Hit
	case p.Jumping:
		return cfg.Jump
	case p.Y < b.Bottom:
		return cfg.Fall
	case p.VX > 0:
		return cfg.Running
	}
	return cfg.Idle
}

func ItemState(item *components.ItemData) cfg.StateID {
	if item.Kind == cfg.ItemFinish {
		if item.State == cfg.Active {
			return cfg.FinishOpen
		}
		return cfg.FinishIdle
	}
	if item.State == cfg.Deactivating {
		return cfg.ItemCollect
	}
	return cfg.ItemIdle
}

func EnemyState(e *components.EnemyData) cfg.StateID {
	if e.Colliding {
		return cfg.Hit
	}
	switch e.Kind {
	case cfg.EnemyBlocker:
		return cfg.Patrol
	case cfg.EnemyRunner:
		if e.State == cfg.Active {
			return cfg.Charge
		}
	case cfg.EnemyShooter:
		if e.State == cfg.Active {
			return cfg.Firing
		}
	}
	return cfg.Idle
}

// advanceAnimation moves an entity to state. A state change restarts the
// animation at frame 1; otherwise the current animation ticks forward.
func advanceAnimation(entry *donburi.Entry, state cfg.StateID) error {
	anim := components.Animation.Get(entry)
	if anim.CurrentAnimation != nil && anim.CurrentSheet == state {
		anim.CurrentAnimation.Update()
		return refreshFrame(anim)
	}
	return setAnimation(entry, state)
}

// setAnimation switches an entity's animation immediately, used when a
// collision changes its state mid-tick.
func setAnimation(entry *donburi.Entry, state cfg.StateID) error {
	anim := components.Animation.Get(entry)
	if err := anim.SetAnimation(state); err != nil {
		return err
	}
	return refreshFrame(anim)
}

func refreshFrame(anim *components.AnimationData) error {
	md, err := anim.Table.Metadata(anim.CurrentSheet, anim.CurrentAnimation.Frame())
	if err != nil {
		return err
	}
	anim.Metadata = md
	return nil
}
