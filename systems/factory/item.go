package factory

import (
	"github.com/automoto/pixelrunner/archetypes"
	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/shared/leveldata"
	"github.com/automoto/pixelrunner/tags"
	"github.com/yohamta/donburi"
)

// CreateItem spawns a map item. Collectables start Active; a Finish item
// starts Inactive and only opens once every collectable is consumed.
func CreateItem(w donburi.World, spawn leveldata.ItemSpawn) (*donburi.Entry, error) {
	state, anim, sprite := cfg.Active, cfg.ItemIdle, cfg.SpriteCollectable
	if spawn.Kind == cfg.ItemFinish {
		state, anim, sprite = cfg.Inactive, cfg.FinishIdle, cfg.SpriteFinish
	}

	animData, err := GenerateAnimations(sprite, anim)
	if err != nil {
		return nil, err
	}

	x, y := int(spawn.X), int(spawn.Y)
	item := archetypes.Item.Spawn(w)
	components.Item.SetValue(item, components.ItemData{
		Kind:      spawn.Kind,
		State:     state,
		X:         x,
		Y:         y,
		BaseY:     y,
		Width:     cfg.Item.Width,
		Height:    cfg.Item.Height,
		AnimState: anim,
	})
	components.Animation.Set(item, animData)
	newObject(w, item, x, y, cfg.Item.Width, cfg.Item.Height, tags.ResolvItem)

	return item, nil
}
