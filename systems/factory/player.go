package factory

import (
	"github.com/automoto/pixelrunner/archetypes"
	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/tags"
	"github.com/yohamta/donburi"
)

func CreatePlayer(w donburi.World, x, y int) (*donburi.Entry, error) {
	animData, err := GenerateAnimations(cfg.SpritePlayer, cfg.Idle)
	if err != nil {
		return nil, err
	}

	player := archetypes.Player.Spawn(w)
	components.Player.SetValue(player, NewPlayerData(x, y))
	components.Animation.Set(player, animData)
	newObject(w, player, x, y, cfg.Player.Width, cfg.Player.Height, tags.ResolvPlayer)

	return player, nil
}

// NewPlayerData returns a grounded-at-rest player at (x, y) facing right.
func NewPlayerData(x, y int) components.PlayerData {
	return components.PlayerData{
		X:         x,
		Y:         y,
		Width:     cfg.Player.Width,
		Height:    cfg.Player.Height,
		Direction: cfg.DirectionRight,
		State:     cfg.Idle,
	}
}
