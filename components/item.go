package components

import (
	"github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type ItemData struct {
	Kind          config.ItemKind
	State         config.Activity
	X, Y          int
	BaseY         int
	Width, Height int

	// Rise floats a deactivating item upward, nil otherwise.
	Rise *gween.Tween

	AnimState config.StateID
}

func (i *ItemData) Rect() gamemath.Rect {
	return gamemath.Rect{X: i.X, Y: i.Y, W: i.Width, H: i.Height}
}

var Item = donburi.NewComponentType[ItemData]()
