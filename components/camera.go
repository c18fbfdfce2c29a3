package components

import (
	"github.com/automoto/pixelrunner/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CameraData is the viewport over the terrain. PrevX and PrevY hold the
// previous tick's origin so renderers can compute the scroll delta.
type CameraData struct {
	X, Y          int
	PrevX, PrevY  int
	Width, Height int
}

// ToLocal maps a global map coordinate into viewport space.
func (c *CameraData) ToLocal(x, y int) (int, int) {
	return x - c.X, y - c.Y
}

// ToGlobal maps a viewport coordinate back into map space.
func (c *CameraData) ToGlobal(x, y int) (int, int) {
	return x + c.X, y + c.Y
}

func (c *CameraData) Rect() gamemath.Rect {
	return gamemath.Rect{X: c.X, Y: c.Y, W: c.Width, H: c.Height}
}

// Delta returns the scroll since the previous tick.
func (c *CameraData) Delta() (int, int) {
	return c.X - c.PrevX, c.Y - c.PrevY
}

var Camera = donburi.NewComponentType[CameraData]()
