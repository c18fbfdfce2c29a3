package netcomponents

import "github.com/yohamta/donburi"

type NetCameraData struct {
	X, Y          float64
	Width, Height int
}

var NetCamera = donburi.NewComponentType[NetCameraData]()

// LerpNetCamera interpolates the viewport origin between two snapshots
func LerpNetCamera(from, to NetCameraData, t float64) *NetCameraData {
	return &NetCameraData{
		X:      from.X + (to.X-from.X)*t,
		Y:      from.Y + (to.Y-from.Y)*t,
		Width:  to.Width,
		Height: to.Height,
	}
}
