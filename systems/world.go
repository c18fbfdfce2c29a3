package systems

import (
	"github.com/automoto/pixelrunner/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Singleton lookups. Every populated session world holds exactly one map,
// camera and space, so a miss is a wiring bug.

func mapData(w donburi.World) *components.MapData {
	entry, ok := components.Map.First(w)
	if !ok {
		panic("systems: world has no map")
	}
	return components.Map.Get(entry)
}

func cameraData(w donburi.World) *components.CameraData {
	entry, ok := components.Camera.First(w)
	if !ok {
		panic("systems: world has no camera")
	}
	return components.Camera.Get(entry)
}

func space(w donburi.World) *resolv.Space {
	entry, ok := components.Space.First(w)
	if !ok {
		panic("systems: world has no space")
	}
	return components.Space.Get(entry)
}
