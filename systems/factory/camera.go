package factory

import (
	"github.com/automoto/pixelrunner/archetypes"
	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{
		Width:  cfg.Camera.Width,
		Height: cfg.Camera.Height,
	})
	return camera
}

func CreateSoundQueue(w donburi.World) *donburi.Entry {
	return archetypes.SoundQueue.Spawn(w)
}
