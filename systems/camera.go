package systems

import (
	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateCamera centers the viewport on the player, clamped so it never leaves
// the terrain. A terrain smaller than the viewport shrinks it to the terrain.
func UpdateCamera(w donburi.World) {
	playerEntry, ok := components.Player.First(w)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	camera := cameraData(w)
	m := mapData(w)

	camera.PrevX, camera.PrevY = camera.X, camera.Y
	CenterCamera(camera, player, m.Width(), m.Height())
}

// CenterCamera positions the viewport around the player within a terrain of
// the given size.
func CenterCamera(camera *components.CameraData, player *components.PlayerData, terrainW, terrainH int) {
	camera.Width = min(cfg.Camera.Width, terrainW)
	camera.Height = min(cfg.Camera.Height, terrainH)

	cx := player.X + player.Width/2
	cy := player.Y + player.Height/2
	camera.X = gamemath.Clamp(cx-camera.Width/2, 0, max(0, terrainW-camera.Width))
	camera.Y = gamemath.Clamp(cy-camera.Height/2, 0, max(0, terrainH-camera.Height))
}
