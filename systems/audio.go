package systems

import (
	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/yohamta/donburi"
)

// PlaySound queues a sound event for the session to deliver after the tick.
func PlaySound(w donburi.World, id cfg.SoundID) {
	entry, ok := components.SoundQueue.First(w)
	if !ok {
		return
	}
	components.SoundQueue.Get(entry).Push(id)
}

// DrainSounds returns and clears the pending sound events.
func DrainSounds(w donburi.World) []cfg.SoundID {
	entry, ok := components.SoundQueue.First(w)
	if !ok {
		return nil
	}
	return components.SoundQueue.Get(entry).Drain()
}
