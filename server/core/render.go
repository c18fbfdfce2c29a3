package core

import (
	"image/color"

	"github.com/automoto/pixelrunner/session"
	"github.com/automoto/pixelrunner/shared/netcomponents"
	"github.com/yohamta/donburi"
)

// netRenderer publishes session frames onto the session's synced entity.
type netRenderer struct {
	world  donburi.World
	entity donburi.Entity
	last   *session.Frame
}

func (r *netRenderer) Render(f *session.Frame) error {
	r.last = f
	if !r.world.Valid(r.entity) {
		return nil
	}
	entry := r.world.Entry(r.entity)

	netcomponents.NetFrame.SetValue(entry, ToNetFrame(f))
	netcomponents.NetCamera.SetValue(entry, netcomponents.NetCameraData{
		X:      float64(f.Camera.X),
		Y:      float64(f.Camera.Y),
		Width:  f.Camera.Width,
		Height: f.Camera.Height,
	})

	state := netcomponents.NetSession.Get(entry)
	state.MapState = int(f.MapState)
	state.Paused = f.Paused
	state.Total = f.Total
	state.Remaining = f.Remaining
	return nil
}

// ToNetFrame flattens a frame into its wire form.
func ToNetFrame(f *session.Frame) netcomponents.NetFrameData {
	out := netcomponents.NetFrameData{
		Tick:   f.Tick,
		Player: toNetSprite(f.Player),
	}
	for _, s := range f.Items {
		out.Items = append(out.Items, toNetSprite(s))
	}
	for _, s := range f.Enemies {
		out.Enemies = append(out.Enemies, toNetSprite(s))
	}
	for _, p := range f.Particles {
		out.Particles = append(out.Particles, netcomponents.NetParticle{
			Kind:  int(p.Kind),
			X:     p.X,
			Y:     p.Y,
			Size:  p.Size,
			RGBA:  packRGBA(p.Color),
			Alpha: p.Alpha,
		})
	}
	for _, snd := range f.Sounds {
		out.Sounds = append(out.Sounds, int(snd))
	}
	return out
}

func toNetSprite(s session.Sprite) netcomponents.NetSprite {
	return netcomponents.NetSprite{
		Key:       s.Key,
		X:         s.X,
		Y:         s.Y,
		Direction: s.Direction,
		State:     int(s.Frame.State),
		Frame:     s.Frame.Frame,
		CellX:     s.Frame.Cell.X,
		CellY:     s.Frame.Cell.Y,
		CellW:     s.Frame.Cell.W,
		CellH:     s.Frame.Cell.H,
	}
}

func packRGBA(c color.RGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}
