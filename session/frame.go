package session

import (
	"image/color"

	"github.com/automoto/pixelrunner/assets/animations"
	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/systems"
	"github.com/yohamta/donburi"
)

// Frame is the drawable state handed to the renderer after a tick. All
// positions are viewport-local.
type Frame struct {
	Tick     uint64
	Level    string
	MapState cfg.MapStateID
	Paused   bool
	Camera   components.CameraData // global viewport rectangle

	Player    Sprite
	Items     []Sprite
	Enemies   []Sprite
	Particles []ParticleSprite

	Total     int // collectables in the level
	Remaining int // collectables not yet picked up
	Sounds    []cfg.SoundID
}

// Sprite is one animated entity as the renderer needs it.
type Sprite struct {
	Key       string // sprite sheet key
	X, Y      int
	Width     int
	Height    int
	Direction int
	Activity  cfg.Activity
	Frame     animations.FrameMetadata
}

type ParticleSprite struct {
	Kind  components.ParticleKind
	X, Y  int
	Size  int
	Color color.RGBA
	Alpha float64
}

// Renderer consumes frames. It never mutates simulation state.
type Renderer interface {
	Render(f *Frame) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(f *Frame) error

func (fn RendererFunc) Render(f *Frame) error { return fn(f) }

func buildFrame(w donburi.World, tick uint64) *Frame {
	f := &Frame{Tick: tick}
	f.Total, f.Remaining = systems.CountCollectables(w)

	if entry, ok := components.Map.First(w); ok {
		m := components.Map.Get(entry)
		f.Level = m.Name
		f.MapState = m.State
	}
	cam := &components.CameraData{}
	if entry, ok := components.Camera.First(w); ok {
		cam = components.Camera.Get(entry)
	}
	f.Camera = *cam

	if entry, ok := components.Player.First(w); ok {
		p := components.Player.Get(entry)
		f.Player = sprite(entry, cam, p.X, p.Y, p.Width, p.Height, p.Direction, cfg.Active)
	}

	components.Item.Each(w, func(entry *donburi.Entry) {
		it := components.Item.Get(entry)
		if it.State == cfg.Inactive && it.Kind == cfg.ItemCollectable {
			return
		}
		f.Items = append(f.Items, sprite(entry, cam, it.X, it.Y, it.Width, it.Height, 0, it.State))
	})

	components.Enemy.Each(w, func(entry *donburi.Entry) {
		e := components.Enemy.Get(entry)
		f.Enemies = append(f.Enemies, sprite(entry, cam, e.X, e.Y, e.TypeConfig.Width, e.TypeConfig.Height, e.Direction, e.State))
	})

	components.Particle.Each(w, func(entry *donburi.Entry) {
		p := components.Particle.Get(entry)
		x, y := cam.ToLocal(int(p.X), int(p.Y))
		f.Particles = append(f.Particles, ParticleSprite{
			Kind:  p.Kind,
			X:     x,
			Y:     y,
			Size:  int(p.Size),
			Color: p.Color,
			Alpha: p.Alpha,
		})
	})

	return f
}

func sprite(entry *donburi.Entry, cam *components.CameraData, x, y, w, h, dir int, act cfg.Activity) Sprite {
	anim := components.Animation.Get(entry)
	lx, ly := cam.ToLocal(x, y)
	return Sprite{
		Key:       anim.Table.Key(),
		X:         lx,
		Y:         ly,
		Width:     w,
		Height:    h,
		Direction: dir,
		Activity:  act,
		Frame:     anim.Metadata,
	}
}
