package core

import (
	"testing"

	"github.com/automoto/pixelrunner/assets/animations"
	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/session"
	"github.com/automoto/pixelrunner/shared/netcomponents"
	"github.com/yohamta/donburi"
)

func testFrame() *session.Frame {
	return &session.Frame{
		Tick:     42,
		Level:    "level1",
		MapState: cfg.MapCompleting,
		Paused:   true,
		Camera:   components.CameraData{X: 120, Y: 40, Width: 800, Height: 600},
		Player: session.Sprite{
			Key: cfg.SpritePlayer, X: 380, Y: 260, Direction: cfg.DirectionLeft,
			Frame: animations.FrameMetadata{
				State: cfg.Running,
				Frame: 3,
				Cell:  animations.Cell{X: 64, Y: 48, W: 32, H: 48},
			},
		},
		Items:   []session.Sprite{{Key: cfg.SpriteFinish, X: 10, Y: 20}},
		Enemies: []session.Sprite{{Key: cfg.SpriteBlocker}, {Key: cfg.SpriteRunner}},
		Particles: []session.ParticleSprite{
			{Kind: components.ParticleDust, X: 5, Y: 6, Size: 4, Color: cfg.Sand, Alpha: 0.5},
		},
		Total:     3,
		Remaining: 0,
		Sounds:    []cfg.SoundID{cfg.SoundCollect, cfg.SoundJump},
	}
}

func TestToNetFrame(t *testing.T) {
	out := ToNetFrame(testFrame())

	if out.Tick != 42 {
		t.Errorf("Tick = %d", out.Tick)
	}
	want := netcomponents.NetSprite{
		Key: cfg.SpritePlayer, X: 380, Y: 260, Direction: cfg.DirectionLeft,
		State: int(cfg.Running), Frame: 3,
		CellX: 64, CellY: 48, CellW: 32, CellH: 48,
	}
	if out.Player != want {
		t.Errorf("Player = %+v, want %+v", out.Player, want)
	}
	if len(out.Items) != 1 || len(out.Enemies) != 2 || len(out.Particles) != 1 {
		t.Errorf("counts = items %d enemies %d particles %d", len(out.Items), len(out.Enemies), len(out.Particles))
	}
	if got := out.Particles[0].RGBA; got != 0xC2B280FF {
		t.Errorf("particle RGBA = %#x, want 0xc2b280ff", got)
	}
	if len(out.Sounds) != 2 || out.Sounds[0] != int(cfg.SoundCollect) {
		t.Errorf("Sounds = %v", out.Sounds)
	}
}

func TestNetRendererPublishes(t *testing.T) {
	w := donburi.NewWorld()
	entity := w.Create(netcomponents.NetFrame, netcomponents.NetCamera, netcomponents.NetSession)
	r := &netRenderer{world: w, entity: entity}

	if err := r.Render(testFrame()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	entry := w.Entry(entity)
	if got := netcomponents.NetFrame.Get(entry).Tick; got != 42 {
		t.Errorf("NetFrame tick = %d", got)
	}
	if cam := netcomponents.NetCamera.Get(entry); cam.X != 120 || cam.Y != 40 || cam.Width != 800 {
		t.Errorf("NetCamera = %+v", cam)
	}
	state := netcomponents.NetSession.Get(entry)
	if state.MapState != int(cfg.MapCompleting) || !state.Paused || state.Total != 3 || state.Remaining != 0 {
		t.Errorf("NetSession = %+v", state)
	}

	// A removed entity is skipped, not an error
	w.Remove(entity)
	if err := r.Render(testFrame()); err != nil {
		t.Errorf("Render after remove: %v", err)
	}
}
