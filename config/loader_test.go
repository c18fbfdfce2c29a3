package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// keep restores the global configuration after a test that applies overrides.
func keep(t *testing.T) {
	t.Helper()
	player, item, particle, camera, terrain, session := Player, Item, Particle, Camera, Terrain, Session
	types := Enemy.Types
	t.Cleanup(func() {
		Player, Item, Particle, Camera, Terrain, Session = player, item, particle, camera, terrain, session
		Enemy.Types = types
	})
}

func TestApplyPartialOverride(t *testing.T) {
	keep(t)
	doc := `
player:
  max_speed: 10
  jump_distance: 120
enemies:
  shooter:
    activation_range: 250
camera:
  width: 1024
session:
  tick_interval: 50ms
`
	if err := Apply([]byte(doc)); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if Player.MaxSpeed != 10 || Player.JumpDistance != 120 {
		t.Errorf("player = max %v jump %d", Player.MaxSpeed, Player.JumpDistance)
	}
	if Player.Width != 32 || Player.InitialJumpSpeed != 4.0 {
		t.Errorf("untouched player fields changed: width %d speed %v", Player.Width, Player.InitialJumpSpeed)
	}
	if got := Enemy.Types[EnemyShooter]; got.ActivationRange != 250 || got.FireInterval != 25 {
		t.Errorf("shooter = range %d interval %d", got.ActivationRange, got.FireInterval)
	}
	if Enemy.Types[EnemyRunner].ActivationRange != 300 {
		t.Error("runner changed by a shooter override")
	}
	if Camera.Width != 1024 || Camera.Height != 600 {
		t.Errorf("camera = %dx%d", Camera.Width, Camera.Height)
	}
	if Session.TickInterval != 50*time.Millisecond {
		t.Errorf("tick interval = %v", Session.TickInterval)
	}
	if Terrain.SolidColor != Black {
		t.Error("solid color lost")
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown enemy", "enemies:\n  dragon:\n    step: 3\n"},
		{"bad value", "player:\n  width: wide\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keep(t)
			before := Player
			if err := Apply([]byte(tt.doc)); err == nil {
				t.Fatal("Apply = nil, want error")
			}
			if Player != before {
				t.Error("failed Apply changed the configuration")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	keep(t)
	if err := Load(""); err != nil {
		t.Errorf("Load(\"\") = %v", err)
	}
	if err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file loaded")
	}

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("item:\n  deactivate_frames: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Item.DeactivateFrames != 9 || Item.Width != 32 {
		t.Errorf("item = frames %d width %d", Item.DeactivateFrames, Item.Width)
	}
}
