package systems

import (
	"testing"

	"github.com/automoto/pixelrunner/components"
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/shared/leveldata"
	"github.com/yohamta/donburi"
)

func finishItem(t *testing.T, w donburi.World) *components.ItemData {
	t.Helper()
	var out *components.ItemData
	components.Item.Each(w, func(e *donburi.Entry) {
		if item := components.Item.Get(e); item.Kind == cfg.ItemFinish {
			out = item
		}
	})
	if out == nil {
		t.Fatal("no finish item")
	}
	return out
}

func TestFinishOpensAfterLastCollectable(t *testing.T) {
	level := floorLevel(t, leveldata.MapData{
		PlayerSpawn: spawnAt(100, 552),
		Items: []leveldata.ItemSpawn{
			{X: 300, Y: 568, Kind: cfg.ItemCollectable},
			{X: 500, Y: 568, Kind: cfg.ItemCollectable},
			{X: 700, Y: 568, Kind: cfg.ItemFinish},
		},
	})
	w, playerEntry := newWorld(t, level)
	engine := NewEngine(w, 1)
	player := components.Player.Get(playerEntry)
	finish := finishItem(t, w)

	for i := 0; i < 300 && mapData(w).State != cfg.MapCompleted; i++ {
		player.Moving = true
		player.Direction = cfg.DirectionRight
		if err := engine.Step(1); err != nil {
			t.Fatalf("Step: %v", err)
		}

		_, remaining := CountCollectables(w)
		if finish.State == cfg.Active && remaining > 0 {
			t.Fatalf("tick %d: finish open with %d collectables left", i, remaining)
		}
		if mapData(w).State == cfg.MapCompleting && finish.State != cfg.Active {
			t.Fatalf("tick %d: map completing but finish is %s", i, finish.State)
		}
	}

	m := mapData(w)
	if m.State != cfg.MapCompleted {
		t.Fatalf("map state = %s, want completed", m.State)
	}
	if m.CompletedAt == 0 {
		t.Error("CompletedAt not recorded")
	}
	if total, remaining := CountCollectables(w); total != 2 || remaining != 0 {
		t.Errorf("collectables = %d/%d, want 0/2", remaining, total)
	}
}

func TestFinishIgnoredWhileCollecting(t *testing.T) {
	level := floorLevel(t, leveldata.MapData{
		PlayerSpawn: spawnAt(100, 552),
		Items: []leveldata.ItemSpawn{
			{X: 200, Y: 568, Kind: cfg.ItemFinish},
			{X: 600, Y: 568, Kind: cfg.ItemCollectable},
		},
	})
	w, playerEntry := newWorld(t, level)
	engine := NewEngine(w, 1)
	player := components.Player.Get(playerEntry)

	run := func(dir int, until func() bool) {
		t.Helper()
		for i := 0; i < 300 && !until(); i++ {
			player.Moving = true
			player.Direction = dir
			if err := engine.Step(1); err != nil {
				t.Fatalf("Step: %v", err)
			}
		}
	}

	// Run past the closed finish and grab the collectable
	run(cfg.DirectionRight, func() bool { return player.X >= 700 })
	if err := engine.Step(1); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if s := mapData(w).State; s != cfg.MapCompleting {
		t.Fatalf("map state = %s, want completing", s)
	}

	// Come back to the now open finish
	run(cfg.DirectionLeft, func() bool { return mapData(w).State == cfg.MapCompleted })
	if s := mapData(w).State; s != cfg.MapCompleted {
		t.Fatalf("map state = %s, want completed", s)
	}
}

func TestCollectedItemDeactivates(t *testing.T) {
	level := floorLevel(t, leveldata.MapData{
		PlayerSpawn: spawnAt(100, 552),
		Items: []leveldata.ItemSpawn{
			{X: 110, Y: 568, Kind: cfg.ItemCollectable},
			{X: 900, Y: 568, Kind: cfg.ItemCollectable},
		},
	})
	w, _ := newWorld(t, level)
	engine := NewEngine(w, 1)

	if err := engine.Step(1); err != nil {
		t.Fatalf("Step: %v", err)
	}
	var picked *components.ItemData
	components.Item.Each(w, func(e *donburi.Entry) {
		if item := components.Item.Get(e); item.X == 110 {
			picked = item
		}
	})
	if picked.State != cfg.Deactivating {
		t.Fatalf("state = %s, want deactivating", picked.State)
	}
	if sounds := DrainSounds(w); len(sounds) != 1 || sounds[0] != cfg.SoundCollect {
		t.Errorf("sounds = %v, want [collect]", sounds)
	}

	for i := 0; i < cfg.Item.DeactivateFrames; i++ {
		if err := engine.Step(1); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
	if picked.State != cfg.Inactive {
		t.Errorf("state = %s after rise, want inactive", picked.State)
	}
	if picked.Y >= picked.BaseY {
		t.Errorf("y = %d did not rise above %d", picked.Y, picked.BaseY)
	}
	if s := mapData(w).State; s != cfg.MapCollecting {
		t.Errorf("map state = %s with a collectable left, want collecting", s)
	}
}
