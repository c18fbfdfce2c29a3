package core

import (
	"testing"

	cfg "github.com/automoto/pixelrunner/config"
	"github.com/automoto/pixelrunner/records"
	"github.com/automoto/pixelrunner/session"
	"github.com/automoto/pixelrunner/shared/netcomponents"
	"github.com/yohamta/donburi"
)

func TestRecordCompletionOncePerRun(t *testing.T) {
	w := donburi.NewWorld()
	store := records.NewStore(records.NewMemoryBackend())
	s := &Server{world: w, records: store}

	entity := w.Create(netcomponents.NetFrame, netcomponents.NetCamera, netcomponents.NetSession)
	cs := &clientSession{
		clientID: "c1",
		entity:   entity,
		renderer: &netRenderer{world: w, entity: entity},
	}

	cs.renderer.last = &session.Frame{Level: "level1", Tick: 300, MapState: cfg.MapCompleting}
	s.recordCompletion(cs)
	if _, ok, _ := store.Best("level1"); ok {
		t.Fatal("record saved before completion")
	}

	cs.renderer.last = &session.Frame{Level: "level1", Tick: 310, MapState: cfg.MapCompleted}
	s.recordCompletion(cs)
	// A paused session keeps returning the completed frame
	cs.renderer.last = &session.Frame{Level: "level1", Tick: 250, MapState: cfg.MapCompleted}
	s.recordCompletion(cs)

	best, ok, err := store.Best("level1")
	if err != nil || !ok {
		t.Fatalf("Best = %v, %v", ok, err)
	}
	if best.Ticks != 310 {
		t.Errorf("best = %d ticks, want 310", best.Ticks)
	}
	if got := netcomponents.NetSession.Get(w.Entry(entity)).BestTicks; got != 310 {
		t.Errorf("BestTicks = %d, want 310", got)
	}

	// A restarted run may set a new record
	cs.renderer.last = &session.Frame{Level: "level1", Tick: 5, MapState: cfg.MapCollecting}
	s.recordCompletion(cs)
	cs.renderer.last = &session.Frame{Level: "level1", Tick: 280, MapState: cfg.MapCompleted}
	s.recordCompletion(cs)
	if best, _, _ := store.Best("level1"); best.Ticks != 280 {
		t.Errorf("best = %d ticks after faster run, want 280", best.Ticks)
	}
}
