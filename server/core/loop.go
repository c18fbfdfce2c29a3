package core

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/leap-fish/necs/esync/srvsync"
)

// GameLoop drives every session at a fixed cadence. The simulation itself
// owns no timer.
type GameLoop struct {
	server   *Server
	interval time.Duration
	stopChan chan struct{}
}

func NewGameLoop(server *Server, interval time.Duration) *GameLoop {
	if interval <= 0 {
		interval = 80 * time.Millisecond
	}
	return &GameLoop{
		server:   server,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

func (g *GameLoop) Run() {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	log.Info("game loop started", "interval", g.interval)

	for {
		select {
		case <-g.stopChan:
			log.Info("game loop stopped")
			return
		case now := <-ticker.C:
			g.tick(now)
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick(now time.Time) {
	g.server.ProcessCommands()
	g.server.TickSessions(now)

	if err := srvsync.DoSync(); err != nil {
		log.Error("sync error", "err", err)
	}
}
