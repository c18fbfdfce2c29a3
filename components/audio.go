package components

import (
	cfg "github.com/automoto/pixelrunner/config"
	"github.com/yohamta/donburi"
)

// SoundQueueData buffers sound events raised during ticks until the session
// drains them (singleton component).
type SoundQueueData struct {
	Pending []cfg.SoundID
}

func (q *SoundQueueData) Push(id cfg.SoundID) {
	q.Pending = append(q.Pending, id)
}

// Drain returns the queued events and empties the queue.
func (q *SoundQueueData) Drain() []cfg.SoundID {
	out := q.Pending
	q.Pending = nil
	return out
}

var SoundQueue = donburi.NewComponentType[SoundQueueData]()
