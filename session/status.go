package session

import (
	"sync/atomic"
	"time"
)

// SessionStatus is the lifecycle state of one session. Pause and resume are
// written by the input boundary; everything else only by Tick.
type SessionStatus struct {
	paused atomic.Bool

	Initialized bool
	Terminated  bool
	LastTick    time.Time // wall-clock time of the last simulated tick
	Ticks       uint64    // ticks simulated since start or restart
	Err         error     // fatal error that terminated the session
}

func (s *SessionStatus) Pause()       { s.paused.Store(true) }
func (s *SessionStatus) Resume()      { s.paused.Store(false) }
func (s *SessionStatus) Paused() bool { return s.paused.Load() }
