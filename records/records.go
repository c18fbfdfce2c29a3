// Package records keeps the best completion time of each level.
package records

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// Backend stores opaque items by key. *gdata.Manager satisfies it.
type Backend interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

// Record is the best completion of a level, measured in ticks.
type Record struct {
	Level      string    `json:"level"`
	Ticks      int       `json:"ticks"`
	RecordedAt time.Time `json:"recordedAt"`
}

type Store struct {
	mu      sync.Mutex
	backend Backend
	cache   map[string]Record
}

// Open returns a store persisted with gdata under appName. An empty appName
// keeps records in memory for the life of the process.
func Open(appName string) (*Store, error) {
	if appName == "" {
		return NewStore(NewMemoryBackend()), nil
	}
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open records %s: %w", appName, err)
	}
	return NewStore(m), nil
}

func NewStore(b Backend) *Store {
	return &Store{backend: b, cache: make(map[string]Record)}
}

func itemKey(level string) string {
	return "best_" + level
}

// Best returns the best record for a level.
func (s *Store) Best(level string) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.best(level)
}

func (s *Store) best(level string) (Record, bool, error) {
	if r, ok := s.cache[level]; ok {
		return r, true, nil
	}

	data, err := s.backend.LoadItem(itemKey(level))
	if err != nil {
		return Record{}, false, fmt.Errorf("load record %s: %w", level, err)
	}
	if data == nil {
		return Record{}, false, nil
	}

	var r Record
	if err := json.Unmarshal(data, &r); err != nil {
		return Record{}, false, fmt.Errorf("parse record %s: %w", level, err)
	}
	s.cache[level] = r
	return r, true, nil
}

// Submit stores a completion if it beats the current best. It reports
// whether a new record was set.
func (s *Store) Submit(level string, ticks int, at time.Time) (bool, error) {
	if ticks <= 0 {
		return false, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev, ok, err := s.best(level)
	if err != nil {
		log.Warn("could not read previous record", "level", level, "err", err)
	}
	if ok && prev.Ticks <= ticks {
		return false, nil
	}

	r := Record{Level: level, Ticks: ticks, RecordedAt: at.UTC()}
	data, err := json.Marshal(r)
	if err != nil {
		return false, fmt.Errorf("marshal record %s: %w", level, err)
	}
	if err := s.backend.SaveItem(itemKey(level), data); err != nil {
		return false, fmt.Errorf("save record %s: %w", level, err)
	}
	s.cache[level] = r
	return true, nil
}

// MemoryBackend keeps items in a map.
type MemoryBackend struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{items: make(map[string][]byte)}
}

func (m *MemoryBackend) LoadItem(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.items[key], nil
}

func (m *MemoryBackend) SaveItem(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = append([]byte(nil), data...)
	return nil
}
