package storage

import (
	"sync"

	"github.com/vovakirdan/flabird/internal/games/flappy"
)

// Memory is an in-memory score store. It is used when the database cannot
// be opened, so a session still keeps its high score until it exits.
type Memory struct {
	mu     sync.Mutex
	values map[string]string
}

var (
	_ flappy.ScoreStore = (*Memory)(nil)
	_ flappy.MaxStore   = (*Memory)(nil)
)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get returns the value stored under key, or "" if the key is missing.
func (m *Memory) Get(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key], nil
}

// Set stores value under key.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// SetMax stores value under key unless a higher number is already stored,
// and returns the number held afterwards.
func (m *Memory) SetMax(key string, value float64) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if stored, ok := flappy.ParseScore(m.values[key]); ok && stored >= value {
		return stored, nil
	}
	m.values[key] = flappy.FormatScore(value)
	return value, nil
}
