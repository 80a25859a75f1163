package store

import (
	"context"
	"sync"

	"github.com/altay/inkdash/internal/snapshot"
)

// Memory is an in-process Store used in tests and as a fallback when the
// on-disk database cannot be opened.
type Memory struct {
	mu        sync.RWMutex
	snapshots map[snapshot.Domain][]byte
	prefs     map[string]string
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		snapshots: make(map[snapshot.Domain][]byte),
		prefs:     make(map[string]string),
	}
}

func (m *Memory) GetSnapshot(_ context.Context, domain snapshot.Domain) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	payload, ok := m.snapshots[domain]
	if !ok {
		return nil, ErrNotFound
	}
	return payload, nil
}

func (m *Memory) PutSnapshot(_ context.Context, domain snapshot.Domain, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[domain] = payload
	return nil
}

func (m *Memory) GetPref(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.prefs[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *Memory) PutPref(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[key] = value
	return nil
}

func (m *Memory) DeletePref(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.prefs, key)
	return nil
}

func (m *Memory) Close() error { return nil }
