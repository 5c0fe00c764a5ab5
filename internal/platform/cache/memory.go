package cache

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type memEntry struct {
	raw       []byte
	expiresAt time.Time // zero => no expira
}

// sweepEvery acota cada cuánto Set recorre el mapa buscando vencidos.
const sweepEvery = time.Minute

// Memory es un Cache in-process para dev/tests.
type Memory struct {
	mu        sync.RWMutex
	data      map[string]memEntry
	now       func() time.Time
	lastSweep time.Time
}

func NewMemory() *Memory {
	return &Memory{
		data: make(map[string]memEntry),
		now:  time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string, dst any) error {
	m.mu.RLock()
	e, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		return ErrMiss
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		m.mu.Lock()
		delete(m.data, key)
		m.mu.Unlock()
		return ErrMiss
	}
	return json.Unmarshal(e.raw, dst)
}

func (m *Memory) Set(_ context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	e := memEntry{raw: raw}
	now := m.now()
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}

	m.mu.Lock()
	if now.Sub(m.lastSweep) >= sweepEvery {
		m.sweepLocked(now)
	}
	m.data[key] = e
	m.mu.Unlock()
	return nil
}

// sweepLocked borra las entradas vencidas. Requiere m.mu tomado.
func (m *Memory) sweepLocked(now time.Time) {
	for k, e := range m.data {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(m.data, k)
		}
	}
	m.lastSweep = now
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	return nil
}
