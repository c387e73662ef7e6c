package storage

import (
	"encoding/json"
	"log"
	"sync"
)

// Memory is an in-process Store. Values are held as marshaled JSON so reads
// round-trip exactly like the persistent backends.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string, dest any) bool {
	m.mu.Lock()
	raw, ok := m.data[key]
	m.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Printf("storage: corrupt entry at %q: %v", key, err)
		return false
	}
	return true
}

func (m *Memory) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("storage: marshaling %q: %v", key, err)
		return
	}
	m.mu.Lock()
	m.data[key] = raw
	m.mu.Unlock()
}

func (m *Memory) Remove(key string) {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
}
