package kv

import (
	"context"
	"maps"
	"sync"
)

var _ Store = (*MapStore)(nil)

// MapStore Store en memoria del proceso (tests y herramientas locales).
type MapStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMapStore construye un MapStore vacío.
func NewMapStore() *MapStore {
	return &MapStore{values: make(map[string]string)}
}

func (s *MapStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MapStore) SetAll(_ context.Context, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	maps.Copy(s.values, values)
	return nil
}

// Values copia del contenido actual.
func (s *MapStore) Values() map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.values)
}
