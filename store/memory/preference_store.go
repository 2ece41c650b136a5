package memory

import (
	"context"
	"sync"

	"github.com/NomadCrew/travel-timeline-backend/store"
)

var _ store.PreferenceStore = (*PreferenceStore)(nil)

// PreferenceStore is a map-backed key/value store. Values do not survive a restart.
type PreferenceStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{values: make(map[string][]byte)}
}

func (s *PreferenceStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), raw...), true, nil
}

func (s *PreferenceStore) Set(ctx context.Context, key string, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), raw...)
	return nil
}

func (s *PreferenceStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
