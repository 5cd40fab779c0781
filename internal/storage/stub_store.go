package storage

import (
	"context"
	"sync"
)

// StubStore is an in-memory Store for tests.
type StubStore struct {
	mu       sync.Mutex
	data     map[string]string
	FailSave bool
}

func NewStubStore() *StubStore {
	return &StubStore{data: map[string]string{}}
}

func (s *StubStore) Load(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, found := s.data[key]
	return body, found, nil
}

func (s *StubStore) Save(ctx context.Context, key string, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailSave {
		return ErrSaveFailed
	}
	s.data[key] = body
	return nil
}

func (s *StubStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *StubStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = map[string]string{}
	s.FailSave = false
}
