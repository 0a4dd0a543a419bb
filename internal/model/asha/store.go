package asha

import "github.com/rmncha/health-assistant/backend/internal/model/directory"

// Store exposes ASHA worker retrieval for HTTP handlers.
type Store interface {
	List() []Worker
	FindByLocation(district, state string) []Worker
	FindByID(id string) (Worker, bool)
}

// MemoryStore implements Store over an in-memory collection.
type MemoryStore struct {
	items *directory.Collection[Worker]
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied workers.
func NewMemoryStore(items []Worker) *MemoryStore {
	return &MemoryStore{items: directory.NewCollection(items)}
}

// List returns every worker.
func (s *MemoryStore) List() []Worker {
	return s.items.List()
}

// FindByLocation filters by case-insensitive substring on district and state.
// Empty arguments do not constrain the result.
func (s *MemoryStore) FindByLocation(district, state string) []Worker {
	return s.items.Filter(func(w Worker) bool {
		return directory.ContainsFold(w.District, district) && directory.ContainsFold(w.State, state)
	})
}

// FindByID looks up a worker by identifier.
func (s *MemoryStore) FindByID(id string) (Worker, bool) {
	return s.items.FindByID(id)
}
