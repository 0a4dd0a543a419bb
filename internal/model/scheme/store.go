package scheme

import "github.com/rmncha/health-assistant/backend/internal/model/directory"

// Store exposes scheme retrieval for HTTP handlers.
type Store interface {
	List() []Scheme
	FindByCategory(category string) []Scheme
	FindByID(id string) (Scheme, bool)
}

// MemoryStore implements Store over an in-memory collection.
type MemoryStore struct {
	items *directory.Collection[Scheme]
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied schemes.
func NewMemoryStore(items []Scheme) *MemoryStore {
	return &MemoryStore{items: directory.NewCollection(items)}
}

// List returns every scheme.
func (s *MemoryStore) List() []Scheme {
	return s.items.List()
}

// FindByCategory filters by case-insensitive substring on category.
func (s *MemoryStore) FindByCategory(category string) []Scheme {
	return s.items.Filter(func(item Scheme) bool {
		return directory.ContainsFold(item.Category, category)
	})
}

// FindByID looks up a scheme by identifier.
func (s *MemoryStore) FindByID(id string) (Scheme, bool) {
	return s.items.FindByID(id)
}
