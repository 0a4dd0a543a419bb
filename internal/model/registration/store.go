package registration

import (
	"context"

	"github.com/rmncha/health-assistant/backend/internal/model/directory"
)

// Store persists registrations. Implementations return directory.ErrNotFound
// for unknown ids.
type Store interface {
	Save(ctx context.Context, r Registration) error
	List(ctx context.Context) ([]Registration, error)
	FindByID(ctx context.Context, id string) (Registration, error)
}

// MemoryStore keeps registrations for the lifetime of the process.
type MemoryStore struct {
	items *directory.Collection[Registration]
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: directory.NewCollection[Registration](nil)}
}

// Save appends r.
func (s *MemoryStore) Save(_ context.Context, r Registration) error {
	s.items.Add(r)
	return nil
}

// List returns registrations in submission order.
func (s *MemoryStore) List(_ context.Context) ([]Registration, error) {
	return s.items.List(), nil
}

// FindByID looks up a registration by identifier.
func (s *MemoryStore) FindByID(_ context.Context, id string) (Registration, error) {
	r, ok := s.items.FindByID(id)
	if !ok {
		return Registration{}, directory.ErrNotFound
	}
	return r, nil
}
