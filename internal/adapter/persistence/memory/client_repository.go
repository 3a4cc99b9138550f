package memory

import (
	"context"
	"time"

	"gestao360/internal/domain/entities"
	"gestao360/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ClientRepository is the client collection view over the shared store.

type ClientRepository struct {
	store *Store
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(s *Store) *ClientRepository {
	return &ClientRepository{store: s}
}

func (r *ClientRepository) Add(_ context.Context, c entities.Client) (entities.Client, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = uuid.NewString()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	s.clients[c.ID] = c
	s.clientIDs = append(s.clientIDs, c.ID)
	s.version++
	return c, nil
}

func (r *ClientRepository) GetByID(_ context.Context, id string) (entities.Client, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clients[id], nil
}

// Update merges the patch into the stored record. A missing identifier is a
// no-op returning the zero value.
func (r *ClientRepository) Update(_ context.Context, id string, patch entities.ClientPatch) (entities.Client, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.clients[id]
	if !ok {
		return entities.Client{}, nil
	}
	updated := patch.Apply(existing)
	s.clients[id] = updated
	s.version++
	return updated, nil
}

// Delete removes the client. It never cascades: orders keep their
// denormalized client-name snapshot.
func (r *ClientRepository) Delete(_ context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.clients[id]; !ok {
		return nil
	}
	delete(s.clients, id)
	s.clientIDs = removeID(s.clientIDs, id)
	s.version++
	return nil
}

func (r *ClientRepository) List(_ context.Context) ([]entities.Client, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Client, 0, len(s.clientIDs))
	for _, id := range s.clientIDs {
		out = append(out, s.clients[id])
	}
	return out, nil
}
