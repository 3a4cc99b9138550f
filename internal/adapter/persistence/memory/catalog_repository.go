package memory

import (
	"context"
	"time"

	"gestao360/internal/domain/entities"
	"gestao360/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// CatalogRepository is the catalog-item collection view over the shared store.

type CatalogRepository struct {
	store *Store
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(s *Store) *CatalogRepository {
	return &CatalogRepository{store: s}
}

func (r *CatalogRepository) Add(_ context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = uuid.NewString()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}
	s.items[item.ID] = cloneCatalogItem(item)
	s.itemIDs = append(s.itemIDs, item.ID)
	s.version++
	return item, nil
}

func (r *CatalogRepository) GetByID(_ context.Context, id string) (entities.CatalogItem, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCatalogItem(s.items[id]), nil
}

func (r *CatalogRepository) Update(_ context.Context, id string, patch entities.CatalogItemPatch) (entities.CatalogItem, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.items[id]
	if !ok {
		return entities.CatalogItem{}, nil
	}
	updated := patch.Apply(existing)
	s.items[id] = cloneCatalogItem(updated)
	s.version++
	return updated, nil
}

func (r *CatalogRepository) Delete(_ context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return nil
	}
	delete(s.items, id)
	s.itemIDs = removeID(s.itemIDs, id)
	s.version++
	return nil
}

func (r *CatalogRepository) List(_ context.Context) ([]entities.CatalogItem, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.CatalogItem, 0, len(s.itemIDs))
	for _, id := range s.itemIDs {
		out = append(out, cloneCatalogItem(s.items[id]))
	}
	return out, nil
}

func cloneCatalogItem(item entities.CatalogItem) entities.CatalogItem {
	if item.CostPrice != nil {
		v := *item.CostPrice
		item.CostPrice = &v
	}
	return item
}
