// Package memory implements the entity store: three in-memory collections
// (clients, catalog items, orders) shared by the per-entity repositories.
// State is ephemeral and resets with the process.
package memory

import (
	"context"
	"sync"

	"gestao360/internal/domain/entities"
	"gestao360/internal/usecase/interfaces"
)

var _ interfaces.IStoreVersion = (*Store)(nil)

// firstOrderNumber is where the sequential order numbering starts.
const firstOrderNumber = 1001

// Store holds every collection under one lock. Mutations are serialized and
// bump a monotonic version counter, the "data changed" signal for derived
// views. Reads hand out copies so callers can never observe (or corrupt)
// in-place state.
//
// Identifier generation is collision-free by construction: UUIDs for clients
// and catalog items, a monotonic counter for order numbers.

type Store struct {
	mu        sync.RWMutex
	clients   map[string]entities.Client
	clientIDs []string
	items     map[string]entities.CatalogItem
	itemIDs   []string
	orders    map[int]entities.Order
	orderIDs  []int

	nextOrderNumber int
	version         uint64
}

func NewStore() *Store {
	return &Store{
		clients:         make(map[string]entities.Client),
		items:           make(map[string]entities.CatalogItem),
		orders:          make(map[int]entities.Order),
		nextOrderNumber: firstOrderNumber,
	}
}

// Version returns the store's change counter.
func (s *Store) Version(_ context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version, nil
}

func removeID[T comparable](ids []T, id T) []T {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
