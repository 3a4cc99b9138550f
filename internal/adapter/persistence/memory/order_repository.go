package memory

import (
	"context"
	"time"

	"gestao360/internal/domain/entities"
	"gestao360/internal/usecase/interfaces"
)

// OrderRepository is the order collection view over the shared store.
//
// Orders arrive fully composed (lines plus total) and are stored in one
// critical section, so no reader ever sees a partially attached order.

type OrderRepository struct {
	store *Store
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(s *Store) *OrderRepository {
	return &OrderRepository{store: s}
}

// Add assigns the next sequential order number and stores the record.
func (r *OrderRepository) Add(_ context.Context, o entities.Order) (entities.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = s.nextOrderNumber
	s.nextOrderNumber++
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	s.orders[o.ID] = cloneOrder(o)
	s.orderIDs = append(s.orderIDs, o.ID)
	s.version++
	return o, nil
}

func (r *OrderRepository) GetByID(_ context.Context, id int) (entities.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneOrder(s.orders[id]), nil
}

// Update applies mutate to the current record and swaps in the result, all
// under one critical section. Concurrent updates therefore serialize: each
// mutate call sees the latest committed state, never a stale snapshot. A
// missing identifier is a no-op returning the zero value; a mutate error
// aborts without writing.
func (r *OrderRepository) Update(_ context.Context, id int, mutate func(entities.Order) (entities.Order, error)) (entities.Order, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.orders[id]
	if !ok {
		return entities.Order{}, nil
	}
	updated, err := mutate(cloneOrder(current))
	if err != nil {
		return entities.Order{}, err
	}
	updated.ID = id
	s.orders[id] = cloneOrder(updated)
	s.version++
	return updated, nil
}

func (r *OrderRepository) Delete(_ context.Context, id int) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return nil
	}
	delete(s.orders, id)
	s.orderIDs = removeID(s.orderIDs, id)
	s.version++
	return nil
}

func (r *OrderRepository) List(_ context.Context) ([]entities.Order, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entities.Order, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		out = append(out, cloneOrder(s.orders[id]))
	}
	return out, nil
}

func cloneOrder(o entities.Order) entities.Order {
	if o.Items != nil {
		items := make([]entities.OrderLine, len(o.Items))
		copy(items, o.Items)
		o.Items = items
	}
	if o.ScheduledDate != nil {
		t := *o.ScheduledDate
		o.ScheduledDate = &t
	}
	return o
}
