package interfaces

import (
	"context"
	"gestao360/internal/domain/entities"
)

// IOrderRepository abstracts the order collection of the entity store.
//
// Orders are composed fully before they reach the store, so Add takes a
// complete record: a reader can never observe an order with only some of its
// lines attached or a stale total. Update runs mutate against the current
// record inside the store's critical section, so guard checks (status
// transitions) and the write are one atomic step even under concurrent
// requests.

type IOrderRepository interface {
	Add(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id int) (entities.Order, error)
	Update(ctx context.Context, id int, mutate func(entities.Order) (entities.Order, error)) (entities.Order, error)
	Delete(ctx context.Context, id int) error
	List(ctx context.Context) ([]entities.Order, error)
}

// IStoreVersion exposes the store's monotonic change counter. Every mutation
// of any collection bumps it; readers use it as a cheap "data changed" signal
// instead of comparing whole collections.

type IStoreVersion interface {
	Version(ctx context.Context) (uint64, error)
}
