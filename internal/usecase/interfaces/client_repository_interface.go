package interfaces

import (
	"context"
	"gestao360/internal/domain/entities"
)

// IClientRepository abstracts the client collection of the entity store.
//
// Store contract:
//   - Add assigns the identifier and creation timestamp.
//   - Update merges a shallow patch; a missing identifier is a no-op and
//     returns the zero value (callers map that to a not-found error).
//   - Delete is a no-op when the identifier is absent and never cascades
//     to orders.
//   - List returns the collection in insertion order.

type IClientRepository interface {
	Add(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	Update(ctx context.Context, id string, patch entities.ClientPatch) (entities.Client, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.Client, error)
}
