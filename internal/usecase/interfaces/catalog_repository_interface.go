package interfaces

import (
	"context"
	"gestao360/internal/domain/entities"
)

// ICatalogRepository abstracts the catalog-item collection of the entity store.

type ICatalogRepository interface {
	Add(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	GetByID(ctx context.Context, id string) (entities.CatalogItem, error)
	Update(ctx context.Context, id string, patch entities.CatalogItemPatch) (entities.CatalogItem, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]entities.CatalogItem, error)
}
