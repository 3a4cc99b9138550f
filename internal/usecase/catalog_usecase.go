package usecase

import (
	"context"
	"errors"
	"strings"

	"gestao360/internal/domain/entities"
	"gestao360/internal/usecase/interfaces"
)

var (
	ErrCatalogItemNotFound = errors.New("catalog item not found")
	ErrInvalidItemID       = errors.New("invalid catalog item id")
	ErrInvalidItemInput    = errors.New("invalid catalog item input")
	ErrInvalidItemType     = errors.New("invalid catalog item type")
)

// ICatalogUseCase exposes the catalog-item collection operations.

type ICatalogUseCase interface {
	RegisterItem(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error)
	GetByID(ctx context.Context, id string) (entities.CatalogItem, error)
	UpdateItem(ctx context.Context, id string, patch entities.CatalogItemPatch) (entities.CatalogItem, error)
	DeleteItem(ctx context.Context, id string) error
	ListItems(ctx context.Context, itemType entities.ItemType, search string) ([]entities.CatalogItem, error)
}

type CatalogUseCase struct {
	repo interfaces.ICatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) RegisterItem(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" || item.Price < 0 || item.Stock < 0 {
		return entities.CatalogItem{}, ErrInvalidItemInput
	}
	if !item.Type.Valid() {
		return entities.CatalogItem{}, ErrInvalidItemType
	}
	// Services carry no stock by convention.
	if item.Type == entities.ItemTypeService {
		item.Stock = 0
	}
	return u.repo.Add(ctx, item)
}

func (u *CatalogUseCase) GetByID(ctx context.Context, id string) (entities.CatalogItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogItem{}, ErrInvalidItemID
	}

	item, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if item.ID == "" {
		return entities.CatalogItem{}, ErrCatalogItemNotFound
	}
	return item, nil
}

// UpdateItem merges the patch. Price changes never retroactively affect
// existing orders, which carry creation-time snapshots.
func (u *CatalogUseCase) UpdateItem(ctx context.Context, id string, patch entities.CatalogItemPatch) (entities.CatalogItem, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogItem{}, ErrInvalidItemID
	}
	if patch.Price != nil && *patch.Price < 0 {
		return entities.CatalogItem{}, ErrInvalidItemInput
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		return entities.CatalogItem{}, ErrInvalidItemInput
	}
	if patch.Type != nil && !patch.Type.Valid() {
		return entities.CatalogItem{}, ErrInvalidItemType
	}

	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if updated.ID == "" {
		return entities.CatalogItem{}, ErrCatalogItemNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) DeleteItem(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidItemID
	}
	return u.repo.Delete(ctx, id)
}

// ListItems returns catalog items in insertion order. An empty itemType means
// both kinds; search is a case-insensitive substring match on the name.
func (u *CatalogUseCase) ListItems(ctx context.Context, itemType entities.ItemType, search string) ([]entities.CatalogItem, error) {
	if itemType != "" && !itemType.Valid() {
		return nil, ErrInvalidItemType
	}

	items, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	filtered := make([]entities.CatalogItem, 0, len(items))
	for _, item := range items {
		if itemType != "" && item.Type != itemType {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}
