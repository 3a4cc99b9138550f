package request

import "gestao360/internal/domain/entities"

// CatalogItemRequest is the payload for registering a product or service.
type CatalogItemRequest struct {
	Name        string   `json:"name" binding:"required,min=2"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"gte=0"`
	CostPrice   *float64 `json:"cost_price" binding:"omitempty,gte=0"`
	Stock       int      `json:"stock" binding:"gte=0"`
	Type        string   `json:"type" binding:"required,oneof=product service"`
}

func (r CatalogItemRequest) ToEntity() entities.CatalogItem {
	return entities.CatalogItem{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CostPrice:   r.CostPrice,
		Stock:       r.Stock,
		Type:        entities.ItemType(r.Type),
	}
}

// CatalogItemPatchRequest carries a shallow patch; absent fields stay
// untouched.
type CatalogItemPatchRequest struct {
	Name        *string  `json:"name" binding:"omitempty,min=2"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	CostPrice   *float64 `json:"cost_price" binding:"omitempty,gte=0"`
	Stock       *int     `json:"stock" binding:"omitempty,gte=0"`
	Type        *string  `json:"type" binding:"omitempty,oneof=product service"`
}

func (r CatalogItemPatchRequest) ToPatch() entities.CatalogItemPatch {
	patch := entities.CatalogItemPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CostPrice:   r.CostPrice,
		Stock:       r.Stock,
	}
	if r.Type != nil {
		t := entities.ItemType(*r.Type)
		patch.Type = &t
	}
	return patch
}
