package response

import (
	"time"

	"gestao360/internal/domain/entities"
)

type CatalogItemResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	CostPrice   *float64  `json:"cost_price,omitempty"`
	Stock       int       `json:"stock"`
	StockStatus string    `json:"stock_status"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCatalogItem(i entities.CatalogItem) CatalogItemResponse {
	return CatalogItemResponse{
		ID:          i.ID,
		Name:        i.Name,
		Description: i.Description,
		Price:       i.Price,
		CostPrice:   i.CostPrice,
		Stock:       i.Stock,
		StockStatus: string(i.StockStatus()),
		Type:        string(i.Type),
		CreatedAt:   i.CreatedAt,
	}
}

func FromCatalogItems(items []entities.CatalogItem) []CatalogItemResponse {
	out := make([]CatalogItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, FromCatalogItem(i))
	}
	return out
}
