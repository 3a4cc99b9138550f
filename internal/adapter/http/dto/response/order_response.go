package response

import (
	"time"

	"gestao360/internal/domain/entities"
)

type OrderLineResponse struct {
	ID            string  `json:"id"`
	CatalogItemID string  `json:"catalog_item_id"`
	ProductName   string  `json:"product_name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	Subtotal      float64 `json:"subtotal"`
}

type OrderResponse struct {
	ID            int                 `json:"id"`
	ClientID      string              `json:"client_id"`
	ClientName    string              `json:"client_name"`
	Status        string              `json:"status"`
	Items         []OrderLineResponse `json:"items"`
	TotalAmount   float64             `json:"total_amount"`
	ScheduledDate *time.Time          `json:"scheduled_date,omitempty"`
	Notes         string              `json:"notes,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderLineResponse, 0, len(o.Items))
	for _, l := range o.Items {
		items = append(items, OrderLineResponse{
			ID:            l.ID,
			CatalogItemID: l.CatalogItemID,
			ProductName:   l.ProductName,
			Price:         l.Price,
			Quantity:      l.Quantity,
			Subtotal:      l.Subtotal(),
		})
	}
	return OrderResponse{
		ID:            o.ID,
		ClientID:      o.ClientID,
		ClientName:    o.ClientName,
		Status:        string(o.Status),
		Items:         items,
		TotalAmount:   o.TotalAmount,
		ScheduledDate: o.ScheduledDate,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}
