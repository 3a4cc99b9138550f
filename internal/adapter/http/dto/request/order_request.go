package request

import (
	"time"

	"gestao360/internal/domain/entities"
	"gestao360/internal/usecase"
)

// OrderLineRequest references a catalog item and the quantity to order.
type OrderLineRequest struct {
	CatalogItemID string `json:"catalog_item_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
}

// OrderRequest is the payload for composing an order: a client and at least
// one line. Line prices are resolved server-side from the catalog, never
// taken from the request.
type OrderRequest struct {
	ClientID      string             `json:"client_id" binding:"required"`
	Items         []OrderLineRequest `json:"items" binding:"required,min=1,dive"`
	ScheduledDate *time.Time         `json:"scheduled_date"`
	Notes         string             `json:"notes"`
}

func (r OrderRequest) ToInput() usecase.ComposeOrderInput {
	return usecase.ComposeOrderInput{
		ClientID:      r.ClientID,
		Lines:         toLineInputs(r.Items),
		ScheduledDate: r.ScheduledDate,
		Notes:         r.Notes,
	}
}

// OrderPatchRequest carries a shallow patch. A present items array replaces
// the order's lines and recomputes the total.
type OrderPatchRequest struct {
	Notes         *string            `json:"notes"`
	ScheduledDate *time.Time         `json:"scheduled_date"`
	Items         []OrderLineRequest `json:"items" binding:"omitempty,min=1,dive"`
	Status        *string            `json:"status" binding:"omitempty,oneof=pending in_progress completed canceled"`
}

func (r OrderPatchRequest) ToPatch() usecase.OrderPatch {
	patch := usecase.OrderPatch{
		Notes:         r.Notes,
		ScheduledDate: r.ScheduledDate,
	}
	if r.Items != nil {
		patch.Lines = toLineInputs(r.Items)
	}
	if r.Status != nil {
		s := entities.OrderStatus(*r.Status)
		patch.Status = &s
	}
	return patch
}

// OrderStatusRequest is the payload for the status transition endpoint.
type OrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending in_progress completed canceled"`
}

func toLineInputs(items []OrderLineRequest) []usecase.LineInput {
	lines := make([]usecase.LineInput, 0, len(items))
	for _, it := range items {
		lines = append(lines, usecase.LineInput{CatalogItemID: it.CatalogItemID, Quantity: it.Quantity})
	}
	return lines
}
