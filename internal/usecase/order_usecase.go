package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gestao360/internal/domain/entities"
	"gestao360/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidOrderID          = errors.New("invalid order id")
	ErrEmptyOrder              = errors.New("order needs at least one line")
	ErrInvalidQuantity         = errors.New("line quantity must be at least 1")
	ErrInvalidOrderStatus      = errors.New("invalid order status")
	ErrStatusTransitionBlocked = errors.New("status transition not allowed")
)

// unknownClientName is the placeholder used when the referenced client does
// not exist. A missing client degrades gracefully; a missing catalog item is
// fatal. The asymmetry is deliberate, see DESIGN.md.
const unknownClientName = "Unknown"

// LineInput references a catalog item and a quantity to order.
type LineInput struct {
	CatalogItemID string
	Quantity      int
}

// ComposeOrderInput is the command accepted by ComposeOrder.
type ComposeOrderInput struct {
	ClientID      string
	Lines         []LineInput
	ScheduledDate *time.Time
	Notes         string
}

// OrderPatch is the shallow merge overlay for order updates. A non-nil Lines
// slice replaces the order's items: lines are recomposed against the current
// catalog and the total is recomputed.
type OrderPatch struct {
	Notes         *string
	ScheduledDate *time.Time
	Lines         []LineInput
	Status        *entities.OrderStatus
}

// IOrderUseCase exposes order composition and lifecycle operations.

type IOrderUseCase interface {
	ComposeOrder(ctx context.Context, in ComposeOrderInput) (entities.Order, error)
	GetByID(ctx context.Context, id int) (entities.Order, error)
	UpdateOrder(ctx context.Context, id int, patch OrderPatch) (entities.Order, error)
	ChangeStatus(ctx context.Context, id int, status entities.OrderStatus) (entities.Order, error)
	DeleteOrder(ctx context.Context, id int) error
	ListOrders(ctx context.Context, search string) ([]entities.Order, error)
}

type OrderUseCase struct {
	orders  interfaces.IOrderRepository
	clients interfaces.IClientRepository
	catalog interfaces.ICatalogRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, clients interfaces.IClientRepository, catalog interfaces.ICatalogRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, clients: clients, catalog: catalog}
}

// ComposeOrder builds an order from (catalog item, quantity) pairs.
//
// Each pair is resolved against the current catalog and the item's name and
// price are snapshotted into the line; later catalog edits never touch
// existing orders. The total is the exact fold of price×quantity over the
// lines. The order reaches the store fully built.
func (u *OrderUseCase) ComposeOrder(ctx context.Context, in ComposeOrderInput) (entities.Order, error) {
	in.ClientID = strings.TrimSpace(in.ClientID)
	if in.ClientID == "" {
		return entities.Order{}, ErrInvalidClientID
	}
	if len(in.Lines) == 0 {
		return entities.Order{}, ErrEmptyOrder
	}

	lines, err := u.composeLines(ctx, in.Lines)
	if err != nil {
		return entities.Order{}, err
	}

	clientName, err := u.resolveClientName(ctx, in.ClientID)
	if err != nil {
		return entities.Order{}, err
	}

	order := entities.Order{
		ClientID:      in.ClientID,
		ClientName:    clientName,
		Status:        entities.OrderStatusPending,
		Items:         lines,
		TotalAmount:   entities.LinesTotal(lines),
		ScheduledDate: in.ScheduledDate,
		Notes:         in.Notes,
	}

	created, err := u.orders.Add(ctx, order)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] composed order_id=%d client_id=%s lines=%d total=%.2f", created.ID, created.ClientID, len(created.Items), created.TotalAmount)
	return created, nil
}

// composeLines resolves every pair or fails. A missing catalog item aborts
// composition; lines are never silently dropped.
func (u *OrderUseCase) composeLines(ctx context.Context, in []LineInput) ([]entities.OrderLine, error) {
	lines := make([]entities.OrderLine, 0, len(in))
	for _, l := range in {
		if l.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		itemID := strings.TrimSpace(l.CatalogItemID)
		if itemID == "" {
			return nil, ErrInvalidItemID
		}

		item, err := u.catalog.GetByID(ctx, itemID)
		if err != nil {
			return nil, err
		}
		if item.ID == "" {
			return nil, fmt.Errorf("%w: %s", ErrCatalogItemNotFound, itemID)
		}

		lines = append(lines, entities.OrderLine{
			ID:            uuid.NewString(),
			CatalogItemID: item.ID,
			ProductName:   item.Name,
			Price:         item.Price,
			Quantity:      l.Quantity,
		})
	}
	return lines, nil
}

// resolveClientName snapshots the client's name, falling back to the
// placeholder when the client does not exist.
func (u *OrderUseCase) resolveClientName(ctx context.Context, clientID string) (string, error) {
	client, err := u.clients.GetByID(ctx, clientID)
	if err != nil {
		return "", err
	}
	if client.ID == "" {
		return unknownClientName, nil
	}
	return client.Name, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id int) (entities.Order, error) {
	if id <= 0 {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == 0 {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

// UpdateOrder applies the patch to the stored order. Status changes go
// through the transition guard; replacing the lines recomputes the total so
// the total==Σ(price×quantity) invariant holds after every mutation.
//
// The guard and the write happen inside the repository's critical section:
// the transition is always checked against the latest committed status, so
// two concurrent updates can never both leave a terminal state behind.
func (u *OrderUseCase) UpdateOrder(ctx context.Context, id int, patch OrderPatch) (entities.Order, error) {
	if id <= 0 {
		return entities.Order{}, ErrInvalidOrderID
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	// Lines only read the catalog, so they are resolved before entering the
	// order store's critical section.
	var lines []entities.OrderLine
	if patch.Lines != nil {
		if len(patch.Lines) == 0 {
			return entities.Order{}, ErrEmptyOrder
		}
		var err error
		lines, err = u.composeLines(ctx, patch.Lines)
		if err != nil {
			return entities.Order{}, err
		}
	}

	updated, err := u.orders.Update(ctx, id, func(o entities.Order) (entities.Order, error) {
		if patch.Status != nil {
			if !o.Status.CanTransitionTo(*patch.Status) {
				return entities.Order{}, fmt.Errorf("%w: %s -> %s", ErrStatusTransitionBlocked, o.Status, *patch.Status)
			}
			o.Status = *patch.Status
		}
		if patch.Notes != nil {
			o.Notes = *patch.Notes
		}
		if patch.ScheduledDate != nil {
			t := *patch.ScheduledDate
			o.ScheduledDate = &t
		}
		if lines != nil {
			o.Items = lines
			o.TotalAmount = entities.LinesTotal(lines)
		}
		return o, nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	if updated.ID == 0 {
		return entities.Order{}, ErrOrderNotFound
	}
	return updated, nil
}

// ChangeStatus moves the order through its lifecycle. Completed and canceled
// are terminal; an invalid transition is rejected with a typed error.
func (u *OrderUseCase) ChangeStatus(ctx context.Context, id int, status entities.OrderStatus) (entities.Order, error) {
	return u.UpdateOrder(ctx, id, OrderPatch{Status: &status})
}

func (u *OrderUseCase) DeleteOrder(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidOrderID
	}
	return u.orders.Delete(ctx, id)
}

// ListOrders returns orders in insertion order, optionally filtered by a
// case-insensitive substring match on the client-name snapshot or status.
func (u *OrderUseCase) ListOrders(ctx context.Context, search string) ([]entities.Order, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return orders, nil
	}
	filtered := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if strings.Contains(strings.ToLower(o.ClientName), search) ||
			strings.Contains(string(o.Status), search) {
			filtered = append(filtered, o)
		}
	}
	return filtered, nil
}
