package usecase

import (
	"context"
	"sort"

	"gestao360/internal/domain/entities"
	"gestao360/internal/usecase/interfaces"
)

// DashboardSummary carries the headline numbers of the dashboard page.
type DashboardSummary struct {
	Revenue       float64 `json:"revenue"`
	TotalClients  int     `json:"total_clients"`
	PendingOrders int     `json:"pending_orders"`
	LowStockItems int     `json:"low_stock_items"`
	StoreVersion  uint64  `json:"store_version"`
}

// InventoryLine is one product in the inventory report.
type InventoryLine struct {
	Item       entities.CatalogItem `json:"item"`
	Status     entities.StockStatus `json:"status"`
	StockValue float64              `json:"stock_value"`
}

// InventoryReport classifies every product-type catalog item by stock level.
// Services are excluded.
type InventoryReport struct {
	Items      []InventoryLine `json:"items"`
	LowStock   int             `json:"low_stock"`
	OutOfStock int             `json:"out_of_stock"`
	TotalValue float64         `json:"total_value"`
}

// ScheduleGroup is one calendar date with its orders sorted by time.
type ScheduleGroup struct {
	Date   string           `json:"date"`
	Orders []entities.Order `json:"orders"`
}

// IDashboardUseCase exposes the read-only aggregate views. Every call
// recomputes from the current store snapshot; there is no cache to
// invalidate.

type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
	InventoryReport(ctx context.Context) (InventoryReport, error)
	Schedule(ctx context.Context) ([]ScheduleGroup, error)
}

type DashboardUseCase struct {
	clients interfaces.IClientRepository
	catalog interfaces.ICatalogRepository
	orders  interfaces.IOrderRepository
	version interfaces.IStoreVersion
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(
	clients interfaces.IClientRepository,
	catalog interfaces.ICatalogRepository,
	orders interfaces.IOrderRepository,
	version interfaces.IStoreVersion,
) *DashboardUseCase {
	return &DashboardUseCase{clients: clients, catalog: catalog, orders: orders, version: version}
}

func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	clients, err := u.clients.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	items, err := u.catalog.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	orders, err := u.orders.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}
	version, err := u.version.Version(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	return DashboardSummary{
		Revenue:       Revenue(orders),
		TotalClients:  len(clients),
		PendingOrders: CountPending(orders),
		LowStockItems: CountLowStock(items),
		StoreVersion:  version,
	}, nil
}

func (u *DashboardUseCase) InventoryReport(ctx context.Context) (InventoryReport, error) {
	items, err := u.catalog.List(ctx)
	if err != nil {
		return InventoryReport{}, err
	}
	return BuildInventoryReport(items), nil
}

func (u *DashboardUseCase) Schedule(ctx context.Context) ([]ScheduleGroup, error) {
	orders, err := u.orders.List(ctx)
	if err != nil {
		return nil, err
	}
	return GroupSchedule(orders), nil
}

// Revenue sums order totals, excluding canceled orders.
func Revenue(orders []entities.Order) float64 {
	total := 0.0
	for _, o := range orders {
		if o.Status != entities.OrderStatusCanceled {
			total += o.TotalAmount
		}
	}
	return total
}

// CountPending counts orders still waiting to be worked.
func CountPending(orders []entities.Order) int {
	n := 0
	for _, o := range orders {
		if o.Status == entities.OrderStatusPending {
			n++
		}
	}
	return n
}

// CountLowStock counts products below the in-stock threshold, out-of-stock
// included. This matches the dashboard card, which lumps both together.
func CountLowStock(items []entities.CatalogItem) int {
	n := 0
	for _, item := range items {
		if item.Type == entities.ItemTypeProduct && item.StockStatus() != entities.StockStatusIn {
			n++
		}
	}
	return n
}

// BuildInventoryReport classifies products by stock level and totals the
// retail value of stock on hand.
func BuildInventoryReport(items []entities.CatalogItem) InventoryReport {
	report := InventoryReport{Items: []InventoryLine{}}
	for _, item := range items {
		if item.Type != entities.ItemTypeProduct {
			continue
		}
		status := item.StockStatus()
		value := item.StockValue()
		switch status {
		case entities.StockStatusLow:
			report.LowStock++
		case entities.StockStatusOut:
			report.OutOfStock++
		}
		report.TotalValue += value
		report.Items = append(report.Items, InventoryLine{Item: item, Status: status, StockValue: value})
	}
	return report
}

// scheduleDateLayout keys groups by the date portion, local time.
const scheduleDateLayout = "2006-01-02"

// GroupSchedule partitions scheduled orders into calendar-date groups, groups
// ascending by date and each group ascending by time. Orders without a
// scheduled date are excluded entirely.
func GroupSchedule(orders []entities.Order) []ScheduleGroup {
	scheduled := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if o.ScheduledDate != nil {
			scheduled = append(scheduled, o)
		}
	}
	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].ScheduledDate.Before(*scheduled[j].ScheduledDate)
	})

	groups := []ScheduleGroup{}
	for _, o := range scheduled {
		date := o.ScheduledDate.Local().Format(scheduleDateLayout)
		if len(groups) == 0 || groups[len(groups)-1].Date != date {
			groups = append(groups, ScheduleGroup{Date: date})
		}
		groups[len(groups)-1].Orders = append(groups[len(groups)-1].Orders, o)
	}
	return groups
}
