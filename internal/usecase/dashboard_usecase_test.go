package usecase

import (
	"context"
	"testing"
	"time"

	"gestao360/internal/domain/entities"
	mock_interfaces "gestao360/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRevenueExcludesCanceled(t *testing.T) {
	orders := []entities.Order{
		{ID: 1001, Status: entities.OrderStatusPending, TotalAmount: 100},
		{ID: 1002, Status: entities.OrderStatusCanceled, TotalAmount: 50},
		{ID: 1003, Status: entities.OrderStatusCompleted, TotalAmount: 200},
	}
	if got := Revenue(orders); got != 300 {
		t.Fatalf("expected revenue 300, got %v", got)
	}
}

func TestCountPending(t *testing.T) {
	orders := []entities.Order{
		{Status: entities.OrderStatusPending},
		{Status: entities.OrderStatusInProgress},
		{Status: entities.OrderStatusPending},
		{Status: entities.OrderStatusCanceled},
	}
	if got := CountPending(orders); got != 2 {
		t.Fatalf("expected 2 pending, got %d", got)
	}
}

func TestCountLowStockCountsProductsOnly(t *testing.T) {
	items := []entities.CatalogItem{
		{Type: entities.ItemTypeProduct, Stock: 0},
		{Type: entities.ItemTypeProduct, Stock: 4},
		{Type: entities.ItemTypeProduct, Stock: 5},
		{Type: entities.ItemTypeService, Stock: 0},
	}
	// Out-of-stock and low-stock products both count; services never do.
	if got := CountLowStock(items); got != 2 {
		t.Fatalf("expected 2 low-stock items, got %d", got)
	}
}

func TestBuildInventoryReport(t *testing.T) {
	cost := 180.00
	items := []entities.CatalogItem{
		{ID: "i-1", Name: "Câmera IP", Price: 250, CostPrice: &cost, Stock: 10, Type: entities.ItemTypeProduct},
		{ID: "i-2", Name: "Cabo Coaxial", Price: 10, Stock: 4, Type: entities.ItemTypeProduct},
		{ID: "i-3", Name: "Fonte 12V", Price: 30, Stock: 0, Type: entities.ItemTypeProduct},
		{ID: "i-4", Name: "Instalação de Câmera", Price: 150, Type: entities.ItemTypeService},
	}

	report := BuildInventoryReport(items)

	if len(report.Items) != 3 {
		t.Fatalf("services must be excluded, got %d items", len(report.Items))
	}
	if report.LowStock != 1 || report.OutOfStock != 1 {
		t.Fatalf("expected 1 low / 1 out, got %d / %d", report.LowStock, report.OutOfStock)
	}
	if want := 250.0*10 + 10.0*4 + 30.0*0; report.TotalValue != want {
		t.Fatalf("expected total value %v, got %v", want, report.TotalValue)
	}
	if report.Items[0].Status != entities.StockStatusIn ||
		report.Items[1].Status != entities.StockStatusLow ||
		report.Items[2].Status != entities.StockStatusOut {
		t.Fatalf("unexpected classifications: %+v", report.Items)
	}
}

func TestGroupSchedule(t *testing.T) {
	at := func(s string) *time.Time {
		ts, err := time.ParseInLocation("2006-01-02T15:04", s, time.Local)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return &ts
	}

	orders := []entities.Order{
		{ID: 1001, ScheduledDate: at("2024-01-02T09:00")},
		{ID: 1002, ScheduledDate: at("2024-01-01T15:00")},
		{ID: 1003, ScheduledDate: at("2024-01-01T08:00")},
		{ID: 1004}, // unscheduled: excluded entirely
	}

	groups := GroupSchedule(orders)

	if len(groups) != 2 {
		t.Fatalf("expected 2 date groups, got %d", len(groups))
	}
	if groups[0].Date != "2024-01-01" || groups[1].Date != "2024-01-02" {
		t.Fatalf("groups must ascend by date: %+v", groups)
	}
	first := groups[0].Orders
	if len(first) != 2 || first[0].ID != 1003 || first[1].ID != 1002 {
		t.Fatalf("group must ascend by time: %+v", first)
	}
	if len(groups[1].Orders) != 1 || groups[1].Orders[0].ID != 1001 {
		t.Fatalf("unexpected second group: %+v", groups[1].Orders)
	}
	for _, g := range groups {
		for _, o := range g.Orders {
			if o.ID == 1004 {
				t.Fatalf("unscheduled order leaked into group %s", g.Date)
			}
		}
	}
}

func TestGroupScheduleEmpty(t *testing.T) {
	if groups := GroupSchedule(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %+v", groups)
	}
}

func TestDashboardUseCase_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clients := mock_interfaces.NewMockIClientRepository(ctrl)
	catalog := mock_interfaces.NewMockICatalogRepository(ctrl)
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	version := mock_interfaces.NewMockIStoreVersion(ctrl)

	clients.EXPECT().List(gomock.Any()).Return([]entities.Client{{ID: "c-1"}, {ID: "c-2"}}, nil)
	catalog.EXPECT().List(gomock.Any()).Return([]entities.CatalogItem{
		{Type: entities.ItemTypeProduct, Stock: 2},
		{Type: entities.ItemTypeProduct, Stock: 8},
	}, nil)
	orders.EXPECT().List(gomock.Any()).Return([]entities.Order{
		{Status: entities.OrderStatusPending, TotalAmount: 100},
		{Status: entities.OrderStatusCanceled, TotalAmount: 50},
	}, nil)
	version.EXPECT().Version(gomock.Any()).Return(uint64(7), nil)

	uc := NewDashboardUseCase(clients, catalog, orders, version)
	summary, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := DashboardSummary{Revenue: 100, TotalClients: 2, PendingOrders: 1, LowStockItems: 1, StoreVersion: 7}
	if summary != want {
		t.Fatalf("expected %+v, got %+v", want, summary)
	}
}
