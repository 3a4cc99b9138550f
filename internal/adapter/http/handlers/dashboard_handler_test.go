package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"gestao360/internal/adapter/persistence/memory"
	"gestao360/internal/domain/entities"
	"gestao360/internal/usecase"

	"github.com/gin-gonic/gin"
)

func newDashboardRouter(t *testing.T) (*gin.Engine, *memory.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := memory.NewStore()
	clients := memory.NewClientRepository(store)
	catalog := memory.NewCatalogRepository(store)
	orders := memory.NewOrderRepository(store)
	h := NewDashboardHandler(usecase.NewDashboardUseCase(clients, catalog, orders, store))

	r := gin.New()
	r.GET("/v1/dashboard/summary", h.Summary)
	r.GET("/v1/inventory/report", h.InventoryReport)
	r.GET("/v1/schedule", h.Schedule)
	return r, store
}

func TestDashboardHandler_SummaryOverSeededStore(t *testing.T) {
	r, store := newDashboardRouter(t)
	if err := memory.Seed(context.Background(), store); err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/v1/dashboard/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var summary usecase.DashboardSummary
	if err := json.Unmarshal(w.Body.Bytes(), &summary); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if summary.Revenue != 400 || summary.TotalClients != 2 || summary.PendingOrders != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.StoreVersion == 0 {
		t.Fatalf("seeding must bump the store version")
	}
}

func TestDashboardHandler_InventoryReport(t *testing.T) {
	r, store := newDashboardRouter(t)
	ctx := context.Background()
	catalog := memory.NewCatalogRepository(store)
	if _, err := catalog.Add(ctx, entities.CatalogItem{Name: "Câmera IP", Price: 250, Stock: 3, Type: entities.ItemTypeProduct}); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := catalog.Add(ctx, entities.CatalogItem{Name: "Instalação de Câmera", Price: 150, Type: entities.ItemTypeService}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := doJSON(t, r, http.MethodGet, "/v1/inventory/report", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var report struct {
		Items []struct {
			Status string `json:"status"`
		} `json:"items"`
		LowStock   int     `json:"low_stock"`
		TotalValue float64 `json:"total_value"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &report); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(report.Items) != 1 || report.Items[0].Status != "low_stock" {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.LowStock != 1 || report.TotalValue != 750 {
		t.Fatalf("unexpected totals: %+v", report)
	}
}

func TestDashboardHandler_Schedule(t *testing.T) {
	r, store := newDashboardRouter(t)
	ctx := context.Background()
	orders := memory.NewOrderRepository(store)

	at := func(s string) *time.Time {
		ts, err := time.ParseInLocation("2006-01-02T15:04", s, time.Local)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		return &ts
	}
	seed := []entities.Order{
		{ClientID: "c-1", Status: entities.OrderStatusPending, ScheduledDate: at("2024-01-02T09:00")},
		{ClientID: "c-2", Status: entities.OrderStatusPending, ScheduledDate: at("2024-01-01T15:00")},
		{ClientID: "c-3", Status: entities.OrderStatusPending},
	}
	for _, o := range seed {
		if _, err := orders.Add(ctx, o); err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/v1/schedule", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var groups []struct {
		Date   string `json:"date"`
		Orders []struct {
			ID int `json:"id"`
		} `json:"orders"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &groups); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(groups) != 2 || groups[0].Date != "2024-01-01" || groups[1].Date != "2024-01-02" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	total := 0
	for _, g := range groups {
		total += len(g.Orders)
	}
	if total != 2 {
		t.Fatalf("unscheduled order must not appear, got %d scheduled entries", total)
	}
}
