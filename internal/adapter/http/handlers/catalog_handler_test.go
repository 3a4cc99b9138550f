package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"gestao360/internal/adapter/persistence/memory"
	"gestao360/internal/usecase"

	"github.com/gin-gonic/gin"
)

func newCatalogRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := memory.NewStore()
	h := NewCatalogHandler(usecase.NewCatalogUseCase(memory.NewCatalogRepository(store)))

	r := gin.New()
	r.POST("/v1/catalog", h.RegisterItem)
	r.GET("/v1/catalog", h.ListItems)
	r.GET("/v1/catalog/:id", h.GetItem)
	r.PATCH("/v1/catalog/:id", h.UpdateItem)
	r.DELETE("/v1/catalog/:id", h.DeleteItem)
	return r
}

func TestCatalogHandler_RegisterItem(t *testing.T) {
	r := newCatalogRouter(t)

	t.Run("creates a product", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/v1/catalog",
			`{"name":"Câmera IP","price":250,"stock":8,"type":"product"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["id"] == "" {
			t.Fatalf("expected a generated id")
		}
		if body["stock_status"] != "in_stock" {
			t.Fatalf("expected in_stock, got %v", body["stock_status"])
		}
	})

	t.Run("service stock is forced to zero", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/v1/catalog",
			`{"name":"Instalação","price":150,"stock":7,"type":"service"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["stock"].(float64) != 0 {
			t.Fatalf("expected stock 0 for a service, got %v", body["stock"])
		}
	})

	t.Run("rejects an unknown type", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/v1/catalog",
			`{"name":"Câmera IP","price":250,"type":"bundle"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/v1/catalog",
			`{"name":"Câmera IP","price":-1,"type":"product"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_ListFilters(t *testing.T) {
	r := newCatalogRouter(t)
	seed := []string{
		`{"name":"Câmera IP","price":250,"stock":8,"type":"product"}`,
		`{"name":"Sensor de Porta","price":80,"stock":2,"type":"product"}`,
		`{"name":"Instalação de Câmera","price":150,"type":"service"}`,
	}
	for _, body := range seed {
		if w := doJSON(t, r, http.MethodPost, "/v1/catalog", body); w.Code != http.StatusCreated {
			t.Fatalf("seed failed: %d %s", w.Code, w.Body.String())
		}
	}

	cases := []struct {
		name  string
		query string
		want  int
	}{
		{"no filter returns everything", "", 3},
		{"type filter", "?type=product", 2},
		{"search is case insensitive", "?search=câmera", 2},
		{"type and search combine", "?type=service&search=câmera", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodGet, "/v1/catalog"+tc.query, "")
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
			var items []map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
				t.Fatalf("bad body: %v", err)
			}
			if len(items) != tc.want {
				t.Fatalf("expected %d items, got %d", tc.want, len(items))
			}
		})
	}
}

func TestCatalogHandler_PatchAndDelete(t *testing.T) {
	r := newCatalogRouter(t)

	w := doJSON(t, r, http.MethodPost, "/v1/catalog",
		`{"name":"Câmera IP","price":250,"stock":8,"type":"product"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("seed failed: %d", w.Code)
	}
	var created map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	id := created["id"].(string)

	t.Run("patch merges only the provided fields", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/v1/catalog/"+id, `{"price":199.9,"stock":1}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["name"] != "Câmera IP" || body["price"].(float64) != 199.9 {
			t.Fatalf("unexpected merge result: %+v", body)
		}
		if body["stock_status"] != "low_stock" {
			t.Fatalf("expected the new stock to reclassify, got %v", body["stock_status"])
		}
	})

	t.Run("flipping the type to service zeroes the stock", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/v1/catalog/"+id, `{"type":"service"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if body["type"] != "service" || body["stock"].(float64) != 0 {
			t.Fatalf("expected a stockless service, got %+v", body)
		}
	})

	t.Run("patching a missing item returns 404", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPatch, "/v1/catalog/missing", `{"price":10}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			w := doJSON(t, r, http.MethodDelete, "/v1/catalog/"+id, "")
			if w.Code != http.StatusNoContent {
				t.Fatalf("expected 204 on attempt %d, got %d", i+1, w.Code)
			}
		}
		w := doJSON(t, r, http.MethodGet, "/v1/catalog/"+id, "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404 after delete, got %d", w.Code)
		}
	})
}
