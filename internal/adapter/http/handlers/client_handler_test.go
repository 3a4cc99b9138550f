package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestao360/internal/adapter/persistence/memory"
	"gestao360/internal/usecase"

	"github.com/gin-gonic/gin"
)

func newClientRouter() (*gin.Engine, *ClientHandler) {
	gin.SetMode(gin.TestMode)
	store := memory.NewStore()
	h := NewClientHandler(usecase.NewClientUseCase(memory.NewClientRepository(store)))

	r := gin.New()
	r.POST("/v1/clients", h.RegisterClient)
	r.GET("/v1/clients", h.ListClients)
	r.GET("/v1/clients/:id", h.GetClient)
	r.PATCH("/v1/clients/:id", h.UpdateClient)
	r.DELETE("/v1/clients/:id", h.DeleteClient)
	return r, h
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body == "" {
		buf = bytes.NewBuffer(nil)
	} else {
		buf = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestClientHandler_RegisterClient(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newClientRouter()
		w := doJSON(t, r, http.MethodPost, "/v1/clients", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("name too short", func(t *testing.T) {
		r, _ := newClientRouter()
		w := doJSON(t, r, http.MethodPost, "/v1/clients", `{"name":"J","email":"joao@gmail.com","phone":"11999999999","address":"Rua A, 123"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("bad email", func(t *testing.T) {
		r, _ := newClientRouter()
		w := doJSON(t, r, http.MethodPost, "/v1/clients", `{"name":"João Silva","email":"not-an-email","phone":"11999999999","address":"Rua A, 123"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("short phone", func(t *testing.T) {
		r, _ := newClientRouter()
		w := doJSON(t, r, http.MethodPost, "/v1/clients", `{"name":"João Silva","email":"joao@gmail.com","phone":"123","address":"Rua A, 123"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created", func(t *testing.T) {
		r, _ := newClientRouter()
		w := doJSON(t, r, http.MethodPost, "/v1/clients", `{"name":"João Silva","email":"joao@gmail.com","phone":"11999999999","address":"Rua A, 123"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if resp["id"] == "" || resp["name"] != "João Silva" {
			t.Fatalf("unexpected response: %v", resp)
		}
	})
}

func TestClientHandler_Lifecycle(t *testing.T) {
	r, _ := newClientRouter()

	w := doJSON(t, r, http.MethodPost, "/v1/clients", `{"name":"Maria Souza","email":"maria@hotmail.com","phone":"11888888888","address":"Av B, 456"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", w.Code)
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("bad body: %v", err)
	}

	w = doJSON(t, r, http.MethodPatch, "/v1/clients/"+created.ID, `{"address":"Av Nova, 789"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodGet, "/v1/clients/"+created.ID, "")
	if w.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", w.Code)
	}
	var got struct {
		Address string `json:"address"`
		Email   string `json:"email"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if got.Address != "Av Nova, 789" || got.Email != "maria@hotmail.com" {
		t.Fatalf("patch must merge, not overwrite: %+v", got)
	}

	w = doJSON(t, r, http.MethodDelete, "/v1/clients/"+created.ID, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/v1/clients/"+created.ID, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", w.Code)
	}

	// Deleting again stays a no-op.
	w = doJSON(t, r, http.MethodDelete, "/v1/clients/"+created.ID, "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("second delete: expected 204, got %d", w.Code)
	}
}

func TestClientHandler_PatchUnknownClient(t *testing.T) {
	r, _ := newClientRouter()
	w := doJSON(t, r, http.MethodPatch, "/v1/clients/ghost", `{"name":"Novo Nome"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
