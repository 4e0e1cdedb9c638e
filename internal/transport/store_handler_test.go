package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"techparts-store/internal/cart"
	"techparts-store/internal/catalog"
	"techparts-store/internal/domain"
	"techparts-store/internal/orders"
	"techparts-store/internal/profile"
	"techparts-store/internal/state"
)

// Mock settings store for testing
type mockSettingsStore struct {
	stored  *domain.StoreProfile
	saveErr error
}

func (m *mockSettingsStore) Load() (domain.StoreProfile, bool, error) {
	if m.stored == nil {
		return domain.StoreProfile{}, false, nil
	}
	return *m.stored, true, nil
}

func (m *mockSettingsStore) Save(p domain.StoreProfile) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.stored = &p
	return nil
}

func newTestApp() *state.App {
	return state.New(
		catalog.New(domain.SeedProducts()),
		orders.New(domain.SeedOrders()),
		cart.New(),
		profile.NewManager(&mockSettingsStore{}, zap.NewNop()),
	)
}

func newStorefrontRouter(app *state.App) chi.Router {
	router := chi.NewRouter()
	NewStoreHandler(app, zap.NewNop()).RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router chi.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSearchProducts(t *testing.T) {
	router := newStorefrontRouter(newTestApp())

	t.Run("no query returns the full catalog", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/products", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}

		var resp productListResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp.Total != 3 {
			t.Errorf("total = %d, want 3", resp.Total)
		}
	})

	t.Run("query filters by category", func(t *testing.T) {
		w := doJSON(t, router, "GET", "/api/products?query=Холодильник", nil)

		var resp productListResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp.Total != 1 || resp.Products[0].ID != 2 {
			t.Errorf("unexpected result: %+v", resp)
		}
	})
}

func TestCartFlow(t *testing.T) {
	router := newStorefrontRouter(newTestApp())

	// Two in-stock products go in.
	doJSON(t, router, "POST", "/api/cart/items", map[string]int64{"productId": 1})
	w := doJSON(t, router, "POST", "/api/cart/items", map[string]int64{"productId": 2})

	var resp cartResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.ItemCount != 2 {
		t.Errorf("item count = %d, want 2", resp.ItemCount)
	}
	if resp.TotalPrice != 11400 {
		t.Errorf("total = %v, want 11400", resp.TotalPrice)
	}

	// Removing the first leaves only the compressor.
	w = doJSON(t, router, "DELETE", "/api/cart/items/1", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if len(resp.Items) != 1 || resp.Items[0].ID != 2 {
		t.Fatalf("items = %+v", resp.Items)
	}
	if resp.TotalPrice != 8900 {
		t.Errorf("total = %v, want 8900", resp.TotalPrice)
	}

	// Clearing empties everything.
	w = doJSON(t, router, "DELETE", "/api/cart", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp.ItemCount != 0 || resp.TotalPrice != 0 {
		t.Errorf("cart not empty: %+v", resp)
	}
}

func TestAddToCart_SkipsUnavailableProducts(t *testing.T) {
	router := newStorefrontRouter(newTestApp())

	// Product 3 is seeded out of stock; product 99 does not exist.
	for _, id := range []int64{3, 99} {
		w := doJSON(t, router, "POST", "/api/cart/items", map[string]int64{"productId": id})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want a soft no-op", w.Code)
		}

		var resp cartResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("bad body: %v", err)
		}
		if resp.ItemCount != 0 {
			t.Errorf("cart changed for unavailable product %d", id)
		}
	}
}

func TestGetStoreProfile(t *testing.T) {
	router := newStorefrontRouter(newTestApp())

	w := doJSON(t, router, "GET", "/api/store", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp domain.StoreProfile
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad body: %v", err)
	}
	if resp != domain.DefaultProfile() {
		t.Errorf("profile = %+v, want default", resp)
	}
}
