package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"techparts-store/internal/domain"
	"techparts-store/internal/middleware"
	"techparts-store/internal/state"
)

// StoreHandler serves the public storefront surface: product search, the
// store profile and the session cart. Every response renders current core
// state so the client never has to keep its own copy.
type StoreHandler struct {
	app    *state.App
	logger *zap.Logger
}

// NewStoreHandler creates a new StoreHandler
func NewStoreHandler(app *state.App, logger *zap.Logger) *StoreHandler {
	return &StoreHandler{app: app, logger: logger}
}

// RegisterRoutes registers the storefront routes
func (h *StoreHandler) RegisterRoutes(router chi.Router) {
	router.Get("/api/products", h.SearchProducts)
	router.Get("/api/store", h.GetStoreProfile)

	router.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddToCart)
		r.Delete("/items/{productID}", h.RemoveFromCart)
	})
}

type productListResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
}

type cartResponse struct {
	Items      []domain.CartItem `json:"items"`
	ItemCount  int               `json:"itemCount"`
	TotalPrice float64           `json:"totalPrice"`
}

type addToCartRequest struct {
	ProductID int64 `json:"productId" validate:"required"`
}

// SearchProducts handles GET /api/products?query=
func (h *StoreHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	h.app.Lock()
	products := h.app.Catalog.Search(query)
	h.app.Unlock()

	middleware.RespondWithJSON(w, http.StatusOK, productListResponse{
		Products: products,
		Total:    len(products),
	})
}

// GetStoreProfile handles GET /api/store
func (h *StoreHandler) GetStoreProfile(w http.ResponseWriter, r *http.Request) {
	h.app.Lock()
	profile := h.app.Profile.Current()
	h.app.Unlock()

	middleware.RespondWithJSON(w, http.StatusOK, profile)
}

// GetCart handles GET /api/cart
func (h *StoreHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.app.Lock()
	defer h.app.Unlock()

	h.respondWithCart(w)
}

// AddToCart handles POST /api/cart/items. Products that are missing or out
// of stock are skipped without an error: the storefront disables the add
// control for them, so the worst case is no visible change.
func (h *StoreHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.app.Lock()
	defer h.app.Unlock()

	product, ok := h.app.Catalog.Get(req.ProductID)
	if !ok || !product.InStock {
		h.logger.Debug("Skipping cart add for unavailable product",
			zap.Int64("product_id", req.ProductID),
		)
		h.respondWithCart(w)
		return
	}

	h.app.Cart.Add(product)
	h.respondWithCart(w)
}

// RemoveFromCart handles DELETE /api/cart/items/{productID}
func (h *StoreHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	h.app.Lock()
	defer h.app.Unlock()

	h.app.Cart.Remove(productID)
	h.respondWithCart(w)
}

// ClearCart handles DELETE /api/cart
func (h *StoreHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.app.Lock()
	defer h.app.Unlock()

	h.app.Cart.Clear()
	h.respondWithCart(w)
}

// respondWithCart renders the current cart. Callers hold the state lock.
func (h *StoreHandler) respondWithCart(w http.ResponseWriter) {
	middleware.RespondWithJSON(w, http.StatusOK, cartResponse{
		Items:      h.app.Cart.Items(),
		ItemCount:  h.app.Cart.ItemCount(),
		TotalPrice: h.app.Cart.Total(),
	})
}
