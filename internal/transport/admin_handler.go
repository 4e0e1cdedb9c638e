package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"techparts-store/internal/admin"
	"techparts-store/internal/catalog"
	"techparts-store/internal/domain"
	"techparts-store/internal/middleware"
	"techparts-store/internal/orders"
	"techparts-store/internal/state"
)

// savedMessage is reported to the administrator after a successful settings save.
const savedMessage = "Настройки успешно сохранены!"

// AdminHandler serves the administration panel surface: product management,
// order status updates and the store settings.
type AdminHandler struct {
	app    *state.App
	logger *zap.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(app *state.App, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{app: app, logger: logger}
}

// RegisterRoutes registers the admin routes. Everything except login sits
// behind the gate middleware.
func (h *AdminHandler) RegisterRoutes(router chi.Router, gate func(http.Handler) http.Handler) {
	router.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", h.Login)

		r.Group(func(r chi.Router) {
			r.Use(gate)

			r.Post("/products", h.AddProduct)
			r.Put("/products/{productID}", h.UpdateProduct)
			r.Delete("/products/{productID}", h.DeleteProduct)
			r.Post("/products/{productID}/stock", h.ToggleStock)

			r.Get("/orders", h.ListOrders)
			r.Put("/orders/{orderID}/status", h.SetOrderStatus)

			r.Get("/store", h.GetProfile)
			r.Put("/store", h.UpdateProfile)
			r.Post("/store/save", h.SaveProfile)
		})
	})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Granted bool `json:"granted"`
}

type addProductRequest struct {
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Category       string  `json:"category"`
	Image          string  `json:"image"`
	Specifications string  `json:"specifications"`
}

type updateProductRequest struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Price          float64  `json:"price"`
	Category       string   `json:"category"`
	Image          string   `json:"image"`
	Specifications []string `json:"specifications"`
	InStock        bool     `json:"inStock"`
}

type addProductResponse struct {
	Created  bool             `json:"created"`
	Product  *domain.Product  `json:"product,omitempty"`
	Products []domain.Product `json:"products"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered"`
}

// orderView is an order enriched with the display projections the panel
// renders: resolved product names, the localized status label and the badge
// emphasis category.
type orderView struct {
	domain.Order
	ProductNames       []string `json:"productNames"`
	StatusText         string   `json:"statusText"`
	StatusBadgeVariant string   `json:"statusBadgeVariant"`
}

type orderListResponse struct {
	Orders []orderView `json:"orders"`
	Total  int         `json:"total"`
}

type saveProfileResponse struct {
	Message string              `json:"message"`
	Profile domain.StoreProfile `json:"profile"`
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !admin.Check(req.Username, req.Password) {
		h.logger.Debug("Admin login rejected", zap.String("username", req.Username))
		middleware.RespondWithError(w, http.StatusUnauthorized, admin.RejectionMessage)
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, loginResponse{Granted: true})
}

// AddProduct handles POST /api/admin/products. Drafts failing the catalog's
// soft validation leave the catalog unchanged; the response still carries
// the current product list, there is no error path.
func (h *AdminHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	var req addProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.app.Lock()
	defer h.app.Unlock()

	product, created := h.app.Catalog.Add(catalog.Draft{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		Image:          req.Image,
		Specifications: req.Specifications,
	})

	resp := addProductResponse{
		Created:  created,
		Products: h.app.Catalog.Products(),
	}
	if created {
		resp.Product = &product
	}
	middleware.RespondWithJSON(w, http.StatusOK, resp)
}

// UpdateProduct handles PUT /api/admin/products/{productID}. The stored
// record is replaced wholesale; an unknown id changes nothing.
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	var req updateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.app.Lock()
	defer h.app.Unlock()

	h.app.Catalog.Update(domain.Product{
		ID:             productID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Category:       req.Category,
		Image:          req.Image,
		Specifications: req.Specifications,
		InStock:        req.InStock,
	})

	h.respondWithProducts(w)
}

// DeleteProduct handles DELETE /api/admin/products/{productID}. Orders and
// cart entries referencing the id are untouched; their display falls back to
// the id-based label.
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	h.app.Lock()
	defer h.app.Unlock()

	h.app.Catalog.Remove(productID)
	h.respondWithProducts(w)
}

// ToggleStock handles POST /api/admin/products/{productID}/stock
func (h *AdminHandler) ToggleStock(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	h.app.Lock()
	defer h.app.Unlock()

	h.app.Catalog.ToggleStock(productID)
	h.respondWithProducts(w)
}

// ListOrders handles GET /api/admin/orders
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	h.app.Lock()
	defer h.app.Unlock()

	h.respondWithOrders(w)
}

// SetOrderStatus handles PUT /api/admin/orders/{orderID}/status. Any of the
// four statuses may be assigned from any other; unknown order ids change
// nothing.
func (h *AdminHandler) SetOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid order id")
		return
	}

	var req setStatusRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithValidationErrors(w, middleware.FormatValidationErrors(err))
		return
	}

	status, _ := domain.ParseStatus(req.Status)

	h.app.Lock()
	defer h.app.Unlock()

	h.app.Orders.SetStatus(orderID, status)
	h.respondWithOrders(w)
}

// GetProfile handles GET /api/admin/store
func (h *AdminHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	h.app.Lock()
	profile := h.app.Profile.Current()
	h.app.Unlock()

	middleware.RespondWithJSON(w, http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/admin/store. The in-memory record is
// replaced; nothing is persisted until an explicit save.
func (h *AdminHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req domain.StoreProfile
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.app.Lock()
	h.app.Profile.Update(req)
	profile := h.app.Profile.Current()
	h.app.Unlock()

	middleware.RespondWithJSON(w, http.StatusOK, profile)
}

// SaveProfile handles POST /api/admin/store/save
func (h *AdminHandler) SaveProfile(w http.ResponseWriter, r *http.Request) {
	h.app.Lock()
	defer h.app.Unlock()

	if err := h.app.Profile.Save(); err != nil {
		h.logger.Error("Failed to save store profile", zap.Error(err))
		middleware.RespondWithError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, saveProfileResponse{
		Message: savedMessage,
		Profile: h.app.Profile.Current(),
	})
}

// respondWithProducts renders the current catalog. Callers hold the state lock.
func (h *AdminHandler) respondWithProducts(w http.ResponseWriter) {
	products := h.app.Catalog.Products()
	middleware.RespondWithJSON(w, http.StatusOK, productListResponse{
		Products: products,
		Total:    len(products),
	})
}

// respondWithOrders renders the current order book with display projections.
// Callers hold the state lock.
func (h *AdminHandler) respondWithOrders(w http.ResponseWriter) {
	all := h.app.Orders.Orders()
	views := make([]orderView, len(all))
	for i, o := range all {
		views[i] = orderView{
			Order:              o,
			ProductNames:       orders.ProductNames(o, h.app.Catalog),
			StatusText:         orders.StatusText(o.Status),
			StatusBadgeVariant: orders.StatusBadgeVariant(o.Status),
		}
	}
	middleware.RespondWithJSON(w, http.StatusOK, orderListResponse{
		Orders: views,
		Total:  len(views),
	})
}
