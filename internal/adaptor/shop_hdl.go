package adaptor

import (
	"net/http"

	"admin-panel/internal/dto/request"
	"admin-panel/internal/usecase"
	"admin-panel/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const shopNotFound = "Shop not found"

type ShopHandler struct {
	service usecase.ShopService
	log     *zap.Logger
}

func NewShopHandler(service usecase.ShopService, log *zap.Logger) *ShopHandler {
	return &ShopHandler{
		service: service,
		log:     log.With(zap.String("handler", "shop")),
	}
}

// GetShops handles GET /api/shops
func (h *ShopHandler) GetShops(w http.ResponseWriter, r *http.Request) {
	req := request.ParseListRequest(r.URL.Query())

	shops, err := h.service.GetShops(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get shops", shopNotFound)
		return
	}

	utils.ResponseOK(w, shops)
}

// GetShopByID handles GET /api/shops/{id}
func (h *ShopHandler) GetShopByID(w http.ResponseWriter, r *http.Request) {
	shop, err := h.service.GetShopByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get shop", shopNotFound)
		return
	}

	utils.ResponseItem(w, shop)
}

// CreateShop handles POST /api/shops
func (h *ShopHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	var req request.ShopRequest
	if !decodeBody(w, r, &req) {
		return
	}

	shop, err := h.service.CreateShop(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create shop", shopNotFound)
		return
	}

	utils.ResponseCreated(w, shop)
}

// UpdateShop handles PUT /api/shops/{id}
func (h *ShopHandler) UpdateShop(w http.ResponseWriter, r *http.Request) {
	var req request.ShopUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	shop, err := h.service.UpdateShop(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update shop", shopNotFound)
		return
	}

	utils.ResponseItem(w, shop)
}

// DeleteShop handles DELETE /api/shops/{id}
func (h *ShopHandler) DeleteShop(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteShop(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete shop", shopNotFound)
		return
	}

	utils.ResponseDeleted(w)
}
