package adaptor

import (
	"net/http"

	"admin-panel/internal/dto/request"
	"admin-panel/internal/usecase"
	"admin-panel/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const serviceNotFound = "Service not found"

// ServicesHandler serves the offered-services catalogue.
type ServicesHandler struct {
	service usecase.ServicesService
	log     *zap.Logger
}

func NewServicesHandler(service usecase.ServicesService, log *zap.Logger) *ServicesHandler {
	return &ServicesHandler{
		service: service,
		log:     log.With(zap.String("handler", "services")),
	}
}

// GetServices handles GET /api/services, with optional ?category=
func (h *ServicesHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	req := request.ParseListRequest(r.URL.Query())

	services, err := h.service.GetServices(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get services", serviceNotFound)
		return
	}

	utils.ResponseOK(w, services)
}

func (h *ServicesHandler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	svc, err := h.service.GetServiceByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get service", serviceNotFound)
		return
	}

	utils.ResponseItem(w, svc)
}

func (h *ServicesHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req request.ServiceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	svc, err := h.service.CreateService(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create service", serviceNotFound)
		return
	}

	utils.ResponseCreated(w, svc)
}

func (h *ServicesHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var req request.ServiceUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	svc, err := h.service.UpdateService(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update service", serviceNotFound)
		return
	}

	utils.ResponseItem(w, svc)
}

func (h *ServicesHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteService(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete service", serviceNotFound)
		return
	}

	utils.ResponseDeleted(w)
}
