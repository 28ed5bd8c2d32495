package adaptor

import (
	"net/http"

	"admin-panel/internal/dto/request"
	"admin-panel/internal/usecase"
	"admin-panel/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const eventNotFound = "Event not found"

type EventHandler struct {
	service usecase.EventService
	log     *zap.Logger
}

func NewEventHandler(service usecase.EventService, log *zap.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		log:     log.With(zap.String("handler", "event")),
	}
}

// GetEvents handles GET /api/events
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	req := request.ParseListRequest(r.URL.Query())

	events, err := h.service.GetEvents(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get events", eventNotFound)
		return
	}

	utils.ResponseOK(w, events)
}

// GetEventByID handles GET /api/events/{id}
func (h *EventHandler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	event, err := h.service.GetEventByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get event", eventNotFound)
		return
	}

	utils.ResponseItem(w, event)
}

// CreateEvent handles POST /api/events
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req request.EventRequest
	if !decodeBody(w, r, &req) {
		return
	}

	event, err := h.service.CreateEvent(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create event", eventNotFound)
		return
	}

	utils.ResponseCreated(w, event)
}

// UpdateEvent handles PUT /api/events/{id}
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req request.EventUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	event, err := h.service.UpdateEvent(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update event", eventNotFound)
		return
	}

	utils.ResponseItem(w, event)
}

// DeleteEvent handles DELETE /api/events/{id}
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete event", eventNotFound)
		return
	}

	utils.ResponseDeleted(w)
}
