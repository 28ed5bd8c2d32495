package adaptor

import (
	"net/http"

	"admin-panel/internal/dto/request"
	"admin-panel/internal/dto/response"
	"admin-panel/internal/usecase"
	"admin-panel/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const userNotFound = "User not found"

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetUsers handles GET /api/users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	req := request.ParseListRequest(r.URL.Query())

	users, err := h.service.GetUsers(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "get users", userNotFound)
		return
	}

	utils.ResponseOK(w, users)
}

// GetUserByID handles GET /api/users/{id}
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUserByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get user", userNotFound)
		return
	}

	utils.ResponseItem(w, user)
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create user", userNotFound)
		return
	}

	utils.ResponseCreated(w, user)
}

// UpdateUser handles PUT /api/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UserUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.service.UpdateUser(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update user", userNotFound)
		return
	}

	utils.ResponseItem(w, user)
}

// DeleteUser handles DELETE /api/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete user", userNotFound)
		return
	}

	utils.ResponseDeleted(w)
}

// ToggleStatus handles POST /api/users/{id}/toggle-status
func (h *UserHandler) ToggleStatus(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.ToggleStatus(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "toggle user status", userNotFound)
		return
	}

	utils.ResponseOK(w, response.ToggleStatusResponse{User: *user})
}
