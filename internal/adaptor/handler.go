package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"admin-panel/internal/usecase"
	"admin-panel/pkg/utils"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Shop     *ShopHandler
	Event    *EventHandler
	Services *ServicesHandler
	Stats    *StatsHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Shop:     NewShopHandler(service.Shop, log),
		Event:    NewEventHandler(service.Event, log),
		Services: NewServicesHandler(service.Services, log),
		Stats:    NewStatsHandler(service.Stats, log),
	}
}

// decodeBody reads a JSON body into dst, answering 400 itself on failure.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}
	return true
}

// handleServiceError maps the usecase error taxonomy onto HTTP answers.
// Only unexpected errors are logged at error level, and their detail never
// reaches the client.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation, notFound string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		var details any
		if len(validationErr.Fields) > 0 {
			details = validationErr.Fields
		}
		utils.ResponseBadRequest(w, validationErr.Message, details)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, notFound)

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseBadRequest(w, "Email is already registered", nil)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid email or password")

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w)
	}
}
