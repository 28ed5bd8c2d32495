package wire

import (
	"context"
	"net/http"
	"time"

	"admin-panel/internal/adaptor"
	"admin-panel/internal/data/repository"
	"admin-panel/internal/usecase"
	"admin-panel/pkg/middleware"
	"admin-panel/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and the router on top of repo.
func Wiring(repo *repository.Repository, db Pinger, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, db, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	db Pinger,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.AllowedOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	r.Get("/health", healthCheck(db, logger))

	r.Route("/api", func(r chi.Router) {
		wireAuth(r, handler.Auth, config, logger)

		// everything below requires a bearer token
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(config.JWT.Secret, logger))

			r.Get("/auth/me", handler.Auth.Me)
			wireUser(r, handler.User)
			wireShop(r, handler.Shop)
			wireEvent(r, handler.Event)
			wireServices(r, handler.Services)
			r.Get("/stats", handler.Stats.GetStats)
		})
	})

	return r
}

func healthCheck(db Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Error("Health check failed", zap.Error(err))
			utils.ResponseJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":   "unavailable",
				"database": "down",
			})
			return
		}

		utils.ResponseOK(w, map[string]string{
			"status":   "ok",
			"database": "up",
		})
	}
}
