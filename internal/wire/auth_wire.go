package wire

import (
	"admin-panel/internal/adaptor"
	"admin-panel/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireAuth registers the public login route. /auth/me sits behind the
// token guard in setupRouter.
func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	if config.JWT.Secret == "" {
		log.Warn("JWT secret is empty, login tokens cannot be verified")
	}

	r.Post("/auth/login", authHandler.Login)
}
