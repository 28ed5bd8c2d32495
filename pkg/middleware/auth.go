package middleware

import (
	"net/http"
	"strings"

	"admin-panel/pkg/utils"

	"go.uber.org/zap"
)

const unauthorizedMessage = "Unauthorized"

// AuthJWT validates the bearer access token and stores the admin identity
// in the request context. Requests without a valid token never reach next.
func AuthJWT(secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Debug("Missing authorization header", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, unauthorizedMessage)
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || scheme != "Bearer" || token == "" {
				logger.Warn("Invalid authorization scheme", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, unauthorizedMessage)
				return
			}

			identity, err := utils.ParseToken(secret, token)
			if err != nil {
				logger.Warn("Token verification failed",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, unauthorizedMessage)
				return
			}

			next.ServeHTTP(w, r.WithContext(utils.SetIdentityContext(r.Context(), identity)))
		})
	}
}
