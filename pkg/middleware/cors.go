package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the admin frontend to call the API from another origin.
// A "*" entry in allowedOrigins accepts any origin. Preflight requests are
// answered here and never reach the auth guard.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders:       []string{"Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:       []string{"X-Request-Id"},
		MaxAge:               600,
		OptionsSuccessStatus: http.StatusNoContent,
	})
}
