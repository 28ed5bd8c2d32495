package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"admin-panel/pkg/utils"

	"github.com/stretchr/testify/require"
)

const (
	JWTSecret     = "test-secret"
	AdminEmail    = "admin@example.com"
	AdminPassword = "admin123"
)

// Config returns a configuration usable by wire and usecase tests.
func Config() *utils.Config {
	return &utils.Config{
		App: utils.AppConfig{Name: "admin-panel-test", Port: "0"},
		JWT: utils.JWTConfig{Secret: JWTSecret, ExpiryHours: 1},
		CORS: utils.CORSConfig{
			AllowedOrigins: []string{"*"},
		},
		Admin: utils.AdminConfig{
			Email:    AdminEmail,
			Password: AdminPassword,
			Name:     "Test Admin",
		},
	}
}

// Token signs a bearer token for a fixed admin identity.
func Token(t *testing.T) string {
	t.Helper()

	token, _, err := utils.GenerateToken(JWTSecret, utils.Identity{
		ID:    "00000000-0000-0000-0000-000000000001",
		Email: AdminEmail,
		Name:  "Test Admin",
	}, time.Hour)
	require.NoError(t, err)
	return token
}

// Pinger is a health-check target whose result is Err.
type Pinger struct {
	Err error
}

func (p Pinger) Ping(context.Context) error {
	return p.Err
}

// Do sends a request through handler, with a bearer token when token is set.
func Do(handler http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// Serve runs req through handler and returns the recorded response.
func Serve(handler http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}
