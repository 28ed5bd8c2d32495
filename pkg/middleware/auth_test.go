package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"admin-panel/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "middleware-secret"

func identityEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		require.True(t, ok)
		utils.ResponseOK(w, identity)
	})
}

func TestAuthJWT_Accepts(t *testing.T) {
	identity := utils.Identity{ID: "a1", Email: "admin@example.com", Name: "Admin"}
	token, _, err := utils.GenerateToken(testSecret, identity, time.Hour)
	require.NoError(t, err)

	handler := AuthJWT(testSecret, zap.NewNop())(identityEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"a1","email":"admin@example.com","name":"Admin"}`, rec.Body.String())
}

func TestAuthJWT_Rejects(t *testing.T) {
	otherToken, _, err := utils.GenerateToken("another-secret", utils.Identity{ID: "a1"}, time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"basic scheme", "Basic YWRtaW46YWRtaW4="},
		{"bearer without token", "Bearer "},
		{"lowercase scheme", "bearer " + otherToken},
		{"foreign signature", "Bearer " + otherToken},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})
	handler := AuthJWT(testSecret, zap.NewNop())(next)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
		})
	}
}
