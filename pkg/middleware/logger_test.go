package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		level  zapcore.Level
	}{
		{http.StatusOK, zapcore.InfoLevel},
		{http.StatusNotFound, zapcore.InfoLevel},
		{http.StatusInternalServerError, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		core, logs := observer.New(zapcore.DebugLevel)
		handler := chimw.RequestID(Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		})))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/shops?search=acme", nil))

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, tt.level, entry.Level)

		fields := entry.ContextMap()
		assert.Equal(t, int64(tt.status), fields["status"])
		assert.Equal(t, "/api/shops", fields["path"])
		assert.Equal(t, "search=acme", fields["query"])
		assert.NotEmpty(t, fields["request_id"])
	}
}
