package middlewares

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"gh-pr-mirror/internal/infrastructure/logger"

	"github.com/stretchr/testify/require"
)

func TestRequestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	h := RequestLoggerMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("tea"))
	}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/repositories", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	out := buf.String()
	require.Contains(t, out, "path=/repositories")
	require.Contains(t, out, "status=418")
	require.Contains(t, out, "bytes=3")
}
