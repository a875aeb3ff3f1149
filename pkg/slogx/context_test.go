package slogx

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	assert.Equal(t, slog.Default(), FromContext(context.Background()))
}

func TestWithRequestID(t *testing.T) {
	logger, buf := newBufferLogger()

	ctx := WithContext(context.Background(), logger)
	ctx = WithRequestID(ctx, "req-123")

	FromContext(ctx).Info("hello")
	assert.Contains(t, buf.String(), "req_id=req-123")
}

func TestHTTPMiddlewareAttachesRequestID(t *testing.T) {
	logger, buf := newBufferLogger()

	handler := HTTPMiddleware(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		FromContext(r.Context()).Info("inside")
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/things", nil)
	req.Header.Set("X-Request-ID", "upstream-42")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	out := buf.String()
	assert.Contains(t, out, "req_id=upstream-42", "upstream request id is honoured")
	assert.Contains(t, out, "http_request")
	assert.Contains(t, out, "status=204")
}
