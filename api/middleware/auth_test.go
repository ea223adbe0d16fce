package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/use-agent/vitals/models"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func newAuthRouter(keys ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID(), Auth(keys))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func TestAuth_RejectionIsLoggedWithCode(t *testing.T) {
	tests := []struct {
		name   string
		header string
		value  string
		reason string
	}{
		{"missing key", "", "", "missing API key"},
		{"unknown key", "X-API-Key", "nope", "invalid API key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := captureLogs(t)
			req := httptest.NewRequest(http.MethodGet, "/ok", nil)
			req.Header.Set(RequestIDHeader, "req-auth")
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			w := httptest.NewRecorder()
			newAuthRouter("k1").ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, logs.String(), `"code":"`+models.ErrCodeUnauthorized+`"`)
			assert.Contains(t, logs.String(), `"request_id":"req-auth"`)
			assert.Contains(t, logs.String(), tt.reason)
		})
	}
}

func TestAuth_AcceptedKeyIsNotLogged(t *testing.T) {
	logs := captureLogs(t)
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set("Authorization", "Bearer k1")
	w := httptest.NewRecorder()
	newAuthRouter("k1").ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotContains(t, logs.String(), models.ErrCodeUnauthorized)
}

func TestAuth_NoKeysIsOpen(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	w := httptest.NewRecorder()
	newAuthRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
