package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hireplan/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.DefaultConfig()
	cfg.Server.DevMode = true
	cfg.Data.DataDir = t.TempDir()
	cfg.Planner.Seed = 5

	srv, err := NewServer(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = srv.Shutdown(context.Background()) })
	return srv
}

func TestServer_DebugPlanEndToEnd(t *testing.T) {
	srv := newTestServer(t)

	body := `{"prompt":"p","debug":true,"context":{"startDate":"2026-01","endDate":"2026-06","roles":[{"role":"developer","city":"NYC"}]}}`
	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/plan", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
		return w
	}

	first := do()
	require.Equal(t, http.StatusOK, first.Code, first.Body.String())
	assert.Equal(t, "application/json", first.Header().Get("Content-Type"))
	assert.NotEmpty(t, first.Header().Get("X-Request-ID"))

	// 配置了固定种子，两次结果一致
	second := do()
	assert.Equal(t, first.Body.String(), second.Body.String())

	logs, err := srv.store.ListRequestLogs(10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, first.Header().Get("X-Request-ID"), logs[1].RequestID)
}

func TestServer_LiveWithoutKeyFails(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/plan", bytes.NewBufferString(`{"prompt":"p","context":{}}`))
	req.Header.Set("X-Request-ID", "caller-id")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Request failed", w.Body.String())
	assert.Equal(t, "caller-id", w.Header().Get("X-Request-ID"))
}

func TestServer_CORSAndHealth(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/plan", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestServer_WithoutAuditLog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.DefaultConfig()
	cfg.Server.DevMode = true
	cfg.Data.AuditLog = false

	srv, err := NewServer(cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, srv.store)

	req := httptest.NewRequest(http.MethodGet, "/api/requests", nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
