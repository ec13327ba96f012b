package http

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookcafe/internal/database/books"
	"github.com/mrlokans/bookcafe/internal/middleware"
)

func TestRouter_RobotsTxt(t *testing.T) {
	env := setupTestEnv(t)
	content := "User-agent: *\nDisallow: /api/\n"
	require.NoError(t, os.WriteFile(filepath.Join(env.static, "robots.txt"), []byte(content), 0o644))

	w := env.do(t, http.MethodGet, "/robots.txt", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, content, w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
}

func TestRouter_Health(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version": "test"`)
}

func TestRouter_UnknownRoute(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/v1/tables", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "route not found", decodeError(t, w).Error)
}

func TestRouter_CommonHeaders(t *testing.T) {
	env := setupTestEnv(t)

	req, _ := http.NewRequest(http.MethodOptions, "/api/v1/books", nil)
	req.Header.Set("Origin", "https://cafe.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://cafe.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestRouter_RateLimit(t *testing.T) {
	env := setupTestEnv(t)
	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{RPS: 0.001, Burst: 1})
	defer limiter.Stop()

	router, err := NewRouter(RouterConfig{
		Books:       books.NewRepository(env.db.DB),
		Database:    env.db,
		RateLimiter: limiter,
	})
	require.NoError(t, err)

	serve := func(path string) int {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, serve("/api/v1/books"))
	assert.Equal(t, http.StatusTooManyRequests, serve("/api/v1/books"))
	assert.Equal(t, http.StatusOK, serve("/health"), "only the API group is limited")
}
