package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/bookcafe/internal/audit"
	"github.com/mrlokans/bookcafe/internal/config"
	"github.com/mrlokans/bookcafe/internal/database"
	"github.com/mrlokans/bookcafe/internal/database/books"
	"github.com/mrlokans/bookcafe/internal/database/categories"
	"github.com/mrlokans/bookcafe/internal/database/menus"
	"github.com/mrlokans/bookcafe/internal/database/orders"
)

// recordingAuditor keeps mutations in memory.
type recordingAuditor struct {
	mu        sync.Mutex
	mutations []audit.Mutation
}

func (r *recordingAuditor) LogMutation(m audit.Mutation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mutations = append(r.mutations, m)
}

func (r *recordingAuditor) all() []audit.Mutation {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]audit.Mutation(nil), r.mutations...)
}

type testEnv struct {
	db     *database.Database
	router *gin.Engine
	audit  *recordingAuditor
	static string
}

// setupTestEnv wires the real repositories against a fresh SQLite file.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	db, err := database.NewDatabase(config.Database{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(dir, "api.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	static := filepath.Join(dir, "static")
	require.NoError(t, os.MkdirAll(static, 0o755))

	rec := &recordingAuditor{}
	router, err := NewRouter(RouterConfig{
		Books:          books.NewRepository(db.DB),
		Categories:     categories.NewRepository(db.DB),
		Menus:          menus.NewRepository(db.DB),
		Orders:         orders.NewRepository(db.DB),
		Database:       db,
		Audit:          rec,
		AllowedOrigins: []string{"https://cafe.example.com"},
		StaticPath:     static,
		Version:        "test",
	})
	require.NoError(t, err)

	return &testEnv{db: db, router: router, audit: rec, static: static}
}

// do sends body (raw JSON when a string, marshalled otherwise) to the router.
func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// create posts body and returns the new id.
func (e *testEnv) create(t *testing.T, path string, body any) uint {
	t.Helper()
	w := e.do(t, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.ID)
	return *resp.ID
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeDetails(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var resp struct {
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Details
}
