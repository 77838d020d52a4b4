package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meeting-task-extractor/internal/extraction"
	"meeting-task-extractor/internal/extraction/heuristic"
	"meeting-task-extractor/internal/extraction/usecase"
	"meeting-task-extractor/internal/middleware"
	"meeting-task-extractor/pkg/log"
)

func newTestServer(t *testing.T) *HTTPServer {
	t.Helper()
	uc := usecase.New(log.NewNop(), usecase.Config{}, heuristic.New(log.NewNop()), nil)
	srv, err := New(log.NewNop(), Config{
		Logger:            log.NewNop(),
		Port:              8080,
		Mode:              gin.TestMode,
		Environment:       "production",
		ExtractionUseCase: uc,
	})
	require.NoError(t, err)
	return srv
}

func TestNew_Validation(t *testing.T) {
	uc := usecase.New(log.NewNop(), usecase.Config{}, heuristic.New(log.NewNop()), nil)

	_, err := New(nil, Config{Port: 1, Mode: gin.TestMode, ExtractionUseCase: uc})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Mode: gin.TestMode, ExtractionUseCase: uc})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Port: 1, Mode: gin.TestMode})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID), path)
	}
}

func TestReadyReportsStrategy(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, string(extraction.StrategyHeuristic), body.Data["strategy"])
}

func TestExtractRoute(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/extract", strings.NewReader(`{"text":"nothing to do here"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), extraction.FallbackTaskTitle)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	srv := newTestServer(t)
	srv.port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
