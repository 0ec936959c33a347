package httpserver

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"household-calendar/internal/extraction/usecase"
	"household-calendar/internal/middleware"
	"household-calendar/pkg/log"
)

func TestNew_Validation(t *testing.T) {
	l := log.NewNop()
	uc := usecase.New(l, nil, usecase.Config{})

	_, err := New(l, Config{Mode: "test", ExtractionUseCase: uc})
	assert.Error(t, err)

	_, err = New(l, Config{Mode: "test", Port: 8080})
	assert.Error(t, err)
}

func TestRoutes(t *testing.T) {
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:            l,
		Port:              8080,
		Mode:              "test",
		Environment:       "development",
		ExtractionUseCase: usecase.New(l, nil, usecase.Config{}),
	})
	require.NoError(t, err)
	h := srv.Handler()

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewBufferString(`{"message":"gym tomorrow 7am"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderWorkspaceID, "w1")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "create_event")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
