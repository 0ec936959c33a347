package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"household-calendar/internal/extraction/usecase"
	"household-calendar/internal/middleware"
	"household-calendar/pkg/log"
)

type envelope struct {
	ErrorCode int      `json:"error_code"`
	Message   string   `json:"message"`
	Data      chatResp `json:"data"`
}

func newTestServer() *gin.Engine {
	gin.SetMode(gin.TestMode)
	l := log.NewNop()
	h := New(l, usecase.New(l, nil, usecase.Config{}))
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), h, middleware.New(l, 0))
	return r
}

func post(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderWorkspaceID, "w1")
	req.Header.Set(middleware.HeaderUserID, "u1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChat_CreateEvent(t *testing.T) {
	r := newTestServer()
	w := post(t, r, map[string]any{
		"message":               "dentist tomorrow 2pm",
		"timezoneOffsetMinutes": -300,
		"householdMembers":      []map[string]string{{"id": "u1", "name": "Jordan"}},
		"currentUserName":       "Jordan",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "create_event", env.Data.Type)
	require.NotNil(t, env.Data.Proposal)
	assert.Equal(t, "Dentist", env.Data.Proposal.Title)
	assert.Equal(t, time.Hour, env.Data.Proposal.End.Sub(env.Data.Proposal.Start))
	assert.Equal(t, []string{"u1"}, env.Data.Proposal.MemberIDs)
	assert.Equal(t, 19, env.Data.Proposal.Start.UTC().Hour())
	assert.Contains(t, w.Body.String(), `"memberIds"`)
}

func TestChat_Batch(t *testing.T) {
	r := newTestServer()
	w := post(t, r, map[string]any{"message": "swim class every tuesday and thursday 4pm for 3 weeks", "timezoneOffsetMinutes": 0})
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "create_events", env.Data.Type)
	assert.Len(t, env.Data.Proposals, 6)
	assert.NotEmpty(t, env.Data.RecurrenceID)
	assert.Equal(t, env.Data.Proposals[0], *env.Data.Proposal)
}

func TestChat_Message(t *testing.T) {
	r := newTestServer()
	w := post(t, r, map[string]any{"message": "hello there"})
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "message", env.Data.Type)
	assert.Nil(t, env.Data.Proposal)
	assert.NotContains(t, w.Body.String(), `"proposal"`)
}

func TestChat_BadRequest(t *testing.T) {
	r := newTestServer()
	tests := []struct {
		name string
		body map[string]any
	}{
		{name: "missing message", body: map[string]any{}},
		{name: "offset out of range", body: map[string]any{"message": "gym", "timezoneOffsetMinutes": 2000}},
		{name: "bad role", body: map[string]any{"message": "gym", "conversationHistory": []map[string]string{{"role": "system", "content": "x"}}}},
		{name: "member without id", body: map[string]any{"message": "gym", "householdMembers": []map[string]string{{"name": "Jordan"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, r, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
