package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/crowdwork-analyzer/internal/types"
)

func TestSSEWriter_WriteEvent(t *testing.T) {
	w := httptest.NewRecorder()

	sse, err := NewSSEWriter(w)
	require.NoError(t, err)
	require.NoError(t, sse.WriteEvent("progress", progressEvent{RunID: "r1", Status: "processing", Progress: 30}))

	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, "event: progress\n")
	assert.Contains(t, body, `"run_id":"r1"`)
	assert.Contains(t, body, "\n\n")
}

func TestHandleResultsStream_UnknownRun(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/results/nope/stream", nil)
	req.SetPathValue("id", "nope")
	w := httptest.NewRecorder()

	s.handleResultsStream(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleResultsStream_TerminalRunClosesWithComplete(t *testing.T) {
	s, registry := newTestServer(t)
	run := registry.Create("ref")
	registry.SetProcessing(run.ID)
	registry.Complete(run.ID, &types.RunResult{ChannelTitle: "Test Channel"})

	req := httptest.NewRequest(http.MethodGet, "/results/"+run.ID+"/stream", nil)
	req.SetPathValue("id", run.ID)
	w := httptest.NewRecorder()

	s.handleResultsStream(w, req)

	body := w.Body.String()
	assert.Contains(t, body, "event: complete\n")
	assert.Contains(t, body, `"status":"completed"`)
	assert.Contains(t, body, `"channel_title":"Test Channel"`)
}
