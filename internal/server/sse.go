package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// streamPollInterval is how often the progress stream samples the registry.
const streamPollInterval = 500 * time.Millisecond

// SSEWriter helps write Server-Sent Events.
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer.
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event.
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\n", event); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// progressEvent is the payload sent while a run is still processing.
type progressEvent struct {
	RunID    string  `json:"run_id"`
	Status   string  `json:"status"`
	Progress float64 `json:"progress"`
}

// handleResultsStream streams a run's progress as SSE until the run reaches
// a terminal status, then sends the full snapshot and closes.
func (s *Server) handleResultsStream(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	run, err := s.registry.Get(id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	ticker := time.NewTicker(streamPollInterval)
	defer ticker.Stop()

	for {
		if run.Status.Terminal() {
			sse.WriteEvent("complete", run) //nolint:errcheck
			return
		}

		if err := sse.WriteEvent("progress", progressEvent{
			RunID:    run.ID,
			Status:   string(run.Status),
			Progress: run.Progress,
		}); err != nil {
			return
		}

		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}

		// The run cannot disappear from the registry once created.
		run, _ = s.registry.Get(id)
	}
}
