package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jonathan/crowdwork-analyzer/internal/pipeline"
)

// AnalyzeRequest is the request body for POST /analyze/youtube.
type AnalyzeRequest struct {
	ChannelURL string `json:"channel_url" validate:"required,min=1"`
	MaxVideos  int    `json:"max_videos,omitempty" validate:"omitempty,gte=1,lte=50"`
}

// AnalyzeResponse is the response for POST /analyze/youtube.
type AnalyzeResponse struct {
	RunID  string `json:"run_id"`
	Status string `json:"status"`
}

// handleAnalyze accepts a channel analysis request, registers a run, and
// starts processing in the background. The response carries only the run id;
// everything else is observed via polling.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, (&ErrValidation{
			Field:   "channel_url",
			Message: err.Error(),
		}).Error())
		return
	}

	if req.MaxVideos == 0 {
		req.MaxVideos = pipeline.DefaultMaxVideos
	}

	run := s.registry.Create(req.ChannelURL)
	s.log.WithRun(run.ID).WithField("channel_url", req.ChannelURL).Info("run accepted")

	go s.orchestrator.Execute(context.Background(), run.ID, req.ChannelURL, req.MaxVideos)

	s.jsonResponse(w, http.StatusAccepted, AnalyzeResponse{
		RunID:  run.ID,
		Status: string(run.Status),
	})
}

// handleResults returns the current snapshot of a run.
func (s *Server) handleResults(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "Run ID is required")
		return
	}

	run, err := s.registry.Get(id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, run)
}
