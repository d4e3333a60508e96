package types

import "time"

// RunStatus is the lifecycle state of an analysis run.
type RunStatus string

const (
	// StatusQueued means the run has been accepted but processing has not started.
	StatusQueued RunStatus = "queued"
	// StatusProcessing means the run is executing.
	StatusProcessing RunStatus = "processing"
	// StatusCompleted means the run finished and Result is populated.
	StatusCompleted RunStatus = "completed"
	// StatusFailed means the run terminated with an error and Result is nil.
	StatusFailed RunStatus = "failed"
)

// Terminal reports whether the status permits no further transitions.
func (s RunStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// ChannelInfo is the channel metadata subset the pipeline needs.
type ChannelInfo struct {
	ChannelID string `json:"channel_id"`
	Title     string `json:"title"`
}

// VideoInfo is candidate video metadata from the platform listing.
type VideoInfo struct {
	VideoID     string  `json:"video_id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Duration    float64 `json:"duration"` // seconds
}

// VideoResult is the analysis outcome for one video with an available transcript.
type VideoResult struct {
	VideoID string  `json:"video_id"`
	Title   string  `json:"title"`
	Length  float64 `json:"length"` // video length in seconds, from metadata
	TranscriptAnalysis
}

// RunResult is the cross-video aggregate for one completed run.
// VideosAnalyzed counts videos that yielded a usable transcript;
// VideosTotal counts every candidate considered.
type RunResult struct {
	ChannelID           string        `json:"channel_id"`
	ChannelTitle        string        `json:"channel_title"`
	VideosAnalyzed      int           `json:"videos_analyzed"`
	VideosTotal         int           `json:"videos_total"`
	TotalDuration       float64       `json:"total_duration"`
	CrowdworkDuration   float64       `json:"crowdwork_duration"`
	MaterialDuration    float64       `json:"material_duration"`
	CrowdworkPercentage float64       `json:"crowdwork_percentage"`
	MaterialPercentage  float64       `json:"material_percentage"`
	Videos              []VideoResult `json:"videos"`
}

// Run is the status/progress record for one analysis run. The registry owns
// the canonical copy; the orchestrator executing the run is its only writer.
// Once Status is terminal no field changes again.
type Run struct {
	ID         string     `json:"run_id"`
	ChannelRef string     `json:"channel_url"`
	Status     RunStatus  `json:"status"`
	Progress   float64    `json:"progress"` // 0-100
	Result     *RunResult `json:"results,omitempty"`
	Error      string     `json:"error,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
