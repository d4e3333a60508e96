// Package pipeline provides the high-level orchestration for channel
// analysis runs: resolving the channel, walking its candidate videos,
// aggregating transcript classifications, and recording status and progress
// on the run registry as it goes.
package pipeline

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/jonathan/crowdwork-analyzer/internal/analysis"
	"github.com/jonathan/crowdwork-analyzer/internal/logger"
	"github.com/jonathan/crowdwork-analyzer/internal/types"
)

// DefaultMaxVideos bounds a run's candidate list when the caller gives no limit.
const DefaultMaxVideos = 5

// placeholderTitle stands in when channel metadata is missing or incomplete.
const placeholderTitle = "Unknown Channel"

// Progress milestones. Resolution work owns the first 30 points, the video
// loop the next 60, and finalization the rest.
const (
	progressResolved = 10
	progressMetadata = 20
	progressListed   = 30
	progressLoopSpan = 60
)

// VideoSource is the external platform collaborator the orchestrator consumes.
//
// FetchTranscript returns an empty slice, never an error, for videos whose
// transcript is unavailable or disabled; errors are reserved for genuine
// collaborator faults.
type VideoSource interface {
	ResolveChannel(ctx context.Context, ref string) (string, error)
	ChannelInfo(ctx context.Context, channelID string) (*types.ChannelInfo, error)
	ListVideos(ctx context.Context, channelID string, maxResults int) ([]types.VideoInfo, error)
	FetchTranscript(ctx context.Context, videoID, language string) ([]types.Segment, error)
}

// RunRecorder is the registry surface the orchestrator writes through. The
// orchestrator is the sole writer for every run it executes.
type RunRecorder interface {
	SetProcessing(id string)
	SetProgress(id string, progress float64)
	Complete(id string, result *types.RunResult)
	Fail(id string, message string)
}

// Options configures an Orchestrator.
type Options struct {
	// Language is the transcript language preference passed to the source.
	Language string
}

// Orchestrator drives the end-to-end analysis of one channel per run.
// A single Orchestrator may execute many runs concurrently; each run's
// record is touched only by the goroutine executing that run.
type Orchestrator struct {
	source     VideoSource
	recorder   RunRecorder
	aggregator *analysis.Aggregator
	log        *logger.Logger
	language   string
}

// New creates an Orchestrator over the given collaborator and registry.
func New(source VideoSource, recorder RunRecorder, aggregator *analysis.Aggregator, log *logger.Logger, opts Options) *Orchestrator {
	language := opts.Language
	if language == "" {
		language = "en"
	}
	return &Orchestrator{
		source:     source,
		recorder:   recorder,
		aggregator: aggregator,
		log:        log,
		language:   language,
	}
}

// Execute runs the full pipeline for one run and drives its record to a
// terminal status. It never returns an error: failures are recorded on the
// run for the caller to observe by polling. A panic escaping the pipeline is
// mapped to a fatal resolution failure rather than crashing the process.
func (o *Orchestrator) Execute(ctx context.Context, runID, channelRef string, maxVideos int) {
	log := o.log.WithRun(runID)

	defer func() {
		if rec := recover(); rec != nil {
			err := &ResolutionError{Stage: "analysis", Message: fmt.Sprintf("internal fault: %v", rec)}
			log.WithField("panic", rec).Error("run aborted by internal fault")
			o.recorder.Fail(runID, err.Error())
		}
	}()

	if maxVideos < 1 {
		maxVideos = DefaultMaxVideos
	}

	o.recorder.SetProcessing(runID)

	result, err := o.run(ctx, runID, channelRef, maxVideos)
	if err != nil {
		log.WithField("error", err.Error()).Warn("run failed")
		o.recorder.Fail(runID, err.Error())
		return
	}

	o.recorder.Complete(runID, result)
	log.WithField("videos_analyzed", result.VideosAnalyzed).Info("run completed")
}

// run performs the fatal resolution stages and the skip-tolerant video loop.
// An error return means the run failed with nothing analyzable.
func (o *Orchestrator) run(ctx context.Context, runID, channelRef string, maxVideos int) (*types.RunResult, error) {
	log := o.log.WithRun(runID)

	// Stage 1: resolve the channel reference. Fatal on failure.
	channelID, err := o.source.ResolveChannel(ctx, channelRef)
	if err != nil {
		return nil, err
	}
	o.recorder.SetProgress(runID, progressResolved)

	// Stage 2: channel metadata. Degrades to a placeholder title.
	title := placeholderTitle
	if info, err := o.source.ChannelInfo(ctx, channelID); err != nil {
		log.WithField("error", err.Error()).Warn("channel metadata unavailable, using placeholder title")
	} else if info != nil && info.Title != "" {
		title = info.Title
	}
	o.recorder.SetProgress(runID, progressMetadata)

	// Stage 3: candidate listing. Fatal on failure or an empty list.
	videos, err := o.source.ListVideos(ctx, channelID, maxVideos)
	if err != nil {
		return nil, &CollaboratorError{Stage: "listing videos", Cause: err}
	}
	if len(videos) == 0 {
		return nil, &ResolutionError{Stage: "listing videos", Message: "no stand-up videos found for this channel"}
	}
	o.recorder.SetProgress(runID, progressListed)

	result := &types.RunResult{
		ChannelID:    channelID,
		ChannelTitle: title,
		VideosTotal:  len(videos),
		Videos:       make([]types.VideoResult, 0, len(videos)),
	}

	// Stage 4: per-video analysis. Every fault here is a skip, never fatal.
	for i, video := range videos {
		vlog := log.WithField("video_id", video.VideoID)

		if vr, ok := o.processVideo(ctx, video, vlog); ok {
			result.Videos = append(result.Videos, *vr)
			result.TotalDuration += vr.TotalDuration
			result.CrowdworkDuration += vr.CrowdworkDuration
			result.MaterialDuration += vr.MaterialDuration
			result.VideosAnalyzed++
		}

		o.recorder.SetProgress(runID, progressListed+progressLoopSpan*float64(i+1)/float64(len(videos)))
	}

	result.CrowdworkPercentage, result.MaterialPercentage = analysis.Percentages(
		result.CrowdworkDuration, result.MaterialDuration, result.TotalDuration)

	return result, nil
}

// processVideo fetches and analyzes one video's transcript. A false return
// means the video was skipped; the reason has already been logged.
func (o *Orchestrator) processVideo(ctx context.Context, video types.VideoInfo, vlog *logrus.Entry) (*types.VideoResult, bool) {
	segments, err := o.source.FetchTranscript(ctx, video.VideoID, o.language)
	if err != nil {
		vlog.WithField("error", err.Error()).Warn("transcript fetch failed, skipping video")
		return nil, false
	}
	if len(segments) == 0 {
		vlog.Info("no transcript available, skipping video")
		return nil, false
	}

	ta := o.aggregator.Analyze(segments)

	return &types.VideoResult{
		VideoID:            video.VideoID,
		Title:              video.Title,
		Length:             video.Duration,
		TranscriptAnalysis: ta,
	}, true
}
