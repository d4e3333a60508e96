// Package runs provides the in-memory registry of analysis runs.
//
// The registry owns the canonical Run record for every in-flight or finished
// run. Reads are safe from any number of goroutines; writes to a given run
// must come from the single orchestrator executing it. That single-writer
// discipline is a convention of the callers, not something the registry can
// enforce, but the registry does guarantee that a run in a terminal status
// is never mutated again.
package runs

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/crowdwork-analyzer/internal/types"
)

// NotFoundError indicates a run id unknown to the registry.
type NotFoundError struct {
	RunID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("run not found: %s", e.RunID)
}

// Registry holds run records for the lifetime of the process.
type Registry struct {
	mu   sync.RWMutex
	runs map[string]*types.Run
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{runs: make(map[string]*types.Run)}
}

// Create registers a new queued run for the given channel reference and
// returns a snapshot of it. The generated id addresses the run from then on.
func (r *Registry) Create(channelRef string) types.Run {
	run := &types.Run{
		ID:         uuid.New().String(),
		ChannelRef: channelRef,
		Status:     types.StatusQueued,
		Progress:   0,
		CreatedAt:  time.Now().UTC(),
	}

	r.mu.Lock()
	r.runs[run.ID] = run
	r.mu.Unlock()

	return *run
}

// Get returns a point-in-time snapshot of a run. Callers may inspect the
// snapshot freely; it shares no mutable state with the registry's record.
func (r *Registry) Get(id string) (types.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	run, ok := r.runs[id]
	if !ok {
		return types.Run{}, &NotFoundError{RunID: id}
	}
	return *run, nil
}

// SetProcessing transitions a queued run to processing.
func (r *Registry) SetProcessing(id string) {
	r.mutate(id, func(run *types.Run) {
		run.Status = types.StatusProcessing
	})
}

// SetProgress updates a run's progress. Progress only moves while the run is
// processing, never decreases, and is clamped to [0, 100].
func (r *Registry) SetProgress(id string, progress float64) {
	r.mutate(id, func(run *types.Run) {
		if run.Status != types.StatusProcessing {
			return
		}
		if progress > 100 {
			progress = 100
		}
		if progress > run.Progress {
			run.Progress = progress
		}
	})
}

// Complete marks a run completed with its result and full progress.
func (r *Registry) Complete(id string, result *types.RunResult) {
	r.mutate(id, func(run *types.Run) {
		run.Status = types.StatusCompleted
		run.Progress = 100
		run.Result = result
	})
}

// Fail marks a run failed with a human-readable error. Progress and result
// are left as they were.
func (r *Registry) Fail(id string, message string) {
	r.mutate(id, func(run *types.Run) {
		run.Status = types.StatusFailed
		run.Error = message
	})
}

// mutate applies fn to the run under the write lock. Mutations of unknown
// runs and of runs already in a terminal status are ignored.
func (r *Registry) mutate(id string, fn func(*types.Run)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	run, ok := r.runs[id]
	if !ok || run.Status.Terminal() {
		return
	}
	fn(run)
}
