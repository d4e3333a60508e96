package runs

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/crowdwork-analyzer/internal/types"
)

func TestCreate_QueuedWithZeroProgress(t *testing.T) {
	r := NewRegistry()

	run := r.Create("https://www.youtube.com/@somecomedian")

	assert.NotEmpty(t, run.ID)
	assert.Equal(t, types.StatusQueued, run.Status)
	assert.Zero(t, run.Progress)
	assert.Nil(t, run.Result)
	assert.Empty(t, run.Error)

	got, err := r.Get(run.ID)
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
}

func TestGet_UnknownID(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("no-such-run")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no-such-run", notFound.RunID)
}

func TestSetProgress_OnlyWhileProcessing(t *testing.T) {
	r := NewRegistry()
	run := r.Create("ref")

	// Queued runs ignore progress updates.
	r.SetProgress(run.ID, 50)
	got, _ := r.Get(run.ID)
	assert.Zero(t, got.Progress)

	r.SetProcessing(run.ID)
	r.SetProgress(run.ID, 50)
	got, _ = r.Get(run.ID)
	assert.Equal(t, 50.0, got.Progress)
}

func TestSetProgress_NeverDecreasesAndClamps(t *testing.T) {
	r := NewRegistry()
	run := r.Create("ref")
	r.SetProcessing(run.ID)

	r.SetProgress(run.ID, 60)
	r.SetProgress(run.ID, 40) // ignored
	got, _ := r.Get(run.ID)
	assert.Equal(t, 60.0, got.Progress)

	r.SetProgress(run.ID, 250)
	got, _ = r.Get(run.ID)
	assert.Equal(t, 100.0, got.Progress)
}

func TestComplete_TerminalAndImmutable(t *testing.T) {
	r := NewRegistry()
	run := r.Create("ref")
	r.SetProcessing(run.ID)

	result := &types.RunResult{ChannelID: "UC123", VideosAnalyzed: 2, VideosTotal: 3}
	r.Complete(run.ID, result)

	got, _ := r.Get(run.ID)
	assert.Equal(t, types.StatusCompleted, got.Status)
	assert.Equal(t, 100.0, got.Progress)
	require.NotNil(t, got.Result)
	assert.Equal(t, 2, got.Result.VideosAnalyzed)

	// No mutation after a terminal status.
	r.SetProgress(run.ID, 10)
	r.Fail(run.ID, "late failure")
	got, _ = r.Get(run.ID)
	assert.Equal(t, types.StatusCompleted, got.Status)
	assert.Equal(t, 100.0, got.Progress)
	assert.Empty(t, got.Error)
}

func TestFail_KeepsProgressAndNilResult(t *testing.T) {
	r := NewRegistry()
	run := r.Create("ref")
	r.SetProcessing(run.ID)
	r.SetProgress(run.ID, 20)

	r.Fail(run.ID, "no stand-up videos found for this channel")

	got, _ := r.Get(run.ID)
	assert.Equal(t, types.StatusFailed, got.Status)
	assert.Equal(t, "no stand-up videos found for this channel", got.Error)
	assert.Equal(t, 20.0, got.Progress)
	assert.Nil(t, got.Result)
}

func TestGet_SnapshotIsolation(t *testing.T) {
	r := NewRegistry()
	run := r.Create("ref")

	snapshot, _ := r.Get(run.ID)
	snapshot.Status = types.StatusFailed
	snapshot.Progress = 99

	got, _ := r.Get(run.ID)
	assert.Equal(t, types.StatusQueued, got.Status)
	assert.Zero(t, got.Progress)
}

func TestRegistry_ConcurrentReadersWithSingleWriter(t *testing.T) {
	r := NewRegistry()
	run := r.Create("ref")
	r.SetProcessing(run.ID)

	var wg sync.WaitGroup
	done := make(chan struct{})

	// Pollers.
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				got, err := r.Get(run.ID)
				assert.NoError(t, err)
				assert.GreaterOrEqual(t, got.Progress, 0.0)
			}
		}()
	}

	// The single writer for this run.
	for p := 1; p <= 100; p++ {
		r.SetProgress(run.ID, float64(p))
	}
	r.Complete(run.ID, &types.RunResult{})
	close(done)
	wg.Wait()

	got, _ := r.Get(run.ID)
	assert.Equal(t, types.StatusCompleted, got.Status)
	assert.Equal(t, 100.0, got.Progress)
}
