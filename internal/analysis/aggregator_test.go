package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/crowdwork-analyzer/internal/classifier"
	"github.com/jonathan/crowdwork-analyzer/internal/types"
)

func newAggregator() *Aggregator {
	return NewAggregator(classifier.New())
}

func TestAnalyze_CrowdworkAndMaterialSplit(t *testing.T) {
	a := newAggregator()

	segments := []types.Segment{
		{Text: "Where are you from, sir?", StartTime: 0, Duration: 4},
		{Text: "So I was walking down the street", StartTime: 4, Duration: 3},
	}

	analysis := a.Analyze(segments)

	assert.Equal(t, 7.0, analysis.TotalDuration)
	assert.Equal(t, 4.0, analysis.CrowdworkDuration)
	assert.Equal(t, 3.0, analysis.MaterialDuration)
	assert.InDelta(t, 57.1, analysis.CrowdworkPercentage, 0.05)
	assert.InDelta(t, 42.9, analysis.MaterialPercentage, 0.05)

	require.Len(t, analysis.Classifications, 2)
	first, second := analysis.Classifications[0], analysis.Classifications[1]
	assert.True(t, first.IsCrowdwork)
	assert.Equal(t, 0.6, first.Confidence)
	assert.False(t, second.IsCrowdwork)
	assert.Equal(t, 0.6, second.Confidence)
}

func TestAnalyze_EmptyTranscript(t *testing.T) {
	a := newAggregator()

	analysis := a.Analyze(nil)

	assert.Zero(t, analysis.TotalDuration)
	assert.Zero(t, analysis.CrowdworkPercentage)
	assert.Zero(t, analysis.MaterialPercentage)
	assert.NotNil(t, analysis.Classifications)
	assert.Empty(t, analysis.Classifications)
}

func TestAnalyze_DurationsAlwaysBalance(t *testing.T) {
	a := newAggregator()

	segments := []types.Segment{
		{Text: "How old are you?", Duration: 2.5},
		{Text: "my wife hates this bit", Duration: 6.25},
		{Text: "anyone here from out of town?", Duration: 1.75},
		{Text: "completely unremarkable sentence", Duration: 3.5},
	}

	analysis := a.Analyze(segments)

	assert.InDelta(t, analysis.TotalDuration, analysis.CrowdworkDuration+analysis.MaterialDuration, 1e-9)
	assert.InDelta(t, 100.0, analysis.CrowdworkPercentage+analysis.MaterialPercentage, 1e-9)
}

func TestAnalyze_MissingDurationDefaultsToOneSecond(t *testing.T) {
	a := newAggregator()

	segments := []types.Segment{
		{Text: "Where are you from, sir?"}, // no duration supplied
		{Text: "So I was walking down the street", Duration: 3},
	}

	analysis := a.Analyze(segments)

	assert.Equal(t, 4.0, analysis.TotalDuration)
	assert.Equal(t, 1.0, analysis.Classifications[0].Duration)
}

func TestAnalyze_PreservesSegmentOrder(t *testing.T) {
	a := newAggregator()

	segments := []types.Segment{
		{Text: "first", StartTime: 0, Duration: 1},
		{Text: "second", StartTime: 1, Duration: 1},
		{Text: "third", StartTime: 2, Duration: 1},
	}

	analysis := a.Analyze(segments)

	require.Len(t, analysis.Classifications, 3)
	for i, want := range []string{"first", "second", "third"} {
		assert.Equal(t, want, analysis.Classifications[i].Text)
	}
}

func TestPercentages_ZeroTotal(t *testing.T) {
	cw, pm := Percentages(0, 0, 0)
	assert.Zero(t, cw)
	assert.Zero(t, pm)
}
