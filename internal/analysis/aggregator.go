// Package analysis rolls per-segment classifications up into
// duration-weighted crowdwork and prepared-material totals.
package analysis

import (
	"github.com/jonathan/crowdwork-analyzer/internal/classifier"
	"github.com/jonathan/crowdwork-analyzer/internal/types"
)

// defaultSegmentDuration substitutes for segments whose source supplied no duration.
const defaultSegmentDuration = 1.0

// Aggregator runs the classifier over an ordered transcript and accumulates
// duration totals. It is stateless and safe for concurrent use.
type Aggregator struct {
	classifier *classifier.Classifier
}

// NewAggregator creates an Aggregator over the given classifier.
func NewAggregator(c *classifier.Classifier) *Aggregator {
	return &Aggregator{classifier: c}
}

// Analyze classifies every segment in order and computes the per-category
// duration totals and percentages. An empty transcript yields a zero-valued
// analysis with an empty classification list; there are no error conditions.
func (a *Aggregator) Analyze(segments []types.Segment) types.TranscriptAnalysis {
	analysis := types.TranscriptAnalysis{
		Classifications: make([]types.SegmentClassification, 0, len(segments)),
	}

	for _, seg := range segments {
		duration := seg.Duration
		if duration <= 0 {
			duration = defaultSegmentDuration
		}

		res := a.classifier.Classify(seg.Text)

		analysis.TotalDuration += duration
		if res.IsCrowdwork {
			analysis.CrowdworkDuration += duration
		} else {
			analysis.MaterialDuration += duration
		}

		analysis.Classifications = append(analysis.Classifications, types.SegmentClassification{
			Text:            seg.Text,
			StartTime:       seg.StartTime,
			Duration:        duration,
			IsCrowdwork:     res.IsCrowdwork,
			Confidence:      res.Confidence,
			MatchedPatterns: res.MatchedPatterns,
		})
	}

	analysis.CrowdworkPercentage, analysis.MaterialPercentage = Percentages(
		analysis.CrowdworkDuration, analysis.MaterialDuration, analysis.TotalDuration)

	return analysis
}

// Percentages computes the crowdwork and material shares of a total duration.
// Both are 0 when the total is not positive.
func Percentages(crowdwork, material, total float64) (float64, float64) {
	if total <= 0 {
		return 0, 0
	}
	return crowdwork / total * 100, material / total * 100
}
