// Package types provides type definitions for structured data used throughout the crowdwork-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Segment represents one timestamped unit of transcript text.
// Segments come from the transcript collaborator and are never mutated.
type Segment struct {
	Text      string  `json:"text"`
	StartTime float64 `json:"start_time"`
	Duration  float64 `json:"duration"` // seconds; collaborators default missing values to 1.0
}

// PatternMatch records one catalog pattern that matched a segment's text.
type PatternMatch struct {
	PatternID   string `json:"pattern_id"`
	MatchedText string `json:"matched_text"`
}

// SegmentClassification is the classifier's verdict for a single segment.
// MatchedPatterns holds the evidence for the winning category only.
type SegmentClassification struct {
	Text            string         `json:"text"`
	StartTime       float64        `json:"start_time"`
	Duration        float64        `json:"duration"`
	IsCrowdwork     bool           `json:"is_crowdwork"`
	Confidence      float64        `json:"confidence"`
	MatchedPatterns []PatternMatch `json:"matched_patterns,omitempty"`
}

// TranscriptAnalysis rolls per-segment classifications up into
// duration-weighted totals for one performance.
//
// CrowdworkDuration + MaterialDuration always equals TotalDuration, and the
// two percentages sum to 100 whenever TotalDuration is positive (both are 0
// for an empty transcript).
type TranscriptAnalysis struct {
	TotalDuration       float64                 `json:"total_duration"`
	CrowdworkDuration   float64                 `json:"crowdwork_duration"`
	MaterialDuration    float64                 `json:"material_duration"`
	CrowdworkPercentage float64                 `json:"crowdwork_percentage"`
	MaterialPercentage  float64                 `json:"material_percentage"`
	Classifications     []SegmentClassification `json:"segment_classifications"`
}
