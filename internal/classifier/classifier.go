// Package classifier implements the rule-based crowdwork vs. prepared
// material decision for individual transcript segments.
package classifier

import (
	"github.com/jonathan/crowdwork-analyzer/internal/patterns"
	"github.com/jonathan/crowdwork-analyzer/internal/types"
)

// Confidence tuning constants. Unmixed signals grow faster and cap higher
// than mixed ones; values always land in [0.5, 0.95].
const (
	baseConfidence     = 0.5
	unmixedStep        = 0.10
	unmixedCap         = 0.95
	mixedStep          = 0.08
	mixedCap           = 0.90
	tieConfidence      = 0.55
	noSignalConfidence = 0.6
)

// Result is the classification verdict for one piece of text.
type Result struct {
	IsCrowdwork     bool
	Confidence      float64
	MatchedPatterns []types.PatternMatch
}

// Classifier scores segment text against the fixed pattern catalogs.
// It is stateless and safe for concurrent use.
type Classifier struct {
	library *patterns.Library
}

// New creates a Classifier over the built-in pattern catalogs.
func New() *Classifier {
	return NewWithLibrary(patterns.NewLibrary())
}

// NewWithLibrary creates a Classifier over the given catalogs.
func NewWithLibrary(lib *patterns.Library) *Classifier {
	return &Classifier{library: lib}
}

// Classify decides whether text is crowdwork or prepared material.
//
// The decision favors the category with more distinct pattern matches. An
// even nonzero count breaks toward crowdwork, the more distinctive signal;
// no matches at all defaults to prepared material. The returned evidence
// lists only the winning category's matches and is empty for the no-signal
// default. Any text, including the empty string, classifies deterministically.
func (c *Classifier) Classify(text string) Result {
	var crowdwork, prepared []types.PatternMatch
	for _, m := range c.library.Match(text) {
		switch m.Category {
		case patterns.CategoryCrowdwork:
			crowdwork = append(crowdwork, m.Evidence())
		case patterns.CategoryPrepared:
			prepared = append(prepared, m.Evidence())
		}
	}

	cw, pm := len(crowdwork), len(prepared)
	switch {
	case cw > 0 && pm == 0:
		return Result{
			IsCrowdwork:     true,
			Confidence:      capped(baseConfidence+unmixedStep*float64(cw), unmixedCap),
			MatchedPatterns: crowdwork,
		}
	case pm > 0 && cw == 0:
		return Result{
			IsCrowdwork:     false,
			Confidence:      capped(baseConfidence+unmixedStep*float64(pm), unmixedCap),
			MatchedPatterns: prepared,
		}
	case cw > pm:
		return Result{
			IsCrowdwork:     true,
			Confidence:      capped(baseConfidence+mixedStep*float64(cw-pm), mixedCap),
			MatchedPatterns: crowdwork,
		}
	case pm > cw:
		return Result{
			IsCrowdwork:     false,
			Confidence:      capped(baseConfidence+mixedStep*float64(pm-cw), mixedCap),
			MatchedPatterns: prepared,
		}
	case cw > 0: // even nonzero counts break toward crowdwork
		return Result{
			IsCrowdwork:     true,
			Confidence:      tieConfidence,
			MatchedPatterns: crowdwork,
		}
	default:
		return Result{IsCrowdwork: false, Confidence: noSignalConfidence}
	}
}

func capped(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}
