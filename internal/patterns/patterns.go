// Package patterns holds the fixed lexical catalogs used to classify
// transcript segments, compiled once into a matcher that returns explicit
// match evidence.
package patterns

import (
	"regexp"

	"github.com/jonathan/crowdwork-analyzer/internal/types"
)

// Category labels which catalog a pattern belongs to.
type Category string

const (
	// CategoryCrowdwork marks patterns indicating audience interaction.
	CategoryCrowdwork Category = "crowdwork"
	// CategoryPrepared marks patterns indicating rehearsed material.
	CategoryPrepared Category = "prepared"
)

// entry pairs a diagnostic id with its source expression. Expressions are
// compiled case-insensitively and rely on \b for word-boundary matching.
type entry struct {
	id   string
	expr string
}

// Crowdwork indicators: direct questions to audience members, references to
// specific people in the room, and reactions to things that just happened.
var crowdworkEntries = []entry{
	{"cw_where_from", `\bwhere (?:are|is|you) .+ from\b`},
	{"cw_your_name", `\bwhat(?:'s| is) your name\b`},
	{"cw_what_do_you_do", `\bwhat do you do\b`},
	{"cw_how_old", `\bhow old are you\b`},
	{"cw_what_brings_you", `\bwhat brings you\b`},
	{"cw_anyone_here", `\banyone (?:here|from)\b`},
	{"cw_whos_here", `\bwho(?:'s| is) (?:here|from)\b`},
	{"cw_how_many", `\bhow many (?:of you|people|folks)\b`},
	{"cw_how_are_you", `\bhow are you doing\b`},
	{"cw_front_back", `\bguys in the (?:front|back)\b`},
	{"cw_give_it_up", `\bgive it up for\b`},
	{"cw_this_person", `\bthis (?:guy|lady|woman|man|person)\b`},
	{"cw_you_in_the", `\byou in the\b`},
	{"cw_you_right_there", `\byou right there\b`},
	{"cw_you_with_the", `\byou with the\b`},
	{"cw_looks_like", `\blooks like\b`},
	{"cw_i_see_a", `\bI see a\b`},
	{"cw_thanks_for", `\b(?:thanks|thank you) for (?:that|laughing|the)\b`},
	{"cw_didnt_expect", `\bdidn't expect that\b`},
	{"cw_not_planned", `\bthat wasn't planned\b`},
	{"cw_distracted", `\bI'm getting distracted\b`},
	{"cw_off_script", `\bthat's? not (?:in|part of) (?:the|my) (?:script|act|show)\b`},
	{"cw_whats_happening", `\bwhat's happening (?:over|back) there\b`},
	{"cw_you_guys", `\byou guys (?:are|seem)\b`},
}

// Prepared-material indicators: story openers, recollections, and
// observational setups that do not depend on the room.
var preparedEntries = []entry{
	{"pm_so_i_was", `\bso I was\b`},
	{"pm_other_day", `\bthe other day\b`},
	{"pm_when_i_was", `\bwhen I was (?:a kid|young|little|growing up)\b`},
	{"pm_my_family", `\bmy (?:wife|husband|girlfriend|boyfriend|mom|dad|mother|father|kids?)\b`},
	{"pm_so_anyway", `\bso anyway\b`},
	{"pm_back_in", `\bback in (?:college|school|high school|my day)\b`},
	{"pm_habitual", `\bI (?:used to|always|never)\b`},
	{"pm_growing_up", `\bgrowing up\b`},
	{"pm_true_story", `\btrue story\b`},
	{"pm_reminds_me", `\bthat reminds me\b`},
	{"pm_one_time", `\bone time\b`},
	{"pm_years_ago", `\byears? ago\b`},
	{"pm_i_read", `\bI read (?:somewhere|that|an article)\b`},
	{"pm_ever_noticed", `\bhave you ever noticed\b`},
	{"pm_why_is_it", `\bwhy is it that\b`},
}

// Pattern is one compiled catalog entry.
type Pattern struct {
	ID       string
	Category Category
	re       *regexp.Regexp
}

// Match is the evidence produced when a pattern occurs in a segment's text.
// A pattern occurring multiple times in one text still yields one Match.
type Match struct {
	PatternID   string
	Category    Category
	MatchedText string
}

// Library is the compiled, ordered pattern catalog. Catalog order is stable
// and used only for diagnostics, never for scoring.
type Library struct {
	patterns []Pattern
}

// NewLibrary compiles the built-in catalogs, crowdwork entries first.
func NewLibrary() *Library {
	lib := &Library{patterns: make([]Pattern, 0, len(crowdworkEntries)+len(preparedEntries))}
	lib.compile(crowdworkEntries, CategoryCrowdwork)
	lib.compile(preparedEntries, CategoryPrepared)
	return lib
}

func (l *Library) compile(entries []entry, category Category) {
	for _, e := range entries {
		l.patterns = append(l.patterns, Pattern{
			ID:       e.id,
			Category: category,
			re:       regexp.MustCompile(`(?i)` + e.expr),
		})
	}
}

// Len returns the total number of catalog entries.
func (l *Library) Len() int {
	return len(l.patterns)
}

// Match evaluates every catalog entry against text independently and returns
// the evidence for each pattern that occurs, in catalog order.
func (l *Library) Match(text string) []Match {
	var matches []Match
	for i := range l.patterns {
		p := &l.patterns[i]
		if found := p.re.FindString(text); found != "" {
			matches = append(matches, Match{
				PatternID:   p.ID,
				Category:    p.Category,
				MatchedText: found,
			})
		}
	}
	return matches
}

// Evidence converts a match to the record stored on classifications.
func (m Match) Evidence() types.PatternMatch {
	return types.PatternMatch{PatternID: m.PatternID, MatchedText: m.MatchedText}
}
