package youtube

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/crowdwork-analyzer/internal/types"
)

// minStandupDuration excludes shorts and clips from candidate listings.
const minStandupDuration = 120.0 // seconds

// standupKeywords mark titles and descriptions of likely stand-up
// performances.
var standupKeywords = []string{
	"stand up", "standup", "comedy", "comedian", "special",
	"live", "performance", "club", "theater", "theatre",
	"stage", "routine", "set", "jokes", "laugh",
}

var reISODuration = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?`)

// ParseISODuration converts an ISO 8601 duration like PT1H23M45S to seconds.
// Unparseable input yields 0.
func ParseISODuration(d string) float64 {
	m := reISODuration.FindStringSubmatch(d)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	seconds, _ := strconv.Atoi(m[3])
	return float64(hours*3600 + minutes*60 + seconds)
}

// FilterStandup keeps videos that are long enough and whose title or
// description mentions a stand-up keyword, preserving input order.
func FilterStandup(videos []types.VideoInfo, minDuration float64) []types.VideoInfo {
	filtered := make([]types.VideoInfo, 0, len(videos))
	for _, v := range videos {
		if v.Duration < minDuration {
			continue
		}
		text := strings.ToLower(v.Title + " " + v.Description)
		for _, kw := range standupKeywords {
			if strings.Contains(text, kw) {
				filtered = append(filtered, v)
				break
			}
		}
	}
	return filtered
}
