package youtube

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/jonathan/crowdwork-analyzer/internal/types"
)

const timedtextURL = "https://video.google.com/timedtext"

// scrapeUserAgent is sent on direct requests to the timedtext endpoint and
// channel pages.
const scrapeUserAgent = "Mozilla/5.0 (compatible; CrowdworkAgent/1.0)"

// defaultSegmentDuration fills in for caption cues the endpoint serves
// without a dur attribute.
const defaultSegmentDuration = 1.0

type trackList struct {
	Tracks []track `xml:"track"`
}

type track struct {
	LangCode string `xml:"lang_code,attr"`
	Name     string `xml:"name,attr"`
}

type timedText struct {
	Texts []timedTextCue `xml:"text"`
}

type timedTextCue struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Body  string `xml:",chardata"`
}

// FetchTranscript returns the caption track for a video as ordered segments.
//
// "No transcript available" in any form — no caption tracks, no track in an
// acceptable language, captions disabled — is not an error: the result is an
// empty slice and a nil error, so callers can treat it as a skip. Errors are
// reserved for transport-level faults that survive retry.
func (c *Client) FetchTranscript(ctx context.Context, videoID, language string) ([]types.Segment, error) {
	lang, ok, err := c.findCaptionTrack(ctx, videoID, language)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []types.Segment{}, nil
	}

	q := url.Values{}
	q.Set("v", videoID)
	q.Set("lang", lang)
	body, err := c.getWithRetry(ctx, timedtextURL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}

	segments, err := parseTimedText(body)
	if err != nil {
		// A track that exists but serves unparsable data is treated the
		// same as a disabled transcript.
		c.log.WithField("video_id", videoID).WithField("error", err.Error()).
			Warn("unparsable timedtext payload, treating as unavailable")
		return []types.Segment{}, nil
	}
	return segments, nil
}

// findCaptionTrack looks up the available caption tracks and picks the one
// matching the requested language, falling back to any track whose code
// shares the language prefix. ok is false when nothing suitable exists.
func (c *Client) findCaptionTrack(ctx context.Context, videoID, language string) (lang string, ok bool, err error) {
	q := url.Values{}
	q.Set("type", "list")
	q.Set("v", videoID)
	body, err := c.getWithRetry(ctx, timedtextURL+"?"+q.Encode())
	if err != nil {
		return "", false, err
	}
	if len(body) == 0 {
		return "", false, nil
	}

	var list trackList
	if err := xml.Unmarshal(body, &list); err != nil {
		return "", false, nil
	}

	for _, t := range list.Tracks {
		if t.LangCode == language {
			return t.LangCode, true, nil
		}
	}
	for _, t := range list.Tracks {
		if strings.HasPrefix(t.LangCode, language+"-") {
			return t.LangCode, true, nil
		}
	}
	return "", false, nil
}

// parseTimedText converts a timedtext XML payload to ordered segments.
func parseTimedText(body []byte) ([]types.Segment, error) {
	var doc timedText
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("decode timedtext: %w", err)
	}

	segments := make([]types.Segment, 0, len(doc.Texts))
	for _, cue := range doc.Texts {
		text := strings.TrimSpace(html.UnescapeString(cue.Body))
		if text == "" {
			continue
		}
		seg := types.Segment{
			Text:      text,
			StartTime: parseSeconds(cue.Start, 0),
			Duration:  parseSeconds(cue.Dur, defaultSegmentDuration),
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

func parseSeconds(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}
	var v float64
	if _, err := fmt.Sscanf(s, "%f", &v); err != nil {
		return fallback
	}
	return v
}

// getWithRetry performs a GET with exponential backoff on transport faults
// and server errors. Client errors are permanent: for the timedtext
// endpoint they mean "nothing here", which callers resolve to an empty
// transcript, so they surface as an empty body rather than an error.
func (c *Client) getWithRetry(ctx context.Context, rawURL string) ([]byte, error) {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 20 * time.Second

	var body []byte
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("User-Agent", scrapeUserAgent)
		resp, err := c.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("server error: %s", resp.Status)
		}
		if resp.StatusCode >= 400 {
			body = nil
			return nil
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return nil, err
	}
	return body, nil
}
