// Package youtube implements the video-platform collaborators consumed by
// the analysis pipeline, backed by the YouTube Data API v3.
package youtube

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/jonathan/crowdwork-analyzer/internal/logger"
	"github.com/jonathan/crowdwork-analyzer/internal/types"
)

// listingCap bounds how many uploads are examined before the stand-up
// filter picks candidates from them.
const listingCap = 50

// apiPageSize is the maximum page size the Data API allows.
const apiPageSize = 50

// Channel reference shapes, checked in order.
var (
	reChannelPath = regexp.MustCompile(`channel/([^/?&]+)`)
	reUserPath    = regexp.MustCompile(`user/([^/?&]+)`)
	reHandle      = regexp.MustCompile(`@([^/?&]+)`)
	reCustomPath  = regexp.MustCompile(`c/([^/?&]+)`)
	reBareID      = regexp.MustCompile(`^UC[a-zA-Z0-9_-]{22}$`)
)

// Client talks to the YouTube Data API and the public timedtext endpoint.
// It implements pipeline.VideoSource.
type Client struct {
	svc  *yt.Service
	http *http.Client
	log  *logger.Logger
}

// NewClient creates a Client authenticated with the given API key.
func NewClient(ctx context.Context, apiKey string, log *logger.Logger) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube API key is required")
	}

	svc, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}

	return &Client{
		svc:  svc,
		http: &http.Client{Timeout: 15 * time.Second},
		log:  log,
	}, nil
}

// ResolveChannel extracts a channel id from the supported reference shapes:
// channel URLs, user URLs, @handles, legacy custom URLs, and bare UC ids.
// A reference matching none of them yields an InputError.
func (c *Client) ResolveChannel(ctx context.Context, ref string) (string, error) {
	if m := reChannelPath.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	if reBareID.MatchString(ref) {
		return ref, nil
	}
	if m := reUserPath.FindStringSubmatch(ref); m != nil {
		return c.channelIDForUsername(ctx, m[1])
	}
	// The c/ check precedes the @ check so custom URLs with handles in the
	// query string resolve by path.
	if m := reCustomPath.FindStringSubmatch(ref); m != nil {
		return c.channelIDBySearch(ctx, m[1], ref)
	}
	if m := reHandle.FindStringSubmatch(ref); m != nil {
		return c.channelIDBySearch(ctx, "@"+m[1], ref)
	}
	return "", &InputError{Ref: ref}
}

// channelIDForUsername resolves a legacy YouTube username.
func (c *Client) channelIDForUsername(ctx context.Context, username string) (string, error) {
	resp, err := c.svc.Channels.List([]string{"id"}).ForUsername(username).Context(ctx).Do()
	if err != nil {
		return "", &APIError{Op: "channels.list", Cause: err}
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("no channel found for username %q", username)
	}
	return resp.Items[0].Id, nil
}

// channelIDBySearch resolves handles and custom URLs, which the Data API has
// no direct lookup for. When the search finds nothing, the channel page
// itself is scraped as a fallback.
func (c *Client) channelIDBySearch(ctx context.Context, query, ref string) (string, error) {
	resp, err := c.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", &APIError{Op: "search.list", Cause: err}
	}
	if len(resp.Items) > 0 && resp.Items[0].Snippet != nil && resp.Items[0].Snippet.ChannelId != "" {
		return resp.Items[0].Snippet.ChannelId, nil
	}

	if id, err := c.scrapeChannelID(ctx, ref); err == nil && id != "" {
		return id, nil
	}
	return "", fmt.Errorf("no channel found for %q", query)
}

// ChannelInfo fetches channel title metadata.
func (c *Client) ChannelInfo(ctx context.Context, channelID string) (*types.ChannelInfo, error) {
	resp, err := c.svc.Channels.List([]string{"snippet"}).Id(channelID).Context(ctx).Do()
	if err != nil {
		return nil, &APIError{Op: "channels.list", Cause: err}
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return nil, fmt.Errorf("no channel found with id %q", channelID)
	}
	return &types.ChannelInfo{
		ChannelID: channelID,
		Title:     resp.Items[0].Snippet.Title,
	}, nil
}

// ListVideos walks the channel's uploads playlist, loads per-video details,
// keeps the ones that look like stand-up performances, and returns at most
// maxResults of them in upload order.
func (c *Client) ListVideos(ctx context.Context, channelID string, maxResults int) ([]types.VideoInfo, error) {
	uploadsID, err := c.uploadsPlaylistID(ctx, channelID)
	if err != nil {
		return nil, err
	}

	videoIDs, err := c.playlistVideoIDs(ctx, uploadsID, listingCap)
	if err != nil {
		return nil, err
	}

	details, err := c.videoDetails(ctx, videoIDs)
	if err != nil {
		return nil, err
	}

	candidates := FilterStandup(details, minStandupDuration)
	if maxResults > 0 && len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}
	return candidates, nil
}

func (c *Client) uploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	resp, err := c.svc.Channels.List([]string{"contentDetails"}).Id(channelID).Context(ctx).Do()
	if err != nil {
		return "", &APIError{Op: "channels.list", Cause: err}
	}
	if len(resp.Items) == 0 || resp.Items[0].ContentDetails == nil ||
		resp.Items[0].ContentDetails.RelatedPlaylists == nil {
		return "", fmt.Errorf("no channel found with id %q", channelID)
	}
	return resp.Items[0].ContentDetails.RelatedPlaylists.Uploads, nil
}

func (c *Client) playlistVideoIDs(ctx context.Context, playlistID string, limit int) ([]string, error) {
	var ids []string
	pageToken := ""
	for len(ids) < limit {
		call := c.svc.PlaylistItems.List([]string{"contentDetails"}).
			PlaylistId(playlistID).
			MaxResults(apiPageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			return nil, &APIError{Op: "playlistItems.list", Cause: err}
		}
		for _, item := range resp.Items {
			if item.ContentDetails != nil && item.ContentDetails.VideoId != "" {
				ids = append(ids, item.ContentDetails.VideoId)
			}
		}
		pageToken = resp.NextPageToken
		if pageToken == "" {
			break
		}
	}
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// videoDetails loads title, description, and duration for each id, batched
// at the API's page size.
func (c *Client) videoDetails(ctx context.Context, videoIDs []string) ([]types.VideoInfo, error) {
	videos := make([]types.VideoInfo, 0, len(videoIDs))
	for start := 0; start < len(videoIDs); start += apiPageSize {
		end := start + apiPageSize
		if end > len(videoIDs) {
			end = len(videoIDs)
		}
		resp, err := c.svc.Videos.List([]string{"snippet", "contentDetails"}).
			Id(videoIDs[start:end]...).
			Context(ctx).
			Do()
		if err != nil {
			return nil, &APIError{Op: "videos.list", Cause: err}
		}
		for _, item := range resp.Items {
			info := types.VideoInfo{VideoID: item.Id}
			if item.Snippet != nil {
				info.Title = item.Snippet.Title
				info.Description = item.Snippet.Description
			}
			if item.ContentDetails != nil {
				info.Duration = ParseISODuration(item.ContentDetails.Duration)
			}
			videos = append(videos, info)
		}
	}
	return videos, nil
}
