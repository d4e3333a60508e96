package youtube

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// scrapeChannelID loads a channel page and reads the channel id from its
// metadata markup. Used only when the Data API search cannot resolve a
// handle or custom URL.
func (c *Client) scrapeChannelID(ctx context.Context, ref string) (string, error) {
	pageURL := ref
	if !strings.HasPrefix(pageURL, "http://") && !strings.HasPrefix(pageURL, "https://") {
		pageURL = "https://www.youtube.com/" + strings.TrimPrefix(pageURL, "/")
	}

	body, err := c.getWithRetry(ctx, pageURL)
	if err != nil {
		return "", err
	}
	if len(body) == 0 {
		return "", fmt.Errorf("channel page %s returned no content", pageURL)
	}

	return parseChannelIDFromHTML(body)
}

// parseChannelIDFromHTML extracts the UC id from a channel page's meta tags
// or canonical link.
func parseChannelIDFromHTML(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse channel page: %w", err)
	}

	if id, ok := doc.Find(`meta[itemprop="identifier"]`).Attr("content"); ok && reBareID.MatchString(id) {
		return id, nil
	}
	if id, ok := doc.Find(`meta[itemprop="channelId"]`).Attr("content"); ok && reBareID.MatchString(id) {
		return id, nil
	}
	if href, ok := doc.Find(`link[rel="canonical"]`).Attr("href"); ok {
		if m := reChannelPath.FindStringSubmatch(href); m != nil && reBareID.MatchString(m[1]) {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("no channel id found in page markup")
}
