package youtube

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/crowdwork-analyzer/internal/logger"
)

// Reference shapes that resolve without touching the API: channel URLs and
// bare UC ids.

func TestResolveChannel_ChannelURL(t *testing.T) {
	c := &Client{log: logger.New()}

	id, err := c.ResolveChannel(context.Background(), "https://www.youtube.com/channel/UCa90xqK2odw1KV5wHU9WRhg")
	require.NoError(t, err)
	assert.Equal(t, "UCa90xqK2odw1KV5wHU9WRhg", id)
}

func TestResolveChannel_ChannelURLWithQuery(t *testing.T) {
	c := &Client{log: logger.New()}

	id, err := c.ResolveChannel(context.Background(), "https://www.youtube.com/channel/UCa90xqK2odw1KV5wHU9WRhg?view=videos")
	require.NoError(t, err)
	assert.Equal(t, "UCa90xqK2odw1KV5wHU9WRhg", id)
}

func TestResolveChannel_BareID(t *testing.T) {
	c := &Client{log: logger.New()}

	id, err := c.ResolveChannel(context.Background(), "UCa90xqK2odw1KV5wHU9WRhg")
	require.NoError(t, err)
	assert.Equal(t, "UCa90xqK2odw1KV5wHU9WRhg", id)
}

func TestResolveChannel_UnrecognizedReference(t *testing.T) {
	c := &Client{log: logger.New()}

	_, err := c.ResolveChannel(context.Background(), "just some words")

	var inputErr *InputError
	require.ErrorAs(t, err, &inputErr)
	assert.Equal(t, "just some words", inputErr.Ref)
}

func TestResolveChannel_TruncatedIDIsNotBare(t *testing.T) {
	c := &Client{log: logger.New()}

	// 21 characters after UC, one short of a valid id.
	_, err := c.ResolveChannel(context.Background(), "UCa90xqK2odw1KV5wHU9WRh")

	var inputErr *InputError
	assert.ErrorAs(t, err, &inputErr)
}

func TestParseChannelIDFromHTML_IdentifierMeta(t *testing.T) {
	page := []byte(`<html><head>
		<meta itemprop="identifier" content="UCa90xqK2odw1KV5wHU9WRhg">
	</head><body></body></html>`)

	id, err := parseChannelIDFromHTML(page)
	require.NoError(t, err)
	assert.Equal(t, "UCa90xqK2odw1KV5wHU9WRhg", id)
}

func TestParseChannelIDFromHTML_CanonicalLink(t *testing.T) {
	page := []byte(`<html><head>
		<link rel="canonical" href="https://www.youtube.com/channel/UCa90xqK2odw1KV5wHU9WRhg">
	</head><body></body></html>`)

	id, err := parseChannelIDFromHTML(page)
	require.NoError(t, err)
	assert.Equal(t, "UCa90xqK2odw1KV5wHU9WRhg", id)
}

func TestParseChannelIDFromHTML_RejectsInvalidID(t *testing.T) {
	page := []byte(`<html><head>
		<meta itemprop="identifier" content="not-a-channel-id">
	</head><body></body></html>`)

	_, err := parseChannelIDFromHTML(page)
	assert.Error(t, err)
}

func TestParseChannelIDFromHTML_NoMarkup(t *testing.T) {
	_, err := parseChannelIDFromHTML([]byte(`<html><body><p>nothing here</p></body></html>`))
	assert.Error(t, err)
}
