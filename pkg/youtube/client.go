package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Client looks up video metadata through the YouTube Data API v3, falling back
// to the public watch page when no API key is configured or the API call fails.
type Client struct {
	service    *youtube.Service
	httpClient *http.Client
	watchURL   string
}

// NewClient creates a Client. An empty apiKey yields a scrape-only client.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		watchURL:   defaultWatchURL,
	}
	if apiKey == "" {
		return c, nil
	}

	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	c.service = svc
	return c, nil
}

// NewClientFromHTTP creates a Client whose API and page requests go through httpClient.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := youtube.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &Client{
		service:    svc,
		httpClient: httpClient,
		watchURL:   defaultWatchURL,
	}, nil
}

// SetWatchURL overrides the watch page used by the scrape fallback.
func (c *Client) SetWatchURL(watchURL string) {
	c.watchURL = watchURL
}

// GetVideo returns the metadata of a single video.
func (c *Client) GetVideo(ctx context.Context, videoID string) (*Video, error) {
	if !videoIDRE.MatchString(videoID) {
		return nil, ErrInvalidVideoID
	}

	if c.service == nil {
		return c.scrapeVideo(ctx, videoID)
	}

	video, err := c.listVideo(ctx, videoID)
	if err == nil || errors.Is(err, ErrVideoNotFound) {
		return video, err
	}

	scraped, scrapeErr := c.scrapeVideo(ctx, videoID)
	if scrapeErr != nil {
		return nil, err
	}
	return scraped, nil
}

func (c *Client) listVideo(ctx context.Context, videoID string) (*Video, error) {
	resp, err := c.service.Videos.List([]string{partSnippet}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list youtube video: %w", err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return nil, ErrVideoNotFound
	}

	item := resp.Items[0]
	return &Video{
		ID:           item.Id,
		Title:        item.Snippet.Title,
		PublishedAt:  item.Snippet.PublishedAt,
		ChannelTitle: item.Snippet.ChannelTitle,
	}, nil
}
