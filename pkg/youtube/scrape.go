package youtube

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// scrapeVideo reads the Open Graph / schema.org meta tags of the watch page.
func (c *Client) scrapeVideo(ctx context.Context, videoID string) (*Video, error) {
	pageURL := c.watchURL + "?v=" + url.QueryEscape(videoID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build watch page request: %w", err)
	}
	req.Header.Set("User-Agent", scrapeUserAgent)
	req.Header.Set("Accept-Language", "ja,en;q=0.8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch watch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrVideoNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("watch page error %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse watch page: %w", err)
	}

	title := firstMeta(doc, `meta[property="og:title"]`, `meta[name="title"]`)
	if title == "" {
		return nil, ErrVideoNotFound
	}

	return &Video{
		ID:           videoID,
		Title:        title,
		PublishedAt:  firstMeta(doc, `meta[itemprop="datePublished"]`, `meta[itemprop="uploadDate"]`),
		ChannelTitle: firstMeta(doc, `link[itemprop="name"]`, `meta[itemprop="author"]`),
	}, nil
}

// firstMeta returns the first non-empty content attribute among the selectors.
func firstMeta(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		node := doc.Find(sel).First()
		val, ok := node.Attr("content")
		if !ok {
			continue
		}
		if val = strings.TrimSpace(val); val != "" {
			return val
		}
	}
	return ""
}
