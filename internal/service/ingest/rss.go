// internal/service/ingest/rss.go

package ingest

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mmcdole/gofeed"

	"newsdash/internal/domain/news"
)

// DefaultFeeds are the financial and world-news feeds the dashboard tracks.
var DefaultFeeds = map[string]string{
	"The Wall Street Journal": "https://feeds.a.dj.com/rss/RSSEconomy.xml",
	"WSJ World":               "https://feeds.a.dj.com/rss/RSSWorldNews.xml",
	"Financial Times":         "https://www.ft.com/world?format=rss",
	"The Economist":           "https://www.economist.com/finance-and-economics/rss.xml",
	"Bloomberg":               "https://feeds.bloomberg.com/markets/news.rss",
}

// RSSCollector pulls articles from a fixed set of RSS feeds.
type RSSCollector struct {
	feeds  map[string]string
	parser *gofeed.Parser
}

// NewRSSCollector creates a collector over the given source->URL map, or
// DefaultFeeds when nil.
func NewRSSCollector(feeds map[string]string) *RSSCollector {
	if feeds == nil {
		feeds = DefaultFeeds
	}
	return &RSSCollector{
		feeds:  feeds,
		parser: gofeed.NewParser(),
	}
}

// Name identifies the collector in logs and article metadata.
func (c *RSSCollector) Name() string { return "rss" }

// Collect fetches every feed and normalizes entries to articles. A broken
// feed is logged and skipped; the query and window arguments are unused
// because feeds are pre-scoped.
func (c *RSSCollector) Collect(ctx context.Context, _ string, _, _ time.Time) ([]news.Article, error) {
	var out []news.Article
	var lastErr error

	for source, feedURL := range c.feeds {
		feed, err := c.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			log.Printf("rss: skipping feed %s: %v", source, err)
			lastErr = err
			continue
		}
		for _, item := range feed.Items {
			if item.Title == "" {
				continue
			}
			var published time.Time
			if item.PublishedParsed != nil {
				published = *item.PublishedParsed
			}
			content := item.Content
			if content == "" {
				content = item.Description
			}
			out = append(out, news.Article{
				Title:       item.Title,
				Content:     content,
				Source:      source,
				URL:         item.Link,
				PublishedAt: published,
			})
		}
	}

	if len(out) == 0 && lastErr != nil {
		return nil, fmt.Errorf("all feeds failed: %w", lastErr)
	}
	return out, nil
}
