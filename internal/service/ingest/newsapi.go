// internal/service/ingest/newsapi.go

// Package ingest collects articles from external sources, classifies them
// and persists the results on a fixed interval.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"newsdash/internal/domain/news"
)

// NewsAPIClient adapts the NewsAPI v2 REST endpoints.
type NewsAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewNewsAPIClient creates a client for newsapi.org.
func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:  apiKey,
		baseURL: "https://newsapi.org/v2",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Content     string `json:"content"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Name identifies the collector in logs and article metadata.
func (c *NewsAPIClient) Name() string { return "newsapi" }

// Collect searches NewsAPI for geopolitics and economics coverage. An empty
// query falls back to the business top headlines.
func (c *NewsAPIClient) Collect(ctx context.Context, query string, from, to time.Time) ([]news.Article, error) {
	params := url.Values{}
	params.Set("pageSize", "100")

	path := "everything"
	if query == "" {
		path = "top-headlines"
		params.Set("category", "business")
		params.Set("country", "us")
	} else {
		params.Set("q", query)
		params.Set("language", "en")
		params.Set("sortBy", "publishedAt")
		if !from.IsZero() {
			params.Set("from", from.Format("2006-01-02"))
		}
		if !to.IsZero() {
			params.Set("to", to.Format("2006-01-02"))
		}
	}

	endpoint := fmt.Sprintf("%s/%s?%s", c.baseURL, path, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi returned status %d", resp.StatusCode)
	}

	var body newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding newsapi response: %w", err)
	}
	if body.Status != "ok" {
		return nil, fmt.Errorf("newsapi error: %s", body.Message)
	}

	articles := make([]news.Article, 0, len(body.Articles))
	for _, raw := range body.Articles {
		if raw.Title == "" && raw.Content == "" {
			continue
		}
		published, _ := time.Parse(time.RFC3339, raw.PublishedAt)
		content := raw.Content
		if content == "" {
			content = raw.Description
		}
		articles = append(articles, news.Article{
			Title:       raw.Title,
			Content:     content,
			Source:      raw.Source.Name,
			URL:         raw.URL,
			PublishedAt: published,
		})
	}
	return articles, nil
}
