package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newsdash/internal/adapter/storage"
	"newsdash/internal/config"
	"newsdash/internal/domain/news"
	"newsdash/internal/service/analysis"
	"newsdash/internal/view"
)

// downRepository simulates the backing store being unreachable.
type downRepository struct{}

func (downRepository) Articles(context.Context, news.Criteria) ([]news.Article, error) {
	return nil, news.ErrDataUnavailable
}

func (downRepository) Article(context.Context, string) (*news.Article, error) {
	return nil, news.ErrDataUnavailable
}

func (downRepository) Quotes(context.Context, news.Criteria) ([]news.Quote, error) {
	return nil, news.ErrDataUnavailable
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()

	repo := storage.NewMemoryRepository()
	repo.Seed(time.Now())

	cfg := config.ServerConfig{
		Host:        "127.0.0.1",
		Port:        0,
		CorsOrigins: []string{"*"},
	}

	srv := NewServer(cfg, repo, repo, analysis.NewAnalyzer(), nil, "")
	return srv.Router()
}

func get(t *testing.T, router http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheck(t *testing.T) {
	rec := get(t, testRouter(t), "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "OK" {
		t.Errorf("expected OK body, got %q", rec.Body.String())
	}
}

func TestListArticlesRankedByPriority(t *testing.T) {
	rec := get(t, testRouter(t), "/api/v1/articles")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var cards []view.ArticleCard
	if err := json.Unmarshal(rec.Body.Bytes(), &cards); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(cards) == 0 {
		t.Fatal("expected seeded articles in the feed")
	}
	for i := 1; i < len(cards); i++ {
		if cards[i].Priority > cards[i-1].Priority {
			t.Errorf("feed not ranked: %f before %f", cards[i-1].Priority, cards[i].Priority)
		}
	}
}

func TestListArticlesCategoryFilter(t *testing.T) {
	rec := get(t, testRouter(t), "/api/v1/articles?category=economic_indicators&range=30d")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var cards []view.ArticleCard
	if err := json.Unmarshal(rec.Body.Bytes(), &cards); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(cards) == 0 {
		t.Fatal("expected economic articles in the seed data")
	}
	for _, c := range cards {
		if c.Category != "economic_indicators" {
			t.Errorf("unexpected category %q in filtered feed", c.Category)
		}
	}
}

func TestListArticlesUnknownCategory(t *testing.T) {
	rec := get(t, testRouter(t), "/api/v1/articles?category=sports")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown category, got %d", rec.Code)
	}
}

func TestListArticlesLimit(t *testing.T) {
	rec := get(t, testRouter(t), "/api/v1/articles?range=90d&limit=2")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var cards []view.ArticleCard
	if err := json.Unmarshal(rec.Body.Bytes(), &cards); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(cards) != 2 {
		t.Errorf("expected 2 cards, got %d", len(cards))
	}
}

func TestListArticlesNoMatchIsEmptyFeed(t *testing.T) {
	rec := get(t, testRouter(t), "/api/v1/articles?q=zzzznomatch")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for an empty feed, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]" {
		t.Errorf("expected empty list body, got %q", body)
	}
}

func TestDataUnavailableReturns503(t *testing.T) {
	cfg := config.ServerConfig{Host: "127.0.0.1", CorsOrigins: []string{"*"}}
	geoRepo := storage.NewMemoryRepository()
	srv := NewServer(cfg, downRepository{}, geoRepo, analysis.NewAnalyzer(), nil, "")

	for _, path := range []string{"/api/v1/articles", "/api/v1/quotes", "/api/v1/timeseries"} {
		rec := get(t, srv.Router(), path)
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("%s: expected 503, got %d", path, rec.Code)
			continue
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Errorf("%s: failed to decode error body: %v", path, err)
			continue
		}
		if body["error"] == "" {
			t.Errorf("%s: expected an error message in the body", path)
		}
	}
}

func TestGetArticleNotFound(t *testing.T) {
	rec := get(t, testRouter(t), "/api/v1/articles/no-such-id")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestGetArticleByID(t *testing.T) {
	router := testRouter(t)

	rec := get(t, router, "/api/v1/articles?range=90d")
	var cards []view.ArticleCard
	if err := json.Unmarshal(rec.Body.Bytes(), &cards); err != nil {
		t.Fatalf("failed to decode feed: %v", err)
	}
	if len(cards) == 0 {
		t.Fatal("expected seeded articles")
	}

	rec = get(t, router, "/api/v1/articles/"+cards[0].ID)
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for seeded article, got %d", rec.Code)
	}
}

func TestGetHotspots(t *testing.T) {
	rec := get(t, testRouter(t), "/api/v1/hotspots")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var markers []view.Marker
	if err := json.Unmarshal(rec.Body.Bytes(), &markers); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(markers) == 0 {
		t.Fatal("expected seeded hotspots on the map")
	}
	for _, m := range markers {
		if m.Color == "" {
			t.Errorf("marker %s missing a color", m.ID)
		}
	}
}

func TestGetHotspotsRegionFilter(t *testing.T) {
	rec := get(t, testRouter(t), "/api/v1/hotspots?region=us")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var all, us []view.Marker
	if err := json.Unmarshal(rec.Body.Bytes(), &us); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	rec = get(t, testRouter(t), "/api/v1/hotspots")
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(us) == 0 || len(us) >= len(all) {
		t.Errorf("region filter should narrow the map: %d of %d", len(us), len(all))
	}
}

func TestGetTimeSeries(t *testing.T) {
	rec := get(t, testRouter(t), "/api/v1/timeseries?range=7d")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var series []view.Series
	if err := json.Unmarshal(rec.Body.Bytes(), &series); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(series) != 3 {
		t.Fatalf("expected one series per category, got %d", len(series))
	}
	for _, s := range series {
		if len(s.Dates) != len(s.Values) {
			t.Errorf("series %s has mismatched axes", s.Category)
		}
		if len(s.Values) != 7 {
			t.Errorf("series %s: expected 7 samples, got %d", s.Category, len(s.Values))
		}
	}
}

func TestGetCategories(t *testing.T) {
	rec := get(t, testRouter(t), "/api/v1/categories")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var legend map[string]view.Style
	if err := json.Unmarshal(rec.Body.Bytes(), &legend); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	for _, cat := range []string{"internal_conflict", "external_conflict", "economic_indicators"} {
		if _, ok := legend[cat]; !ok {
			t.Errorf("legend missing %s", cat)
		}
	}
}

func TestListAnalysts(t *testing.T) {
	rec := get(t, testRouter(t), "/api/v1/analysts")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
