package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"newsdash/internal/domain/geo"
	"newsdash/internal/domain/news"
)

var now = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestMemoryRepositorySeed(t *testing.T) {
	r := NewMemoryRepository()
	r.Seed(now)

	articles, err := r.Articles(context.Background(), news.DefaultCriteria())
	if err != nil {
		t.Fatal(err)
	}
	if len(articles) == 0 {
		t.Fatal("seed must provide articles")
	}

	spots, err := r.Hotspots(context.Background(), news.DefaultCriteria())
	if err != nil {
		t.Fatal(err)
	}
	if len(spots) == 0 {
		t.Fatal("seed must provide hotspots")
	}
	for _, h := range spots {
		if h.Intensity < 0 || h.Intensity > 100 {
			t.Errorf("hotspot %s intensity out of range: %f", h.ID, h.Intensity)
		}
	}
}

func TestMemoryRepositoryReturnsSnapshots(t *testing.T) {
	r := NewMemoryRepository()
	r.Seed(now)

	first, _ := r.Articles(context.Background(), news.DefaultCriteria())
	first[0].Title = "mutated"

	second, _ := r.Articles(context.Background(), news.DefaultCriteria())
	if second[0].Title == "mutated" {
		t.Error("repository must hand out copies, not shared slices")
	}
}

func TestMemoryRepositoryUpsert(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	a := news.Article{ID: "x", Title: "first"}
	if err := r.SaveArticle(ctx, a); err != nil {
		t.Fatal(err)
	}
	a.Title = "second"
	if err := r.SaveArticle(ctx, a); err != nil {
		t.Fatal(err)
	}

	articles, _ := r.Articles(ctx, news.DefaultCriteria())
	if len(articles) != 1 {
		t.Fatalf("upsert must replace, got %d articles", len(articles))
	}
	if articles[0].Title != "second" {
		t.Errorf("expected updated title, got %q", articles[0].Title)
	}
}

func TestMemoryRepositoryArticleByID(t *testing.T) {
	r := NewMemoryRepository()
	r.Seed(now)

	got, err := r.Article(context.Background(), "seed-1")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != "seed-1" {
		t.Errorf("unexpected article %s", got.ID)
	}

	if _, err := r.Article(context.Background(), "missing"); !errors.Is(err, news.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryRepositoryHotspotUpsert(t *testing.T) {
	r := NewMemoryRepository()
	ctx := context.Background()

	h := geo.Hotspot{ID: "h1", Name: "somewhere", Intensity: 10}
	_ = r.SaveHotspot(ctx, h)
	h.Intensity = 99
	_ = r.SaveHotspot(ctx, h)

	spots, _ := r.Hotspots(ctx, news.DefaultCriteria())
	if len(spots) != 1 || spots[0].Intensity != 99 {
		t.Fatalf("expected single updated hotspot, got %v", spots)
	}
}
