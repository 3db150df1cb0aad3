// internal/adapter/storage/memory.go

package storage

import (
	"context"
	"sync"
	"time"

	"newsdash/internal/domain/geo"
	"newsdash/internal/domain/news"
)

// MemoryRepository is the in-memory data path: a seeded snapshot of
// articles, analyst commentary and hotspots the dashboard serves when no
// database is configured. It also backs the ingestion loop in that mode,
// accumulating incoming items.
type MemoryRepository struct {
	mu       sync.RWMutex
	articles []news.Article
	quotes   []news.Quote
	hotspots []geo.Hotspot
}

// NewMemoryRepository creates an empty repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// SaveArticle inserts or replaces an article by ID.
func (r *MemoryRepository) SaveArticle(_ context.Context, a news.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.articles {
		if r.articles[i].ID == a.ID {
			r.articles[i] = a
			return nil
		}
	}
	r.articles = append(r.articles, a)
	return nil
}

// SaveQuote inserts or replaces a commentary item by ID.
func (r *MemoryRepository) SaveQuote(_ context.Context, q news.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.quotes {
		if r.quotes[i].ID == q.ID {
			r.quotes[i] = q
			return nil
		}
	}
	r.quotes = append(r.quotes, q)
	return nil
}

// SaveHotspot inserts or replaces a hotspot by ID.
func (r *MemoryRepository) SaveHotspot(_ context.Context, h geo.Hotspot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.hotspots {
		if r.hotspots[i].ID == h.ID {
			r.hotspots[i] = h
			return nil
		}
	}
	r.hotspots = append(r.hotspots, h)
	return nil
}

// Articles returns a snapshot of all articles. Filtering happens in the
// pipeline; the repository just hands over copies.
func (r *MemoryRepository) Articles(_ context.Context, _ news.Criteria) ([]news.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]news.Article, len(r.articles))
	copy(out, r.articles)
	return out, nil
}

// Article returns a single article by ID, or ErrNotFound.
func (r *MemoryRepository) Article(_ context.Context, id string) (*news.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.articles {
		if a.ID == id {
			copied := a
			return &copied, nil
		}
	}
	return nil, news.ErrNotFound
}

// Quotes returns a snapshot of all commentary.
func (r *MemoryRepository) Quotes(_ context.Context, _ news.Criteria) ([]news.Quote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]news.Quote, len(r.quotes))
	copy(out, r.quotes)
	return out, nil
}

// Hotspots returns a snapshot of all hotspots.
func (r *MemoryRepository) Hotspots(_ context.Context, _ news.Criteria) ([]geo.Hotspot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]geo.Hotspot, len(r.hotspots))
	copy(out, r.hotspots)
	return out, nil
}

// Seed loads the bundled sample data with timestamps anchored at now.
func (r *MemoryRepository) Seed(now time.Time) {
	ctx := context.Background()
	for _, a := range seedArticles(now) {
		_ = r.SaveArticle(ctx, a)
	}
	for _, h := range seedHotspots(now) {
		_ = r.SaveHotspot(ctx, h)
	}
}
