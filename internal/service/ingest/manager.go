// internal/service/ingest/manager.go

package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"newsdash/internal/domain/news"
	"newsdash/internal/service/analysis"
	"newsdash/internal/service/analyst"
	"newsdash/internal/service/classify"
)

// Collector is a source of raw articles.
type Collector interface {
	Name() string
	Collect(ctx context.Context, query string, from, to time.Time) ([]news.Article, error)
}

// ArticleStore persists classified articles.
type ArticleStore interface {
	SaveArticle(ctx context.Context, a news.Article) error
}

// QuoteStore persists classified analyst commentary.
type QuoteStore interface {
	SaveQuote(ctx context.Context, q news.Quote) error
}

// ManagerConfig contains configuration for the ingestion manager.
type ManagerConfig struct {
	Query            string
	Interval         time.Duration
	QuotesPerAnalyst int
	EventsTopic      string
}

// IngestedEvent is published to NATS after every ingestion pass.
type IngestedEvent struct {
	ArticleCount int       `json:"article_count"`
	QuoteCount   int       `json:"quote_count"`
	CompletedAt  time.Time `json:"completed_at"`
}

// Manager runs the collect -> classify -> persist loop.
type Manager struct {
	collectors []Collector
	tracker    *analyst.Tracker
	classifier *classify.Classifier
	analyzer   *analysis.Analyzer
	articles   ArticleStore
	quotes     QuoteStore
	eventBus   *nats.Conn
	config     ManagerConfig

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewManager creates an ingestion manager.
func NewManager(
	collectors []Collector,
	tracker *analyst.Tracker,
	classifier *classify.Classifier,
	articles ArticleStore,
	quotes QuoteStore,
	eventBus *nats.Conn,
	config ManagerConfig,
) *Manager {
	if config.Interval <= 0 {
		config.Interval = 30 * time.Minute
	}
	if config.QuotesPerAnalyst <= 0 {
		config.QuotesPerAnalyst = 5
	}
	return &Manager{
		collectors: collectors,
		tracker:    tracker,
		classifier: classifier,
		analyzer:   analysis.NewAnalyzer(),
		articles:   articles,
		quotes:     quotes,
		eventBus:   eventBus,
		config:     config,
	}
}

// Start runs one immediate ingestion pass and then repeats on the interval
// until Stop or context cancellation.
func (m *Manager) Start(ctx context.Context) error {
	ctx, m.cancel = context.WithCancel(ctx)

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()

		m.runOnce(ctx)

		ticker := time.NewTicker(m.config.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.runOnce(ctx)
			}
		}
	}()

	return nil
}

// Stop halts the ingestion loop, waiting for an in-flight pass to finish.
func (m *Manager) Stop(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunOnce performs a single ingestion pass. Exposed for the CLI trigger and
// tests; Start calls it on the ticker.
func (m *Manager) RunOnce(ctx context.Context) (IngestedEvent, error) {
	return m.ingest(ctx)
}

func (m *Manager) runOnce(ctx context.Context) {
	event, err := m.ingest(ctx)
	if err != nil {
		log.Printf("ingest: pass failed: %v", err)
		return
	}
	log.Printf("ingest: stored %d articles, %d quotes", event.ArticleCount, event.QuoteCount)
}

func (m *Manager) ingest(ctx context.Context) (IngestedEvent, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -7)

	var event IngestedEvent

	seen := map[string]bool{}
	for _, collector := range m.collectors {
		articles, err := collector.Collect(ctx, m.config.Query, from, now)
		if err != nil {
			log.Printf("ingest: collector %s failed: %v", collector.Name(), err)
			continue
		}
		for _, a := range articles {
			if a.URL != "" && seen[a.URL] {
				continue
			}
			seen[a.URL] = true

			if a.ID == "" {
				a.ID = uuid.New().String()
			}
			classified, _ := m.classifier.ClassifyArticle(a, now)
			classified.Keywords = m.analyzer.ExtractKeywords(classified.Title+" "+classified.Content, 10)
			if err := m.articles.SaveArticle(ctx, classified); err != nil {
				log.Printf("ingest: saving article %s: %v", classified.ID, err)
				continue
			}
			event.ArticleCount++
		}
	}

	if m.tracker != nil {
		quotes, err := m.tracker.Collect(ctx, m.config.QuotesPerAnalyst)
		if err != nil {
			log.Printf("ingest: analyst collection failed: %v", err)
		}
		for _, q := range quotes {
			if q.ID == "" {
				q.ID = uuid.New().String()
			}
			classified := m.classifier.ClassifyQuote(q, now)
			if err := m.quotes.SaveQuote(ctx, classified); err != nil {
				log.Printf("ingest: saving quote %s: %v", classified.ID, err)
				continue
			}
			event.QuoteCount++
		}
	}

	event.CompletedAt = now
	if err := m.publishEvent(event); err != nil {
		log.Printf("ingest: publishing event: %v", err)
	}

	return event, nil
}

func (m *Manager) publishEvent(event IngestedEvent) error {
	if m.eventBus == nil {
		return nil
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling ingest event: %w", err)
	}
	return m.eventBus.Publish(fmt.Sprintf("%s.ingested", m.config.EventsTopic), data)
}
