// cmd/api/main.go

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/joho/godotenv"
	"github.com/nats-io/nats.go"

	"newsdash/internal/adapter/storage"
	"newsdash/internal/config"
	"newsdash/internal/domain/news"
	"newsdash/internal/server"
	"newsdash/internal/service/analysis"
	"newsdash/internal/service/analyst"
	"newsdash/internal/service/classify"
	"newsdash/internal/service/ingest"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// The memory repository always exists: it seeds the dashboard when no
	// database is configured and serves the hotspot map in both modes.
	memory := storage.NewMemoryRepository()
	memory.Seed(time.Now())

	var repo news.Repository = memory
	var articleStore ingest.ArticleStore = memory
	var quoteStore ingest.QuoteStore = memory

	if cfg.Database.Enabled {
		db, err := initDatabase(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		defer db.Close()

		pg := storage.NewPGRepository(db)
		repo = pg
		articleStore = pg.ArticleStore
		quoteStore = pg.QuoteStore
	}

	var natsConn *nats.Conn
	if cfg.NATS.Enabled {
		natsConn, err = initNATS(cfg.NATS)
		if err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
		defer natsConn.Close()
	}

	// Initialize services
	classifier := classify.NewClassifier()
	analyzer := analysis.NewAnalyzer()

	var commentarySource analyst.CommentarySource
	if cfg.Twitter.BearerToken != "" {
		commentarySource = analyst.NewTwitterSource(cfg.Twitter.BearerToken)
	} else {
		log.Println("No Twitter token configured, using seed commentary")
		commentarySource = analyst.NewSeedSource()
	}
	tracker := analyst.NewTracker(commentarySource)

	var collectors []ingest.Collector
	if cfg.Ingest.NewsAPIKey != "" {
		collectors = append(collectors, ingest.NewNewsAPIClient(cfg.Ingest.NewsAPIKey))
	}
	if cfg.Ingest.RSSEnabled {
		collectors = append(collectors, ingest.NewRSSCollector(nil))
	}

	// Initialize ingestion manager
	manager := ingest.NewManager(
		collectors,
		tracker,
		classifier,
		articleStore,
		quoteStore,
		natsConn,
		ingest.ManagerConfig{
			Query:            cfg.Ingest.Query,
			Interval:         cfg.Ingest.Interval,
			QuotesPerAnalyst: cfg.Ingest.QuotesPerAnalyst,
			EventsTopic:      cfg.Ingest.EventsTopic,
		},
	)

	if err := manager.Start(ctx); err != nil {
		log.Fatalf("Failed to start ingestion manager: %v", err)
	}

	// Initialize HTTP server
	httpServer := server.NewServer(
		cfg.Server,
		repo,
		memory,
		analyzer,
		natsConn,
		fmt.Sprintf("%s.ingested", cfg.Ingest.EventsTopic),
	)

	// Start HTTP server
	go func() {
		log.Printf("Starting HTTP server on %s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-shutdown
	log.Println("Shutdown signal received")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	// Graceful shutdown
	log.Println("Shutting down services...")

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	if err := manager.Stop(shutdownCtx); err != nil {
		log.Printf("Ingestion manager shutdown error: %v", err)
	}

	log.Println("Shutdown complete")
}

// Initialize database connection
func initDatabase(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Database, cfg.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxOpenConns)
	poolConfig.MinConns = int32(cfg.MaxIdleConns)
	poolConfig.MaxConnLifetime = cfg.MaxLifetime

	db, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	// Test connection
	if err := db.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return db, nil
}

// Initialize NATS connection
func initNATS(cfg config.NATSConfig) (*nats.Conn, error) {
	options := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.Timeout(cfg.ConnectTimeout),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Printf("NATS disconnected: %v", err)
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Printf("NATS reconnected to %s", nc.ConnectedUrl())
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			log.Printf("NATS connection closed")
		}),
	}

	nc, err := nats.Connect(cfg.URL, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to NATS: %w", err)
	}

	return nc, nil
}
