// internal/server/server.go

package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nats-io/nats.go"

	"newsdash/internal/config"
	"newsdash/internal/domain/geo"
	"newsdash/internal/domain/news"
	"newsdash/internal/server/handlers"
	"newsdash/internal/service/analysis"
)

// Server represents the HTTP server
type Server struct {
	server *http.Server
	router *chi.Mux
}

// NewServer creates a new HTTP server
func NewServer(
	cfg config.ServerConfig,
	repo news.Repository,
	geoRepo geo.Repository,
	analyzer *analysis.Analyzer,
	natsConn *nats.Conn,
	eventsSubject string,
) *Server {
	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	// CORS configuration
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CorsOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Create handler dependencies
	articleHandler := handlers.NewArticleHandler(repo)
	quoteHandler := handlers.NewQuoteHandler(repo)
	geoHandler := handlers.NewGeoHandler(geoRepo)
	trendHandler := handlers.NewTrendHandler(repo, analyzer)

	// Routes
	router.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		// API version
		r.Route("/v1", func(r chi.Router) {
			// News feed
			r.Route("/articles", func(r chi.Router) {
				r.Get("/", articleHandler.ListArticles)
				r.Get("/{id}", articleHandler.GetArticle)
			})

			// Analyst commentary
			r.Get("/quotes", quoteHandler.ListQuotes)
			r.Get("/analysts", quoteHandler.ListAnalysts)

			// Conflict map
			r.Get("/hotspots", geoHandler.GetHotspots)

			// Charts and summaries
			r.Get("/timeseries", trendHandler.GetTimeSeries)
			r.Get("/trends", trendHandler.GetTrends)
			r.Get("/categories", trendHandler.GetCategories)
		})
	})

	// WebSocket endpoint for live dashboard updates
	if natsConn != nil {
		router.Get("/ws/dashboard", handlers.DashboardWebSocketHandler(natsConn, eventsSubject))
	}

	// Create HTTP server
	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return &Server{
		server: httpServer,
		router: router,
	}
}

// ListenAndServe starts the HTTP server
func (s *Server) ListenAndServe() error {
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Router exposes the chi mux for tests.
func (s *Server) Router() http.Handler {
	return s.router
}
