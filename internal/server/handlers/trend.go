// internal/server/handlers/trend.go

package handlers

import (
	"net/http"
	"time"

	"newsdash/internal/domain/news"
	"newsdash/internal/service/analysis"
	"newsdash/internal/service/filter"
	"newsdash/internal/view"
)

// seriesDays is how much daily history the chart series carries before
// windowing; long enough to cover the 1y range selector.
const seriesDays = 365

// TrendHandler serves the chart panel and the category trend summaries.
type TrendHandler struct {
	repo     news.Repository
	analyzer *analysis.Analyzer
	clock    func() time.Time
}

// NewTrendHandler creates a trend handler.
func NewTrendHandler(repo news.Repository, analyzer *analysis.Analyzer) *TrendHandler {
	return &TrendHandler{repo: repo, analyzer: analyzer, clock: time.Now}
}

// GetTimeSeries returns one chart series per active category, windowed to
// the selected date range over sample positions.
func (h *TrendHandler) GetTimeSeries(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	// The chart buckets over the unfiltered candidate set; search and
	// category selection shape the series, not the raw counts.
	base := news.DefaultCriteria()
	base.DateRange = news.Range1Y
	articles, err := h.repo.Articles(r.Context(), base)
	if err != nil {
		respondWithError(w, http.StatusServiceUnavailable, "Article data unavailable", err)
		return
	}

	series := h.analyzer.TimeSeries(articles, seriesDays, h.clock())
	windowed := filter.WindowSeries(series, criteria.DateRange, criteria.StartDate, criteria.EndDate)
	respondWithJSON(w, http.StatusOK, view.ChartSeries(windowed, criteria.Category))
}

// GetTrends returns the per-category trend summaries.
func (h *TrendHandler) GetTrends(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	articles, err := h.repo.Articles(r.Context(), criteria)
	if err != nil {
		respondWithError(w, http.StatusServiceUnavailable, "Article data unavailable", err)
		return
	}

	if criteria.Category != news.CategoryAll {
		respondWithJSON(w, http.StatusOK, []interface{}{
			h.analyzer.CategoryTrend(articles, criteria.Category),
		})
		return
	}
	respondWithJSON(w, http.StatusOK, h.analyzer.AllCategoryTrends(articles))
}

// GetCategories returns the category legend.
func (h *TrendHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, view.Legend())
}
