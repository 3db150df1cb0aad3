// internal/server/handlers/quote.go

package handlers

import (
	"net/http"
	"time"

	"newsdash/internal/domain/news"
	"newsdash/internal/service/analyst"
	"newsdash/internal/service/filter"
	"newsdash/internal/view"
)

// QuoteHandler serves the analyst commentary panel.
type QuoteHandler struct {
	repo  news.Repository
	clock func() time.Time
}

// NewQuoteHandler creates a quote handler.
func NewQuoteHandler(repo news.Repository) *QuoteHandler {
	return &QuoteHandler{repo: repo, clock: time.Now}
}

// ListQuotes returns the filtered, ranked commentary feed.
func (h *QuoteHandler) ListQuotes(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	criteria = criteria.WithDataType(news.DataTypeAnalyst)
	limit := parseLimit(r, filter.DefaultQuoteLimit)

	quotes, err := h.repo.Quotes(r.Context(), criteria)
	if err != nil {
		respondWithError(w, http.StatusServiceUnavailable, "Commentary data unavailable", err)
		return
	}

	ranked := filter.Apply(criteria, quotes, limit, h.clock())
	respondWithJSON(w, http.StatusOK, view.QuoteCards(ranked))
}

// ListAnalysts returns the tracked analyst registry.
func (h *QuoteHandler) ListAnalysts(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, analyst.Registry())
}
