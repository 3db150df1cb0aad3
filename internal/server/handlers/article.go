// internal/server/handlers/article.go

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"newsdash/internal/domain/news"
	"newsdash/internal/service/filter"
	"newsdash/internal/view"
)

// ArticleHandler serves the news feed panel.
type ArticleHandler struct {
	repo  news.Repository
	clock func() time.Time
}

// NewArticleHandler creates an article handler.
func NewArticleHandler(repo news.Repository) *ArticleHandler {
	return &ArticleHandler{repo: repo, clock: time.Now}
}

// ListArticles returns the filtered, ranked article feed. Zero matches is a
// valid empty feed, not an error.
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	criteria = criteria.WithDataType(news.DataTypeNews)
	limit := parseLimit(r, filter.DefaultArticleLimit)

	articles, err := h.repo.Articles(r.Context(), criteria)
	if err != nil {
		respondWithError(w, http.StatusServiceUnavailable, "Article data unavailable", err)
		return
	}

	ranked := filter.Apply(criteria, articles, limit, h.clock())
	respondWithJSON(w, http.StatusOK, view.ArticleCards(ranked))
}

// GetArticle returns a single article by ID.
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondWithError(w, http.StatusBadRequest, "Missing article ID", nil)
		return
	}

	a, err := h.repo.Article(r.Context(), id)
	if err != nil {
		if errors.Is(err, news.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Article not found", nil)
		} else {
			respondWithError(w, http.StatusInternalServerError, "Failed to get article", err)
		}
		return
	}

	respondWithJSON(w, http.StatusOK, a)
}
