// internal/adapter/storage/article_store.go

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"newsdash/internal/domain/news"
)

// ArticleStore implements article storage over Postgres.
type ArticleStore struct {
	db *pgxpool.Pool
}

// NewArticleStore creates a new article store.
func NewArticleStore(db *pgxpool.Pool) *ArticleStore {
	return &ArticleStore{db: db}
}

// SaveArticle upserts an article.
func (s *ArticleStore) SaveArticle(ctx context.Context, a news.Article) error {
	query := `
		INSERT INTO articles (
			id, title, content, source, url, published_at,
			primary_category, secondary_category, priority_score, keywords
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10
		)
		ON CONFLICT (id) DO UPDATE
		SET
			title = $2,
			content = $3,
			source = $4,
			url = $5,
			published_at = $6,
			primary_category = $7,
			secondary_category = $8,
			priority_score = $9,
			keywords = $10
	`

	if a.PublishedAt.IsZero() {
		a.PublishedAt = time.Now()
	}

	var secondary *string
	if a.SecondaryCategory != "" {
		v := string(a.SecondaryCategory)
		secondary = &v
	}

	_, err := s.db.Exec(
		ctx,
		query,
		a.ID,
		a.Title,
		a.Content,
		a.Source,
		a.URL,
		a.PublishedAt,
		string(a.PrimaryCategory),
		secondary,
		a.PriorityScore,
		a.Keywords,
	)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// Article retrieves an article by ID.
func (s *ArticleStore) Article(ctx context.Context, id string) (*news.Article, error) {
	query := `
		SELECT id, title, content, source, url, published_at,
		       primary_category, COALESCE(secondary_category, ''),
		       priority_score, keywords
		FROM articles
		WHERE id = $1
	`

	var a news.Article
	err := s.db.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Source,
		&a.URL,
		&a.PublishedAt,
		&a.PrimaryCategory,
		&a.SecondaryCategory,
		&a.PriorityScore,
		&a.Keywords,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, news.ErrNotFound
		}
		return nil, fmt.Errorf("error querying article: %w", err)
	}

	return &a, nil
}

// Articles returns candidate articles for the criteria, pushing the category
// union, date window and search filters into SQL. Ordering and limiting
// still happen in the filter pipeline so the full pipeline semantics apply
// uniformly across repositories.
func (s *ArticleStore) Articles(ctx context.Context, c news.Criteria) ([]news.Article, error) {
	query := `
		SELECT id, title, content, source, url, published_at,
		       primary_category, COALESCE(secondary_category, ''),
		       priority_score, keywords
		FROM articles
		WHERE ($1 = 'all' OR primary_category = $1 OR secondary_category = $1)
		  AND ($2::timestamptz IS NULL OR published_at >= $2)
		  AND ($3::timestamptz IS NULL OR published_at <= $3)
		  AND ($4 = '' OR title ILIKE '%' || $4 || '%' OR content ILIKE '%' || $4 || '%')
		ORDER BY priority_score DESC, published_at DESC
	`

	category := string(c.Category)
	if category == "" {
		category = string(news.CategoryAll)
	}

	var from, to *time.Time
	if f, t, ok := c.DateWindow(time.Now()); ok {
		from, to = &f, &t
	}

	rows, err := s.db.Query(ctx, query, category, from, to, c.Query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", news.ErrDataUnavailable, err)
	}
	defer rows.Close()

	var out []news.Article
	for rows.Next() {
		var a news.Article
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Content,
			&a.Source,
			&a.URL,
			&a.PublishedAt,
			&a.PrimaryCategory,
			&a.SecondaryCategory,
			&a.PriorityScore,
			&a.Keywords,
		); err != nil {
			return nil, fmt.Errorf("error scanning article: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", news.ErrDataUnavailable, err)
	}

	return out, nil
}
