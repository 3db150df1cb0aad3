// internal/adapter/storage/quote_store.go

package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"

	"newsdash/internal/domain/news"
)

// QuoteStore implements analyst commentary storage over Postgres.
type QuoteStore struct {
	db *pgxpool.Pool
}

// NewQuoteStore creates a new quote store.
func NewQuoteStore(db *pgxpool.Pool) *QuoteStore {
	return &QuoteStore{db: db}
}

// SaveQuote upserts a commentary item.
func (s *QuoteStore) SaveQuote(ctx context.Context, q news.Quote) error {
	query := `
		INSERT INTO quotes (
			id, analyst_id, analyst_name, organization, content, date,
			source, url, primary_category, secondary_category, priority_score
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11
		)
		ON CONFLICT (id) DO UPDATE
		SET
			analyst_id = $2,
			analyst_name = $3,
			organization = $4,
			content = $5,
			date = $6,
			source = $7,
			url = $8,
			primary_category = $9,
			secondary_category = $10,
			priority_score = $11
	`

	if q.Date.IsZero() {
		q.Date = time.Now()
	}

	var secondary *string
	if q.SecondaryCategory != "" {
		v := string(q.SecondaryCategory)
		secondary = &v
	}

	_, err := s.db.Exec(
		ctx,
		query,
		q.ID,
		q.AnalystID,
		q.AnalystName,
		q.Organization,
		q.Content,
		q.Date,
		q.Source,
		q.URL,
		string(q.PrimaryCategory),
		secondary,
		q.PriorityScore,
	)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}

	return nil
}

// Quotes returns candidate commentary for the criteria. As with articles,
// ranking and limiting stay in the filter pipeline.
func (s *QuoteStore) Quotes(ctx context.Context, c news.Criteria) ([]news.Quote, error) {
	query := `
		SELECT id, analyst_id, analyst_name, organization, content, date,
		       source, url, primary_category, COALESCE(secondary_category, ''),
		       priority_score
		FROM quotes
		WHERE ($1 = 'all' OR primary_category = $1 OR secondary_category = $1)
		  AND ($2::timestamptz IS NULL OR date >= $2)
		  AND ($3::timestamptz IS NULL OR date <= $3)
		  AND ($4 = '' OR content ILIKE '%' || $4 || '%'
		       OR analyst_name ILIKE '%' || $4 || '%'
		       OR organization ILIKE '%' || $4 || '%')
		ORDER BY priority_score DESC, date DESC
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

	var out []news.Quote
	for rows.Next() {
		var q news.Quote
		if err := rows.Scan(
			&q.ID,
			&q.AnalystID,
			&q.AnalystName,
			&q.Organization,
			&q.Content,
			&q.Date,
			&q.Source,
			&q.URL,
			&q.PrimaryCategory,
			&q.SecondaryCategory,
			&q.PriorityScore,
		); err != nil {
			return nil, fmt.Errorf("error scanning quote: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", news.ErrDataUnavailable, err)
	}

	return out, nil
}
