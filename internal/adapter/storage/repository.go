// internal/adapter/storage/repository.go

package storage

import (
	"github.com/jackc/pgx/v4/pgxpool"
)

// PGRepository combines the Postgres stores into the dashboard's repository
// seam. Hotspots stay in-memory in both modes; the map panel's data has no
// persistent source yet.
type PGRepository struct {
	*ArticleStore
	*QuoteStore
}

// NewPGRepository creates a repository over a connection pool.
func NewPGRepository(db *pgxpool.Pool) *PGRepository {
	return &PGRepository{
		ArticleStore: NewArticleStore(db),
		QuoteStore:   NewQuoteStore(db),
	}
}
