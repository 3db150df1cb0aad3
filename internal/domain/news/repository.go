// internal/domain/news/repository.go

package news

import (
	"context"
	"errors"
)

// Common repository errors. Handlers map these onto HTTP status codes;
// an empty (but successful) result is not an error.
var (
	ErrNotFound        = errors.New("not found")
	ErrDataUnavailable = errors.New("data unavailable")
)

// Repository is the data-access seam between the dashboard and whatever
// supplies its candidate collections. The in-memory seed repository and the
// Postgres stores both satisfy it.
type Repository interface {
	// Articles returns candidate articles matching the criteria. The result
	// is a snapshot; callers may reorder or truncate it freely.
	Articles(ctx context.Context, c Criteria) ([]Article, error)

	// Article returns a single article by ID, or ErrNotFound.
	Article(ctx context.Context, id string) (*Article, error)

	// Quotes returns candidate analyst commentary matching the criteria.
	Quotes(ctx context.Context, c Criteria) ([]Quote, error)
}
