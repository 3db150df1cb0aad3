// internal/domain/trend/model.go

package trend

import (
	"time"

	"newsdash/internal/domain/news"
)

// SeriesPoint holds per-category article counts for a single day.
type SeriesPoint struct {
	Date   time.Time
	Counts map[news.Category]int
	Total  int
}

// Count returns the point's count for a category, 0 when absent.
func (p SeriesPoint) Count(c news.Category) int {
	if p.Counts == nil {
		return 0
	}
	return p.Counts[c]
}

// TimeSeries is a date-ordered sequence of daily points. Chart windows are
// taken over index positions in this sequence, not wall-clock deltas.
type TimeSeries []SeriesPoint

// CategoryTrend summarizes recent activity within one category.
type CategoryTrend struct {
	Category             news.Category
	ArticleCount         int
	Keywords             []string
	ArticleCountsByDay   map[string]int
	AveragePriorityScore float64
}
