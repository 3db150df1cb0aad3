// internal/domain/news/model.go

package news

import (
	"strings"
	"time"
)

// Category is the primary classification axis for all dashboard content.
type Category string

const (
	CategoryAll      Category = "all"
	CategoryInternal Category = "internal_conflict"
	CategoryExternal Category = "external_conflict"
	CategoryEconomic Category = "economic_indicators"
	CategoryNone     Category = "uncategorized"
)

// Categories lists the concrete classification categories, excluding the
// "all" selector and the uncategorized fallback.
func Categories() []Category {
	return []Category{CategoryInternal, CategoryExternal, CategoryEconomic}
}

// Valid reports whether c is a known selectable category.
func (c Category) Valid() bool {
	switch c {
	case CategoryAll, CategoryInternal, CategoryExternal, CategoryEconomic:
		return true
	}
	return false
}

// DataType discriminates which candidate collection a request targets.
type DataType string

const (
	DataTypeNews    DataType = "news"
	DataTypeAnalyst DataType = "analyst"
)

// Classification holds the classifier output attached to an item.
type Classification struct {
	PrimaryCategory   Category
	SecondaryCategory Category
	Scores            map[Category]float64
	MatchCounts       map[Category]int
	RelevantSentences map[Category][]string
}

// Article represents a collected and classified news article.
type Article struct {
	ID                string
	Title             string
	Content           string
	Source            string
	URL               string
	PublishedAt       time.Time
	PrimaryCategory   Category
	SecondaryCategory Category
	PriorityScore     float64
	Keywords          []string
}

// Quote represents a tracked analyst's commentary item.
type Quote struct {
	ID                string
	AnalystID         string
	AnalystName       string
	Organization      string
	Content           string
	Date              time.Time
	Source            string
	URL               string
	PrimaryCategory   Category
	SecondaryCategory Category
	PriorityScore     float64
}

// Item is the common view the filter pipeline takes of any dashboard
// candidate: articles, analyst quotes and geographic hotspots. Implementations
// are value types; the pipeline never mutates them.
type Item interface {
	// Categories returns the primary category and the optional secondary
	// category (empty when absent).
	Categories() (Category, Category)

	// Priority returns the 0-100 ranking score.
	Priority() float64

	// Timestamp returns the item's publication or observation time. A zero
	// time means the item carries no usable date.
	Timestamp() time.Time

	// SearchText returns the lower-cased text the search filter matches
	// against. An empty string means the item has no searchable text.
	SearchText() string
}

func (a Article) Categories() (Category, Category) {
	return a.PrimaryCategory, a.SecondaryCategory
}

func (a Article) Priority() float64 { return a.PriorityScore }

func (a Article) Timestamp() time.Time { return a.PublishedAt }

// SearchText uses the title, falling back to content for untitled items.
func (a Article) SearchText() string {
	if a.Title != "" {
		return strings.ToLower(a.Title)
	}
	return strings.ToLower(a.Content)
}

func (q Quote) Categories() (Category, Category) {
	return q.PrimaryCategory, q.SecondaryCategory
}

func (q Quote) Priority() float64 { return q.PriorityScore }

func (q Quote) Timestamp() time.Time { return q.Date }

// SearchText includes the analyst name and organization so searches like
// "bridgewater" match commentary feeds.
func (q Quote) SearchText() string {
	parts := make([]string, 0, 3)
	if q.Content != "" {
		parts = append(parts, q.Content)
	}
	if q.AnalystName != "" {
		parts = append(parts, q.AnalystName)
	}
	if q.Organization != "" {
		parts = append(parts, q.Organization)
	}
	return strings.ToLower(strings.Join(parts, " "))
}
