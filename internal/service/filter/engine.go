// internal/service/filter/engine.go

// Package filter implements the dashboard's view pipeline: category, search,
// date and region filtering followed by priority ranking and limiting.
//
// The pipeline is pure. It never mutates its input, never returns an error,
// and produces the same output for the same (criteria, items, limit, now).
package filter

import (
	"sort"
	"strings"
	"time"

	"newsdash/internal/domain/geo"
	"newsdash/internal/domain/news"
	"newsdash/internal/domain/trend"
)

// Default feed sizes for the dashboard panels.
const (
	DefaultArticleLimit = 10
	DefaultQuoteLimit   = 5
)

// Locatable is satisfied by items carrying a coordinate, such as hotspots.
// The region filter only applies to these; everything else passes.
type Locatable interface {
	Coordinates() (lat, lng float64)
}

// Apply runs the filter pipeline over a candidate collection and returns the
// filtered, ranked, limited view. Stages run in a fixed order: category,
// search, date, region, rank, limit. now anchors the relative date ranges so
// results are deterministic under test.
//
// A limit <= 0 means unlimited.
func Apply[T news.Item](c news.Criteria, items []T, limit int, now time.Time) []T {
	out := make([]T, 0, len(items))

	query := strings.ToLower(strings.TrimSpace(c.Query))
	from, to, dated := c.DateWindow(now)

	for _, item := range items {
		if !matchCategory(item, c.Category) {
			continue
		}
		if !matchQuery(item, query) {
			continue
		}
		if dated && !matchWindow(item, from, to) {
			continue
		}
		if !matchRegion(item, c.Region) {
			continue
		}
		out = append(out, item)
	}

	// Stable: equal scores keep their input order.
	sort.SliceStable(out, func(i, j int) bool {
		return priority(out[i]) > priority(out[j])
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// matchCategory applies the union rule: an item passes when either its
// primary or secondary category equals the selected one.
func matchCategory(item news.Item, cat news.Category) bool {
	if cat == "" || cat == news.CategoryAll {
		return true
	}
	primary, secondary := item.Categories()
	return primary == cat || secondary == cat
}

// matchQuery does case-insensitive substring containment. No tokenization,
// no fuzzy matching. Items without searchable text are skipped rather than
// treated as matches.
func matchQuery(item news.Item, query string) bool {
	if query == "" {
		return true
	}
	text := item.SearchText()
	if text == "" {
		return false
	}
	return strings.Contains(text, query)
}

// matchWindow checks the inclusive [from, to] bounds. Items with no usable
// timestamp pass; availability wins over strictness.
func matchWindow(item news.Item, from, to time.Time) bool {
	ts := item.Timestamp()
	if ts.IsZero() {
		return true
	}
	return !ts.Before(from) && !ts.After(to)
}

// matchRegion keeps locatable items within the region's distance threshold.
// Non-locatable items and the global region always pass.
func matchRegion(item news.Item, rg news.Region) bool {
	if rg == "" || rg == news.RegionGlobal {
		return true
	}
	loc, ok := item.(Locatable)
	if !ok {
		return true
	}
	lat, lng := loc.Coordinates()
	return geo.InRegion(geo.Location{Latitude: lat, Longitude: lng}, rg)
}

// priority treats a missing or negative score as lowest rather than failing.
func priority(item news.Item) float64 {
	p := item.Priority()
	if p < 0 {
		return 0
	}
	return p
}

// WindowSeries returns the trailing window of a date-ordered time series for
// the chart panel. Windows are defined in samples, not calendar days: the
// start index is the end minus the range's day count, clamped to zero, so an
// irregularly sampled series still yields the last N points. Custom ranges
// fall back to the point dates.
func WindowSeries(series trend.TimeSeries, r news.DateRange, start, end time.Time) trend.TimeSeries {
	if len(series) == 0 {
		return trend.TimeSeries{}
	}

	if r == news.RangeCustom {
		if start.IsZero() || end.IsZero() || start.After(end) {
			return append(trend.TimeSeries{}, series...)
		}
		out := make(trend.TimeSeries, 0, len(series))
		for _, p := range series {
			if !p.Date.Before(start) && !p.Date.After(end) {
				out = append(out, p)
			}
		}
		return out
	}

	days := r.Days()
	if days <= 0 {
		return append(trend.TimeSeries{}, series...)
	}
	from := len(series) - days
	if from < 0 {
		from = 0
	}
	return append(trend.TimeSeries{}, series[from:]...)
}
