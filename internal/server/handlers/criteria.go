// internal/server/handlers/criteria.go

package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"newsdash/internal/domain/news"
)

// parseCriteria builds filter criteria from query parameters. Unset
// parameters keep the defaults; unknown enum values are rejected, while
// malformed custom dates are treated as unset so a bad date never breaks a
// panel.
func parseCriteria(r *http.Request) (news.Criteria, error) {
	c := news.DefaultCriteria()
	q := r.URL.Query()

	if v := q.Get("category"); v != "" {
		cat := news.Category(v)
		if !cat.Valid() {
			return c, fmt.Errorf("unknown category %q", v)
		}
		c.Category = cat
	}

	if v := q.Get("range"); v != "" {
		dr := news.DateRange(v)
		if !dr.Valid() {
			return c, fmt.Errorf("unknown date range %q", v)
		}
		c.DateRange = dr
	}

	if c.DateRange == news.RangeCustom {
		if t, err := time.Parse("2006-01-02", q.Get("start")); err == nil {
			c.StartDate = t
		}
		if t, err := time.Parse("2006-01-02", q.Get("end")); err == nil {
			// End of day so the bound stays inclusive for same-day items.
			c.EndDate = t.Add(24*time.Hour - time.Nanosecond)
		}
	}

	if v := q.Get("region"); v != "" {
		rg := news.Region(v)
		if !rg.Valid() {
			return c, fmt.Errorf("unknown region %q", v)
		}
		c.Region = rg
	}

	c.Query = q.Get("q")
	return c, nil
}

// parseLimit reads a positive limit parameter, falling back to def.
func parseLimit(r *http.Request, def int) int {
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
