// internal/domain/news/criteria.go

package news

import "time"

// DateRange selects the time window for a dashboard view.
type DateRange string

const (
	Range1D     DateRange = "1d"
	Range7D     DateRange = "7d"
	Range30D    DateRange = "30d"
	Range90D    DateRange = "90d"
	Range1Y     DateRange = "1y"
	RangeCustom DateRange = "custom"
)

// Days returns the window size in days for the relative ranges, or 0 for
// custom.
func (r DateRange) Days() int {
	switch r {
	case Range1D:
		return 1
	case Range7D:
		return 7
	case Range30D:
		return 30
	case Range90D:
		return 90
	case Range1Y:
		return 365
	}
	return 0
}

// Valid reports whether r is a known date range selector.
func (r DateRange) Valid() bool {
	switch r {
	case Range1D, Range7D, Range30D, Range90D, Range1Y, RangeCustom:
		return true
	}
	return false
}

// Region selects the geographic scope for map views.
type Region string

const (
	RegionGlobal       Region = "global"
	RegionUS           Region = "us"
	RegionEurope       Region = "europe"
	RegionAsia         Region = "asia"
	RegionMiddleEast   Region = "middle_east"
	RegionLatinAmerica Region = "latin_america"
)

// Valid reports whether rg is a known region selector.
func (rg Region) Valid() bool {
	switch rg {
	case RegionGlobal, RegionUS, RegionEurope, RegionAsia, RegionMiddleEast, RegionLatinAmerica:
		return true
	}
	return false
}

// Criteria describes the active dashboard view. Values are immutable;
// panels that need an overridden view derive a copy via the With helpers
// instead of mutating shared state.
type Criteria struct {
	Category  Category
	DateRange DateRange
	StartDate time.Time // custom range only
	EndDate   time.Time // custom range only
	Query     string
	Region    Region
	DataType  DataType // optional; empty means unscoped
}

// DefaultCriteria returns the view every panel starts from.
func DefaultCriteria() Criteria {
	return Criteria{
		Category:  CategoryAll,
		DateRange: Range7D,
		Query:     "",
		Region:    RegionGlobal,
	}
}

// WithCategory returns a copy of c with the category overridden. Panels
// pinned to a single category use this rather than touching the shared view.
func (c Criteria) WithCategory(cat Category) Criteria {
	c.Category = cat
	return c
}

// WithRegion returns a copy of c with the region overridden.
func (c Criteria) WithRegion(rg Region) Criteria {
	c.Region = rg
	return c
}

// WithDataType returns a copy of c scoped to a candidate collection.
func (c Criteria) WithDataType(dt DataType) Criteria {
	c.DataType = dt
	return c
}

// DateWindow resolves the criteria to a concrete [from, to] window relative
// to now. ok is false when no date constraint applies: a custom range with
// unset or inverted bounds filters nothing.
func (c Criteria) DateWindow(now time.Time) (from, to time.Time, ok bool) {
	if c.DateRange == RangeCustom {
		if c.StartDate.IsZero() || c.EndDate.IsZero() || c.StartDate.After(c.EndDate) {
			return time.Time{}, time.Time{}, false
		}
		return c.StartDate, c.EndDate, true
	}
	days := c.DateRange.Days()
	if days <= 0 {
		return time.Time{}, time.Time{}, false
	}
	return now.AddDate(0, 0, -days), now, true
}
