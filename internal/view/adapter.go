// internal/view/adapter.go

// Package view maps filtered domain data onto the shapes the dashboard
// widgets render: labeled chart series, map markers and feed cards.
package view

import (
	"time"

	"newsdash/internal/domain/geo"
	"newsdash/internal/domain/news"
	"newsdash/internal/domain/trend"
)

// Style carries the display color and label for a category.
type Style struct {
	Color string `json:"color"`
	Label string `json:"label"`
}

var categoryStyles = map[news.Category]Style{
	news.CategoryInternal: {Color: "#d62728", Label: "Internal Conflict"},
	news.CategoryExternal: {Color: "#ff7f0e", Label: "External Conflict"},
	news.CategoryEconomic: {Color: "#2ca02c", Label: "Economic Indicators"},
}

const neutralColor = "#7f7f7f"

// CategoryStyle returns the style for a category. Unknown categories get a
// neutral grey with the raw value as label, so rendering never breaks on
// unexpected data.
func CategoryStyle(c news.Category) Style {
	if s, ok := categoryStyles[c]; ok {
		return s
	}
	return Style{Color: neutralColor, Label: string(c)}
}

// Series is one labeled chart line.
type Series struct {
	Category news.Category `json:"category"`
	Label    string        `json:"label"`
	Color    string        `json:"color"`
	Dates    []string      `json:"dates"`
	Values   []int         `json:"values"`
}

// ChartSeries builds one series per active category from a windowed time
// series. "all" expands into every known category; an explicitly selected
// category yields exactly that series and never any other.
func ChartSeries(ts trend.TimeSeries, selected news.Category) []Series {
	var active []news.Category
	if selected == "" || selected == news.CategoryAll {
		active = news.Categories()
	} else {
		active = []news.Category{selected}
	}

	dates := make([]string, len(ts))
	for i, p := range ts {
		dates[i] = p.Date.Format("2006-01-02")
	}

	out := make([]Series, 0, len(active))
	for _, cat := range active {
		style := CategoryStyle(cat)
		values := make([]int, len(ts))
		for i, p := range ts {
			values[i] = p.Count(cat)
		}
		out = append(out, Series{
			Category: cat,
			Label:    style.Label,
			Color:    style.Color,
			Dates:    dates,
			Values:   values,
		})
	}
	return out
}

// Marker is a map widget data point.
type Marker struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Intensity float64 `json:"intensity"`
	Color     string  `json:"color"`
	Category  string  `json:"category"`
}

// MapMarkers projects hotspots into map markers, colored by category.
func MapMarkers(spots []geo.Hotspot) []Marker {
	out := make([]Marker, 0, len(spots))
	for _, h := range spots {
		style := CategoryStyle(h.PrimaryCategory)
		out = append(out, Marker{
			ID:        h.ID,
			Name:      h.Name,
			Latitude:  h.Location.Latitude,
			Longitude: h.Location.Longitude,
			Intensity: h.Intensity,
			Color:     style.Color,
			Category:  string(h.PrimaryCategory),
		})
	}
	return out
}

// ArticleCard is a list panel entry for the news feed.
type ArticleCard struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Source      string    `json:"source"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	Category    string    `json:"category"`
	Label       string    `json:"label"`
	Color       string    `json:"color"`
	Priority    float64   `json:"priority"`
}

// ArticleCards projects a ranked article list into feed cards, preserving
// order.
func ArticleCards(articles []news.Article) []ArticleCard {
	out := make([]ArticleCard, 0, len(articles))
	for _, a := range articles {
		style := CategoryStyle(a.PrimaryCategory)
		out = append(out, ArticleCard{
			ID:          a.ID,
			Title:       a.Title,
			Source:      a.Source,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Category:    string(a.PrimaryCategory),
			Label:       style.Label,
			Color:       style.Color,
			Priority:    a.PriorityScore,
		})
	}
	return out
}

// QuoteCard is a list panel entry for the analyst commentary feed.
type QuoteCard struct {
	ID           string    `json:"id"`
	AnalystName  string    `json:"analyst_name"`
	Organization string    `json:"organization"`
	Content      string    `json:"content"`
	Date         time.Time `json:"date"`
	Source       string    `json:"source"`
	URL          string    `json:"url"`
	Category     string    `json:"category"`
	Color        string    `json:"color"`
}

// QuoteCards projects a ranked quote list into feed cards, preserving order.
func QuoteCards(quotes []news.Quote) []QuoteCard {
	out := make([]QuoteCard, 0, len(quotes))
	for _, q := range quotes {
		style := CategoryStyle(q.PrimaryCategory)
		out = append(out, QuoteCard{
			ID:           q.ID,
			AnalystName:  q.AnalystName,
			Organization: q.Organization,
			Content:      q.Content,
			Date:         q.Date,
			Source:       q.Source,
			URL:          q.URL,
			Category:     string(q.PrimaryCategory),
			Color:        style.Color,
		})
	}
	return out
}

// Legend returns the style map for every known category, for chart and map
// legends.
func Legend() map[news.Category]Style {
	out := make(map[news.Category]Style, len(categoryStyles))
	for cat, style := range categoryStyles {
		out[cat] = style
	}
	return out
}
