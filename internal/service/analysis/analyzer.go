// internal/service/analysis/analyzer.go

// Package analysis derives trend summaries and chart time series from
// classified articles.
package analysis

import (
	"sort"
	"strings"
	"time"

	"newsdash/internal/domain/news"
	"newsdash/internal/domain/trend"
)

// Analyzer computes category trends and time-series data.
type Analyzer struct{}

// NewAnalyzer creates an analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// ExtractKeywords returns the n most frequent meaningful tokens in the text.
// Stopwords and tokens shorter than three characters are dropped.
func (a *Analyzer) ExtractKeywords(text string, n int) []string {
	counts := map[string]int{}
	for _, tok := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z')
	}) {
		if len(tok) <= 2 || stopwords[tok] {
			continue
		}
		counts[tok]++
	}

	keywords := make([]string, 0, len(counts))
	for tok := range counts {
		keywords = append(keywords, tok)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if counts[keywords[i]] != counts[keywords[j]] {
			return counts[keywords[i]] > counts[keywords[j]]
		}
		return keywords[i] < keywords[j]
	})

	if len(keywords) > n {
		keywords = keywords[:n]
	}
	return keywords
}

// CategoryTrend summarizes activity within a category: article count, top
// keywords, daily counts and the average priority score.
func (a *Analyzer) CategoryTrend(articles []news.Article, cat news.Category) trend.CategoryTrend {
	var (
		matched  []news.Article
		text     strings.Builder
		byDay    = map[string]int{}
		sumScore float64
	)

	for _, art := range articles {
		if art.PrimaryCategory != cat {
			continue
		}
		matched = append(matched, art)
		text.WriteString(art.Title)
		text.WriteString(" ")
		text.WriteString(art.Content)
		text.WriteString(" ")
		sumScore += art.PriorityScore
		if !art.PublishedAt.IsZero() {
			byDay[art.PublishedAt.Format("2006-01-02")]++
		}
	}

	avg := 0.0
	if len(matched) > 0 {
		avg = sumScore / float64(len(matched))
	}

	return trend.CategoryTrend{
		Category:             cat,
		ArticleCount:         len(matched),
		Keywords:             a.ExtractKeywords(text.String(), 20),
		ArticleCountsByDay:   byDay,
		AveragePriorityScore: avg,
	}
}

// AllCategoryTrends summarizes every concrete category.
func (a *Analyzer) AllCategoryTrends(articles []news.Article) []trend.CategoryTrend {
	out := make([]trend.CategoryTrend, 0, len(news.Categories()))
	for _, cat := range news.Categories() {
		out = append(out, a.CategoryTrend(articles, cat))
	}
	return out
}

// TimeSeries buckets articles by day over the trailing window ending at now.
// Every day in the range gets a point, zero-filled when nothing was
// published, so the chart axis stays continuous.
func (a *Analyzer) TimeSeries(articles []news.Article, days int, now time.Time) trend.TimeSeries {
	if days <= 0 {
		days = 30
	}
	end := now.Truncate(24 * time.Hour)
	start := end.AddDate(0, 0, -days)

	series := make(trend.TimeSeries, 0, days+1)
	index := map[string]int{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		index[d.Format("2006-01-02")] = len(series)
		series = append(series, trend.SeriesPoint{
			Date:   d,
			Counts: map[news.Category]int{},
		})
	}

	for _, art := range articles {
		if art.PublishedAt.IsZero() {
			continue
		}
		i, ok := index[art.PublishedAt.Format("2006-01-02")]
		if !ok {
			continue
		}
		series[i].Counts[art.PrimaryCategory]++
		series[i].Total++
	}

	return series
}
