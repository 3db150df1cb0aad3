// internal/service/classify/score.go

package classify

import (
	"regexp"
	"strings"
	"time"

	"newsdash/internal/domain/news"
)

// Weighting of the priority score components.
const (
	weightCredibility = 0.30
	weightRecency     = 0.25
	weightRelevance   = 0.30
	weightGeographic  = 0.15
)

// sourceCredibility scores known outlets; anything unrecognized gets the
// Unknown score.
var sourceCredibility = map[string]float64{
	"the wall street journal": 90,
	"financial times":         90,
	"bloomberg":               85,
	"reuters":                 85,
	"the economist":           85,
	"the new york times":      80,
	"bbc":                     80,
	"cnbc":                    75,
	"twitter":                 50,
}

const unknownCredibility = 40

// regionImportance scores mentions of geopolitically significant regions.
var regionImportance = map[string]float64{
	"global": 100, "worldwide": 100,
	"international": 90, "united states": 90, "us": 90, "china": 90,
	"europe": 85, "european union": 85, "eu": 85,
	"russia": 80, "japan": 80, "india": 80,
	"uk": 75, "united kingdom": 75, "germany": 75, "france": 75,
	"middle east": 75, "asia": 75,
	"brazil": 70, "canada": 70, "australia": 70,
	"latin america": 70, "africa": 70,
}

// PriorityScore computes the 0-100 ranking score for an article from its
// classification and metadata: source credibility, recency, keyword
// relevance and geographic importance, weighted.
func (c *Classifier) PriorityScore(a news.Article, cl news.Classification, now time.Time) float64 {
	total := 0
	for _, n := range cl.MatchCounts {
		total += n
	}
	relevance := float64(total)
	if relevance > 10 {
		relevance = 10
	}
	relevance = relevance / 10 * 100

	return sourceScore(a.Source)*weightCredibility +
		recencyScore(a.PublishedAt, now)*weightRecency +
		relevance*weightRelevance +
		geographicScore(a.Content)*weightGeographic
}

func sourceScore(source string) float64 {
	s := strings.ToLower(source)
	for known, score := range sourceCredibility {
		if strings.Contains(s, known) {
			return score
		}
	}
	return unknownCredibility
}

// recencyScore buckets the age of the article. Unknown dates score the
// midpoint rather than sinking the item.
func recencyScore(published time.Time, now time.Time) float64 {
	if published.IsZero() {
		return 50
	}
	days := int(now.Sub(published).Hours() / 24)
	switch {
	case days <= 1:
		return 100
	case days <= 3:
		return 90
	case days <= 7:
		return 80
	case days <= 14:
		return 70
	case days <= 30:
		return 60
	case days <= 90:
		return 40
	case days <= 180:
		return 30
	case days <= 365:
		return 20
	default:
		return 10
	}
}

var wordBoundaryCache = map[string]*regexp.Regexp{}

func init() {
	for region := range regionImportance {
		wordBoundaryCache[region] = regexp.MustCompile(`\b` + regexp.QuoteMeta(region) + `\b`)
	}
}

func geographicScore(content string) float64 {
	text := strings.ToLower(content)
	max := 0.0
	for region, score := range regionImportance {
		if score <= max {
			continue
		}
		if wordBoundaryCache[region].MatchString(text) {
			max = score
		}
	}
	if max == 0 {
		return 50
	}
	return max
}
