// internal/service/classify/classifier.go

// Package classify assigns conflict-framework categories and priority scores
// to collected content using keyword matching.
package classify

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"newsdash/internal/domain/news"
)

// Classifier matches text against the category keyword lists.
type Classifier struct {
	patterns map[news.Category][]*regexp.Regexp
}

// NewClassifier compiles the keyword patterns.
func NewClassifier() *Classifier {
	patterns := make(map[news.Category][]*regexp.Regexp, len(categoryKeywords))
	for cat, keywords := range categoryKeywords {
		compiled := make([]*regexp.Regexp, 0, len(keywords))
		for _, kw := range keywords {
			var expr string
			if strings.Contains(kw, " ") {
				expr = `\b` + regexp.QuoteMeta(kw) + `\b`
			} else {
				// Prefix match so "tariff" also counts "tariffs".
				expr = `\b` + regexp.QuoteMeta(kw) + `[a-z]*\b`
			}
			compiled = append(compiled, regexp.MustCompile(expr))
		}
		patterns[cat] = compiled
	}
	return &Classifier{patterns: patterns}
}

// Classify scores the text against each category and picks the primary and
// secondary categories. Text with no keyword hits is uncategorized.
func (c *Classifier) Classify(text string) news.Classification {
	text = strings.ToLower(text)

	counts := make(map[news.Category]int, len(c.patterns))
	total := 0
	for cat, patterns := range c.patterns {
		n := 0
		for _, p := range patterns {
			n += len(p.FindAllStringIndex(text, -1))
		}
		counts[cat] = n
		total += n
	}

	scores := make(map[news.Category]float64, len(counts))
	for cat, n := range counts {
		if total > 0 {
			scores[cat] = float64(n) / float64(total) * 100
		} else {
			scores[cat] = 0
		}
	}

	ranked := make([]news.Category, 0, len(scores))
	for cat := range scores {
		ranked = append(ranked, cat)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if scores[ranked[i]] != scores[ranked[j]] {
			return scores[ranked[i]] > scores[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	primary := news.CategoryNone
	if scores[ranked[0]] > 0 {
		primary = ranked[0]
	}
	secondary := news.Category("")
	if len(ranked) > 1 && scores[ranked[1]] > 0 {
		secondary = ranked[1]
	}

	return news.Classification{
		PrimaryCategory:   primary,
		SecondaryCategory: secondary,
		Scores:            scores,
		MatchCounts:       counts,
		RelevantSentences: c.relevantSentences(text),
	}
}

// relevantSentences collects, per category, the sentences containing at
// least one keyword hit. Feeds the trend analyzer's keyword extraction.
func (c *Classifier) relevantSentences(text string) map[news.Category][]string {
	sentences := splitSentences(text)
	out := make(map[news.Category][]string, len(c.patterns))
	for cat, patterns := range c.patterns {
		for _, sentence := range sentences {
			for _, p := range patterns {
				if p.MatchString(sentence) {
					out[cat] = append(out[cat], sentence)
					break
				}
			}
		}
	}
	return out
}

// ClassifyArticle classifies title+content and fills the article's category
// and priority fields.
func (c *Classifier) ClassifyArticle(a news.Article, now time.Time) (news.Article, news.Classification) {
	cl := c.Classify(a.Title + " " + a.Content)
	a.PrimaryCategory = cl.PrimaryCategory
	a.SecondaryCategory = cl.SecondaryCategory
	a.PriorityScore = c.PriorityScore(a, cl, now)
	return a, cl
}

// ClassifyQuote classifies analyst commentary. Quotes rank on classification
// confidence and recency only; there is no source outlet to weight.
func (c *Classifier) ClassifyQuote(q news.Quote, now time.Time) news.Quote {
	cl := c.Classify(q.Content)
	q.PrimaryCategory = cl.PrimaryCategory
	q.SecondaryCategory = cl.SecondaryCategory

	best := 0.0
	for _, s := range cl.Scores {
		if s > best {
			best = s
		}
	}
	q.PriorityScore = best*0.6 + recencyScore(q.Date, now)*0.4
	return q
}

var sentenceEnd = regexp.MustCompile(`[.!?]+\s+`)

func splitSentences(text string) []string {
	parts := sentenceEnd.Split(text, -1)
	out := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
