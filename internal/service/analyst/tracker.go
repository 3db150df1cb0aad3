// internal/service/analyst/tracker.go

// Package analyst tracks a fixed set of macro commentators and collects
// their commentary, from Twitter when configured and from the seed
// generator otherwise.
package analyst

import (
	"context"
	"fmt"
	"time"

	"newsdash/internal/domain/news"
)

// Analyst describes a tracked commentator.
type Analyst struct {
	ID           string
	Name         string
	Organization string
	Handle       string
	Expertise    []string
	Sources      []string
}

// Registry returns the tracked analysts. The set is fixed; the dashboard's
// analyst panel is not user-configurable.
func Registry() []Analyst {
	return []Analyst{
		{
			ID:           "ray_dalio",
			Name:         "Ray Dalio",
			Organization: "Bridgewater Associates",
			Handle:       "RayDalio",
			Expertise:    []string{"macroeconomics", "investment strategy", "global markets"},
			Sources:      []string{"twitter", "articles", "books"},
		},
		{
			ID:           "mohamed_el_erian",
			Name:         "Mohamed El-Erian",
			Organization: "Allianz",
			Handle:       "elerianm",
			Expertise:    []string{"central banking", "emerging markets", "global economics"},
			Sources:      []string{"twitter", "articles", "interviews"},
		},
		{
			ID:           "nouriel_roubini",
			Name:         "Nouriel Roubini",
			Organization: "Roubini Macro Associates",
			Handle:       "Nouriel",
			Expertise:    []string{"global economics", "financial crises", "risk analysis"},
			Sources:      []string{"twitter", "articles", "academic papers"},
		},
		{
			ID:           "larry_summers",
			Name:         "Lawrence Summers",
			Organization: "Harvard University",
			Handle:       "LHSummers",
			Expertise:    []string{"fiscal policy", "monetary policy", "economic history"},
			Sources:      []string{"twitter", "articles", "interviews"},
		},
		{
			ID:           "janet_yellen",
			Name:         "Janet Yellen",
			Organization: "U.S. Treasury",
			Handle:       "SecYellen",
			Expertise:    []string{"monetary policy", "labor economics", "public policy"},
			Sources:      []string{"speeches", "articles", "interviews"},
		},
	}
}

// Lookup returns an analyst by ID.
func Lookup(id string) (Analyst, bool) {
	for _, a := range Registry() {
		if a.ID == id {
			return a, true
		}
	}
	return Analyst{}, false
}

// CommentarySource fetches raw commentary for one analyst.
type CommentarySource interface {
	Commentary(ctx context.Context, a Analyst, limit int) ([]news.Quote, error)
}

// Tracker collects commentary from all tracked analysts.
type Tracker struct {
	source CommentarySource
}

// NewTracker creates a tracker backed by the given source.
func NewTracker(source CommentarySource) *Tracker {
	return &Tracker{source: source}
}

// Collect gathers commentary for every tracked analyst. A failing analyst is
// skipped rather than failing the whole collection pass.
func (t *Tracker) Collect(ctx context.Context, perAnalyst int) ([]news.Quote, error) {
	var out []news.Quote
	var firstErr error
	for _, a := range Registry() {
		quotes, err := t.source.Commentary(ctx, a, perAnalyst)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("collecting commentary for %s: %w", a.ID, err)
			}
			continue
		}
		out = append(out, quotes...)
	}
	if len(out) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// seedStatements holds the deterministic fallback commentary per category,
// used when no Twitter credentials are configured.
var seedStatements = map[news.Category][]string{
	news.CategoryInternal: {
		"rising wealth inequality is creating social tensions",
		"political polarization is reaching dangerous levels",
		"social unrest could impact markets in the coming months",
		"domestic policy disputes are creating economic uncertainty",
		"civil unrest is a growing concern for investors",
	},
	news.CategoryExternal: {
		"trade tensions between major economies are escalating",
		"geopolitical risks are increasing in several regions",
		"currency wars could be the next phase of global competition",
		"international alliances are being tested by economic pressures",
		"resource competition is driving international conflicts",
	},
	news.CategoryEconomic: {
		"inflation pressures are building in the economy",
		"central banks may be losing control of monetary policy",
		"debt levels are unsustainable in many advanced economies",
		"interest rate trends suggest a major shift in monetary policy",
		"productivity growth remains a challenge for developed economies",
	},
}

// SeedSource generates deterministic commentary, cycling through the
// category statements. Clock anchors the quote dates.
type SeedSource struct {
	Clock func() time.Time
}

// NewSeedSource creates a seed source using the wall clock.
func NewSeedSource() *SeedSource {
	return &SeedSource{Clock: time.Now}
}

// Commentary generates limit quotes for the analyst, spaced three days
// apart, rotating through categories so every panel has data.
func (s *SeedSource) Commentary(_ context.Context, a Analyst, limit int) ([]news.Quote, error) {
	if limit <= 0 {
		limit = 5
	}
	cats := news.Categories()
	now := s.Clock()

	out := make([]news.Quote, 0, limit)
	for i := 0; i < limit; i++ {
		cat := cats[i%len(cats)]
		statements := seedStatements[cat]
		statement := statements[i%len(statements)]
		out = append(out, news.Quote{
			ID:           fmt.Sprintf("%s_%d", a.ID, i),
			AnalystID:    a.ID,
			AnalystName:  a.Name,
			Organization: a.Organization,
			Content:      fmt.Sprintf("%s states: %q", a.Name, statement),
			Date:         now.AddDate(0, 0, -i*3),
			Source:       a.Sources[i%len(a.Sources)],
			URL:          fmt.Sprintf("https://example.com/analysts/%s/statements/%d", a.ID, i),
		})
	}
	return out, nil
}
