// internal/adapter/storage/seed.go

package storage

import (
	"time"

	"newsdash/internal/domain/geo"
	"newsdash/internal/domain/news"
)

// seedArticles returns the sample article set used when no database is
// configured. Dates are relative to now so default date-range views always
// have content.
func seedArticles(now time.Time) []news.Article {
	return []news.Article{
		{
			ID:                "seed-1",
			Title:             "Global Trade Tensions Escalate as Major Economies Impose New Tariffs",
			Content:           "Trade tensions between the united states and china escalated today as both countries announced new tariffs on each other's goods, raising geopolitical risk across markets.",
			Source:            "Reuters",
			URL:               "https://example.com/articles/seed-1",
			PublishedAt:       now.Add(-4 * time.Hour),
			PrimaryCategory:   news.CategoryExternal,
			SecondaryCategory: news.CategoryEconomic,
			PriorityScore:     85.5,
			Keywords:          []string{"tariffs", "trade", "china"},
		},
		{
			ID:              "seed-2",
			Title:           "Protests Erupt in Major Cities Over Economic Inequality",
			Content:         "Thousands took to the streets protesting growing wealth inequality and political polarization, in a wave of social unrest across the united states.",
			Source:          "The New York Times",
			URL:             "https://example.com/articles/seed-2",
			PublishedAt:     now.Add(-9 * time.Hour),
			PrimaryCategory: news.CategoryInternal,
			PriorityScore:   78.2,
			Keywords:        []string{"protests", "inequality"},
		},
		{
			ID:                "seed-3",
			Title:             "Central Banks Signal Shift in Monetary Policy Amid Inflation Concerns",
			Content:           "The federal reserve and other central banks signaled a change in monetary policy as inflation pressures persist and recession risk grows in europe.",
			Source:            "Financial Times",
			URL:               "https://example.com/articles/seed-3",
			PublishedAt:       now.AddDate(0, 0, -1),
			PrimaryCategory:   news.CategoryEconomic,
			PriorityScore:     82.7,
			Keywords:          []string{"inflation", "monetary policy"},
		},
		{
			ID:                "seed-4",
			Title:             "Border Dispute Intensifies Between Regional Powers",
			Content:           "A long-running territorial dispute flared again this week, with military buildup reported on both sides and diplomatic crisis talks stalled in the middle east.",
			Source:            "BBC",
			URL:               "https://example.com/articles/seed-4",
			PublishedAt:       now.AddDate(0, 0, -2),
			PrimaryCategory:   news.CategoryExternal,
			PriorityScore:     74.9,
			Keywords:          []string{"border", "military"},
		},
		{
			ID:                "seed-5",
			Title:             "Culture War Disputes Dominate Election Season",
			Content:           "Identity politics and a widening political divide are reshaping domestic politics ahead of the vote, with political instability a rising concern.",
			Source:            "The Economist",
			URL:               "https://example.com/articles/seed-5",
			PublishedAt:       now.AddDate(0, 0, -3),
			PrimaryCategory:   news.CategoryInternal,
			SecondaryCategory: news.CategoryEconomic,
			PriorityScore:     66.4,
			Keywords:          []string{"election", "polarization"},
		},
		{
			ID:              "seed-6",
			Title:           "GDP Growth Slows as Consumer Spending Weakens",
			Content:         "New economic data shows gdp growth slowing and unemployment ticking up, stoking debate over fiscal policy responses in asia and beyond.",
			Source:          "Bloomberg",
			URL:             "https://example.com/articles/seed-6",
			PublishedAt:     now.AddDate(0, 0, -5),
			PrimaryCategory: news.CategoryEconomic,
			PriorityScore:   71.3,
			Keywords:        []string{"gdp", "spending"},
		},
		{
			ID:              "seed-7",
			Title:           "Currency War Fears Resurface After Surprise Devaluation",
			Content:         "Analysts warned of economic warfare as a surprise devaluation rekindled currency war fears and international sanction threats between global powers.",
			Source:          "CNBC",
			URL:             "https://example.com/articles/seed-7",
			PublishedAt:     now.AddDate(0, 0, -12),
			PrimaryCategory: news.CategoryExternal,
			PriorityScore:   69.8,
			Keywords:        []string{"currency", "devaluation"},
		},
		{
			ID:              "seed-8",
			Title:           "Debt Levels Reach Record Highs in Advanced Economies",
			Content:         "Sovereign debt levels hit records as the credit cycle turns, with economic indicators pointing to a difficult year for latin america and africa.",
			Source:          "The Wall Street Journal",
			URL:             "https://example.com/articles/seed-8",
			PublishedAt:     now.AddDate(0, 0, -25),
			PrimaryCategory: news.CategoryEconomic,
			PriorityScore:   64.1,
			Keywords:        []string{"debt", "credit cycle"},
		},
	}
}

// seedHotspots returns the sample conflict hotspot set for the map panel.
func seedHotspots(now time.Time) []geo.Hotspot {
	return []geo.Hotspot{
		{
			ID:              "hs-washington",
			Name:            "Washington, D.C.",
			Location:        geo.Location{Latitude: 38.9, Longitude: -77.0},
			Intensity:       62,
			PrimaryCategory: news.CategoryInternal,
			PriorityScore:   62,
			UpdatedAt:       now.Add(-3 * time.Hour),
		},
		{
			ID:                "hs-taiwan-strait",
			Name:              "Taiwan Strait",
			Location:          geo.Location{Latitude: 24.2, Longitude: 119.5},
			Intensity:         88,
			PrimaryCategory:   news.CategoryExternal,
			SecondaryCategory: news.CategoryEconomic,
			PriorityScore:     88,
			UpdatedAt:         now.Add(-1 * time.Hour),
		},
		{
			ID:              "hs-eastern-europe",
			Name:            "Eastern Europe",
			Location:        geo.Location{Latitude: 49.0, Longitude: 31.4},
			Intensity:       93,
			PrimaryCategory: news.CategoryExternal,
			PriorityScore:   93,
			UpdatedAt:       now.Add(-2 * time.Hour),
		},
		{
			ID:                "hs-persian-gulf",
			Name:              "Persian Gulf",
			Location:          geo.Location{Latitude: 26.9, Longitude: 51.5},
			Intensity:         76,
			PrimaryCategory:   news.CategoryExternal,
			SecondaryCategory: news.CategoryEconomic,
			PriorityScore:     76,
			UpdatedAt:         now.Add(-6 * time.Hour),
		},
		{
			ID:              "hs-buenos-aires",
			Name:            "Buenos Aires",
			Location:        geo.Location{Latitude: -34.6, Longitude: -58.4},
			Intensity:       54,
			PrimaryCategory: news.CategoryEconomic,
			PriorityScore:   54,
			UpdatedAt:       now.Add(-12 * time.Hour),
		},
		{
			ID:              "hs-paris",
			Name:            "Paris",
			Location:        geo.Location{Latitude: 48.9, Longitude: 2.4},
			Intensity:       48,
			PrimaryCategory: news.CategoryInternal,
			PriorityScore:   48,
			UpdatedAt:       now.Add(-8 * time.Hour),
		},
		{
			ID:              "hs-south-china-sea",
			Name:            "South China Sea",
			Location:        geo.Location{Latitude: 12.0, Longitude: 113.0},
			Intensity:       81,
			PrimaryCategory: news.CategoryExternal,
			PriorityScore:   81,
			UpdatedAt:       now.Add(-5 * time.Hour),
		},
	}
}
