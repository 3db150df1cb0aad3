// internal/service/classify/keywords.go

package classify

import "newsdash/internal/domain/news"

// Keyword lists driving the category classifier. Single words match as
// prefixes ("tariff" also hits "tariffs"), phrases match whole.
var categoryKeywords = map[news.Category][]string{
	news.CategoryInternal: {
		"civil unrest", "protest", "domestic policy", "wealth inequality",
		"political polarization", "social tension", "class struggle",
		"income gap", "wealth gap", "social divide", "domestic conflict",
		"internal struggle", "civil disobedience", "political divide",
		"social unrest", "populism", "nationalism", "domestic politics",
		"culture war", "identity politics", "political instability",
	},
	news.CategoryExternal: {
		"international tension", "tariff", "trade war", "border dispute",
		"geopolitical risk", "military conflict", "diplomatic crisis",
		"foreign policy", "international relation", "global competition",
		"economic warfare", "currency war", "territorial dispute",
		"international sanction", "global power", "superpower competition",
		"military buildup", "alliance", "proxy war", "cold war",
		"international order", "global governance",
	},
	news.CategoryEconomic: {
		"interest rate", "inflation", "gdp", "unemployment", "debt level",
		"monetary policy", "fiscal policy", "central bank", "federal reserve",
		"economic growth", "recession", "economic cycle", "market crash",
		"financial crisis", "credit cycle", "debt cycle", "productivity",
		"economic output", "consumer spending", "business investment",
		"economic indicator", "economic data", "economic report",
	},
}
