// internal/service/analysis/stopwords.go

package analysis

// English stopwords excluded from keyword extraction.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "any": true, "can": true,
	"had": true, "her": true, "was": true, "one": true, "our": true,
	"out": true, "has": true, "have": true, "him": true, "his": true,
	"how": true, "man": true, "new": true, "now": true, "old": true,
	"see": true, "two": true, "way": true, "who": true, "its": true,
	"did": true, "get": true, "may": true, "say": true, "she": true,
	"use": true, "that": true, "this": true, "with": true, "from": true,
	"they": true, "been": true, "more": true, "when": true, "will": true,
	"would": true, "there": true, "their": true, "what": true, "about": true,
	"which": true, "were": true, "into": true, "than": true, "them": true,
	"then": true, "some": true, "could": true, "other": true, "these": true,
	"also": true, "after": true, "over": true, "such": true, "only": true,
	"most": true, "made": true, "many": true, "between": true, "both": true,
	"being": true, "because": true, "before": true, "while": true,
	"where": true, "those": true, "said": true, "each": true, "during": true,
	"under": true, "through": true, "against": true, "since": true,
	"amid": true, "across": true, "among": true, "within": true, "today": true,
	"says": true, "still": true, "very": true, "much": true, "just": true,
	"like": true, "year": true, "years": true, "week": true, "month": true,
}
