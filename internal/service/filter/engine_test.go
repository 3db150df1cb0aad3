package filter

import (
	"testing"
	"time"

	"newsdash/internal/domain/geo"
	"newsdash/internal/domain/news"
	"newsdash/internal/domain/trend"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func article(id string, score float64, primary, secondary news.Category) news.Article {
	return news.Article{
		ID:                id,
		Title:             "article " + id,
		PublishedAt:       testNow.Add(-2 * time.Hour),
		PrimaryCategory:   primary,
		SecondaryCategory: secondary,
		PriorityScore:     score,
	}
}

func TestApplyRanksByPriorityDescending(t *testing.T) {
	items := []news.Article{
		article("2", 78.2, news.CategoryInternal, ""),
		article("1", 85.5, news.CategoryExternal, ""),
	}

	got := Apply(news.DefaultCriteria(), items, 10, testNow)

	if len(got) != 2 {
		t.Fatalf("expected 2 results, got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "2" {
		t.Errorf("expected order [1 2], got [%s %s]", got[0].ID, got[1].ID)
	}
}

func TestApplyCategoryFilter(t *testing.T) {
	items := []news.Article{
		article("1", 85.5, news.CategoryExternal, ""),
		article("2", 78.2, news.CategoryInternal, ""),
	}

	c := news.DefaultCriteria().WithCategory(news.CategoryInternal)
	got := Apply(c, items, 10, testNow)

	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected only article 2, got %v", got)
	}
}

func TestApplyCategoryUnionMatch(t *testing.T) {
	items := []news.Article{
		article("1", 60, news.CategoryExternal, news.CategoryEconomic),
	}

	c := news.DefaultCriteria().WithCategory(news.CategoryEconomic)
	got := Apply(c, items, 10, testNow)

	if len(got) != 1 {
		t.Fatalf("secondary category should match the filter, got %d results", len(got))
	}
}

func TestApplyAllIsSupersetOfAnyCategory(t *testing.T) {
	items := []news.Article{
		article("1", 90, news.CategoryExternal, ""),
		article("2", 80, news.CategoryInternal, ""),
		article("3", 70, news.CategoryEconomic, news.CategoryInternal),
	}

	all := Apply(news.DefaultCriteria(), items, 0, testNow)
	inAll := make(map[string]bool, len(all))
	for _, a := range all {
		inAll[a.ID] = true
	}

	for _, cat := range news.Categories() {
		sub := Apply(news.DefaultCriteria().WithCategory(cat), items, 0, testNow)
		for _, a := range sub {
			if !inAll[a.ID] {
				t.Errorf("category %s returned %s which is missing from the all result", cat, a.ID)
			}
		}
	}
}

func TestApplySearchCaseInsensitiveSubstring(t *testing.T) {
	items := []news.Article{
		{ID: "1", Title: "New Tariffs Announced", PublishedAt: testNow, PriorityScore: 50},
		{ID: "2", Title: "Inflation Cools", PublishedAt: testNow, PriorityScore: 60},
	}

	c := news.DefaultCriteria()
	c.Query = "tariffs"
	got := Apply(c, items, 10, testNow)

	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected case-insensitive match on article 1, got %v", got)
	}
}

func TestApplySearchFallsBackToContent(t *testing.T) {
	items := []news.Article{
		{ID: "1", Content: "central bank raises interest rates", PublishedAt: testNow},
		{ID: "2", PublishedAt: testNow},
	}

	c := news.DefaultCriteria()
	c.Query = "interest"
	got := Apply(c, items, 10, testNow)

	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected content fallback match, got %v", got)
	}
}

func TestApplySearchMatchesAnalystName(t *testing.T) {
	quotes := []news.Quote{
		{ID: "1", AnalystName: "Ray Dalio", Organization: "Bridgewater Associates", Content: "debt cycles", Date: testNow},
		{ID: "2", AnalystName: "Mohamed El-Erian", Content: "policy shift", Date: testNow},
	}

	c := news.DefaultCriteria()
	c.Query = "bridgewater"
	got := Apply(c, quotes, 10, testNow)

	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected organization match, got %v", got)
	}
}

func TestApplyDateWindowRelative(t *testing.T) {
	items := []news.Article{
		{ID: "recent", PublishedAt: testNow.AddDate(0, 0, -2), PriorityScore: 10},
		{ID: "old", PublishedAt: testNow.AddDate(0, 0, -20), PriorityScore: 90},
		{ID: "undated", PriorityScore: 5},
	}

	got := Apply(news.DefaultCriteria(), items, 10, testNow) // 7d default

	if len(got) != 2 {
		t.Fatalf("expected recent and undated items, got %d", len(got))
	}
	for _, a := range got {
		if a.ID == "old" {
			t.Errorf("item outside the 7d window should be excluded")
		}
	}
}

func TestApplyCustomRangeInclusiveBounds(t *testing.T) {
	c := news.DefaultCriteria()
	c.DateRange = news.RangeCustom
	c.StartDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	c.EndDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	items := []news.Article{
		{ID: "on-start", PublishedAt: c.StartDate},
		{ID: "on-end", PublishedAt: c.EndDate},
		{ID: "before", PublishedAt: c.StartDate.Add(-time.Second)},
		{ID: "after", PublishedAt: c.EndDate.Add(time.Second)},
	}

	got := Apply(c, items, 10, testNow)
	if len(got) != 2 {
		t.Fatalf("expected inclusive bounds to keep 2 items, got %d", len(got))
	}
}

func TestApplyCustomRangeInvertedBoundsFiltersNothing(t *testing.T) {
	c := news.DefaultCriteria()
	c.DateRange = news.RangeCustom
	c.StartDate = time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	c.EndDate = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	items := []news.Article{
		{ID: "1", PublishedAt: testNow.AddDate(-1, 0, 0)},
		{ID: "2", PublishedAt: testNow},
	}

	if got := Apply(c, items, 10, testNow); len(got) != 2 {
		t.Fatalf("inverted custom bounds must apply no date constraint, got %d results", len(got))
	}
}

func TestApplyRankingStability(t *testing.T) {
	items := []news.Article{
		article("a", 50, news.CategoryInternal, ""),
		article("b", 50, news.CategoryInternal, ""),
		article("c", 50, news.CategoryInternal, ""),
	}

	got := Apply(news.DefaultCriteria(), items, 10, testNow)
	want := []string{"a", "b", "c"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("equal scores must keep input order, got %s at %d", got[i].ID, i)
		}
	}
}

func TestApplyLimit(t *testing.T) {
	var items []news.Article
	for i := 0; i < 25; i++ {
		items = append(items, article(string(rune('a'+i)), float64(i), news.CategoryInternal, ""))
	}

	if got := Apply(news.DefaultCriteria(), items, DefaultArticleLimit, testNow); len(got) != DefaultArticleLimit {
		t.Errorf("expected %d results, got %d", DefaultArticleLimit, len(got))
	}
	if got := Apply(news.DefaultCriteria(), items, 0, testNow); len(got) != len(items) {
		t.Errorf("limit 0 means unlimited, got %d", len(got))
	}
}

func TestApplyIdempotent(t *testing.T) {
	items := []news.Article{
		article("1", 85.5, news.CategoryExternal, ""),
		article("2", 78.2, news.CategoryInternal, ""),
		article("3", 90.1, news.CategoryEconomic, ""),
	}

	c := news.DefaultCriteria()
	once := Apply(c, items, 10, testNow)
	twice := Apply(c, once, 10, testNow)

	if len(once) != len(twice) {
		t.Fatalf("second pass changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("second pass changed order at %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	items := []news.Article{
		article("low", 10, news.CategoryInternal, ""),
		article("high", 99, news.CategoryInternal, ""),
	}

	Apply(news.DefaultCriteria(), items, 10, testNow)

	if items[0].ID != "low" || items[1].ID != "high" {
		t.Error("input slice was reordered")
	}
}

func TestApplyRegionThreshold(t *testing.T) {
	center, ok := geo.RegionCenter(news.RegionUS)
	if !ok {
		t.Fatal("missing us region center")
	}

	spots := []geo.Hotspot{
		{ID: "at-center", Location: center, Intensity: 80, UpdatedAt: testNow, PriorityScore: 80},
		{ID: "far", Location: geo.Location{Latitude: center.Latitude + 60, Longitude: center.Longitude}, Intensity: 90, UpdatedAt: testNow, PriorityScore: 90},
	}

	c := news.DefaultCriteria().WithRegion(news.RegionUS)
	got := Apply(c, spots, 10, testNow)

	if len(got) != 1 || got[0].ID != "at-center" {
		t.Fatalf("expected only the in-region hotspot, got %v", got)
	}
}

func TestApplyRegionIgnoredForArticles(t *testing.T) {
	items := []news.Article{article("1", 50, news.CategoryInternal, "")}

	c := news.DefaultCriteria().WithRegion(news.RegionAsia)
	if got := Apply(c, items, 10, testNow); len(got) != 1 {
		t.Error("region filter must not apply to non-locatable items")
	}
}

func TestWindowSeriesLastNSamples(t *testing.T) {
	var series trend.TimeSeries
	for i := 0; i < 40; i++ {
		series = append(series, trend.SeriesPoint{Date: testNow.AddDate(0, 0, i-40)})
	}

	got := WindowSeries(series, news.Range7D, time.Time{}, time.Time{})
	if len(got) != 7 {
		t.Fatalf("expected last 7 samples, got %d", len(got))
	}
	if !got[6].Date.Equal(series[39].Date) {
		t.Error("window must end at the last sample")
	}
}

func TestWindowSeriesClampsToStart(t *testing.T) {
	series := trend.TimeSeries{
		{Date: testNow.AddDate(0, 0, -2)},
		{Date: testNow.AddDate(0, 0, -1)},
		{Date: testNow},
	}

	if got := WindowSeries(series, news.Range30D, time.Time{}, time.Time{}); len(got) != 3 {
		t.Errorf("window larger than the series must clamp to index 0, got %d", len(got))
	}
}

func TestWindowSeriesCustomBounds(t *testing.T) {
	series := trend.TimeSeries{
		{Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)},
		{Date: time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)},
	}

	got := WindowSeries(series, news.RangeCustom,
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC))

	if len(got) != 1 || !got[0].Date.Equal(series[1].Date) {
		t.Fatalf("expected only the middle point, got %v", got)
	}
}
