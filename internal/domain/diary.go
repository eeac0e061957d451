package domain

import "context"

// DiaryEntry is a single diary excerpt for a region and year.
// Entries are immutable once fetched. Date is kept as the free-form
// DD.MM.YYYY string the upstream uses; it is never parsed.
type DiaryEntry struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Date   string `json:"date"`
	URL    string `json:"url"`
}

// DiarySource supplies diary entries for a (region, year) pair.
// Implementations never fail: any upstream error is recovered internally
// (mock fallback), so callers only ever see a possibly-empty slice.
// Output on the fallback path is randomized and not idempotent across calls.
type DiarySource interface {
	Fetch(ctx context.Context, region string, year int, limit int) []DiaryEntry
}

// PopulationStats is a synthetic population estimate for a region and year.
type PopulationStats struct {
	Population    int     `json:"population"`
	ChangePercent float64 `json:"change_percent"`
	Year          int     `json:"year"`
}

// StatsSource supplies population statistics. Purely computational,
// never fails.
type StatsSource interface {
	Stats(region string, year int) PopulationStats
}
