package scraper

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPopulationSource_ChangePercentBuckets(t *testing.T) {
	src := NewPopulationSource(3)

	cases := []struct {
		year     int
		min, max float64
	}{
		{1941, -30, -5},
		{1943, -30, -5},
		{1945, -30, -5},
		{1920, 2, 5},
		{1930, 2, 5}, // the growth bucket wins for 1930
		{1931, 1, 8},
		{1940, 1, 8},
		{1991, -1, 3},
	}

	for _, tc := range cases {
		for i := 0; i < 50; i++ {
			stats := src.Stats("Москва", tc.year)
			assert.GreaterOrEqual(t, stats.ChangePercent, tc.min, "year %d", tc.year)
			assert.LessOrEqual(t, stats.ChangePercent, tc.max, "year %d", tc.year)
			assert.Equal(t, tc.year, stats.Year)
		}
	}
}

func TestPopulationSource_PopulationNonNegative(t *testing.T) {
	src := NewPopulationSource(3)

	for year := 1920; year <= 1991; year++ {
		stats := src.Stats("Москва", year)
		assert.GreaterOrEqual(t, stats.Population, 0, "year %d", year)
	}
}

func TestMockAndStatsConcurrentDraws(t *testing.T) {
	mock := NewMockGenerator("https://prozhito.org", 7)
	stats := NewPopulationSource(3)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		year := 1941 + i%5
		wg.Add(2)
		go func() {
			defer wg.Done()
			entries := mock.Entries("Москва", year)
			assert.NotEmpty(t, entries)
		}()
		go func() {
			defer wg.Done()
			s := stats.Stats("Москва", year)
			assert.Equal(t, year, s.Year)
		}()
	}
	wg.Wait()
}
