package sentiment

import "github.com/pscheid92/historymap/internal/domain"

// Aggregate combines per-entry distributions into a single distribution
// for a region and year. Components are summed across all inputs and the
// sums divided by the grand total of all four sums (not by input count).
//
// An empty input yields the canonical neutral distribution. A grand total
// of zero can only happen with all-zero inputs; dividing by 1 in that case
// is the intended degenerate fallback and leaves the all-zero result.
func Aggregate(distributions []domain.EmotionDistribution) domain.EmotionDistribution {
	if len(distributions) == 0 {
		return domain.NeutralDistribution()
	}

	var agg domain.EmotionDistribution
	for _, d := range distributions {
		agg.Fear += d.Fear
		agg.Joy += d.Joy
		agg.Neutral += d.Neutral
		agg.Sadness += d.Sadness
	}

	total := agg.Sum()
	if total == 0 {
		total = 1
	}

	agg.Fear /= total
	agg.Joy /= total
	agg.Neutral /= total
	agg.Sadness /= total

	return agg
}
