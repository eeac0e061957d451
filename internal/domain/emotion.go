package domain

// EmotionDistribution holds normalized scores for the four emotion
// categories. A non-degenerate distribution sums to 1.0 within floating
// tolerance; when no signal is available the canonical neutral
// distribution {0, 0, 1, 0} is used instead.
type EmotionDistribution struct {
	Fear    float64 `json:"fear"`
	Joy     float64 `json:"joy"`
	Neutral float64 `json:"neutral"`
	Sadness float64 `json:"sadness"`
}

// NeutralDistribution returns the canonical all-neutral distribution.
func NeutralDistribution() EmotionDistribution {
	return EmotionDistribution{Neutral: 1}
}

// Sum returns the total of all four components.
func (d EmotionDistribution) Sum() float64 {
	return d.Fear + d.Joy + d.Neutral + d.Sadness
}
