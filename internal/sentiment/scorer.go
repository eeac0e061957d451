package sentiment

import (
	"strings"

	"github.com/pscheid92/historymap/internal/domain"
)

// Emotion keyword vocabularies. Matching is case-insensitive substring
// search; neutral has no vocabulary and is derived when nothing matches.
var (
	fearKeywords = []string{
		"страх", "боюсь", "пугаю", "ужас", "кошмар", "тревога", "боязнь",
		"испуг", "паника", "ужасный", "страшный", "драма", "катастрофа",
		"бомбят", "война", "обстрел", "raid", "опасность", "грозит",
	}
	joyKeywords = []string{
		"радость", "счастлив", "праздник", "победа", "торжество", "восторг",
		"любовь", "обожаю", "наслаждаюсь", "восхищение", "excelente",
		"чудесный", "прекрасный", "отличный", "хороший", "удача",
	}
	sadnessKeywords = []string{
		"грусть", "печаль", "оплакиваю", "скорбь", "сожаление", "тоска",
		"уныние", "меланхолия", "депрессия", "грустный", "печальный",
		"плачу", "слезы", "рыдаю", "горечь", "потеря", "смерть",
	}
)

// Scorer converts free text into an emotion distribution. It is pure and
// deterministic; construct one at startup and share it across requests.
type Scorer struct {
	fear    []string
	joy     []string
	sadness []string
}

func NewScorer() *Scorer {
	return &Scorer{fear: fearKeywords, joy: joyKeywords, sadness: sadnessKeywords}
}

// Score returns the emotion distribution for a single text. Empty or
// whitespace-only input, or input without a single keyword match, yields
// the canonical neutral distribution.
func (s *Scorer) Score(text string) domain.EmotionDistribution {
	if strings.TrimSpace(text) == "" {
		return domain.NeutralDistribution()
	}

	lower := strings.ToLower(text)
	fearCount := countMatches(lower, s.fear)
	joyCount := countMatches(lower, s.joy)
	sadnessCount := countMatches(lower, s.sadness)

	total := fearCount + joyCount + sadnessCount
	if total == 0 {
		return domain.NeutralDistribution()
	}

	dist := domain.EmotionDistribution{
		Fear:    float64(fearCount) / float64(total),
		Joy:     float64(joyCount) / float64(total),
		Neutral: 0,
		Sadness: float64(sadnessCount) / float64(total),
	}

	// Second normalization pass over the raw scores. Mathematically a
	// no-op, but kept so the exact floating-point results stay stable.
	if sum := dist.Sum(); sum > 0 {
		dist.Fear /= sum
		dist.Joy /= sum
		dist.Neutral /= sum
		dist.Sadness /= sum
	}

	return dist
}

// ScoreBatch scores multiple texts, preserving order.
func (s *Scorer) ScoreBatch(texts []string) []domain.EmotionDistribution {
	out := make([]domain.EmotionDistribution, len(texts))
	for i, text := range texts {
		out[i] = s.Score(text)
	}
	return out
}

// countMatches counts every occurrence of every keyword. Keywords are
// counted independently, so spans overlapping across keywords all count.
func countMatches(lowerText string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		n += strings.Count(lowerText, kw)
	}
	return n
}
