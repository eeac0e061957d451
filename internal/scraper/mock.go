package scraper

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/pscheid92/historymap/internal/domain"
)

// maxMockEntries caps how many entries a mock generation run returns.
const maxMockEntries = 10

var defaultTexts = []string{
	"Сегодня был тяжелый день. Война продолжает забирать наших близких.",
	"Получил письмо с фронта от брата. Он жив, но ранен.",
	"Хлеба не хватает. Стоим в очередях с утра до вечера.",
	"Великая победа нашего народа! Враг отступает!",
	"Зима выдалась суровой, но мы держимся.",
	"Работаем на заводе по 12 часов. Все для фронта!",
	"Пришла похоронка на соседа. Трагедия.",
	"Родился сын! Назвали его Владимиром.",
	"Город в руинах, но мы восстанавливаем.",
	"Получили медали за труд. Гордимся!",
}

var yearTexts = map[int][]string{
	1941: {
		"22 июня. Немцы бомбят наши города. Война!",
		"Мобилизация. Мужчин забирают на фронт.",
		"Паника в городе. Все пытаются эвакуироваться.",
	},
	1942: {
		"Блокада Ленинграда продолжается. Голод.",
		"Зима 1942 года стала самым трудным временем.",
		"Работаем за еду. Хлеба дают по 250 грамм.",
	},
	1945: {
		"Победа! Конец войне!",
		"9 мая. День Победы! Слезы радости.",
		"Фашизм повержен. Мы выстояли!",
	},
}

// MockGenerator produces synthetic diary entries when the real source is
// unavailable. Output is randomized per call: shuffled text order,
// synthetic authors, dates and URLs. Callers must not expect idempotent
// results across calls.
type MockGenerator struct {
	baseURL string

	mu  sync.Mutex // guards rng, which is not goroutine-safe
	rng *rand.Rand
}

// NewMockGenerator creates a generator emitting URLs under baseURL.
// The generator owns its random source; seed it deterministically in
// tests for reproducible output.
func NewMockGenerator(baseURL string, seed int64) *MockGenerator {
	return &MockGenerator{baseURL: baseURL, rng: rand.New(rand.NewSource(seed))}
}

// Entries generates up to maxMockEntries synthetic entries for the year.
// Years with a dedicated pool (1941, 1942, 1945) use it; all other years
// share the default pool.
func (g *MockGenerator) Entries(region string, year int) []domain.DiaryEntry {
	g.mu.Lock()
	defer g.mu.Unlock()

	pool, ok := yearTexts[year]
	if !ok {
		pool = defaultTexts
	}

	texts := make([]string, len(pool))
	copy(texts, pool)
	g.rng.Shuffle(len(texts), func(i, j int) {
		texts[i], texts[j] = texts[j], texts[i]
	})

	if len(texts) > maxMockEntries {
		texts = texts[:maxMockEntries]
	}

	entries := make([]domain.DiaryEntry, 0, len(texts))
	for _, text := range texts {
		entries = append(entries, domain.DiaryEntry{
			Text:   text,
			Author: fmt.Sprintf("Автор %d", 1000+g.rng.Intn(9000)),
			Date:   fmt.Sprintf("%d.%d.%d", 1+g.rng.Intn(28), 1+g.rng.Intn(12), year),
			URL:    fmt.Sprintf("%s/n/%d", g.baseURL, 10000+g.rng.Intn(90000)),
		})
	}
	return entries
}
