package scraper

import (
	"math/rand"
	"sync"

	"github.com/pscheid92/historymap/internal/domain"
)

// PopulationSource implements domain.StatsSource with synthetic
// estimates shaped by historical decade trends. Purely computational,
// never fails.
type PopulationSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ domain.StatsSource = (*PopulationSource)(nil)

// NewPopulationSource creates a source owning its own random source,
// so draws never contend with other components.
func NewPopulationSource(seed int64) *PopulationSource {
	return &PopulationSource{rng: rand.New(rand.NewSource(seed))}
}

// Stats draws a base population in [100000, 5000000] and a change
// percentage from a range keyed by year bucket. The war bucket is
// checked first so 1941-1945 always reflects wartime losses; 1930 falls
// into the growth bucket because the buckets are evaluated in order.
func (p *PopulationSource) Stats(region string, year int) domain.PopulationStats {
	p.mu.Lock()
	defer p.mu.Unlock()

	base := 100000 + p.rng.Intn(4900001)

	var changePercent float64
	switch {
	case year >= 1941 && year <= 1945:
		changePercent = -30 + p.rng.Float64()*25
	case year >= 1920 && year <= 1930:
		changePercent = 2 + p.rng.Float64()*3
	case year >= 1930 && year <= 1940:
		changePercent = 1 + p.rng.Float64()*7
	default:
		changePercent = -1 + p.rng.Float64()*4
	}

	population := int(float64(base) * (1 + changePercent/100*float64(year-1920)/10))

	return domain.PopulationStats{
		Population:    population,
		ChangePercent: changePercent,
		Year:          year,
	}
}
