package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/historymap/internal/domain"
	"github.com/pscheid92/historymap/internal/metrics"
	"github.com/pscheid92/historymap/internal/sentiment"
)

// defaultFetchLimit is how many diary entries a refresh requests.
const defaultFetchLimit = 20

// Cache resolves (year, region) keys against the record store,
// refreshing stale or absent entries through the scrape-and-score
// pipeline. Construct once at startup and share across requests.
type Cache struct {
	store      domain.RecordStore
	diaries    domain.DiarySource
	stats      domain.StatsSource
	scorer     *sentiment.Scorer
	clock      clockwork.Clock
	ttl        time.Duration
	fetchLimit int
}

var _ domain.RegionResolver = (*Cache)(nil)

func New(store domain.RecordStore, diaries domain.DiarySource, stats domain.StatsSource, scorer *sentiment.Scorer, clock clockwork.Clock, ttl time.Duration) *Cache {
	return &Cache{
		store:      store,
		diaries:    diaries,
		stats:      stats,
		scorer:     scorer,
		clock:      clock,
		ttl:        ttl,
		fetchLimit: defaultFetchLimit,
	}
}

// Resolve returns the record for (year, region.Name). A record younger
// than the TTL is returned unchanged with no side effects. Otherwise the
// refresh pipeline runs and its result replaces the stored record in a
// single upsert. A refresh that yields zero entries never overwrites an
// existing record: stale-but-present beats empty-and-fresh. With neither
// prior record nor entries, a placeholder is returned without being
// persisted.
func (c *Cache) Resolve(ctx context.Context, year int, region domain.Region) (*domain.RegionRecord, error) {
	prior, err := c.store.Get(ctx, year, region.Name)
	if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
		return nil, err
	}

	now := c.clock.Now().UTC()
	if prior != nil && now.Sub(prior.UpdatedAt) < c.ttl {
		metrics.CacheLookups.WithLabelValues("hit").Inc()
		return prior, nil
	}

	if prior == nil {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
	} else {
		metrics.CacheLookups.WithLabelValues("stale").Inc()
	}

	return c.refresh(ctx, year, region, prior, now)
}

func (c *Cache) refresh(ctx context.Context, year int, region domain.Region, prior *domain.RegionRecord, now time.Time) (*domain.RegionRecord, error) {
	timer := prometheus.NewTimer(metrics.RefreshDuration)
	defer timer.ObserveDuration()

	entries := c.diaries.Fetch(ctx, region.Name, year, c.fetchLimit)
	if len(entries) == 0 {
		metrics.EmptyRefreshes.Inc()
		if prior != nil {
			// Keep serving the stale record rather than erasing it
			// with an empty refresh.
			return prior, nil
		}
		slog.Debug("No diary entries available", "region", region.Name, "year", year)
		return c.placeholder(year, region, now), nil
	}

	texts := make([]string, len(entries))
	for i, entry := range entries {
		texts[i] = entry.Text
	}
	emotions := sentiment.Aggregate(c.scorer.ScoreBatch(texts))
	stats := c.stats.Stats(region.Name, year)

	record := &domain.RegionRecord{
		Year:         year,
		RegionName:   region.Name,
		GeoID:        region.GeoID,
		Emotions:     emotions,
		DiaryCount:   len(entries),
		DiaryEntries: entries,
		Stats:        stats,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if prior != nil {
		record.ID = prior.ID
		record.CreatedAt = prior.CreatedAt
	}

	return c.store.Upsert(ctx, record)
}

// placeholder builds the degenerate-but-valid record returned when a key
// has no prior record and the fetch produced nothing. It is never
// written to the store.
func (c *Cache) placeholder(year int, region domain.Region, now time.Time) *domain.RegionRecord {
	return &domain.RegionRecord{
		Year:       year,
		RegionName: region.Name,
		GeoID:      region.GeoID,
		Emotions:   domain.NeutralDistribution(),
		Stats:      domain.PopulationStats{Year: year},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}
