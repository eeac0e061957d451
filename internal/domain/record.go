package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RegionRecord is the persisted cache entry for a (year, region_name) key.
// Records are created on first successful resolution, overwritten as a
// whole value on every refresh, and never deleted: staleness is governed
// by UpdatedAt against the configured TTL, not by existence.
type RegionRecord struct {
	ID           uuid.UUID
	Year         int
	RegionName   string
	GeoID        string
	Emotions     EmotionDistribution
	DiaryCount   int
	DiaryEntries []DiaryEntry
	Stats        PopulationStats
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RecordStore persists region records keyed on (year, region_name).
type RecordStore interface {
	// Get returns the record for the key or ErrRecordNotFound.
	Get(ctx context.Context, year int, regionName string) (*RegionRecord, error)
	// Upsert inserts or replaces the record for (record.Year,
	// record.RegionName) in a single write, preserving the identity and
	// CreatedAt of an existing row. Returns the stored record.
	Upsert(ctx context.Context, record *RegionRecord) (*RegionRecord, error)
}

// RegionResolver produces an up-to-date record for a region and year.
type RegionResolver interface {
	Resolve(ctx context.Context, year int, region Region) (*RegionRecord, error)
}
