package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pscheid92/historymap/internal/domain"
)

// regionColumns must match the Scan order in scanRecord.
const regionColumns = `id, year, region_name, geo_id, emotions, diary_count, diary_entries, stats, created_at, updated_at`

// RegionRepo implements domain.RecordStore backed by PostgreSQL.
type RegionRepo struct {
	pool *pgxpool.Pool
}

var _ domain.RecordStore = (*RegionRepo)(nil)

func NewRegionRepo(pool *pgxpool.Pool) *RegionRepo {
	return &RegionRepo{pool: pool}
}

func (r *RegionRepo) Get(ctx context.Context, year int, regionName string) (*domain.RegionRecord, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+regionColumns+`
		FROM region_data
		WHERE year = $1 AND region_name = $2
	`, year, regionName)

	record, err := scanRecord(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get region record: %w", err)
	}
	return record, nil
}

// Upsert replaces the row for (year, region_name) as a whole value.
// Identity and created_at of an existing row are preserved; everything
// else comes from the new record.
func (r *RegionRepo) Upsert(ctx context.Context, record *domain.RegionRecord) (*domain.RegionRecord, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO region_data (year, region_name, geo_id, emotions, diary_count, diary_entries, stats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (year, region_name) DO UPDATE SET
			geo_id = EXCLUDED.geo_id,
			emotions = EXCLUDED.emotions,
			diary_count = EXCLUDED.diary_count,
			diary_entries = EXCLUDED.diary_entries,
			stats = EXCLUDED.stats,
			updated_at = EXCLUDED.updated_at
		RETURNING `+regionColumns+`
	`, record.Year, record.RegionName, record.GeoID, record.Emotions,
		record.DiaryCount, record.DiaryEntries, record.Stats,
		record.CreatedAt, record.UpdatedAt)

	stored, err := scanRecord(row)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert region record: %w", err)
	}
	return stored, nil
}

func scanRecord(row pgx.Row) (*domain.RegionRecord, error) {
	var record domain.RegionRecord
	err := row.Scan(
		&record.ID, &record.Year, &record.RegionName, &record.GeoID,
		&record.Emotions, &record.DiaryCount, &record.DiaryEntries,
		&record.Stats, &record.CreatedAt, &record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
