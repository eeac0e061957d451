// Package database provides the PostgreSQL-backed record store.
//
// Connection pooling via pgxpool, schema via inline idempotent
// migrations at startup, query metrics via a pgx tracer. The region
// repository implements domain.RecordStore with a single-statement
// upsert keyed on (year, region_name).
package database
