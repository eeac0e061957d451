// Package cache implements the read-through region cache. A resolve
// returns the persisted record while it is fresh, and otherwise re-runs
// the refresh pipeline (diary fetch, per-entry scoring, aggregation,
// population stats) and upserts the result as one value.
//
// Concurrent refreshes of the same (year, region) key are not
// coalesced: both run and the later upsert wins. Per-key single-flight
// would be a hardening on top, not assumed behavior.
package cache
