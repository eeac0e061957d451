// Package scraper supplies diary entries and population statistics for a
// (region, year) pair.
//
// The diary source first attempts a real fetch against the prozhito.org
// search API behind a circuit breaker; any failure or an empty result
// falls back to randomized mock generation. The fallback is explicit
// error mapping, not a catch-all: callers of Source.Fetch never see an
// error, only a best-effort slice of entries.
package scraper
