// Package sentiment maps Russian diary text to a four-way emotion
// distribution (fear/joy/neutral/sadness) via keyword matching, and
// aggregates per-entry distributions into a single region result.
//
// The scorer is rule-based on purpose: diary excerpts are short, the
// vocabulary is era-specific, and a deterministic pure function keeps the
// cache pipeline reproducible and trivially testable.
package sentiment
