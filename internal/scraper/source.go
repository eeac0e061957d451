package scraper

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/pscheid92/historymap/internal/domain"
	"github.com/pscheid92/historymap/internal/metrics"
	"github.com/pscheid92/historymap/internal/retry"
	"github.com/sony/gobreaker"
)

// FetchClient is the real-fetch side of the diary source.
type FetchClient interface {
	Fetch(ctx context.Context, region string, year, limit int) ([]domain.DiaryEntry, error)
}

// Source implements domain.DiarySource: real fetch first, mock fallback
// on any error or empty result. The upstream sits behind a circuit
// breaker so a dead prozhito.org does not cost a timeout per region.
type Source struct {
	client  FetchClient
	mock    *MockGenerator
	breaker *gobreaker.CircuitBreaker
	policy  retry.Policy
}

var _ domain.DiarySource = (*Source)(nil)

func NewSource(client FetchClient, mock *MockGenerator) *Source {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "prozhito",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed",
				"component", name, "from", from.String(), "to", to.String())
			metrics.BreakerStateChanges.WithLabelValues(name, to.String()).Inc()
		},
	})

	return &Source{
		client:  client,
		mock:    mock,
		breaker: breaker,
		policy: retry.Policy{
			MaxAttempts:    2,
			InitialBackoff: 200 * time.Millisecond,
			OnRetry: func(attempt int, err error, backoff time.Duration) {
				slog.Debug("Retrying diary fetch", "attempt", attempt, "backoff", backoff, "error", err)
			},
		},
	}
}

// Fetch returns diary entries for the region and year. It never fails:
// every error variant of the real fetch (transport error, timeout,
// non-200 status, malformed response, open circuit) maps to the mock
// generation path, as does an empty real result.
func (s *Source) Fetch(ctx context.Context, region string, year, limit int) []domain.DiaryEntry {
	entries, err := s.fetchReal(ctx, region, year, limit)
	if err != nil {
		metrics.ScrapeRequests.WithLabelValues("error").Inc()
		metrics.ScrapeFallbacks.Inc()
		slog.Debug("Diary fetch failed, using mock data",
			"region", region, "year", year, "error", err)
		return s.mock.Entries(region, year)
	}

	if len(entries) == 0 {
		metrics.ScrapeRequests.WithLabelValues("empty").Inc()
		metrics.ScrapeFallbacks.Inc()
		return s.mock.Entries(region, year)
	}

	metrics.ScrapeRequests.WithLabelValues("ok").Inc()
	return entries
}

func (s *Source) fetchReal(ctx context.Context, region string, year, limit int) ([]domain.DiaryEntry, error) {
	timer := prometheus.NewTimer(metrics.ScrapeDuration)
	defer timer.ObserveDuration()

	return retry.Do(ctx, s.policy, isTransient, func() ([]domain.DiaryEntry, error) {
		result, err := s.breaker.Execute(func() (any, error) {
			return s.client.Fetch(ctx, region, year, limit)
		})
		if err != nil {
			return nil, err
		}
		return result.([]domain.DiaryEntry), nil
	})
}

// isTransient reports whether another attempt could help. Cancelled
// contexts and an open breaker are final; everything else (connection
// resets, 5xx) gets one more try.
func isTransient(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return false
	}
	return true
}
