package database

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pscheid92/historymap/internal/metrics"
)

// queryTracer implements pgx.QueryTracer to feed the db_* metrics.
// Queries are labeled by their leading SQL verb to keep cardinality low.
type queryTracer struct{}

var _ pgx.QueryTracer = (*queryTracer)(nil)

type traceKey struct{}

type traceData struct {
	start time.Time
	verb  string
}

func (t *queryTracer) TraceQueryStart(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryStartData) context.Context {
	return context.WithValue(ctx, traceKey{}, traceData{start: time.Now(), verb: queryVerb(data.SQL)})
}

func (t *queryTracer) TraceQueryEnd(ctx context.Context, conn *pgx.Conn, data pgx.TraceQueryEndData) {
	td, ok := ctx.Value(traceKey{}).(traceData)
	if !ok {
		return
	}

	metrics.DBQueryDuration.WithLabelValues(td.verb).Observe(time.Since(td.start).Seconds())
	if data.Err != nil {
		metrics.DBErrorsTotal.WithLabelValues(td.verb).Inc()
	}
}

func queryVerb(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return "unknown"
	}
	return strings.ToUpper(fields[0])
}
