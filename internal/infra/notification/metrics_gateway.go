package notification

import (
	"context"
	"time"

	"rollcall/internal/domain/entity"
	"rollcall/internal/domain/service"
	"rollcall/internal/errors"

	"github.com/prometheus/client_golang/prometheus"
)

const classError = "error"

// MetricsGateway records attempt counts and latency around another gateway.
type MetricsGateway struct {
	next     service.PushGateway
	attempts *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewMetricsGateway wraps next and registers its collectors with reg.
func NewMetricsGateway(next service.PushGateway, reg prometheus.Registerer) (*MetricsGateway, error) {
	g := &MetricsGateway{
		next: next,
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rollcall",
			Subsystem: "push",
			Name:      "attempts_total",
			Help:      "Push attempts by route, dialect and classified outcome.",
		}, []string{"route", "dialect", "class"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "rollcall",
			Subsystem: "push",
			Name:      "attempt_duration_seconds",
			Help:      "Latency of single push attempts.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "dialect"}),
	}

	for _, c := range []prometheus.Collector{g.attempts, g.latency} {
		if err := reg.Register(c); err != nil {
			return nil, errors.Wrap(err, "register push metrics")
		}
	}

	return g, nil
}

var _ service.PushGateway = (*MetricsGateway)(nil)

// Attempt delegates to the wrapped gateway.
func (g *MetricsGateway) Attempt(ctx context.Context, attempt *service.PushAttempt) (*entity.AttemptResult, error) {
	start := time.Now()
	result, err := g.next.Attempt(ctx, attempt)

	route, dialect := "", ""
	if attempt != nil {
		route, dialect = attempt.Route.Name, attempt.Dialect.String()
	}

	class := classError
	if err == nil && result != nil {
		class = result.Class.String()
	}

	g.attempts.WithLabelValues(route, dialect, class).Inc()
	g.latency.WithLabelValues(route, dialect).Observe(time.Since(start).Seconds())

	return result, err
}
