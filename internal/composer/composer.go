// Package composer orchestrates the composition engine: it stamps identity
// onto composed notifications, records metrics, and hands the result to the
// optional sink.
package composer

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/bren-perry/iw-generator/internal/domain"
	"github.com/bren-perry/iw-generator/internal/observability"
)

// Publisher delivers a composed notification to a downstream sink.
type Publisher interface {
	Publish(ctx context.Context, n domain.Notification) error
}

// Composer wraps the pure composition engine with identity, observability,
// and best-effort publishing.
type Composer struct {
	publisher       Publisher // nil when the sink is disabled
	defaultProvince string
	logger          *slog.Logger
	metrics         *observability.Metrics
}

// New creates a Composer. publisher may be nil to disable the sink.
func New(publisher Publisher, defaultProvince string, logger *slog.Logger, metrics *observability.Metrics) *Composer {
	if publisher != nil {
		metrics.PublisherEnabled.Set(1)
	}
	return &Composer{
		publisher:       publisher,
		defaultProvince: defaultProvince,
		logger:          logger,
		metrics:         metrics,
	}
}

// CheckReadiness reports readiness for the HTTP server. Composition is
// stateless and pure, so the service is ready as soon as it is constructed.
func (c *Composer) CheckReadiness(_ context.Context) error {
	return nil
}

// Compose resolves severity and renders the headline and description for a
// request, then publishes the result when a sink is configured. Composition
// itself cannot fail; a publish failure is logged and counted but never
// surfaced to the caller, since delivery is best-effort by contract.
func (c *Composer) Compose(ctx context.Context, req domain.Request) domain.Notification {
	start := time.Now()

	if req.Province == "" {
		req.Province = c.defaultProvince
	}

	n := domain.Compose(req)
	n.ID = uuid.NewString()

	c.metrics.ComposeDuration.Observe(time.Since(start).Seconds())
	c.metrics.ComposeRequests.WithLabelValues(string(n.Mode), "ok").Inc()
	c.metrics.SeverityLevels.WithLabelValues(strconv.Itoa(n.Severity)).Inc()

	c.logger.Info("notification composed",
		"id", n.ID,
		"mode", n.Mode,
		"province", n.Province,
		"severity", n.Severity,
		"headline", n.Headline,
	)

	if c.publisher != nil {
		if err := c.publisher.Publish(ctx, n); err != nil {
			c.logger.Error("publish notification failed", "id", n.ID, "error", err)
			c.metrics.PublishErrors.Inc()
		} else {
			c.metrics.NotificationsPublished.Inc()
		}
	}

	return n
}
