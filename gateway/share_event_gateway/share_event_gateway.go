// Package share_event_gateway provides the gateway implementation for share
// event publishing.
package share_event_gateway

import (
	"context"
	"log/slog"
	"time"

	"pipeshare/domain"
	"pipeshare/driver/pubsub"
	"pipeshare/utils/metrics"
)

// ShareEventGateway implements EventPublisherPort using Redis pub/sub.
type ShareEventGateway struct {
	driver *pubsub.RedisDriver
	logger *slog.Logger
	now    func() time.Time
}

// NewShareEventGateway creates a new ShareEventGateway.
func NewShareEventGateway(driver *pubsub.RedisDriver, logger *slog.Logger) *ShareEventGateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &ShareEventGateway{
		driver: driver,
		logger: logger,
		now:    time.Now,
	}
}

// PublishPipelineShared publishes a pipeline-shared event addressed to one
// identity key. A publish failure is logged and surfaced but must not undo
// the store mutation that triggered it; clients reconcile by re-fetch.
func (g *ShareEventGateway) PublishPipelineShared(ctx context.Context, key domain.IdentityKey, pipeline domain.Pipeline) error {
	event := &domain.ShareEvent{
		Key:       key,
		Pipeline:  pipeline,
		EmittedAt: g.now(),
	}

	if err := g.driver.Publish(ctx, event); err != nil {
		metrics.RecordPublish("error")
		g.logger.Error("failed to publish pipeline shared event",
			"pipeline_id", pipeline.ID,
			"key", key,
			"error", err,
		)
		return err
	}

	metrics.RecordPublish("ok")
	g.logger.Info("published pipeline shared event",
		"pipeline_id", pipeline.ID,
		"key", key,
	)
	return nil
}
