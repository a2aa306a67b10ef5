package event_publisher_port

import (
	"context"

	"pipeshare/domain"
)

// EventPublisherPort publishes share events addressed to identity keys.
// Delivery is at-most-once and best-effort; the push channel is a latency
// optimization on top of re-fetch, never the source of truth.
type EventPublisherPort interface {
	PublishPipelineShared(ctx context.Context, key domain.IdentityKey, pipeline domain.Pipeline) error
}
