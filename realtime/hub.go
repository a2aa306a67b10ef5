package realtime

import (
	"context"
	"sync"

	"pipeshare/domain"
	"pipeshare/driver/pubsub"
	"pipeshare/utils/logger"
)

// Hub bridges the Redis fan-out bus to the local registry. It keeps exactly
// one upstream subscription: a Redis channel is joined when the first local
// connection registers its identity key and left when the last one goes away.
type Hub struct {
	registry *Registry
	driver   *pubsub.RedisDriver

	// Key transitions are queued so registry callbacks never touch the
	// network while the registry lock is held.
	transitions chan keyTransition

	cancel context.CancelFunc
	done   sync.WaitGroup
}

type keyTransition struct {
	key       domain.IdentityKey
	subscribe bool
}

// NewHub wires a hub over the given registry and Redis driver.
func NewHub(registry *Registry, driver *pubsub.RedisDriver) *Hub {
	hub := &Hub{
		registry:    registry,
		driver:      driver,
		transitions: make(chan keyTransition, 256),
	}
	registry.OnKeyTransitions(
		func(key domain.IdentityKey) { hub.enqueue(key, true) },
		func(key domain.IdentityKey) { hub.enqueue(key, false) },
	)
	return hub
}

func (h *Hub) enqueue(key domain.IdentityKey, subscribe bool) {
	select {
	case h.transitions <- keyTransition{key: key, subscribe: subscribe}:
	default:
		// A full queue means Redis is badly behind; the connection will still
		// miss events until the subscription catches up, which clients repair
		// by re-fetching on reconnect.
		logger.Logger.Warn("Dropping key transition, queue full", "key", key, "subscribe", subscribe)
	}
}

// Run opens the upstream subscription and pumps events into the registry
// until ctx is cancelled. It returns the subscription setup error, if any.
func (h *Hub) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	h.cancel = cancel

	sub, err := h.driver.Subscribe(ctx, h.registry.ActiveKeys()...)
	if err != nil {
		return err
	}

	h.done.Add(2)

	go func() {
		defer h.done.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case t := <-h.transitions:
				var err error
				if t.subscribe {
					err = sub.AddKeys(ctx, t.key)
				} else {
					err = sub.RemoveKeys(ctx, t.key)
				}
				if err != nil {
					logger.Logger.Error("Failed to adjust upstream subscription",
						"error", err, "key", t.key, "subscribe", t.subscribe)
				}
			}
		}
	}()

	go func() {
		defer h.done.Done()
		defer sub.Close()
		events := sub.Events()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				h.registry.Dispatch(event)
			}
		}
	}()

	return nil
}

// Shutdown stops the hub and waits for its pumps to drain.
func (h *Hub) Shutdown() {
	if h.cancel != nil {
		h.cancel()
	}
	h.done.Wait()
}
