// Package pubsub provides the Redis pub/sub driver used to fan share events
// out across server instances. Delivery is at-most-once: events published
// while nobody is subscribed are lost, which is acceptable because clients
// reconcile state by re-fetch.
package pubsub

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"pipeshare/domain"
)

// channelPrefix namespaces share-event channels; one channel per identity key.
const channelPrefix = "pipeshare:share:"

// ChannelForKey returns the Redis channel carrying events for an identity key.
func ChannelForKey(key domain.IdentityKey) string {
	return channelPrefix + key
}

// KeyForChannel recovers the identity key from a Redis channel name.
func KeyForChannel(channel string) domain.IdentityKey {
	if len(channel) <= len(channelPrefix) {
		return ""
	}
	return channel[len(channelPrefix):]
}

// RedisDriver publishes and subscribes share events over Redis pub/sub.
type RedisDriver struct {
	client *redis.Client
}

// NewRedisDriver creates a new Redis driver.
func NewRedisDriver(addr string) *RedisDriver {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisDriver{client: client}
}

// NewRedisDriverWithURL creates a new Redis driver from a URL.
func NewRedisDriverWithURL(url string) (*RedisDriver, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return &RedisDriver{client: redis.NewClient(opts)}, nil
}

// Close closes the Redis connection.
func (d *RedisDriver) Close() error {
	return d.client.Close()
}

// Ping checks if Redis is available.
func (d *RedisDriver) Ping(ctx context.Context) error {
	return d.client.Ping(ctx).Err()
}

// Publish sends a share event to the channel of its identity key.
func (d *RedisDriver) Publish(ctx context.Context, event *domain.ShareEvent) error {
	if event == nil {
		return errors.New("event is nil")
	}
	if event.Key == "" {
		return errors.New("event key is empty")
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return d.client.Publish(ctx, ChannelForKey(event.Key), payload).Err()
}

// Subscription wraps a Redis pub/sub subscription whose channel set can grow
// and shrink as identity keys register and unregister.
type Subscription struct {
	pubsub *redis.PubSub
}

// Subscribe opens a subscription for the given identity keys. The key set may
// be empty; keys are added later with AddKeys.
func (d *RedisDriver) Subscribe(ctx context.Context, keys ...domain.IdentityKey) (*Subscription, error) {
	channels := make([]string, 0, len(keys))
	for _, key := range keys {
		channels = append(channels, ChannelForKey(key))
	}

	pubsub := d.client.Subscribe(ctx, channels...)
	// Force the connection so a broken Redis surfaces here, not on first
	// receive. With no channels go-redis sends no SUBSCRIBE, so there is no
	// confirmation to wait for and Receive would block forever.
	if len(channels) > 0 {
		if _, err := pubsub.Receive(ctx); err != nil {
			pubsub.Close()
			return nil, err
		}
	}

	return &Subscription{pubsub: pubsub}, nil
}

// AddKeys subscribes additional identity keys on the live subscription.
func (s *Subscription) AddKeys(ctx context.Context, keys ...domain.IdentityKey) error {
	if len(keys) == 0 {
		return nil
	}
	channels := make([]string, 0, len(keys))
	for _, key := range keys {
		channels = append(channels, ChannelForKey(key))
	}
	return s.pubsub.Subscribe(ctx, channels...)
}

// RemoveKeys unsubscribes identity keys that no longer have local subscribers.
func (s *Subscription) RemoveKeys(ctx context.Context, keys ...domain.IdentityKey) error {
	if len(keys) == 0 {
		return nil
	}
	channels := make([]string, 0, len(keys))
	for _, key := range keys {
		channels = append(channels, ChannelForKey(key))
	}
	return s.pubsub.Unsubscribe(ctx, channels...)
}

// Events returns the channel of decoded share events. The channel closes when
// the subscription is closed.
func (s *Subscription) Events() <-chan *domain.ShareEvent {
	out := make(chan *domain.ShareEvent)
	go func() {
		defer close(out)
		for msg := range s.pubsub.Channel() {
			var event domain.ShareEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				continue
			}
			if event.Key == "" {
				event.Key = KeyForChannel(msg.Channel)
			}
			out <- &event
		}
	}()
	return out
}

// Close tears down the subscription and its event channel.
func (s *Subscription) Close() error {
	return s.pubsub.Close()
}
