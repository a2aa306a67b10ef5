// Package realtime maintains the subscription table that maps identity keys to
// live push-channel connections and fans incoming share events out to them.
package realtime

import (
	"sync"

	"pipeshare/domain"
	"pipeshare/utils/metrics"
)

// DefaultConnBuffer is the per-connection event buffer. Delivery is
// at-most-once: when a connection's buffer is full the event is dropped for
// that connection rather than blocking the fan-out loop.
const DefaultConnBuffer = 16

// Conn is one live push-channel connection. A connection may be registered
// under several identity keys; events for any of them arrive on Events in
// per-key publish order.
type Conn struct {
	registry *Registry
	events   chan *domain.ShareEvent

	mu     sync.Mutex
	closed bool
	keys   map[domain.IdentityKey]struct{}
}

// Events returns the connection's event channel. It is closed when the
// connection is removed from the registry.
func (c *Conn) Events() <-chan *domain.ShareEvent {
	return c.events
}

// Keys returns a snapshot of the identity keys this connection is registered under.
func (c *Conn) Keys() []domain.IdentityKey {
	c.mu.Lock()
	defer c.mu.Unlock()
	keys := make([]domain.IdentityKey, 0, len(c.keys))
	for key := range c.keys {
		keys = append(keys, key)
	}
	return keys
}

// Registry is the subscription table. It owns the key -> connection index and
// notifies its listener when a key gains its first subscriber or loses its
// last one, so the transport layer can adjust the upstream subscription.
type Registry struct {
	mu    sync.RWMutex
	conns map[domain.IdentityKey]map[*Conn]struct{}

	bufferSize int

	// Called while the registry lock is held so key transitions are observed
	// in order. Callbacks must not call back into the registry.
	onFirst func(key domain.IdentityKey)
	onLast  func(key domain.IdentityKey)
}

// NewRegistry creates an empty registry. bufferSize <= 0 falls back to
// DefaultConnBuffer.
func NewRegistry(bufferSize int) *Registry {
	if bufferSize <= 0 {
		bufferSize = DefaultConnBuffer
	}
	return &Registry{
		conns:      make(map[domain.IdentityKey]map[*Conn]struct{}),
		bufferSize: bufferSize,
	}
}

// OnKeyTransitions installs callbacks invoked when an identity key gains its
// first local subscriber or loses its last one. Must be set before Connect.
func (r *Registry) OnKeyTransitions(onFirst, onLast func(key domain.IdentityKey)) {
	r.onFirst = onFirst
	r.onLast = onLast
}

// Connect creates a connection registered under the given identity keys.
// Registering a key the connection already holds is a no-op.
func (r *Registry) Connect(keys ...domain.IdentityKey) *Conn {
	conn := &Conn{
		registry: r,
		events:   make(chan *domain.ShareEvent, r.bufferSize),
		keys:     make(map[domain.IdentityKey]struct{}),
	}
	metrics.ActiveStreams.Inc()
	r.Register(conn, keys...)
	return conn
}

// Register adds identity keys to a connection. Idempotent per key: a second
// registration of the same key on the same connection changes nothing, and the
// connection still receives each event exactly once.
func (r *Registry) Register(conn *Conn, keys ...domain.IdentityKey) {
	if len(keys) == 0 {
		return
	}

	conn.mu.Lock()
	if conn.closed {
		conn.mu.Unlock()
		return
	}
	fresh := make([]domain.IdentityKey, 0, len(keys))
	for _, key := range keys {
		if key == "" {
			continue
		}
		if _, ok := conn.keys[key]; ok {
			continue
		}
		conn.keys[key] = struct{}{}
		fresh = append(fresh, key)
	}
	conn.mu.Unlock()

	if len(fresh) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range fresh {
		set, ok := r.conns[key]
		if !ok {
			set = make(map[*Conn]struct{})
			r.conns[key] = set
			metrics.RegisteredKeys.Inc()
			if r.onFirst != nil {
				r.onFirst(key)
			}
		}
		set[conn] = struct{}{}
	}
}

// Unregister removes identity keys from a connection.
func (r *Registry) Unregister(conn *Conn, keys ...domain.IdentityKey) {
	if len(keys) == 0 {
		return
	}

	conn.mu.Lock()
	held := make([]domain.IdentityKey, 0, len(keys))
	for _, key := range keys {
		if _, ok := conn.keys[key]; !ok {
			continue
		}
		delete(conn.keys, key)
		held = append(held, key)
	}
	conn.mu.Unlock()

	if len(held) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range held {
		r.dropLocked(conn, key)
	}
}

// Disconnect removes the connection entirely and closes its event channel.
func (r *Registry) Disconnect(conn *Conn) {
	conn.mu.Lock()
	if conn.closed {
		conn.mu.Unlock()
		return
	}
	conn.closed = true
	held := make([]domain.IdentityKey, 0, len(conn.keys))
	for key := range conn.keys {
		held = append(held, key)
	}
	conn.keys = make(map[domain.IdentityKey]struct{})
	conn.mu.Unlock()

	r.mu.Lock()
	for _, key := range held {
		r.dropLocked(conn, key)
	}
	r.mu.Unlock()

	metrics.ActiveStreams.Dec()
	close(conn.events)
}

func (r *Registry) dropLocked(conn *Conn, key domain.IdentityKey) {
	set, ok := r.conns[key]
	if !ok {
		return
	}
	delete(set, conn)
	if len(set) == 0 {
		delete(r.conns, key)
		metrics.RegisteredKeys.Dec()
		if r.onLast != nil {
			r.onLast(key)
		}
	}
}

// Dispatch delivers an event to every connection registered under its key.
// Events for the same key are delivered in arrival order; a connection whose
// buffer is full misses the event.
func (r *Registry) Dispatch(event *domain.ShareEvent) {
	if event == nil || event.Key == "" {
		return
	}

	r.mu.RLock()
	targets := make([]*Conn, 0, len(r.conns[event.Key]))
	for conn := range r.conns[event.Key] {
		targets = append(targets, conn)
	}
	r.mu.RUnlock()

	for _, conn := range targets {
		// The closed flag is checked under conn.mu so a concurrent Disconnect
		// cannot close the channel between the check and the send.
		conn.mu.Lock()
		if conn.closed {
			conn.mu.Unlock()
			continue
		}
		select {
		case conn.events <- event:
			metrics.RecordDelivery("delivered")
		default:
			metrics.RecordDelivery("dropped")
		}
		conn.mu.Unlock()
	}
}

// ActiveKeys returns the identity keys with at least one live connection.
func (r *Registry) ActiveKeys() []domain.IdentityKey {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]domain.IdentityKey, 0, len(r.conns))
	for key := range r.conns {
		keys = append(keys, key)
	}
	return keys
}
