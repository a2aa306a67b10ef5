package client

import (
	"sort"
	"sync"

	"pipeshare/domain"
)

// Registrar reconciles the desired identity-key set against the set already
// registered on the live push connection. Only additions trigger a reconnect;
// re-registering an already-registered key is a no-op.
type Registrar struct {
	mu         sync.Mutex
	desired    map[domain.IdentityKey]struct{}
	registered map[domain.IdentityKey]struct{}
}

func NewRegistrar() *Registrar {
	return &Registrar{
		desired:    make(map[domain.IdentityKey]struct{}),
		registered: make(map[domain.IdentityKey]struct{}),
	}
}

// Want adds keys to the desired set and returns the keys not yet registered.
// An empty return means the live connection already covers the desired set.
func (r *Registrar) Want(keys ...domain.IdentityKey) []domain.IdentityKey {
	r.mu.Lock()
	defer r.mu.Unlock()

	missing := make([]domain.IdentityKey, 0)
	for _, key := range keys {
		if key == "" {
			continue
		}
		r.desired[key] = struct{}{}
		if _, ok := r.registered[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)
	return missing
}

// Desired returns the full desired key set, sorted for stable connect URLs.
func (r *Registrar) Desired() []domain.IdentityKey {
	r.mu.Lock()
	defer r.mu.Unlock()

	keys := make([]domain.IdentityKey, 0, len(r.desired))
	for key := range r.desired {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Confirm marks keys as registered on the live connection.
func (r *Registrar) Confirm(keys ...domain.IdentityKey) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, key := range keys {
		r.registered[key] = struct{}{}
	}
}

// Reset clears the registered set. Called when the connection drops: the
// desired set survives so reconnection re-registers every key.
func (r *Registrar) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registered = make(map[domain.IdentityKey]struct{})
}
