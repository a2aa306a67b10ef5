package domain

import "time"

// ShareEvent is the push-channel payload notifying a client that a pipeline
// was shared with one of its registered identity keys. It is not persisted;
// each delivery is consumed once by the reconciler.
type ShareEvent struct {
	Key       string    `json:"key"`
	Pipeline  Pipeline  `json:"pipeline_shared"`
	EmittedAt time.Time `json:"emitted_at"`
}

// IdentityKey is a string addressing push-channel subscriptions: a personal
// email or a tenant domain.
type IdentityKey = string
