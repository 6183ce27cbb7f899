package storage

import "context"

// Provider is the flat key-value persistence contract every stateful entity
// in the content core sits on. Values are opaque serialized payloads; typed
// semantics (JSON codecs, defaults, schema guards) live in internal/store.
//
// Get reports found=false for an absent key rather than an error; errors are
// reserved for the provider itself failing (I/O, driver). Callers in the
// core treat both the same way and fall back to a default value.
type Provider interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// CapabilityReporter exposes provider traits the typed store inspects at
// construction. Providers that omit the interface are assumed durable.
type CapabilityReporter interface {
	Capabilities() Capabilities
}

// Capabilities documents the traits a provider reports.
type Capabilities struct {
	// Durable reports whether stored values outlive the process.
	Durable bool
}
