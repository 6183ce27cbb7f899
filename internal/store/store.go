package store

import (
	"context"
	"encoding/json"

	"github.com/pryank18/ArchaeologyWala/internal/logging"
	"github.com/pryank18/ArchaeologyWala/pkg/interfaces"
	"github.com/pryank18/ArchaeologyWala/pkg/storage"
)

// Store is the typed persistence layer every stateful entity sits on. It
// wraps a key-value provider with a JSON codec and the load-with-default /
// write-through semantics the core relies on:
//
//   - Load never fails: a missing, unreadable, or schema-invalid payload
//     yields the caller's default.
//   - Save never fails the mutation that triggered it: provider errors are
//     logged and swallowed; the in-memory state stays authoritative for the
//     session.
//
// There is no transactional guarantee across keys. Each key's entity is
// independently consistent, which is all the data model requires.
type Store struct {
	provider storage.Provider
	logger   interfaces.Logger
	durable  bool
}

// Option configures the store.
type Option func(*Store)

// WithLogger injects the logger used for swallowed persistence failures.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a typed store over the supplied provider. Providers that
// report themselves volatile are noted once at construction; their state
// will not survive a restart.
func New(provider storage.Provider, opts ...Option) *Store {
	s := &Store{
		provider: provider,
		logger:   logging.NoOp(),
		durable:  true,
	}
	if reporter, ok := provider.(storage.CapabilityReporter); ok {
		s.durable = reporter.Capabilities().Durable
	}
	for _, opt := range opts {
		opt(s)
	}
	if !s.durable {
		s.logger.Info("store.volatile_provider")
	}
	return s
}

// Durable reports whether the underlying provider keeps state across
// restarts. Providers without a capability report are assumed durable.
func (s *Store) Durable() bool {
	return s != nil && s.durable
}

// Load reads key into dst, falling back to fallback when the key is absent
// or its payload cannot be trusted. The fallback path is normal operation,
// not an error channel; Load never surfaces a failure to the caller.
func Load[T any](ctx context.Context, s *Store, key string, fallback T) T {
	if s == nil || s.provider == nil {
		return fallback
	}

	raw, found, err := s.provider.Get(ctx, key)
	if err != nil {
		s.logger.Warn("store.load.provider_failed", "key", key, "error", err)
		return fallback
	}
	if !found {
		return fallback
	}
	if !validPayload(key, raw) {
		s.logger.Warn("store.load.payload_rejected", "key", key)
		return fallback
	}

	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		s.logger.Warn("store.load.decode_failed", "key", key, "error", err)
		return fallback
	}
	return out
}

// Save persists value under key, best-effort. Serialization and provider
// failures are logged and swallowed.
func Save[T any](ctx context.Context, s *Store, key string, value T) {
	if s == nil || s.provider == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("store.save.encode_failed", "key", key, "error", err)
		return
	}
	if err := s.provider.Set(ctx, key, raw); err != nil {
		s.logger.Warn("store.save.provider_failed", "key", key, "error", err)
	}
}

// Delete removes key, best-effort.
func (s *Store) Delete(ctx context.Context, key string) {
	if s == nil || s.provider == nil {
		return
	}
	if err := s.provider.Delete(ctx, key); err != nil {
		s.logger.Warn("store.delete.provider_failed", "key", key, "error", err)
	}
}

// Keys lists persisted keys under prefix; provider failures degrade to an
// empty listing.
func (s *Store) Keys(ctx context.Context, prefix string) []string {
	if s == nil || s.provider == nil {
		return nil
	}
	keys, err := s.provider.Keys(ctx, prefix)
	if err != nil {
		s.logger.Warn("store.keys.provider_failed", "prefix", prefix, "error", err)
		return nil
	}
	return keys
}
