package store

import (
	"context"
	"errors"
	"testing"
)

type faultyProvider struct{}

func (faultyProvider) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, errors.New("boom")
}

func (faultyProvider) Set(context.Context, string, []byte) error {
	return errors.New("boom")
}

func (faultyProvider) Delete(context.Context, string) error {
	return errors.New("boom")
}

func (faultyProvider) Keys(context.Context, string) ([]string, error) {
	return nil, errors.New("boom")
}

func TestLoadReturnsFallbackWhenMissing(t *testing.T) {
	s := New(NewMemoryProvider())

	got := Load(context.Background(), s, KeyLikes, map[string]int{})
	if len(got) != 0 {
		t.Fatalf("expected empty fallback map, got %#v", got)
	}

	scale := Load(context.Background(), s, KeyFontScale, 1.0)
	if scale != 1.0 {
		t.Fatalf("expected fontScale fallback 1.0, got %v", scale)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	s := New(NewMemoryProvider())
	ctx := context.Background()

	Save(ctx, s, KeyBookmarks, []string{"pottery-101", "stratigraphy"})

	got := Load(ctx, s, KeyBookmarks, []string(nil))
	if len(got) != 2 || got[0] != "pottery-101" || got[1] != "stratigraphy" {
		t.Fatalf("unexpected bookmarks: %#v", got)
	}
}

func TestLoadRejectsCorruptPayload(t *testing.T) {
	provider := NewMemoryProvider()
	ctx := context.Background()

	if err := provider.Set(ctx, KeyLikes, []byte("{not json")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	s := New(provider)
	got := Load(ctx, s, KeyLikes, map[string]int{"fallback": 1})
	if got["fallback"] != 1 {
		t.Fatalf("expected fallback on corrupt payload, got %#v", got)
	}
}

func TestLoadRejectsSchemaInvalidPayload(t *testing.T) {
	provider := NewMemoryProvider()
	ctx := context.Background()

	// Well-formed JSON that violates the posts guard (missing slug/body).
	if err := provider.Set(ctx, KeyPosts, []byte(`[{"title":"orphan"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	s := New(provider)
	type post struct {
		Slug string `json:"slug"`
	}
	got := Load(ctx, s, KeyPosts, []post{})
	if len(got) != 0 {
		t.Fatalf("expected schema-invalid payload to fall back, got %#v", got)
	}
}

func TestCommentGuardAppliesPerSlug(t *testing.T) {
	provider := NewMemoryProvider()
	ctx := context.Background()

	key := CommentsKey("pottery-101")
	if err := provider.Set(ctx, key, []byte(`[{"id":"nope"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}

	s := New(provider)
	type comment struct {
		ID int64 `json:"id"`
	}
	got := Load(ctx, s, key, []comment{})
	if len(got) != 0 {
		t.Fatalf("expected invalid comment payload to fall back, got %#v", got)
	}
}

func TestProviderFailuresAreSwallowed(t *testing.T) {
	s := New(faultyProvider{})
	ctx := context.Background()

	// Save must not panic or surface the provider error.
	Save(ctx, s, KeyDarkMode, true)

	got := Load(ctx, s, KeyDarkMode, false)
	if got {
		t.Fatalf("expected fallback false from failing provider")
	}

	if keys := s.Keys(ctx, ""); keys != nil {
		t.Fatalf("expected nil keys from failing provider, got %#v", keys)
	}
}

func TestDurabilityFollowsProviderCapabilities(t *testing.T) {
	if New(NewMemoryProvider()).Durable() {
		t.Fatal("memory provider must report volatile storage")
	}
	// A provider without a capability report is assumed durable.
	if !New(faultyProvider{}).Durable() {
		t.Fatal("expected providers without a capability report to default to durable")
	}
}
