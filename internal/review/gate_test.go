package review

import (
	"errors"
	"testing"
	"time"
)

func TestUnlockWithMatchingToken(t *testing.T) {
	at := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)
	gate := NewGate("trowel-and-brush", WithClock(func() time.Time { return at }))

	session, err := gate.Unlock("trowel-and-brush")
	if err != nil {
		t.Fatalf("Unlock: %v", err)
	}
	if session == nil || session.UnlockedAt != at {
		t.Fatalf("unexpected session: %#v", session)
	}
	if err := gate.Require(session); err != nil {
		t.Fatalf("Require: %v", err)
	}
}

func TestUnlockRejectsMismatch(t *testing.T) {
	gate := NewGate("trowel-and-brush")

	if _, err := gate.Unlock("Trowel-And-Brush"); !errors.Is(err, ErrReviewLocked) {
		t.Fatalf("case must matter, got %v", err)
	}
	if _, err := gate.Unlock(""); !errors.Is(err, ErrReviewLocked) {
		t.Fatalf("empty candidate must be rejected, got %v", err)
	}
}

func TestEmptyCredentialStaysLocked(t *testing.T) {
	gate := NewGate("")

	if _, err := gate.Unlock(""); !errors.Is(err, ErrReviewLocked) {
		t.Fatalf("empty credential must never unlock, got %v", err)
	}
}

func TestRequireRejectsClosedSession(t *testing.T) {
	gate := NewGate("trowel-and-brush")

	session, err := gate.Unlock("trowel-and-brush")
	if err != nil {
		t.Fatalf("Unlock: %v", err)
	}

	gate.Lock(session)
	if err := gate.Require(session); !errors.Is(err, ErrReviewLocked) {
		t.Fatalf("closed session must be rejected, got %v", err)
	}
	if err := gate.Require(nil); !errors.Is(err, ErrReviewLocked) {
		t.Fatalf("nil session must be rejected, got %v", err)
	}
}
