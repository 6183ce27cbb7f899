package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pryank18/ArchaeologyWala/pkg/interfaces"
)

func fixedClock() func() time.Time {
	at := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time { return at }
}

func TestTransitionApproveFromPending(t *testing.T) {
	engine := New(WithClock(fixedClock()))
	actor := uuid.New()

	result, err := engine.Transition(context.Background(), interfaces.TransitionInput{
		EntityID:     "42",
		EntityType:   EntityTypeSubmission,
		CurrentState: StatePending,
		Transition:   "approve",
		ActorID:      actor,
	})
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if result.FromState != StatePending || result.ToState != StateApproved {
		t.Fatalf("unexpected states: %s -> %s", result.FromState, result.ToState)
	}
	if result.ActorID != actor {
		t.Fatalf("actor not carried through")
	}
	if result.CompletedAt != fixedClock()() {
		t.Fatalf("expected injected clock timestamp, got %s", result.CompletedAt)
	}
}

func TestTransitionByTargetState(t *testing.T) {
	engine := New()

	result, err := engine.Transition(context.Background(), interfaces.TransitionInput{
		EntityID:    "42",
		EntityType:  EntityTypeSubmission,
		TargetState: StateRejected,
	})
	if err != nil {
		t.Fatalf("Transition: %v", err)
	}
	if result.Transition != "reject" {
		t.Fatalf("expected reject transition, got %q", result.Transition)
	}
}

func TestTerminalStatesAdmitNoTransitions(t *testing.T) {
	engine := New()

	_, err := engine.Transition(context.Background(), interfaces.TransitionInput{
		EntityID:     "42",
		EntityType:   EntityTypeSubmission,
		CurrentState: StateApproved,
		Transition:   "reject",
	})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	available, err := engine.AvailableTransitions(context.Background(), interfaces.TransitionQuery{
		EntityType: EntityTypeSubmission,
		State:      StateRejected,
	})
	if err != nil {
		t.Fatalf("AvailableTransitions: %v", err)
	}
	if len(available) != 0 {
		t.Fatalf("terminal state must have no outgoing transitions, got %#v", available)
	}
}

func TestTransitionValidatesInput(t *testing.T) {
	engine := New()

	if _, err := engine.Transition(context.Background(), interfaces.TransitionInput{
		EntityType: EntityTypeSubmission,
		Transition: "approve",
	}); !errors.Is(err, ErrMissingEntityID) {
		t.Fatalf("expected ErrMissingEntityID, got %v", err)
	}

	if _, err := engine.Transition(context.Background(), interfaces.TransitionInput{
		EntityID:   "42",
		EntityType: "artifact",
		Transition: "approve",
	}); !errors.Is(err, ErrUnknownEntityType) {
		t.Fatalf("expected ErrUnknownEntityType, got %v", err)
	}

	if _, err := engine.Transition(context.Background(), interfaces.TransitionInput{
		EntityID:   "42",
		EntityType: EntityTypeSubmission,
	}); !errors.Is(err, ErrMissingTransition) {
		t.Fatalf("expected ErrMissingTransition, got %v", err)
	}
}

func TestAvailableTransitionsFromPending(t *testing.T) {
	engine := New()

	available, err := engine.AvailableTransitions(context.Background(), interfaces.TransitionQuery{
		EntityType: EntityTypeSubmission,
		State:      StatePending,
	})
	if err != nil {
		t.Fatalf("AvailableTransitions: %v", err)
	}
	names := make(map[string]bool, len(available))
	for _, transition := range available {
		names[transition.Name] = true
	}
	if !names["approve"] || !names["reject"] {
		t.Fatalf("expected approve and reject, got %#v", available)
	}
}
