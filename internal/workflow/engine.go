package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/pryank18/ArchaeologyWala/pkg/interfaces"
)

// EntityTypeSubmission is the workflow entity type for editorial submissions.
const EntityTypeSubmission = "submission"

// Submission lifecycle states.
const (
	StatePending  = interfaces.WorkflowState("pending")
	StateApproved = interfaces.WorkflowState("approved")
	StateRejected = interfaces.WorkflowState("rejected")
)

var (
	// ErrUnknownEntityType indicates no workflow definition exists for the requested entity.
	ErrUnknownEntityType = errors.New("workflow: entity type not registered")
	// ErrInvalidTransition indicates the requested transition is not allowed.
	ErrInvalidTransition = errors.New("workflow: transition not allowed")
	// ErrMissingTransition indicates neither a transition name nor target state were supplied.
	ErrMissingTransition = errors.New("workflow: transition name or target state required")
	// ErrMissingEntityID signals input validation failure.
	ErrMissingEntityID = errors.New("workflow: entity id required")
)

// Engine is a simple in-memory workflow engine that executes deterministic state transitions.
type Engine struct {
	mu          sync.RWMutex
	definitions map[string]*compiledDefinition
	now         func() time.Time
}

// Option configures the engine.
type Option func(*Engine)

// WithClock overrides the clock used for transition timestamps (primarily for testing).
func WithClock(clock func() time.Time) Option {
	return func(e *Engine) {
		if clock != nil {
			e.now = clock
		}
	}
}

// New constructs a workflow engine seeded with the default submission workflow.
func New(opts ...Option) *Engine {
	engine := &Engine{
		definitions: make(map[string]*compiledDefinition),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(engine)
	}

	_ = engine.RegisterWorkflow(context.Background(), SubmissionWorkflowDefinition())

	return engine
}

// Transition applies a workflow transition for an entity.
func (e *Engine) Transition(ctx context.Context, input interfaces.TransitionInput) (*interfaces.TransitionResult, error) {
	if strings.TrimSpace(input.EntityID) == "" {
		return nil, ErrMissingEntityID
	}

	definition, err := e.definitionFor(input.EntityType)
	if err != nil {
		return nil, err
	}

	current := stateOrFallback(input.CurrentState, definition.definition.InitialState)
	transitionName := strings.TrimSpace(strings.ToLower(input.Transition))
	var targetState interfaces.WorkflowState
	if strings.TrimSpace(string(input.TargetState)) != "" {
		targetState = normalizeState(input.TargetState)
	}

	if transitionName == "" && targetState == "" {
		return nil, ErrMissingTransition
	}

	if transitionName == "" && targetState == current {
		return &interfaces.TransitionResult{
			EntityID:    input.EntityID,
			EntityType:  input.EntityType,
			Transition:  "",
			FromState:   current,
			ToState:     current,
			CompletedAt: e.now(),
			ActorID:     input.ActorID,
			Metadata:    cloneMetadata(input.Metadata),
		}, nil
	}

	var transition interfaces.WorkflowTransition
	if transitionName != "" {
		transition, err = definition.lookupTransition(transitionName, current)
	} else {
		transition, err = definition.lookupByStates(current, targetState)
	}
	if err != nil {
		return nil, err
	}

	return &interfaces.TransitionResult{
		EntityID:    input.EntityID,
		EntityType:  input.EntityType,
		Transition:  transition.Name,
		FromState:   current,
		ToState:     transition.To,
		CompletedAt: e.now(),
		ActorID:     input.ActorID,
		Metadata:    cloneMetadata(input.Metadata),
	}, nil
}

// AvailableTransitions returns the transitions reachable from the supplied state.
func (e *Engine) AvailableTransitions(ctx context.Context, query interfaces.TransitionQuery) ([]interfaces.WorkflowTransition, error) {
	definition, err := e.definitionFor(query.EntityType)
	if err != nil {
		return nil, err
	}
	state := stateOrFallback(query.State, definition.definition.InitialState)
	transitions := definition.transitionsByState[state]
	result := make([]interfaces.WorkflowTransition, len(transitions))
	copy(result, transitions)
	return result, nil
}

// RegisterWorkflow installs a workflow definition for the supplied entity type.
func (e *Engine) RegisterWorkflow(ctx context.Context, definition interfaces.WorkflowDefinition) error {
	if strings.TrimSpace(definition.EntityType) == "" {
		return fmt.Errorf("workflow: entity type required")
	}
	compiled := compileDefinition(definition)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.definitions[definition.EntityType] = compiled
	return nil
}

func (e *Engine) definitionFor(entityType string) (*compiledDefinition, error) {
	e.mu.RLock()
	definition, ok := e.definitions[entityType]
	e.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEntityType, entityType)
	}
	return definition, nil
}

type compiledDefinition struct {
	definition         interfaces.WorkflowDefinition
	transitions        map[string]interfaces.WorkflowTransition
	transitionsByState map[interfaces.WorkflowState][]interfaces.WorkflowTransition
	terminal           map[interfaces.WorkflowState]bool
}

func compileDefinition(definition interfaces.WorkflowDefinition) *compiledDefinition {
	compiled := &compiledDefinition{
		definition:         definition,
		transitions:        make(map[string]interfaces.WorkflowTransition),
		transitionsByState: make(map[interfaces.WorkflowState][]interfaces.WorkflowTransition),
		terminal:           make(map[interfaces.WorkflowState]bool),
	}
	for _, state := range definition.States {
		if state.Terminal {
			compiled.terminal[normalizeState(state.Name)] = true
		}
	}
	for _, transition := range definition.Transitions {
		from := normalizeState(transition.From)
		to := normalizeState(transition.To)
		if compiled.terminal[from] {
			continue
		}
		transition.From = from
		transition.To = to
		compiled.transitions[transitionKey(transition.Name, from)] = transition
		compiled.transitionsByState[from] = append(compiled.transitionsByState[from], transition)
	}
	return compiled
}

func (d *compiledDefinition) lookupTransition(name string, state interfaces.WorkflowState) (interfaces.WorkflowTransition, error) {
	transition, ok := d.transitions[transitionKey(name, normalizeState(state))]
	if !ok {
		return interfaces.WorkflowTransition{}, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, name, state)
	}
	return transition, nil
}

func (d *compiledDefinition) lookupByStates(from, to interfaces.WorkflowState) (interfaces.WorkflowTransition, error) {
	target := normalizeState(to)
	for _, candidate := range d.transitionsByState[normalizeState(from)] {
		if candidate.To == target {
			return candidate, nil
		}
	}
	return interfaces.WorkflowTransition{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

func transitionKey(name string, from interfaces.WorkflowState) string {
	return strings.TrimSpace(strings.ToLower(name)) + "::" + string(from)
}

func stateOrFallback(state, fallback interfaces.WorkflowState) interfaces.WorkflowState {
	if strings.TrimSpace(string(state)) == "" {
		return normalizeState(fallback)
	}
	return normalizeState(state)
}

func normalizeState(state interfaces.WorkflowState) interfaces.WorkflowState {
	return interfaces.WorkflowState(strings.TrimSpace(strings.ToLower(string(state))))
}

func cloneMetadata(input map[string]any) map[string]any {
	if len(input) == 0 {
		return nil
	}
	clone := make(map[string]any, len(input))
	for k, v := range input {
		clone[k] = v
	}
	return clone
}

// SubmissionWorkflowDefinition describes the editorial lifecycle for reader
// submissions. Approved and rejected are terminal: a reviewed submission can
// never re-enter the queue.
func SubmissionWorkflowDefinition() interfaces.WorkflowDefinition {
	return interfaces.WorkflowDefinition{
		EntityType:   EntityTypeSubmission,
		InitialState: StatePending,
		States: []interfaces.WorkflowStateDefinition{
			{Name: StatePending, Description: "Awaiting editorial review"},
			{Name: StateApproved, Description: "Accepted and promoted to a post", Terminal: true},
			{Name: StateRejected, Description: "Declined by the editor", Terminal: true},
		},
		Transitions: []interfaces.WorkflowTransition{
			{Name: "approve", From: StatePending, To: StateApproved},
			{Name: "reject", From: StatePending, To: StateRejected},
		},
	}
}
