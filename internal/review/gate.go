package review

import (
	"crypto/subtle"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pryank18/ArchaeologyWala/pkg/interfaces"
)

// ErrReviewLocked signals that an editorial operation was attempted without
// an unlocked review session. Callers treat it as inert: nothing changed.
var ErrReviewLocked = errors.New("review: gate locked")

// Session represents one unlocked review window.
type Session struct {
	ID         uuid.UUID
	UnlockedAt time.Time
}

// Gate guards editorial operations behind a single static credential.
type Gate struct {
	mu       sync.RWMutex
	token    string
	sessions map[uuid.UUID]*Session
	now      func() time.Time
	logger   interfaces.Logger
}

// Option configures the gate.
type Option func(*Gate)

// WithClock overrides the session timestamp clock.
func WithClock(clock func() time.Time) Option {
	return func(g *Gate) {
		if clock != nil {
			g.now = clock
		}
	}
}

// WithLogger attaches a logger to the gate.
func WithLogger(logger interfaces.Logger) Option {
	return func(g *Gate) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGate constructs a gate for the supplied credential. An empty credential
// keeps the gate permanently locked.
func NewGate(token string, opts ...Option) *Gate {
	gate := &Gate{
		token:    token,
		sessions: make(map[uuid.UUID]*Session),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(gate)
	}
	return gate
}

// Unlock compares the candidate against the configured credential and opens
// a session on an exact match. Any mismatch returns ErrReviewLocked.
func (g *Gate) Unlock(candidate string) (*Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if strings.TrimSpace(g.token) == "" {
		return nil, ErrReviewLocked
	}
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(g.token)) != 1 {
		if g.logger != nil {
			g.logger.Warn("review unlock rejected")
		}
		return nil, ErrReviewLocked
	}

	session := &Session{ID: uuid.New(), UnlockedAt: g.now()}
	g.sessions[session.ID] = session
	if g.logger != nil {
		g.logger.Info("review session opened", "session_id", session.ID.String())
	}
	return session, nil
}

// Require returns ErrReviewLocked unless the session was issued by this gate
// and is still open.
func (g *Gate) Require(session *Session) error {
	if session == nil {
		return ErrReviewLocked
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.sessions[session.ID]; !ok {
		return ErrReviewLocked
	}
	return nil
}

// Lock closes the supplied session. Closing an unknown session is a no-op.
func (g *Gate) Lock(session *Session) {
	if session == nil {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.sessions, session.ID)
}
