package submissions

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/pryank18/ArchaeologyWala/internal/content"
	"github.com/pryank18/ArchaeologyWala/internal/docs"
	"github.com/pryank18/ArchaeologyWala/internal/review"
	"github.com/pryank18/ArchaeologyWala/internal/store"
	"github.com/pryank18/ArchaeologyWala/internal/workflow"
	"github.com/pryank18/ArchaeologyWala/pkg/interfaces"
)

// defaultHero is used when a submission carries no cover image.
const defaultHero = "/images/placeholder-hero.jpg"

// Service manages the editorial queue: intake, approval, rejection.
type Service struct {
	mu      sync.RWMutex
	pending []Submission
	lastID  int64

	store  *store.Store
	corpus *content.Service
	gate   *review.Gate
	engine interfaces.WorkflowEngine

	timer  content.ReadingTimer
	hero   string
	logger interfaces.Logger
	now    func() time.Time
}

// Option configures the service.
type Option func(*Service)

// WithLogger attaches a logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the submission/approval clock (primarily for testing).
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// WithReadingTimer supplies the reading-time estimator used at approval.
func WithReadingTimer(timer content.ReadingTimer) Option {
	return func(s *Service) {
		if timer != nil {
			s.timer = timer
		}
	}
}

// WithPlaceholderHero overrides the hero image used for cover-less submissions.
func WithPlaceholderHero(hero string) Option {
	return func(s *Service) {
		if strings.TrimSpace(hero) != "" {
			s.hero = hero
		}
	}
}

// New constructs the service and hydrates the pending queue from the store.
func New(ctx context.Context, st *store.Store, corpus *content.Service, gate *review.Gate, engine interfaces.WorkflowEngine, opts ...Option) *Service {
	s := &Service{
		store:  st,
		corpus: corpus,
		gate:   gate,
		engine: engine,
		hero:   defaultHero,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.pending = store.Load(ctx, st, store.KeySubmissions, []Submission{})
	for _, sub := range s.pending {
		if sub.ID > s.lastID {
			s.lastID = sub.ID
		}
	}

	return s
}

// Submit validates the request and enqueues a pending submission. A failed
// validation leaves the queue untouched.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*Submission, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sub := Submission{
		ID:          s.nextIDLocked(),
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Affiliation: strings.TrimSpace(req.Affiliation),
		Title:       strings.TrimSpace(req.Title),
		Tags:        req.Tags,
		Cover:       strings.TrimSpace(req.Cover),
		Summary:     strings.TrimSpace(req.Summary),
		Body:        req.Body,
		Agree:       req.Agree,
		Status:      StatusPending,
		Date:        s.now(),
	}

	s.pending = append([]Submission{sub}, s.pending...)
	s.persistLocked(ctx)

	if s.logger != nil {
		s.logger.Info("submission received", "submission_id", sub.ID, "title", sub.Title)
	}

	return &sub, nil
}

// Pending returns the queue newest-first.
func (s *Service) Pending(ctx context.Context) []Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Submission, len(s.pending))
	copy(out, s.pending)
	return out
}

// Get returns a pending submission by id.
func (s *Service) Get(ctx context.Context, id int64) (*Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.pending {
		if s.pending[i].ID == id {
			sub := s.pending[i]
			return &sub, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrSubmissionNotFound, id)
}

// Approve promotes a pending submission into a published post. It requires an
// unlocked review session and a legal workflow transition; the promotion is
// irreversible.
func (s *Service) Approve(ctx context.Context, id int64, session *review.Session) (*content.Post, error) {
	if err := s.gate.Require(session); err != nil {
		return nil, err
	}

	sub, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.engine.Transition(ctx, interfaces.TransitionInput{
		EntityID:     strconv.FormatInt(id, 10),
		EntityType:   workflow.EntityTypeSubmission,
		CurrentState: workflow.StatePending,
		Transition:   "approve",
		ActorID:      session.ID,
	}); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := content.Post{
		Slug:    s.uniqueSlugLocked(sub.Title, sub.ID),
		Title:   sub.Title,
		Author:  sub.Name,
		Date:    s.now(),
		Hero:    sub.Cover,
		Tags:    splitTags(sub.Tags),
		Minutes: s.minutes(sub.Body),
		Body:    sub.Body,
	}
	if post.Hero == "" {
		post.Hero = s.hero
	}

	if err := s.corpus.AddPost(ctx, post); err != nil {
		return nil, err
	}

	s.removeLocked(ctx, id)

	if s.logger != nil {
		s.logger.Info("submission approved", "submission_id", id, "slug", post.Slug)
	}

	return &post, nil
}

// Reject removes a pending submission without publishing anything. It
// requires an unlocked review session.
func (s *Service) Reject(ctx context.Context, id int64, session *review.Session) error {
	if err := s.gate.Require(session); err != nil {
		return err
	}

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if _, err := s.engine.Transition(ctx, interfaces.TransitionInput{
		EntityID:     strconv.FormatInt(id, 10),
		EntityType:   workflow.EntityTypeSubmission,
		CurrentState: workflow.StatePending,
		Transition:   "reject",
		ActorID:      session.ID,
	}); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(ctx, id)

	if s.logger != nil {
		s.logger.Info("submission rejected", "submission_id", id)
	}

	return nil
}

// uniqueSlugLocked derives a corpus-unique slug from the submission title.
// An unslugifiable title falls back to submission-<id>; collisions get a
// numeric suffix.
func (s *Service) uniqueSlugLocked(title string, id int64) string {
	base := docs.Slugify(title)
	if base == "" {
		base = fmt.Sprintf("submission-%d", id)
	}
	slug := base
	for n := 2; s.corpus.HasSlug(slug); n++ {
		slug = fmt.Sprintf("%s-%d", base, n)
	}
	return slug
}

func (s *Service) minutes(body string) int {
	if s.timer != nil {
		return s.timer.ReadingTime(body)
	}
	return docs.ReadingTime(body, 0, 0)
}

func (s *Service) nextIDLocked() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Service) removeLocked(ctx context.Context, id int64) {
	filtered := s.pending[:0]
	for _, sub := range s.pending {
		if sub.ID != id {
			filtered = append(filtered, sub)
		}
	}
	s.pending = filtered
	s.persistLocked(ctx)
}

func (s *Service) persistLocked(ctx context.Context) {
	store.Save(ctx, s.store, store.KeySubmissions, s.pending)
}

func splitTags(raw string) []string {
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
