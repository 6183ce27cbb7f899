package content

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	slugpkg "github.com/goliatone/go-slug"

	"github.com/pryank18/ArchaeologyWala/internal/logging"
	"github.com/pryank18/ArchaeologyWala/internal/store"
	"github.com/pryank18/ArchaeologyWala/pkg/interfaces"
)

// Service owns the published corpus and every reader-side interaction
// record: bookmarks, likes, comments, learning progress, and the persisted
// display preferences. In-memory state is authoritative for the session;
// each mutation writes through to the store best-effort.
type Service struct {
	mu        sync.RWMutex
	posts     []Post
	bookmarks map[string]struct{}
	likes     map[string]int
	comments  map[string][]Comment
	progress  Progress
	fontScale float64
	darkMode  bool

	lastCommentID int64

	store    *store.Store
	logger   interfaces.Logger
	now      func() time.Time
	onChange []func([]Post)
}

// Option configures the service.
type Option func(*Service)

// WithLogger injects the corpus logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the clock used for comment timestamps (testing).
func WithClock(clock func() time.Time) Option {
	return func(s *Service) {
		if clock != nil {
			s.now = clock
		}
	}
}

// New constructs the corpus service, hydrating every entity from the store.
// Missing or unreadable persisted state degrades to the documented defaults.
func New(ctx context.Context, st *store.Store, opts ...Option) *Service {
	s := &Service{
		store:  st,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.posts = store.Load(ctx, st, store.KeyPosts, []Post{})
	s.likes = store.Load(ctx, st, store.KeyLikes, map[string]int{})
	s.progress = store.Load(ctx, st, store.KeyLearningTrack, Progress{})
	s.fontScale = store.Load(ctx, st, store.KeyFontScale, 1.0)
	s.darkMode = store.Load(ctx, st, store.KeyDarkMode, false)
	s.comments = make(map[string][]Comment)

	s.bookmarks = make(map[string]struct{})
	for _, slug := range store.Load(ctx, st, store.KeyBookmarks, []string{}) {
		s.bookmarks[slug] = struct{}{}
	}

	return s
}

// OnCorpusChange registers a hook invoked with the full corpus after every
// corpus mutation. The search index rebuild hangs off this hook.
func (s *Service) OnCorpusChange(fn func([]Post)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.onChange = append(s.onChange, fn)
	s.mu.Unlock()
}

// Posts returns the corpus newest-first.
func (s *Service) Posts(ctx context.Context) []Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePosts(s.posts)
}

// Get returns the post with the supplied slug.
func (s *Service) Get(ctx context.Context, slug string) (*Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, post := range s.posts {
		if post.Slug == slug {
			copied := post
			return &copied, nil
		}
	}
	return nil, ErrPostNotFound
}

// AddPost prepends a post to the corpus. The slug must be well-formed and
// unique corpus-wide.
func (s *Service) AddPost(ctx context.Context, post Post) error {
	slug := strings.TrimSpace(post.Slug)
	if slug == "" {
		return ErrSlugRequired
	}
	if !slugpkg.IsValid(slug) {
		return ErrSlugInvalid
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hasSlugLocked(slug) {
		return ErrSlugExists
	}

	post.Slug = slug
	s.posts = append([]Post{post}, s.posts...)
	s.persistPostsLocked(ctx)
	s.notifyLocked()

	s.logger.Info("content.post.added", "slug", slug)
	return nil
}

// ReplacePost swaps the stored post carrying the same slug. This is the only
// sanctioned mutation of a published post.
func (s *Service) ReplacePost(ctx context.Context, post Post) error {
	slug := strings.TrimSpace(post.Slug)
	if slug == "" {
		return ErrSlugRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.posts {
		if s.posts[i].Slug == slug {
			post.Slug = slug
			s.posts[i] = post
			s.persistPostsLocked(ctx)
			s.notifyLocked()
			s.logger.Info("content.post.replaced", "slug", slug)
			return nil
		}
	}
	return ErrPostNotFound
}

// HasSlug reports whether the corpus already contains slug.
func (s *Service) HasSlug(slug string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasSlugLocked(slug)
}

// ToggleBookmark flips bookmark membership for slug and reports the new
// membership. Toggling twice restores the original state.
func (s *Service) ToggleBookmark(ctx context.Context, slug string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, bookmarked := s.bookmarks[slug]
	if bookmarked {
		delete(s.bookmarks, slug)
	} else {
		s.bookmarks[slug] = struct{}{}
	}

	store.Save(ctx, s.store, store.KeyBookmarks, s.bookmarkListLocked())
	return !bookmarked
}

// Bookmarks returns the bookmarked slugs. Order is not significant; the
// slice is sorted only to keep persistence deterministic.
func (s *Service) Bookmarks(ctx context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bookmarkListLocked()
}

// Like increments the like counter for slug and returns the new count.
// Counters are monotonic; nothing in the core decrements them.
func (s *Service) Like(ctx context.Context, slug string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.likes[slug]++
	store.Save(ctx, s.store, store.KeyLikes, s.likes)
	return s.likes[slug]
}

// Likes returns a copy of the per-slug like counters.
func (s *Service) Likes(ctx context.Context) map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int, len(s.likes))
	for slug, count := range s.likes {
		out[slug] = count
	}
	return out
}

// AddComment validates and prepends a comment to the post's thread.
func (s *Service) AddComment(ctx context.Context, slug, name, text string) (*Comment, error) {
	name = strings.TrimSpace(name)
	text = strings.TrimSpace(text)

	if err := (validation.Errors{
		"slug": validation.Validate(slug, validation.Required),
		"name": validation.Validate(name, validation.Required),
		"text": validation.Validate(text, validation.Required),
	}).Filter(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	comment := Comment{
		ID:   s.nextCommentIDLocked(),
		Name: name,
		Text: text,
		Date: s.now().UTC(),
	}

	thread := s.threadLocked(ctx, slug)
	thread = append([]Comment{comment}, thread...)
	s.comments[slug] = thread

	store.Save(ctx, s.store, store.CommentsKey(slug), thread)
	return &comment, nil
}

// Comments returns the post's thread newest-first.
func (s *Service) Comments(ctx context.Context, slug string) []Comment {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread := s.threadLocked(ctx, slug)
	out := make([]Comment, len(thread))
	copy(out, thread)
	return out
}

// ToggleMilestone flips milestone completion for a learning track and
// reports the new completion state.
func (s *Service) ToggleMilestone(ctx context.Context, track, milestone string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	milestones := s.progress[track]
	for i, m := range milestones {
		if m == milestone {
			s.progress[track] = append(milestones[:i], milestones[i+1:]...)
			if len(s.progress[track]) == 0 {
				delete(s.progress, track)
			}
			store.Save(ctx, s.store, store.KeyLearningTrack, s.progress)
			return false
		}
	}

	s.progress[track] = append(milestones, milestone)
	store.Save(ctx, s.store, store.KeyLearningTrack, s.progress)
	return true
}

// Progress returns a copy of the learning progress record.
func (s *Service) Progress(ctx context.Context) Progress {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(Progress, len(s.progress))
	for track, milestones := range s.progress {
		copied := make([]string, len(milestones))
		copy(copied, milestones)
		out[track] = copied
	}
	return out
}

// FontScale returns the persisted reader font multiplier.
func (s *Service) FontScale(ctx context.Context) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fontScale
}

// SetFontScale persists the reader font multiplier.
func (s *Service) SetFontScale(ctx context.Context, scale float64) {
	if scale <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fontScale = scale
	store.Save(ctx, s.store, store.KeyFontScale, scale)
}

// DarkMode returns the persisted dark mode preference.
func (s *Service) DarkMode(ctx context.Context) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}

// SetDarkMode persists the dark mode preference.
func (s *Service) SetDarkMode(ctx context.Context, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode = enabled
	store.Save(ctx, s.store, store.KeyDarkMode, enabled)
}

func (s *Service) hasSlugLocked(slug string) bool {
	for _, post := range s.posts {
		if post.Slug == slug {
			return true
		}
	}
	return false
}

func (s *Service) bookmarkListLocked() []string {
	out := make([]string, 0, len(s.bookmarks))
	for slug := range s.bookmarks {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}

// threadLocked returns the comment thread for slug, hydrating it from the
// store on first access.
func (s *Service) threadLocked(ctx context.Context, slug string) []Comment {
	if thread, ok := s.comments[slug]; ok {
		return thread
	}
	thread := store.Load(ctx, s.store, store.CommentsKey(slug), []Comment{})
	s.comments[slug] = thread
	return thread
}

// nextCommentIDLocked issues creation-timestamp ids that stay strictly
// increasing even when two comments land within the same millisecond.
func (s *Service) nextCommentIDLocked() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastCommentID {
		id = s.lastCommentID + 1
	}
	s.lastCommentID = id
	return id
}

func (s *Service) persistPostsLocked(ctx context.Context) {
	store.Save(ctx, s.store, store.KeyPosts, s.posts)
}

func (s *Service) notifyLocked() {
	posts := clonePosts(s.posts)
	for _, fn := range s.onChange {
		fn(posts)
	}
}

func clonePosts(posts []Post) []Post {
	out := make([]Post, len(posts))
	copy(out, posts)
	return out
}

// SearchDocuments projects the corpus into the search index's document form.
func SearchDocuments(posts []Post) []interfaces.SearchDocument {
	docs := make([]interfaces.SearchDocument, 0, len(posts))
	for _, post := range posts {
		docs = append(docs, interfaces.SearchDocument{
			Slug:  post.Slug,
			Title: post.Title,
			Tags:  post.Tags,
			Body:  post.Body,
		})
	}
	return docs
}
