// Package wala is the content core of a personal publishing site: a typed
// persistent store, a markdown document processor, a fuzzy search index, and
// an editorial submission pipeline, assembled behind a single Module façade.
package wala

import (
	"context"
	"io/fs"
	"strings"

	"github.com/pryank18/ArchaeologyWala/internal/commands"
	"github.com/pryank18/ArchaeologyWala/internal/content"
	"github.com/pryank18/ArchaeologyWala/internal/docs"
	"github.com/pryank18/ArchaeologyWala/internal/logging"
	"github.com/pryank18/ArchaeologyWala/internal/logging/console"
	"github.com/pryank18/ArchaeologyWala/internal/logging/gologger"
	"github.com/pryank18/ArchaeologyWala/internal/review"
	"github.com/pryank18/ArchaeologyWala/internal/search"
	"github.com/pryank18/ArchaeologyWala/internal/store"
	"github.com/pryank18/ArchaeologyWala/internal/submissions"
	"github.com/pryank18/ArchaeologyWala/internal/workflow"
	"github.com/pryank18/ArchaeologyWala/pkg/interfaces"
	"github.com/pryank18/ArchaeologyWala/pkg/storage"
)

// Re-exported domain types so hosts rarely need to import internal packages.
type (
	Post          = content.Post
	Comment       = content.Comment
	Progress      = content.Progress
	Submission    = submissions.Submission
	SubmitRequest = submissions.SubmitRequest
	ReviewSession = review.Session
	Heading       = interfaces.Heading
	GlossarySpan  = interfaces.GlossarySpan
)

// Command message aliases so hosts can dispatch without importing internals.
type (
	ToggleBookmarkCommand    = commands.ToggleBookmarkCommand
	LikePostCommand          = commands.LikePostCommand
	AddCommentCommand        = commands.AddCommentCommand
	SubmitSubmissionCommand  = commands.SubmitSubmissionCommand
	ApproveSubmissionCommand = commands.ApproveSubmissionCommand
	RejectSubmissionCommand  = commands.RejectSubmissionCommand
)

// ErrReviewLocked re-exports the review gate sentinel.
var ErrReviewLocked = review.ErrReviewLocked

// Module is the top level runtime façade. Construct it once and share it; all
// contained services are safe for concurrent readers.
type Module struct {
	cfg Config

	provider storage.Provider
	store    *store.Store
	loggers  interfaces.LoggerProvider

	corpus     *content.Service
	processor  *docs.Processor
	index      *search.Index
	gate       *review.Gate
	engine     *workflow.Engine
	queue      *submissions.Service
	dispatcher *commands.Dispatcher
}

// New constructs a module from cfg, hydrating every service from the
// configured storage provider.
func New(ctx context.Context, cfg Config) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loggers, err := buildLoggerProvider(cfg.Logging)
	if err != nil {
		return nil, err
	}

	provider, err := buildStorageProvider(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	st := store.New(provider, store.WithLogger(logging.StoreLogger(loggers)))

	processor := docs.New(docs.Options{
		Glossary: buildGlossary(cfg.Glossary),
		Render: interfaces.RenderOptions{
			Extensions: cfg.Markdown.Extensions,
			HardWraps:  cfg.Markdown.HardWraps,
			Unsafe:     cfg.Markdown.Unsafe,
		},
		WordsPerMinute: cfg.Reading.WordsPerMinute,
		MinimumMinutes: cfg.Reading.MinimumMinutes,
		Logger:         logging.DocsLogger(loggers),
	})

	corpus := content.New(ctx, st, content.WithLogger(logging.ContentLogger(loggers)))

	index := search.New(
		search.WithThreshold(cfg.Search.Threshold),
		search.WithMaxResults(cfg.Search.MaxResults),
		search.WithLogger(logging.SearchLogger(loggers)),
	)
	corpus.OnCorpusChange(func(posts []content.Post) {
		index.Rebuild(content.SearchDocuments(posts))
	})
	index.Rebuild(content.SearchDocuments(corpus.Posts(ctx)))

	token := cfg.Review.Token
	if strings.TrimSpace(token) == "" {
		token = store.Load(ctx, st, store.KeyReviewToken, "")
	}
	gate := review.NewGate(token, review.WithLogger(logging.SubmissionsLogger(loggers)))

	engine := workflow.New()

	queue := submissions.New(ctx, st, corpus, gate, engine,
		submissions.WithLogger(logging.SubmissionsLogger(loggers)),
		submissions.WithReadingTimer(processor),
		submissions.WithPlaceholderHero(cfg.Review.PlaceholderHero),
	)

	dispatcher := commands.NewDispatcher(corpus, queue, logging.CommandsLogger(loggers))

	return &Module{
		cfg:        cfg,
		provider:   provider,
		store:      st,
		loggers:    loggers,
		corpus:     corpus,
		processor:  processor,
		index:      index,
		gate:       gate,
		engine:     engine,
		queue:      queue,
		dispatcher: dispatcher,
	}, nil
}

// Content returns the corpus and interaction service.
func (m *Module) Content() *content.Service {
	return m.corpus
}

// Documents returns the markdown document processor.
func (m *Module) Documents() interfaces.DocumentProcessor {
	return m.processor
}

// Search runs a fuzzy query against the corpus index and returns matching
// slugs, best first. An empty query returns the whole corpus in order.
func (m *Module) Search(query string) []string {
	return m.index.Search(query)
}

// SearchTagged composes tag filtering with fuzzy search: the tag filter is
// applied first, then matching slugs are returned in ranked order.
func (m *Module) SearchTagged(ctx context.Context, query, tag string) []string {
	ranked := m.index.Search(query)
	if strings.TrimSpace(tag) == "" {
		return ranked
	}
	tagged := make(map[string]bool)
	for _, post := range content.FilterByTag(m.corpus.Posts(ctx), tag) {
		tagged[post.Slug] = true
	}
	out := make([]string, 0, len(ranked))
	for _, slug := range ranked {
		if tagged[slug] {
			out = append(out, slug)
		}
	}
	return out
}

// Submissions returns the editorial queue service.
func (m *Module) Submissions() *submissions.Service {
	return m.queue
}

// Workflow returns the transition engine guarding editorial state changes.
func (m *Module) Workflow() interfaces.WorkflowEngine {
	return m.engine
}

// Commands returns the mutation dispatcher.
func (m *Module) Commands() *commands.Dispatcher {
	return m.dispatcher
}

// Store exposes the typed key-value store for host-level extensions.
func (m *Module) Store() *store.Store {
	return m.store
}

// Unlock opens a review session when candidate matches the configured
// credential. The accepted credential is persisted under the review token
// key so a later construction without a configured token can fall back to
// it.
func (m *Module) Unlock(ctx context.Context, candidate string) (*ReviewSession, error) {
	session, err := m.gate.Unlock(candidate)
	if err != nil {
		return nil, err
	}
	store.Save(ctx, m.store, store.KeyReviewToken, candidate)
	return session, nil
}

// Lock closes a review session.
func (m *Module) Lock(session *ReviewSession) {
	m.gate.Lock(session)
}

// Preview renders draft markdown without touching any stored state.
func (m *Module) Preview(body string) ([]byte, error) {
	return m.processor.Render(body)
}

// LoadSeed imports markdown files with YAML front matter from fsys into the
// corpus and returns how many posts were added.
func (m *Module) LoadSeed(ctx context.Context, fsys fs.FS) (int, error) {
	return m.corpus.LoadSeed(ctx, fsys, m.processor)
}

// Close releases the storage provider when it holds external resources.
func (m *Module) Close() error {
	if closer, ok := m.provider.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func buildLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", "noop":
		return noopProvider{}, nil
	case "console":
		level := consoleLevel(cfg.Level)
		return console.NewProvider(console.Options{MinLevel: &level}), nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
		})
	default:
		return nil, ErrLoggingProviderUnknown
	}
}

func buildStorageProvider(ctx context.Context, cfg StorageConfig) (storage.Provider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", "memory":
		return store.NewMemoryProvider(), nil
	case "sqlite":
		return store.OpenSQLite(ctx, cfg.DSN)
	default:
		return nil, ErrStorageDriverUnknown
	}
}

func buildGlossary(cfg GlossaryConfig) *docs.Glossary {
	if cfg.ReplaceDefaults {
		return docs.NewGlossary(cfg.Terms)
	}
	if len(cfg.Terms) == 0 {
		return nil
	}
	terms := docs.DefaultTerms()
	for term, definition := range cfg.Terms {
		terms[term] = definition
	}
	return docs.NewGlossary(terms)
}

func consoleLevel(level string) console.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return console.LevelTrace
	case "debug":
		return console.LevelDebug
	case "warn", "warning":
		return console.LevelWarn
	case "error":
		return console.LevelError
	case "fatal":
		return console.LevelFatal
	default:
		return console.LevelInfo
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger { return logging.NoOp() }
