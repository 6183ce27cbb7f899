package docs

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"

	"github.com/pryank18/ArchaeologyWala/internal/logging"
	"github.com/pryank18/ArchaeologyWala/pkg/interfaces"
)

// Processor is the document processor: it derives the heading outline,
// reading-time estimate, and glossary annotations for an article body, and
// renders the body to HTML with those annotations applied. It holds no
// per-document state and is safe for concurrent use.
type Processor struct {
	glossary       *Glossary
	engine         goldmark.Markdown
	wordsPerMinute int
	minimumMinutes int
	logger         interfaces.Logger
}

var _ interfaces.DocumentProcessor = (*Processor)(nil)

// Options configures the processor.
type Options struct {
	// Glossary overrides the built-in term list when non-nil.
	Glossary *Glossary
	// Render tunes the markdown pipeline.
	Render interfaces.RenderOptions
	// WordsPerMinute and MinimumMinutes tune the reading-time estimator;
	// zero values use the defaults (220 wpm, 3 minute floor).
	WordsPerMinute int
	MinimumMinutes int
	Logger         interfaces.Logger
}

// New constructs a processor.
func New(opts Options) *Processor {
	glossary := opts.Glossary
	if glossary == nil {
		glossary = NewGlossary(DefaultTerms())
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Processor{
		glossary:       glossary,
		engine:         newEngine(glossary, opts.Render),
		wordsPerMinute: opts.WordsPerMinute,
		minimumMinutes: opts.MinimumMinutes,
		logger:         logger,
	}
}

// Outline returns the heading outline of body in document order.
func (p *Processor) Outline(body string) []Heading {
	return Outline(body)
}

// ReadingTime estimates whole minutes to read body. Used as the fallback
// when a post carries no explicit minutes field.
func (p *Processor) ReadingTime(body string) int {
	return ReadingTime(body, p.wordsPerMinute, p.minimumMinutes)
}

// Annotate locates glossary terms in a run of plain prose.
func (p *Processor) Annotate(text string) []interfaces.GlossarySpan {
	return p.glossary.Annotate(text)
}

// Render converts body to HTML with heading anchors injected and glossary
// occurrences wrapped. Draft previews use this entry point alone.
func (p *Processor) Render(body string) ([]byte, error) {
	var buf bytes.Buffer
	if err := p.engine.Convert([]byte(body), &buf); err != nil {
		p.logger.Error("docs.render.failed", "error", err)
		return nil, fmt.Errorf("docs: render: %w", err)
	}
	return buf.Bytes(), nil
}
