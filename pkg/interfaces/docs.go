package interfaces

// Heading is a single table-of-contents entry extracted from an article
// body. Level mirrors the markdown marker count (1-6); ID is the URL-safe
// anchor derived from Text. Repeated headings can produce colliding IDs;
// the processor does not deduplicate them.
type Heading struct {
	Level int
	Text  string
	ID    string
}

// GlossarySpan marks an annotated occurrence of a glossary term inside a
// run of prose. Offsets are byte positions into the annotated text.
type GlossarySpan struct {
	Start      int
	End        int
	Term       string
	Definition string
}

// DocumentProcessor turns a raw article body into its navigable, annotated
// form. All methods are pure functions of the body; the processor holds no
// per-document state and is safe for concurrent use.
type DocumentProcessor interface {
	// Outline scans the body and returns its headings in document order.
	Outline(body string) []Heading
	// ReadingTime estimates whole minutes to read the body, never below
	// the configured floor.
	ReadingTime(body string) int
	// Annotate locates glossary terms in a run of plain prose.
	Annotate(text string) []GlossarySpan
	// Render converts the body to HTML with heading anchors injected and
	// glossary occurrences wrapped. Draft previews use Render alone.
	Render(body string) ([]byte, error)
}

// RenderOptions customises markdown rendering behaviour. Option names stay
// readable for configuration unmarshalling.
type RenderOptions struct {
	Extensions []string
	HardWraps  bool
	Unsafe     bool
}
