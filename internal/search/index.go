package search

import (
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/pryank18/ArchaeologyWala/internal/logging"
	"github.com/pryank18/ArchaeologyWala/pkg/interfaces"
)

const defaultThreshold = 0.34

// Field weights: a title hit outranks a tag hit outranks a body hit.
const (
	titleWeight = 3.0
	tagWeight   = 2.0
	bodyWeight  = 1.0
)

// Index answers fuzzy free-text queries over the published corpus. It is a
// projection of the corpus and must be rebuilt after every corpus mutation;
// queries against a stale index are a correctness bug, not an acceptable
// approximation.
type Index struct {
	mu         sync.RWMutex
	docs       []indexedDoc
	threshold  float64
	maxResults int
	logger     interfaces.Logger
}

var _ interfaces.SearchIndex = (*Index)(nil)

type indexedDoc struct {
	slug   string
	fields []indexedField
}

type indexedField struct {
	weight float64
	text   string
	words  []string
}

// Option configures the index.
type Option func(*Index)

// WithThreshold sets the normalized edit-distance ceiling for a term to
// count as a word match. Values outside (0, 1] keep the default.
func WithThreshold(threshold float64) Option {
	return func(i *Index) {
		if threshold > 0 && threshold <= 1 {
			i.threshold = threshold
		}
	}
}

// WithMaxResults caps the ranked result list; zero means unlimited.
func WithMaxResults(max int) Option {
	return func(i *Index) {
		if max >= 0 {
			i.maxResults = max
		}
	}
}

// WithLogger injects the index logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(i *Index) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// New constructs an empty index.
func New(opts ...Option) *Index {
	idx := &Index{
		threshold: defaultThreshold,
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(idx)
	}
	return idx
}

// Rebuild replaces the indexed documents with the supplied corpus. Posts are
// kept in corpus order so an empty query reproduces the corpus exactly.
func (i *Index) Rebuild(posts []interfaces.SearchDocument) {
	docs := make([]indexedDoc, 0, len(posts))
	for _, post := range posts {
		docs = append(docs, indexedDoc{
			slug: post.Slug,
			fields: []indexedField{
				newField(titleWeight, post.Title),
				newField(tagWeight, strings.Join(post.Tags, " ")),
				newField(bodyWeight, post.Body),
			},
		})
	}

	i.mu.Lock()
	i.docs = docs
	i.mu.Unlock()

	i.logger.Debug("search.rebuild", "documents", len(docs))
}

func newField(weight float64, text string) indexedField {
	lowered := strings.ToLower(text)
	return indexedField{
		weight: weight,
		text:   lowered,
		words:  uniqueWords(lowered),
	}
}

func uniqueWords(text string) []string {
	fields := strings.Fields(text)
	seen := make(map[string]struct{}, len(fields))
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		word := strings.Trim(field, ".,;:!?\"'()[]{}")
		if word == "" {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	return words
}

// Search returns matching slugs ranked by relevance. An empty or whitespace
// query returns every indexed slug in corpus order. Every query term must
// match at least one field for a document to qualify.
func (i *Index) Search(query string) []string {
	i.mu.RLock()
	docs := i.docs
	i.mu.RUnlock()

	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		out := make([]string, len(docs))
		for n, doc := range docs {
			out[n] = doc.slug
		}
		return out
	}

	type ranked struct {
		slug  string
		score float64
		order int
	}

	var results []ranked
	for order, doc := range docs {
		total := 0.0
		qualified := true
		for _, term := range terms {
			score := doc.score(term, i.threshold)
			if score == 0 {
				qualified = false
				break
			}
			total += score
		}
		if qualified {
			results = append(results, ranked{slug: doc.slug, score: total, order: order})
		}
	}

	sort.Slice(results, func(a, b int) bool {
		if results[a].score != results[b].score {
			return results[a].score > results[b].score
		}
		return results[a].order < results[b].order
	})

	if i.maxResults > 0 && len(results) > i.maxResults {
		results = results[:i.maxResults]
	}

	out := make([]string, len(results))
	for n, r := range results {
		out[n] = r.slug
	}
	return out
}

// score returns the best weighted field score for term, zero when no field
// matches.
func (d indexedDoc) score(term string, threshold float64) float64 {
	best := 0.0
	for _, field := range d.fields {
		if s := field.score(term, threshold); s > best {
			best = s
		}
	}
	return best
}

// score values exact substring hits highest, then close typo matches by
// normalized edit distance, then loose subsequence hits for partial terms.
func (f indexedField) score(term string, threshold float64) float64 {
	if f.text == "" {
		return 0
	}
	if strings.Contains(f.text, term) {
		return f.weight
	}

	best := 0.0
	for _, word := range f.words {
		if distance := normalizedDistance(term, word); distance <= threshold {
			if s := f.weight * (1 - distance); s > best {
				best = s
			}
			continue
		}
		if fuzzy.MatchNormalizedFold(term, word) {
			if s := f.weight * 0.25; s > best {
				best = s
			}
		}
	}
	return best
}

func normalizedDistance(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	return float64(fuzzy.LevenshteinDistance(a, b)) / float64(longest)
}
