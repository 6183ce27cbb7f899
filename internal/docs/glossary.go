package docs

import (
	"sort"
	"strings"
	"unicode"

	"github.com/pryank18/ArchaeologyWala/pkg/interfaces"
)

// GlossarySpan aliases the shared annotation span type.
type GlossarySpan = interfaces.GlossarySpan

// Glossary maps a term to the definition shown inline when the term occurs
// in article prose. Terms are stored lower-cased.
type Glossary struct {
	single map[string]string
	phrase map[string]string
}

// DefaultTerms is the built-in term list the site ships with.
func DefaultTerms() map[string]string {
	return map[string]string{
		"sherds":             "Broken fragments of pottery recovered from an excavation.",
		"stratigraphy":       "The layering of deposits; deeper strata are generally older.",
		"provenance":         "The recorded find-spot of an artifact within a site.",
		"typology":           "Classification of artifacts by shared form and decoration.",
		"midden":             "A refuse heap of domestic waste, shell, bone, and ash.",
		"in situ":            "An artifact still in its original depositional position.",
		"carbon dating":      "Radiometric dating based on the decay of carbon-14.",
		"flotation":          "Water separation of seeds and charcoal from excavated soil.",
		"ostracon":           "A pottery fragment reused as a writing surface.",
		"assemblage":         "The full set of artifacts recovered from one context.",
		"terminus post quem": "The earliest possible date for a deposit.",
	}
}

// NewGlossary builds a glossary from term definitions. Single-word terms are
// matched on word boundaries with naive trailing-s tolerance; multi-word
// terms are matched as case-insensitive substrings.
func NewGlossary(terms map[string]string) *Glossary {
	g := &Glossary{
		single: make(map[string]string),
		phrase: make(map[string]string),
	}
	for term, definition := range terms {
		key := strings.ToLower(strings.TrimSpace(term))
		if key == "" {
			continue
		}
		if strings.ContainsAny(key, " \t") {
			g.phrase[key] = definition
		} else {
			g.single[key] = definition
		}
	}
	return g
}

// Len reports the number of known terms.
func (g *Glossary) Len() int {
	if g == nil {
		return 0
	}
	return len(g.single) + len(g.phrase)
}

// Annotate locates glossary occurrences in text and returns non-overlapping
// spans ordered by start offset. Matching is intentionally naive: exact
// case-insensitive hits plus trailing-s singularization, no stemming, and
// phrases are accepted wherever they occur as substrings.
func (g *Glossary) Annotate(text string) []GlossarySpan {
	if g == nil || text == "" {
		return nil
	}

	var spans []GlossarySpan
	spans = append(spans, g.annotatePhrases(text)...)
	spans = append(spans, g.annotateWords(text)...)

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End > spans[j].End
	})

	// Drop spans overlapping an earlier (longer-first) winner.
	out := spans[:0]
	lastEnd := -1
	for _, span := range spans {
		if span.Start < lastEnd {
			continue
		}
		out = append(out, span)
		lastEnd = span.End
	}
	return out
}

func (g *Glossary) annotatePhrases(text string) []GlossarySpan {
	if len(g.phrase) == 0 {
		return nil
	}
	lowered := strings.ToLower(text)

	var spans []GlossarySpan
	for phrase, definition := range g.phrase {
		from := 0
		for {
			idx := strings.Index(lowered[from:], phrase)
			if idx < 0 {
				break
			}
			start := from + idx
			end := start + len(phrase)
			spans = append(spans, GlossarySpan{
				Start:      start,
				End:        end,
				Term:       phrase,
				Definition: definition,
			})
			from = end
		}
	}
	return spans
}

func (g *Glossary) annotateWords(text string) []GlossarySpan {
	if len(g.single) == 0 {
		return nil
	}

	var spans []GlossarySpan
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		word := text[start:end]
		if term, definition, ok := g.lookupWord(word); ok {
			spans = append(spans, GlossarySpan{
				Start:      start,
				End:        end,
				Term:       term,
				Definition: definition,
			})
		}
		start = -1
	}

	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		flush(i)
	}
	flush(len(text))

	return spans
}

// lookupWord resolves a word against the single-word terms. The whole word
// must match a term (directly, with a trailing s added, or with a trailing s
// removed); prefixes never match.
func (g *Glossary) lookupWord(word string) (term, definition string, ok bool) {
	lowered := strings.ToLower(word)

	if definition, ok := g.single[lowered]; ok {
		return lowered, definition, true
	}
	if definition, ok := g.single[lowered+"s"]; ok {
		return lowered + "s", definition, true
	}
	if trimmed, found := strings.CutSuffix(lowered, "s"); found && trimmed != "" {
		if definition, ok := g.single[trimmed]; ok {
			return trimmed, definition, true
		}
	}
	return "", "", false
}
