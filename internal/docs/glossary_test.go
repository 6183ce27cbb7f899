package docs

import (
	"strings"
	"testing"
)

func TestGlossaryAnnotatesKnownTerm(t *testing.T) {
	g := NewGlossary(map[string]string{"sherds": "Broken fragments of pottery."})

	spans := g.Annotate("We catalogued the sherds by fabric.")
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d: %#v", len(spans), spans)
	}
	span := spans[0]
	if span.Term != "sherds" || span.Definition != "Broken fragments of pottery." {
		t.Fatalf("unexpected span: %#v", span)
	}
	if got := "We catalogued the sherds by fabric."[span.Start:span.End]; got != "sherds" {
		t.Fatalf("span offsets select %q", got)
	}
}

func TestGlossarySingularizesTrailingS(t *testing.T) {
	g := NewGlossary(map[string]string{"sherds": "def"})

	if spans := g.Annotate("a single sherd on the baulk"); len(spans) != 1 {
		t.Fatalf("expected singular form to match plural term, got %#v", spans)
	}

	g2 := NewGlossary(map[string]string{"midden": "def"})
	if spans := g2.Annotate("two middens were sectioned"); len(spans) != 1 {
		t.Fatalf("expected plural form to match singular term, got %#v", spans)
	}
}

func TestGlossaryRejectsPrefixMatches(t *testing.T) {
	g := NewGlossary(map[string]string{"sherd": "def"})

	if spans := g.Annotate("the sherdlike gravel and shermans"); len(spans) != 0 {
		t.Fatalf("prefix words must not match, got %#v", spans)
	}
}

func TestGlossaryMatchesPhrasesAsSubstrings(t *testing.T) {
	g := NewGlossary(map[string]string{"in situ": "Still in original position."})

	text := "The hearth was recorded In Situ before lifting."
	spans := g.Annotate(text)
	if len(spans) != 1 {
		t.Fatalf("expected phrase match, got %#v", spans)
	}
	if got := text[spans[0].Start:spans[0].End]; !strings.EqualFold(got, "in situ") {
		t.Fatalf("phrase span selects %q", got)
	}
}

func TestGlossarySpansDoNotOverlap(t *testing.T) {
	g := NewGlossary(map[string]string{
		"carbon dating": "radiometric",
		"carbon":        "element",
	})

	spans := g.Annotate("carbon dating settled the debate")
	if len(spans) != 1 {
		t.Fatalf("expected overlap resolution to a single span, got %#v", spans)
	}
	if spans[0].Term != "carbon dating" {
		t.Fatalf("expected longer phrase to win, got %#v", spans[0])
	}
}
