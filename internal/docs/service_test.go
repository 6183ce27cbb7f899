package docs

import (
	"strings"
	"testing"
)

func TestRenderInjectsHeadingAnchors(t *testing.T) {
	p := New(Options{})

	html, err := p.Render("## Form & function\n\nbody prose\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(string(html), `<h2 id="form-function">`) {
		t.Fatalf("expected anchored heading, got %s", html)
	}
}

func TestRenderWrapsGlossaryTerms(t *testing.T) {
	p := New(Options{
		Glossary: NewGlossary(map[string]string{"sherds": "Broken fragments of pottery."}),
	})

	html, err := p.Render("We bagged the sherds at dusk.\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := string(html)
	if !strings.Contains(out, `<span class="glossary-term" title="Broken fragments of pottery.">sherds</span>`) {
		t.Fatalf("expected annotated term, got %s", out)
	}
}

func TestRenderLeavesHeadingProsePlain(t *testing.T) {
	p := New(Options{
		Glossary: NewGlossary(map[string]string{"sherds": "def"}),
	})

	html, err := p.Render("# Counting sherds\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := string(html)
	if strings.Contains(out, "glossary-term") {
		t.Fatalf("heading text must not carry glossary spans, got %s", out)
	}
	if !strings.Contains(out, `<h1 id="counting-sherds">`) {
		t.Fatalf("expected heading anchor, got %s", out)
	}
}

func TestRenderSupportsTables(t *testing.T) {
	p := New(Options{})

	html, err := p.Render("| ware | count |\n| --- | --- |\n| slipware | 12 |\n")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(html), "<table>") {
		t.Fatalf("expected table output, got %s", html)
	}
}

func TestProcessorReadingTimeUsesConfiguredPace(t *testing.T) {
	p := New(Options{WordsPerMinute: 10, MinimumMinutes: 1})

	body := strings.Repeat("word ", 30)
	if got := p.ReadingTime(body); got != 3 {
		t.Fatalf("expected 3 minutes at 10 wpm for 30 words, got %d", got)
	}
}
