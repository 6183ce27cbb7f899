package docs

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"

	"github.com/pryank18/ArchaeologyWala/pkg/interfaces"
)

// newEngine builds a goldmark.Markdown with the annotator installed as the
// renderer for headings and text runs. The annotator is the one
// implementation of the per-element rendering hooks: it injects outline
// anchors into headings and routes prose through the glossary.
func newEngine(glossary *Glossary, opts interfaces.RenderOptions) goldmark.Markdown {
	rendererOptions := []renderer.Option{
		renderer.WithNodeRenderers(util.Prioritized(&annotator{glossary: glossary}, 100)),
	}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithRendererOptions(rendererOptions...),
	}
	if exts := collectExtensions(opts.Extensions); len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{
			extension.GFM,
			extension.Table,
			extension.Strikethrough,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}

// annotator overrides the heading and text renderers. Every other element
// kind falls through to goldmark's default HTML renderer.
type annotator struct {
	glossary *Glossary
}

var _ renderer.NodeRenderer = (*annotator)(nil)

func (a *annotator) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, a.renderHeading)
	reg.Register(ast.KindText, a.renderText)
}

func (a *annotator) renderHeading(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	if !entering {
		fmt.Fprintf(w, "</h%d>\n", n.Level)
		return ast.WalkContinue, nil
	}

	id := Slugify(string(n.Text(source)))
	if id == "" {
		fmt.Fprintf(w, "<h%d>", n.Level)
	} else {
		fmt.Fprintf(w, "<h%d id=\"%s\">", n.Level, util.EscapeHTML([]byte(id)))
	}
	return ast.WalkContinue, nil
}

func (a *annotator) renderText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Text)
	value := n.Segment.Value(source)

	// Headings keep their anchors clean; annotation applies to body prose.
	if insideHeading(n) {
		_, _ = w.Write(util.EscapeHTML(value))
	} else {
		a.writeAnnotated(w, value)
	}

	switch {
	case n.HardLineBreak():
		_, _ = w.WriteString("<br>\n")
	case n.SoftLineBreak():
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

func (a *annotator) writeAnnotated(w util.BufWriter, value []byte) {
	text := string(value)
	spans := a.glossary.Annotate(text)
	if len(spans) == 0 {
		_, _ = w.Write(util.EscapeHTML(value))
		return
	}

	cursor := 0
	for _, span := range spans {
		if span.Start > cursor {
			_, _ = w.Write(util.EscapeHTML([]byte(text[cursor:span.Start])))
		}
		fmt.Fprintf(w, "<span class=\"glossary-term\" title=\"%s\">", util.EscapeHTML([]byte(span.Definition)))
		_, _ = w.Write(util.EscapeHTML([]byte(text[span.Start:span.End])))
		_, _ = w.WriteString("</span>")
		cursor = span.End
	}
	if cursor < len(text) {
		_, _ = w.Write(util.EscapeHTML([]byte(text[cursor:])))
	}
}

func insideHeading(node ast.Node) bool {
	for parent := node.Parent(); parent != nil; parent = parent.Parent() {
		if parent.Kind() == ast.KindHeading {
			return true
		}
	}
	return false
}
