package docs

import (
	"strings"

	"github.com/pryank18/ArchaeologyWala/pkg/interfaces"
)

// Heading aliases the shared TOC entry type.
type Heading = interfaces.Heading

// Outline scans body line by line and returns its heading outline in
// document order. A heading is 1-6 marker characters, a space, then text;
// the level is the marker count and the text keeps its wording with inline
// emphasis markers stripped.
//
// Identifiers are not deduplicated: a later heading with the same generated
// id collides with the earlier in-page anchor. Known limitation.
func Outline(body string) []Heading {
	var headings []Heading

	for _, line := range strings.Split(body, "\n") {
		level := headingLevel(line)
		if level == 0 {
			continue
		}
		text := stripEmphasis(strings.TrimSpace(line[level+1:]))
		headings = append(headings, Heading{
			Level: level,
			Text:  text,
			ID:    Slugify(text),
		})
	}

	return headings
}

// headingLevel returns the marker count for a heading line, or zero when the
// line is not a heading.
func headingLevel(line string) int {
	count := 0
	for count < len(line) && line[count] == '#' {
		count++
	}
	if count < 1 || count > 6 {
		return 0
	}
	if count >= len(line) || line[count] != ' ' {
		return 0
	}
	return count
}

// stripEmphasis drops the inline emphasis markers markdown would consume so
// the outline shows plain wording.
func stripEmphasis(text string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '*', '_', '`':
			return -1
		}
		return r
	}, text)
}
