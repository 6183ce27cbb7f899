package docs

import "strings"

// Slugify derives a URL-safe anchor identifier from human-readable text:
// lower-case, drop every rune outside [a-z0-9 -], trim, then collapse
// internal whitespace runs to a single hyphen.
//
//	"Form & function" -> "form-function"
//	"Pottery 101!"    -> "pottery-101"
//	"!!!"             -> ""
func Slugify(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == ' ', r == '\t':
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), "-")
}
