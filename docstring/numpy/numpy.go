package numpy

import (
	"strings"

	"go.jacobcolvin.com/pydocstring/docstring"
)

// Style is the NumPy docstring style.
type Style struct{}

// New creates a NumPy [Style].
func New() *Style {
	return &Style{}
}

// Name returns the style name.
func (s *Style) Name() string {
	return "numpy"
}

// SectionHeader matches a title line followed by an underline.
func (s *Style) SectionHeader(lines []docstring.Line, i int) (string, int, bool) {
	if i+1 >= len(lines) {
		return "", 0, false
	}

	title := strings.TrimSpace(lines[i].Text)
	if _, ok := docstring.LookupSection(title); !ok {
		return "", 0, false
	}

	if !isUnderline(strings.TrimSpace(lines[i+1].Text), len(title)) {
		return "", 0, false
	}

	return title, 2, true
}

// isUnderline reports whether s is one punctuation character repeated at
// least n times.
func isUnderline(s string, n int) bool {
	if len(s) < n || len(s) == 0 || !strings.ContainsRune("-=~_*+#^\"'`:.", rune(s[0])) {
		return false
	}

	return strings.Count(s, s[:1]) == len(s)
}

// EndsSection always returns false; NumPy sections run to the next header.
func (s *Style) EndsSection(_, _ docstring.Line) bool {
	return false
}

// Layout returns [docstring.LayoutFields] for every field section.
func (s *Style) Layout(kind docstring.SectionKind) docstring.Layout {
	if kind.HasFields() {
		return docstring.LayoutFields
	}

	return docstring.LayoutProse
}

// FieldHeader parses "name : type". Returns and yields without a colon are
// read as a bare type, and exception headers are taken whole.
func (s *Style) FieldHeader(kind docstring.SectionKind, text string) docstring.FieldHeader {
	switch kind {
	case docstring.SectionRaises, docstring.SectionWarns:
		return docstring.FieldHeader{Name: text}
	}

	name, ok, typ := docstring.PartitionColon(text)

	switch kind {
	case docstring.SectionReturns, docstring.SectionYields:
		if !ok || typ == "" {
			return docstring.FieldHeader{Type: name}
		}
	}

	return docstring.FieldHeader{Name: name, Type: typ}
}
