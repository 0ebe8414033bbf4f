package google

import (
	"regexp"
	"strings"

	"go.jacobcolvin.com/pydocstring/docstring"
)

// typedArgRE matches "name (type)" at the start of a field header.
var typedArgRE = regexp.MustCompile(`^(.+?)\(\s*(.*[^\s]+)\s*\)`)

// Style is the Google docstring style.
type Style struct{}

// New creates a Google [Style].
func New() *Style {
	return &Style{}
}

// Name returns the style name.
func (s *Style) Name() string {
	return "google"
}

// SectionHeader matches a "Title:" line whose next non-blank line is
// indented deeper.
func (s *Style) SectionHeader(lines []docstring.Line, i int) (string, int, bool) {
	text := strings.TrimSpace(lines[i].Text)

	title, found := strings.CutSuffix(text, ":")
	if !found {
		return "", 0, false
	}

	title = strings.TrimSpace(title)
	if _, ok := docstring.LookupSection(title); !ok {
		return "", 0, false
	}

	indent := indentOf(lines[i].Text)

	for _, l := range lines[i+1:] {
		if strings.TrimSpace(l.Text) == "" {
			continue
		}

		if indentOf(l.Text) > indent {
			return title, 1, true
		}

		break
	}

	return "", 0, false
}

// EndsSection reports whether line is a non-blank line indented no deeper
// than header.
func (s *Style) EndsSection(header, line docstring.Line) bool {
	return strings.TrimSpace(line.Text) != "" && indentOf(line.Text) <= indentOf(header.Text)
}

// Layout returns [docstring.LayoutBlock] for returns and yields.
func (s *Style) Layout(kind docstring.SectionKind) docstring.Layout {
	switch kind {
	case docstring.SectionReturns, docstring.SectionYields:
		return docstring.LayoutBlock
	}

	if kind.HasFields() {
		return docstring.LayoutFields
	}

	return docstring.LayoutProse
}

// FieldHeader parses "name (type): description", "Type: description" for
// exceptions, and "type: description" for returns.
func (s *Style) FieldHeader(kind docstring.SectionKind, text string) docstring.FieldHeader {
	before, ok, after := docstring.PartitionColon(text)

	switch kind {
	case docstring.SectionReturns, docstring.SectionYields:
		if !ok {
			return docstring.FieldHeader{Desc: text}
		}

		return docstring.FieldHeader{Type: before, Desc: after}

	case docstring.SectionRaises, docstring.SectionWarns:
		return docstring.FieldHeader{Name: before, Desc: after}
	}

	h := docstring.FieldHeader{Name: before, Desc: after}

	if m := typedArgRE.FindStringSubmatch(before); m != nil {
		h.Name = strings.TrimSpace(m[1])
		h.Type = m[2]
	}

	return h
}

func indentOf(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}
