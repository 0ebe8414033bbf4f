package docstring

import (
	"errors"
	"fmt"
)

// ErrInvalidSectionKind indicates an unrecognized section kind name.
var ErrInvalidSectionKind = errors.New("invalid section kind")

// SectionKind classifies a docstring section by how its body is rendered.
type SectionKind uint8

// Section kinds. [SectionProse] holds lines outside any recognized section.
const (
	SectionProse SectionKind = iota
	SectionParams
	SectionKeywordParams
	SectionOtherParams
	SectionAttributes
	SectionReturns
	SectionYields
	SectionRaises
	SectionWarns
	SectionNote
	SectionWarning
	SectionSeeAlso
	SectionExample
	SectionReferences
	SectionTodo
	SectionAdmonition
)

var sectionKindNames = [...]string{
	SectionProse:         "prose",
	SectionParams:        "params",
	SectionKeywordParams: "keyword-params",
	SectionOtherParams:   "other-params",
	SectionAttributes:    "attributes",
	SectionReturns:       "returns",
	SectionYields:        "yields",
	SectionRaises:        "raises",
	SectionWarns:         "warns",
	SectionNote:          "note",
	SectionWarning:       "warning",
	SectionSeeAlso:       "see-also",
	SectionExample:       "example",
	SectionReferences:    "references",
	SectionTodo:          "todo",
	SectionAdmonition:    "admonition",
}

func (k SectionKind) String() string {
	if int(k) < len(sectionKindNames) {
		return sectionKindNames[k]
	}

	return "unknown"
}

// MarshalText implements [encoding.TextMarshaler].
func (k SectionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *SectionKind) UnmarshalText(b []byte) error {
	for i, name := range sectionKindNames {
		if name == string(b) {
			*k = SectionKind(i)

			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrInvalidSectionKind, b)
}

// HasFields reports whether sections of this kind hold a list of fields.
func (k SectionKind) HasFields() bool {
	switch k {
	case SectionParams, SectionKeywordParams, SectionOtherParams, SectionAttributes,
		SectionReturns, SectionYields, SectionRaises, SectionWarns:
		return true
	}

	return false
}

// Recognized section titles. Matching is exact and case-sensitive.
var vocabulary = map[string]SectionKind{
	"Args":              SectionParams,
	"Arguments":         SectionParams,
	"Parameters":        SectionParams,
	"Keyword Args":      SectionKeywordParams,
	"Keyword Arguments": SectionKeywordParams,
	"Other Parameters":  SectionOtherParams,
	"Attributes":        SectionAttributes,
	"Returns":           SectionReturns,
	"Return":            SectionReturns,
	"Yields":            SectionYields,
	"Yield":             SectionYields,
	"Raises":            SectionRaises,
	"Raise":             SectionRaises,
	"Warns":             SectionWarns,
	"Note":              SectionNote,
	"Notes":             SectionNote,
	"Warning":           SectionWarning,
	"Warnings":          SectionWarning,
	"See Also":          SectionSeeAlso,
	"Example":           SectionExample,
	"Examples":          SectionExample,
	"References":        SectionReferences,
	"Todo":              SectionTodo,
	"Attention":         SectionAdmonition,
	"Caution":           SectionAdmonition,
	"Danger":            SectionAdmonition,
	"Error":             SectionAdmonition,
	"Hint":              SectionAdmonition,
	"Important":         SectionAdmonition,
	"Tip":               SectionAdmonition,
}

// LookupSection returns the kind of a section title, reporting false when
// the title is not a recognized section header.
func LookupSection(title string) (SectionKind, bool) {
	k, ok := vocabulary[title]

	return k, ok
}

// Section is a contiguous run of docstring lines. Every input line belongs
// to exactly one section.
type Section struct {
	// Title is the header text as written; empty for prose.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	// Body holds the lines after the header.
	Body   []Line      `json:"-"                yaml:"-"`
	Fields []Field     `json:"fields,omitempty" yaml:"fields,omitempty"`
	Origin LineSpan    `json:"origin"           yaml:"origin"`
	Kind   SectionKind `json:"kind"             yaml:"kind"`
}

// Field is one entry of a field section such as a parameter or a raised
// exception.
type Field struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
	// Type is the raw type expression; empty when absent.
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
	// TypeMarkup is Type converted to canonical markup.
	TypeMarkup  string   `json:"typeMarkup,omitempty"  yaml:"typeMarkup,omitempty"`
	Description []string `json:"description,omitempty" yaml:"description,omitempty"`
	// HeaderLine is the line the field's name or type appears on.
	HeaderLine int      `json:"headerLine" yaml:"headerLine"`
	Origin     LineSpan `json:"origin"     yaml:"origin"`
}
