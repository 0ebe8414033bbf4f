package docstring

import (
	"fmt"
	"slices"
)

// Layout describes how the body of a section divides into fields.
type Layout uint8

// Section body layouts.
const (
	// LayoutProse bodies are free text.
	LayoutProse Layout = iota
	// LayoutFields bodies hold one field per header line.
	LayoutFields
	// LayoutBlock bodies form a single field.
	LayoutBlock
)

// FieldHeader is the parsed header line of a field.
type FieldHeader struct {
	Name string
	Type string
	// Desc is description text found on the header line itself.
	Desc string
}

// Style is a docstring convention, such as Google or NumPy.
//
// Style implementations must be stateless; one value is shared by every
// [Parser] that uses it.
type Style interface {
	Name() string

	// SectionHeader reports whether a section header starts at lines[i],
	// returning its title and the number of lines the header occupies.
	SectionHeader(lines []Line, i int) (title string, size int, ok bool)

	// EndsSection reports whether line, found after the header line of a
	// section, no longer belongs to that section.
	EndsSection(header, line Line) bool

	// Layout returns the body layout of sections of the given kind.
	Layout(kind SectionKind) Layout

	// FieldHeader parses the trimmed header line of a field in a section of
	// the given kind.
	FieldHeader(kind SectionKind, text string) FieldHeader
}

// Registry maps style names to styles.
type Registry map[string]Style

// Add registers styles under their names.
func (r Registry) Add(styles ...Style) {
	for _, s := range styles {
		r[s.Name()] = s
	}
}

// Names returns the registered style names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Get returns the named style.
func (r Registry) Get(name string) (Style, error) {
	s, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown style %q", ErrInvalidOption, name)
	}

	return s, nil
}
