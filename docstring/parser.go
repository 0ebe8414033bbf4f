package docstring

import (
	"errors"
	"fmt"
	"log/slog"

	"go.jacobcolvin.com/pydocstring/diag"
)

// Sentinel errors returned by the parser.
var (
	ErrInvalidOption = errors.New("invalid option")
	ErrNoStyle       = errors.New("no style")
)

// Result is the outcome of parsing one docstring.
type Result struct {
	// Markup is the canonical field-list rendering.
	Markup string
	// Sections are the sections the docstring was split into, in order.
	Sections []Section
	// Diagnostics are in discovery order unless the parser was created
	// with [WithSortedDiagnostics].
	Diagnostics []diag.Diagnostic
}

// Parser converts docstrings of one [Style] into canonical markup.
//
// A Parser is immutable after construction and safe for concurrent use.
type Parser struct {
	style  Style
	logger *slog.Logger
	sorted bool
}

// Option configures a [Parser].
type Option func(*Parser)

// NewParser creates a [Parser] for the given style.
func NewParser(style Style, opts ...Option) *Parser {
	p := &Parser{
		style:  style,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithSortedDiagnostics orders diagnostics by line number instead of
// discovery order. Diagnostics on the same line keep their relative order.
func WithSortedDiagnostics(sorted bool) Option {
	return func(p *Parser) {
		p.sorted = sorted
	}
}

// Style returns the parser's style.
func (p *Parser) Style() Style {
	return p.style
}

// Parse converts text, the docstring of an entity of the given kind.
//
// Malformed type expressions never cause an error; they are reported in
// [Result.Diagnostics]. An error is only returned for an invalid kind or a
// parser without a style.
func (p *Parser) Parse(text string, kind Kind) (*Result, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, kind)
	}

	if p.style == nil {
		return nil, ErrNoStyle
	}

	lines := SplitLines(text)

	var inline *inlineType
	if kind.AttributeLike() {
		lines, inline = takeInlineType(p.style, lines)
	}

	var bag diag.Bag

	sections := splitSections(p.style, lines)
	for i := range sections {
		sec := &sections[i]

		var found diag.Bag

		extractFields(p.style, sec, &found)

		p.logger.Debug("section",
			slog.String("style", p.style.Name()),
			slog.String("title", sec.Title),
			slog.String("kind", sec.Kind.String()),
			slog.Int("start", sec.Origin.Start),
			slog.Int("end", sec.Origin.End),
			slog.Int("fields", len(sec.Fields)),
			slog.Int("diagnostics", found.Len()),
		)

		bag.Merge(&found)
	}

	markup := assemble(sections, inline, &bag)

	if p.sorted {
		bag.SortByLine()
	}

	return &Result{
		Markup:      markup,
		Sections:    sections,
		Diagnostics: bag.Items(),
	}, nil
}

// takeInlineType splits a "type: description" first line. It returns lines
// with the first line replaced by its description, and the type, if any.
// A first line with nothing after its colon is a description alone and
// loses the colon. Section headers are left alone.
func takeInlineType(style Style, lines []Line) ([]Line, *inlineType) {
	first := 0
	for first < len(lines) && isBlank(lines[first].Text) {
		first++
	}

	if first == len(lines) {
		return lines, nil
	}

	if _, _, header := style.SectionHeader(lines, first); header {
		return lines, nil
	}

	before, ok, after := PartitionColon(lines[first].Text)
	if !ok || before == "" {
		return lines, nil
	}

	out := make([]Line, len(lines))
	copy(out, lines)

	indent := lines[first].Text[:indentOf(lines[first].Text)]

	if after == "" {
		out[first].Text = indent + before

		return out, nil
	}

	out[first].Text = indent + after

	return out, &inlineType{expr: before, line: lines[first].Num}
}
