package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/pydocstring/diag"
	"go.jacobcolvin.com/pydocstring/docstring"
)

// Format is an output format for results.
type Format string

// Output formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var allFormats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, known := range allFormats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: unknown format %q", ErrInvalidOption, s)
}

// AllFormatStrings returns the output format names.
func AllFormatStrings() []string {
	out := make([]string, len(allFormats))
	for i, f := range allFormats {
		out[i] = string(f)
	}

	return out
}

// Write renders results to w in the given format.
func Write(w io.Writer, f Format, results []Result) error {
	var (
		out []byte
		err error
	)

	switch f {
	case FormatJSON:
		if results == nil {
			results = []Result{}
		}

		out, err = json.MarshalIndent(results, "", "  ")
		out = append(out, '\n')

	case FormatYAML:
		out, err = yaml.MarshalWithOptions(results, yaml.UseLiteralStyleIfMultiline(true))

	case FormatText:
		out = []byte(text(results))

	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidOption, f)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

// text renders each result under a header line naming the entity.
func text(results []Result) string {
	var sb strings.Builder

	for i, r := range results {
		if i > 0 {
			sb.WriteByte('\n')
		}

		fmt.Fprintf(&sb, "=== %s (%s)\n", r.Name, r.Kind)

		switch {
		case r.Error != "":
			fmt.Fprintf(&sb, "error: %s\n", r.Error)
		case r.Markup != "":
			sb.WriteString(r.Markup)
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// Schema returns the JSON Schema of the [FormatJSON] output.
func Schema() *jsonschema.Schema {
	str := func(desc string) *jsonschema.Schema {
		return &jsonschema.Schema{Type: "string", Description: desc}
	}

	integer := func(desc string) *jsonschema.Schema {
		return &jsonschema.Schema{Type: "integer", Description: desc}
	}

	span := &jsonschema.Schema{
		Type:        "object",
		Description: "Half-open range [start, end) of docstring line numbers.",
		Properties: map[string]*jsonschema.Schema{
			"start": integer("First line."),
			"end":   integer("Line after the last line."),
		},
		Required: []string{"start", "end"},
	}

	var sectionKinds []any
	for k := docstring.SectionProse; k <= docstring.SectionAdmonition; k++ {
		sectionKinds = append(sectionKinds, k.String())
	}

	var diagKinds []any
	for _, k := range diag.AllKinds() {
		diagKinds = append(diagKinds, k.String())
	}

	field := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name":       str("Field name."),
			"type":       str("Type expression as written."),
			"typeMarkup": str("Type expression as markup."),
			"description": {
				Type:  "array",
				Items: str(""),
			},
			"headerLine": integer("Line of the field header."),
			"origin":     span,
		},
		Required: []string{"headerLine", "origin"},
	}

	section := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"title":  str("Header text; absent for prose."),
			"kind":   {Type: "string", Enum: sectionKinds},
			"origin": span,
			"fields": {Type: "array", Items: field},
		},
		Required: []string{"kind", "origin"},
	}

	diagnostic := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"kind":       {Type: "string", Enum: diagKinds},
			"message":    str("Human-readable description."),
			"line":       integer("Line within the docstring, starting at 1."),
			"sourceLine": integer("Line within the source file."),
			"section":    {Type: "string", Enum: sectionKinds, Description: "Kind of the section holding the line."},
		},
		Required: []string{"kind", "message", "line"},
	}

	result := &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"name":        str("Documented entity."),
			"kind":        str("Entity kind."),
			"file":        str("Source file."),
			"line":        integer("Line the docstring starts on."),
			"markup":      str("Canonical field-list markup."),
			"error":       str("Why the entry could not be parsed."),
			"sections":    {Type: "array", Items: section},
			"diagnostics": {Type: "array", Items: diagnostic},
		},
		Required: []string{"name", "kind", "markup"},
	}

	return &jsonschema.Schema{
		Schema:      "http://json-schema.org/draft-07/schema#",
		Title:       "docparse results",
		Description: "Results of parsing a batch of docstrings.",
		Type:        "array",
		Items:       result,
	}
}
