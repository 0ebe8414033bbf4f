package docstring

import (
	"regexp"
	"strings"

	"go.jacobcolvin.com/pydocstring/diag"
	"go.jacobcolvin.com/pydocstring/typespec"
)

// Roles (:class:`x`) and inline literals (``x``) may contain colons that do
// not separate a field name from its value.
var xrefOrCodeRE = regexp.MustCompile("^(?::(?:[a-zA-Z0-9]+[-_+:.])*[a-zA-Z0-9]+:`.+?`|``.+?``)")

// PartitionColon splits text on its first single colon, ignoring colons
// that are doubled or inside roles and inline literals. Both halves are
// trimmed. ok is false when no such colon exists, in which case before is
// the whole trimmed text.
func PartitionColon(text string) (before string, ok bool, after string) {
	for i := 0; i < len(text); {
		if m := xrefOrCodeRE.FindStringIndex(text[i:]); m != nil {
			i += m[1]

			continue
		}

		if text[i] == '`' {
			if end := strings.IndexByte(text[i+1:], '`'); end >= 0 {
				i += end + 2

				continue
			}
		}

		if text[i] == ':' {
			doubled := (i > 0 && text[i-1] == ':') || (i+1 < len(text) && text[i+1] == ':')
			if !doubled {
				return strings.TrimSpace(text[:i]), true, strings.TrimSpace(text[i+1:])
			}
		}

		i++
	}

	return strings.TrimSpace(text), false, ""
}

// extractFields fills sec.Fields according to the style's layout for the
// section kind. Type expressions are scanned as fields are found, so their
// diagnostics are added to bag in field order.
func extractFields(style Style, sec *Section, bag *diag.Bag) {
	if !sec.Kind.HasFields() {
		return
	}

	switch style.Layout(sec.Kind) {
	case LayoutFields:
		sec.Fields = fieldList(style, sec.Kind, sec.Body)
	case LayoutBlock:
		if f, ok := blockField(style, sec.Kind, sec.Body); ok {
			sec.Fields = []Field{f}
		}

	case LayoutProse:
		return
	}

	for i := range sec.Fields {
		f := &sec.Fields[i]
		if f.Type == "" {
			continue
		}

		markup, diags := typespec.Convert(f.Type, f.HeaderLine)
		f.TypeMarkup = markup

		bag.Add(diags...)
	}
}

// fieldList splits body into fields. A field starts at each non-blank line
// indented no deeper than the first one; deeper and blank lines continue
// the current field.
func fieldList(style Style, kind SectionKind, body []Line) []Field {
	var (
		fields []Field
		base   = -1
	)

	for i := 0; i < len(body); {
		if isBlank(body[i].Text) {
			i++

			continue
		}

		if base < 0 {
			base = indentOf(body[i].Text)
		}

		start := i
		hdr := style.FieldHeader(kind, strings.TrimSpace(body[i].Text))

		for i++; i < len(body); i++ {
			if !isBlank(body[i].Text) && indentOf(body[i].Text) <= base {
				break
			}
		}

		var desc []string
		if hdr.Desc != "" {
			desc = append(desc, hdr.Desc)
		}

		desc = append(desc, dedent(texts(body[start+1:i]))...)

		fields = append(fields, Field{
			Name:        hdr.Name,
			Type:        hdr.Type,
			Description: stripBlank(desc),
			HeaderLine:  body[start].Num,
			Origin:      spanOf(body[start:i]),
		})
	}

	return fields
}

// blockField reads body as a single field whose first line is its header.
func blockField(style Style, kind SectionKind, body []Line) (Field, bool) {
	start := 0
	for start < len(body) && isBlank(body[start].Text) {
		start++
	}

	if start == len(body) {
		return Field{}, false
	}

	lines := stripBlank(dedent(texts(body[start:])))
	hdr := style.FieldHeader(kind, strings.TrimSpace(lines[0]))

	var desc []string
	if hdr.Desc != "" {
		desc = append(desc, hdr.Desc)
	}

	desc = append(desc, lines[1:]...)

	return Field{
		Name:        hdr.Name,
		Type:        hdr.Type,
		Description: stripBlank(desc),
		HeaderLine:  body[start].Num,
		Origin:      spanOf(body[start:]),
	}, true
}
