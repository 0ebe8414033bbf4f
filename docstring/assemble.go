package docstring

import (
	"regexp"
	"strings"

	"go.jacobcolvin.com/pydocstring/diag"
	"go.jacobcolvin.com/pydocstring/typespec"
)

// Field markers of the prose-like sections.
var proseMarkers = map[SectionKind]string{
	SectionNote:       "note",
	SectionWarning:    "warning",
	SectionSeeAlso:    "see",
	SectionExample:    "example",
	SectionReferences: "references",
	SectionTodo:       "todo",
}

var listItemRE = regexp.MustCompile(`^\s*(?:[-*+]|\d+[.)]|#\.)\s`)

// inlineType is the type taken from the first line of an attribute-like
// docstring.
type inlineType struct {
	expr string
	line int
}

type assembler struct {
	bag   *diag.Bag
	lines []string
}

func assemble(sections []Section, inline *inlineType, bag *diag.Bag) string {
	a := &assembler{bag: bag}

	for _, sec := range sections {
		a.section(sec)
	}

	if inline != nil {
		markup, diags := typespec.Convert(inline.expr, inline.line)
		a.bag.Add(diags...)
		a.separate()
		a.emit(":type: " + markup)
	}

	return strings.Join(stripBlank(a.lines), "\n")
}

func (a *assembler) emit(lines ...string) {
	a.lines = append(a.lines, lines...)
}

// separate ensures the next line starts a new paragraph.
func (a *assembler) separate() {
	if n := len(a.lines); n > 0 && !isBlank(a.lines[n-1]) {
		a.emit("")
	}
}

func (a *assembler) section(sec Section) {
	if sec.Kind == SectionProse {
		a.emit(texts(sec.Body)...)

		return
	}

	a.separate()

	switch sec.Kind {
	case SectionParams, SectionOtherParams:
		a.params("param", sec.Fields)
	case SectionKeywordParams:
		a.params("keyword", sec.Fields)
	case SectionAttributes:
		a.params("ivar", sec.Fields)
	case SectionReturns:
		a.returns("returns", "rtype", sec.Fields)
	case SectionYields:
		a.returns("yields", "ytype", sec.Fields)
	case SectionRaises:
		a.exceptions("raises", sec.Fields)
	case SectionWarns:
		a.exceptions("warns", sec.Fields)
	case SectionAdmonition:
		a.prose(strings.ToLower(sec.Title), sec.Body)
	default:
		a.prose(proseMarkers[sec.Kind], sec.Body)
	}

	a.emit("")
}

func (a *assembler) prose(marker string, body []Line) {
	a.emit(formatBlock(":"+marker+": ", stripBlank(dedent(texts(body))))...)
}

func (a *assembler) params(marker string, fields []Field) {
	for _, f := range fields {
		for name := range strings.SplitSeq(f.Name, ",") {
			name = EscapeArgs(strings.TrimSpace(name))

			a.emit(formatBlock(":"+marker+" "+name+": ", fixDescription(f.Description))...)

			if f.TypeMarkup != "" {
				a.emit(":type " + name + ": " + f.TypeMarkup)
			}
		}
	}
}

func (a *assembler) returns(marker, typeMarker string, fields []Field) {
	if len(fields) == 1 {
		f := fields[0]

		item := formatField(EscapeArgs(f.Name), "", f.Description)
		if len(item) > 0 {
			a.emit(formatBlock(":"+marker+": ", item)...)
		}

		if f.TypeMarkup != "" {
			a.emit(":" + typeMarker + ": " + f.TypeMarkup)
		}

		return
	}

	prefix := ":" + marker + ": "
	padding := strings.Repeat(" ", len(prefix))

	for i, f := range fields {
		lead := padding
		if i == 0 {
			lead = prefix
		}

		item := formatField(EscapeArgs(f.Name), f.TypeMarkup, f.Description)
		a.emit(formatBlock(lead+"* ", item)...)
	}
}

func (a *assembler) exceptions(marker string, fields []Field) {
	for _, f := range fields {
		name := f.Name
		if name == "" {
			name = f.Type
		}

		prefix := ":" + marker + ": "
		if name != "" {
			prefix = ":" + marker + " " + name + ": "
		}

		a.emit(formatBlock(prefix, fixDescription(f.Description))...)
	}
}

// formatBlock prefixes the first line and pads the rest to the prefix
// width. An empty block yields the bare prefix.
func formatBlock(prefix string, lines []string) []string {
	if len(lines) == 0 {
		return []string{strings.TrimRight(prefix, " ")}
	}

	padding := strings.Repeat(" ", len(prefix))
	out := make([]string, len(lines))

	for i, l := range lines {
		switch {
		case i == 0:
			out[i] = strings.TrimRight(prefix+l, " ")
		case isBlank(l):
			out[i] = ""
		default:
			out[i] = padding + l
		}
	}

	return out
}

// formatField renders a list item of the form "**name** (type) -- desc".
func formatField(name, typ string, desc []string) []string {
	desc = fixDescription(desc)

	var field string

	switch {
	case name != "" && typ != "":
		field = "**" + name + "** (" + typ + ")"
	case name != "":
		field = "**" + name + "**"
	case typ != "":
		field = typ
	}

	hasDesc := len(desc) > 0 && strings.Join(desc, "") != ""

	switch {
	case !hasDesc:
		if field == "" {
			return nil
		}

		return []string{field}
	case field == "":
		return desc
	case desc[0] == "":
		return append([]string{field + " --"}, desc...)
	default:
		return append([]string{field + " -- " + desc[0]}, desc[1:]...)
	}
}

// fixDescription starts a description that opens with a list on its own
// line.
func fixDescription(desc []string) []string {
	if len(desc) > 0 && listItemRE.MatchString(desc[0]) {
		return append([]string{""}, desc...)
	}

	return desc
}

// EscapeArgs escapes the leading stars of "*args" and "**kwargs" so they
// are not read as emphasis.
func EscapeArgs(name string) string {
	switch {
	case strings.HasPrefix(name, "**"):
		return `\*\*` + name[2:]
	case strings.HasPrefix(name, "*"):
		return `\*` + name[1:]
	}

	return name
}
