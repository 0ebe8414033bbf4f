package docstring

import (
	"fmt"
	"strings"
)

// Line is one line of a docstring together with its 1-based line number
// in the original text. Derived lines keep the number of the line they were
// sliced from.
type Line struct {
	Text string
	Num  int
}

// LineSpan is the half-open range [Start, End) of original line numbers.
type LineSpan struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end"   yaml:"end"`
}

// Len returns the number of lines in the span.
func (s LineSpan) Len() int {
	return s.End - s.Start
}

// Contains reports whether line n falls within the span.
func (s LineSpan) Contains(n int) bool {
	return s.Start <= n && n < s.End
}

func (s LineSpan) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}

// spanOf returns the span covering lines, which must be consecutive.
func spanOf(lines []Line) LineSpan {
	if len(lines) == 0 {
		return LineSpan{}
	}

	return LineSpan{Start: lines[0].Num, End: lines[len(lines)-1].Num + 1}
}

// SplitLines splits text into numbered lines. A single trailing newline does
// not start another line, and carriage returns before a newline are dropped.
func SplitLines(text string) []Line {
	if text == "" {
		return nil
	}

	raw := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	lines := make([]Line, len(raw))

	for i, r := range raw {
		lines[i] = Line{Num: i + 1, Text: strings.TrimSuffix(r, "\r")}
	}

	return lines
}

// indentOf counts leading whitespace characters.
func indentOf(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// dedent removes the smallest indentation shared by the non-blank lines.
// Blank lines become empty.
func dedent(lines []string) []string {
	minIndent := -1

	for _, l := range lines {
		if isBlank(l) {
			continue
		}

		if n := indentOf(l); minIndent < 0 || n < minIndent {
			minIndent = n
		}
	}

	out := make([]string, len(lines))

	for i, l := range lines {
		if isBlank(l) {
			continue
		}

		out[i] = l[minIndent:]
	}

	return out
}

// stripBlank drops leading and trailing blank lines.
func stripBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && isBlank(lines[start]) {
		start++
	}

	for end > start && isBlank(lines[end-1]) {
		end--
	}

	return lines[start:end]
}

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}

	return out
}
