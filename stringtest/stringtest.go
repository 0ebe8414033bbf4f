// Package stringtest provides helpers for building expected strings in
// tests.
package stringtest

import "strings"

// Input removes one leading and one trailing newline from s, along with any
// indentation after the trailing newline, then removes the indentation
// common to all non-blank lines. Whitespace-only lines become empty. Use it
// to write multi-line test input as an indented raw string literal.
//
// Example:
//
//	text := stringtest.Input(`
//	    Args:
//	        x (int): A number.
//	`) // -> "Args:\n    x (int): A number."
func Input(s string) string {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(strings.TrimRight(s, " \t"), "\n")

	lines := strings.Split(s, "\n")
	indent := -1

	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}

		n := len(l) - len(strings.TrimLeft(l, " \t"))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	for i, l := range lines {
		if strings.TrimSpace(l) == "" {
			lines[i] = ""

			continue
		}

		lines[i] = l[indent:]
	}

	return strings.Join(lines, "\n")
}

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\nline2\nline3"
func JoinLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}

// JoinCRLF joins multiple strings with CRLF line endings.
// Use this to construct expected test output with explicit line endings on
// Windows.
//
// Example:
//
//	want := stringtest.JoinCRLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\r\nline2\r\nline3"
func JoinCRLF(ss ...string) string {
	var sb strings.Builder
	for i, s := range ss {
		if i > 0 {
			sb.WriteByte('\r')
			sb.WriteByte('\n')
		}

		sb.WriteString(s)
	}

	return sb.String()
}
