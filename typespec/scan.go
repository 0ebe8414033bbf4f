package typespec

import (
	"strconv"
	"strings"

	"go.jacobcolvin.com/pydocstring/diag"
)

// Delimiters tried at each position, in priority order. A space in a
// pattern matches any single space or tab.
var (
	wordDelimiters = []string{
		", or ", " or ", " of ", ": ", " to ", ", and ", " and ", ", ",
	}
	punctDelimiters = ",[]()|"
	controlWords    = []string{"optional", "default"}
)

// Scan tokenizes a type expression taken from the given 1-based line.
//
// The returned diagnostics are in discovery order, front to back. Scan never
// fails; malformed tokens are returned with WellFormed set to false.
func Scan(expr string, line int) ([]Token, []diag.Diagnostic) {
	pieces := recombineSets(split(expr))

	tokens := make([]Token, 0, len(pieces))

	var diags []diag.Diagnostic

	for _, p := range pieces {
		tok, d, faulty := classify(p, line)
		if faulty {
			diags = append(diags, d)
		}

		tokens = append(tokens, tok)
	}

	grouped, _, _ := groupBrackets(tokens, 0, 0)

	return grouped, diags
}

// split breaks expr into delimiters, braces, complete quoted literals and
// the plain text between them.
func split(expr string) []string {
	var (
		pieces []string
		start  int
	)

	flush := func(end int) {
		if end > start {
			pieces = append(pieces, expandDefault(expr[start:end])...)
		}
	}

	for i := 0; i < len(expr); {
		n := matchDelimiter(expr, i)
		if n == 0 && (expr[i] == '{' || expr[i] == '}') {
			n = 1
		}

		if n == 0 && (expr[i] == '\'' || expr[i] == '"') {
			n = matchQuoted(expr, i)
		}

		if n == 0 {
			i++

			continue
		}

		flush(i)
		pieces = append(pieces, expr[i:i+n])
		i += n
		start = i
	}

	flush(len(expr))

	return pieces
}

// matchDelimiter returns the length of the delimiter starting at expr[i],
// or zero.
func matchDelimiter(expr string, i int) int {
	for _, pat := range wordDelimiters {
		if hasPatternAt(expr, i, pat) {
			return len(pat)
		}
	}

	if strings.IndexByte(punctDelimiters, expr[i]) >= 0 {
		return 1
	}

	return 0
}

func hasPatternAt(expr string, i int, pat string) bool {
	if i+len(pat) > len(expr) {
		return false
	}

	for j := range len(pat) {
		c := expr[i+j]
		if pat[j] == ' ' {
			if c != ' ' && c != '\t' {
				return false
			}

			continue
		}

		if c != pat[j] {
			return false
		}
	}

	return true
}

// matchQuoted returns the length of the quoted literal opening at expr[i],
// or zero when it is never closed. A backslash escapes the quote character;
// if no unescaped closer exists, the last escaped quote closes the literal.
func matchQuoted(expr string, i int) int {
	q := expr[i]
	lastEscaped := -1

	for k := i + 1; k < len(expr); k++ {
		if expr[k] == '\\' && k+1 < len(expr) && expr[k+1] == q {
			lastEscaped = k + 1
			k++

			continue
		}

		if expr[k] == q {
			return k + 1 - i
		}
	}

	if lastEscaped > 0 {
		return lastEscaped + 1 - i
	}

	return 0
}

// expandDefault splits "default <value>" into the control word, a space and
// the value.
func expandDefault(piece string) []string {
	if len(piece) < 8 || !strings.HasPrefix(piece, "default") || isWordByte(piece[7]) {
		return []string{piece}
	}

	if rest := piece[8:]; rest != "" {
		return []string{"default", " ", rest}
	}

	return []string{"default", " "}
}

func isWordByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// recombineSets joins the pieces of each "{...}" value set into one piece.
func recombineSets(pieces []string) []string {
	out := make([]string, 0, len(pieces))

	for i := 0; i < len(pieces); {
		if pieces[i] != "{" {
			out = append(out, pieces[i])
			i++

			continue
		}

		set, next := takeSet(pieces, i)
		out = append(out, set)
		i = next
	}

	return out
}

// takeSet consumes a value set opening at pieces[i]. It stops when the
// braces balance or, for an unbalanced set, before a control word. Pending
// ", " separators are only kept when more set content follows them.
func takeSet(pieces []string, i int) (string, int) {
	var (
		sb      strings.Builder
		open    int
		pending = -1
	)

	for i < len(pieces) {
		p := pieces[i]

		switch {
		case p == ", ":
			pending = i
			i++

			continue

		case strings.TrimSpace(p) == "":
			i++

			continue

		case isControlWord(p):
			if pending >= 0 {
				i = pending
			}

			return sb.String(), i
		}

		if pending >= 0 {
			sb.WriteString(", ")

			pending = -1
		}

		switch p {
		case "{":
			open++
		case "}":
			open--
		}

		sb.WriteString(p)
		i++

		if open == 0 {
			break
		}
	}

	return sb.String(), i
}

func isControlWord(p string) bool {
	for _, w := range controlWords {
		if p == w {
			return true
		}
	}

	return false
}

// classify turns one piece into a token. The boolean result reports whether
// d holds a fault.
func classify(p string, line int) (Token, diag.Diagnostic, bool) {
	tok := Token{Text: p, WellFormed: true}

	var (
		d      diag.Diagnostic
		faulty bool
	)

	fault := func(kind diag.Kind) {
		tok.WellFormed = false
		d = diag.New(kind, line, p)
		faulty = true
	}

	switch {
	case strings.HasPrefix(p, " ") || strings.HasSuffix(p, " ") ||
		strings.HasPrefix(p, "\t") || strings.HasSuffix(p, "\t"):
		tok.Kind = KindDelimiter
	case len(p) == 1 && strings.IndexByte(punctDelimiters, p[0]) >= 0:
		tok.Kind = KindDelimiter
	case isNumeric(p):
		tok.Kind = KindNumber
	case len(p) >= 2 && p[0] == '{' && p[len(p)-1] == '}':
		tok.Kind = KindBraceSet
	case len(p) >= 2 && isQuote(p[0]) && p[len(p)-1] == p[0]:
		tok.Kind = KindQuotedLiteral
	case strings.HasPrefix(p, "{"):
		tok.Kind = KindBraceSet

		fault(diag.UnterminatedBrace)

	case strings.HasSuffix(p, "}"):
		tok.Kind = KindBraceSet

		fault(diag.UnopenedBrace)

	case isQuote(p[0]):
		tok.Kind = KindQuotedLiteral

		fault(diag.UnterminatedQuote)

	case isQuote(p[len(p)-1]):
		tok.Kind = KindQuotedLiteral

		fault(diag.UnopenedQuote)

	case isControlWord(p):
		tok.Kind = KindControl
	default:
		tok.Kind = KindIdentifier
	}

	return tok, d, faulty
}

func isQuote(c byte) bool {
	return c == '\'' || c == '"'
}

// isNumeric reports whether p is a real or imaginary number literal, with
// "j" accepted as the imaginary suffix.
func isNumeric(p string) bool {
	c := p[0]
	if !('0' <= c && c <= '9') && c != '.' && c != '+' && c != '-' {
		switch strings.ToLower(p) {
		case "inf", "infinity", "nan":
			return true
		}

		return false
	}

	s := p
	if last := s[len(s)-1]; last == 'j' || last == 'J' {
		s = s[:len(s)-1] + "i"
	}

	_, err := strconv.ParseComplex(s, 128)

	return err == nil
}

// groupBrackets nests the tokens between "[" and "]" delimiters into
// [KindBracketGeneric] tokens. It returns the grouped tokens, the index
// after the consumed input and whether a closing bracket ended the group.
func groupBrackets(tokens []Token, i, depth int) ([]Token, int, bool) {
	var grouped []Token

	for i < len(tokens) {
		tok := tokens[i]

		switch {
		case tok.Kind == KindDelimiter && tok.Text == "[":
			children, next, closed := groupBrackets(tokens, i+1, depth+1)

			text := "[" + joinText(children)
			if closed {
				text += "]"
			}

			grouped = append(grouped, Token{
				Kind:       KindBracketGeneric,
				Text:       text,
				Children:   children,
				WellFormed: closed,
			})
			i = next

		case tok.Kind == KindDelimiter && tok.Text == "]" && depth > 0:
			return grouped, i + 1, true

		default:
			grouped = append(grouped, tok)
			i++
		}
	}

	return grouped, i, false
}
