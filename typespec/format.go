package typespec

import (
	"strings"

	"go.jacobcolvin.com/pydocstring/diag"
)

// Format renders tokens as canonical markup. Identifiers become
// interpreted text (`name`), literals become inline literals (``'a'``),
// control words are emphasized (*optional*) and delimiters are kept as is.
func Format(tokens []Token) string {
	var sb strings.Builder

	writeTokens(&sb, tokens)

	return sb.String()
}

// Convert scans expr and renders it with [Format].
func Convert(expr string, line int) (string, []diag.Diagnostic) {
	tokens, diags := Scan(expr, line)

	return Format(tokens), diags
}

func writeTokens(sb *strings.Builder, tokens []Token) {
	for i, tok := range tokens {
		switch {
		case tok.Kind == KindIdentifier:
			if strings.Contains(tok.Text, "`") {
				// Already a reference; keep the author's markup.
				sb.WriteString(tok.Text)
			} else {
				sb.WriteString("`" + tok.Text + "`")
			}

			// Inline markup must be followed by whitespace or punctuation.
			if i+1 < len(tokens) && opensGroup(tokens[i+1]) {
				sb.WriteString(`\ `)
			}

		case tok.IsLiteral():
			sb.WriteString("``" + tok.Text + "``")

		case tok.Kind == KindControl:
			sb.WriteString("*" + tok.Text + "*")

		case tok.Kind == KindBracketGeneric:
			sb.WriteByte('[')
			writeTokens(sb, tok.Children)

			if tok.WellFormed {
				sb.WriteByte(']')
			}

		default:
			sb.WriteString(tok.Text)
		}
	}
}

func opensGroup(tok Token) bool {
	return tok.Kind == KindBracketGeneric || (tok.Kind == KindDelimiter && tok.Text == "(")
}
