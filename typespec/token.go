package typespec

import "strings"

// TokenKind classifies a [Token].
type TokenKind uint8

const (
	// KindIdentifier is a name such as "int" or "numpy.ndarray".
	KindIdentifier TokenKind = iota + 1
	// KindQuotedLiteral is a single or double quoted string literal.
	KindQuotedLiteral
	// KindBraceSet is a value set such as "{'a', 'b'}".
	KindBraceSet
	// KindBracketGeneric is a bracketed argument list such as "[str, int]".
	// Its Children hold the tokens between the brackets.
	KindBracketGeneric
	// KindDelimiter is punctuation or a natural-language separator.
	KindDelimiter
	// KindControl is one of the words "optional" or "default".
	KindControl
	// KindNumber is a numeric literal.
	KindNumber
)

func (k TokenKind) String() string {
	switch k {
	case KindIdentifier:
		return "identifier"
	case KindQuotedLiteral:
		return "quoted-literal"
	case KindBraceSet:
		return "brace-set"
	case KindBracketGeneric:
		return "bracket-generic"
	case KindDelimiter:
		return "delimiter"
	case KindControl:
		return "control"
	case KindNumber:
		return "number"
	}

	return "unknown"
}

// Token is one lexical element of a type expression.
type Token struct {
	// Text is the source text of the token. For [KindBracketGeneric] it
	// spans the brackets and everything between them.
	Text     string
	Children []Token
	Kind     TokenKind
	// WellFormed is false for quotes and braces missing a delimiter, and for
	// brackets that are never closed.
	WellFormed bool
}

// IsLiteral reports whether the token renders as a literal value.
func (t Token) IsLiteral() bool {
	return t.Kind == KindQuotedLiteral || t.Kind == KindBraceSet || t.Kind == KindNumber
}

func joinText(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}

	return sb.String()
}
