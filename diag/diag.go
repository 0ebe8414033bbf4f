package diag

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownKind indicates an unrecognized diagnostic kind name.
var ErrUnknownKind = errors.New("unknown diagnostic kind")

// Kind classifies a [Diagnostic].
type Kind uint8

const (
	// KindUnknown is the zero value and is never emitted.
	KindUnknown Kind = iota
	// UnterminatedQuote is a string literal missing its closing quote.
	UnterminatedQuote
	// UnopenedQuote is a string literal missing its opening quote.
	UnopenedQuote
	// UnterminatedBrace is a value set missing its closing brace.
	UnterminatedBrace
	// UnopenedBrace is a value set missing its opening brace.
	UnopenedBrace
)

var kindNames = map[Kind]string{
	UnterminatedQuote: "unterminated-quote",
	UnopenedQuote:     "unopened-quote",
	UnterminatedBrace: "unterminated-brace",
	UnopenedBrace:     "unopened-brace",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Kind) UnmarshalText(b []byte) error {
	kind, err := ParseKind(string(b))
	if err != nil {
		return err
	}

	*k = kind

	return nil
}

// ParseKind parses a kind name as produced by [Kind.String].
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == strings.ToLower(s) {
			return k, nil
		}
	}

	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// AllKinds returns every emitted kind in declaration order.
func AllKinds() []Kind {
	kinds := make([]Kind, 0, len(kindNames))
	for k := range kindNames {
		kinds = append(kinds, k)
	}

	slices.Sort(kinds)

	return kinds
}

// Diagnostic is a non-fatal, line-attributed fault found in a docstring.
type Diagnostic struct {
	Message string `json:"message" yaml:"message"`
	// Line is the 1-based line in the original docstring.
	Line int  `json:"line" yaml:"line"`
	Kind Kind `json:"kind" yaml:"kind"`
}

// New creates a [Diagnostic] of the given kind for the offending text.
// The message describes the fault and quotes the text.
func New(kind Kind, line int, text string) Diagnostic {
	return Diagnostic{
		Kind:    kind,
		Line:    line,
		Message: fmt.Sprintf("%s: %s", describe(kind), text),
	}
}

func describe(kind Kind) string {
	switch kind {
	case UnterminatedQuote:
		return "malformed string literal (missing closing quote)"
	case UnopenedQuote:
		return "malformed string literal (missing opening quote)"
	case UnterminatedBrace:
		return "invalid value set (missing closing brace)"
	case UnopenedBrace:
		return "invalid value set (missing opening brace)"
	}

	return "malformed type expression"
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}
