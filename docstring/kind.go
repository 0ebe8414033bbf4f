package docstring

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidKind indicates a missing or unrecognized entity kind.
var ErrInvalidKind = errors.New("invalid entity kind")

// Kind identifies what a docstring documents. The parser only uses it to
// decide whether attribute-inline typing applies; see [Kind.AttributeLike].
//
// The zero value is not a valid kind.
type Kind uint8

// Entity kinds.
const (
	KindModule Kind = iota + 1
	KindClass
	KindFunction
	KindMethod
	KindAttribute
	KindProperty
	KindVariable
	KindConstant
)

var kindNames = []string{
	KindModule:    "module",
	KindClass:     "class",
	KindFunction:  "function",
	KindMethod:    "method",
	KindAttribute: "attribute",
	KindProperty:  "property",
	KindVariable:  "variable",
	KindConstant:  "constant",
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= KindModule && int(k) < len(kindNames)
}

// AttributeLike reports whether docstrings of this kind may open with an
// inline "type: description" line.
func (k Kind) AttributeLike() bool {
	switch k {
	case KindAttribute, KindProperty, KindVariable, KindConstant:
		return true
	}

	return false
}

func (k Kind) String() string {
	if !k.Valid() {
		return "invalid"
	}

	return kindNames[k]
}

// MarshalText implements [encoding.TextMarshaler].
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, k)
	}

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

// ParseKind parses a kind name such as "attribute" or "function".
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range kindNames {
		if n != "" && n == name {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// AllKindStrings returns the names of all kinds, for flag completion.
func AllKindStrings() []string {
	names := make([]string, 0, len(kindNames)-1)
	for _, n := range kindNames[1:] {
		names = append(names, n)
	}

	return names
}
