// Package typespec scans the inline type expressions found in docstring
// fields, such as "list of str, optional" or "{'fast', 'slow'}", and renders
// them as canonical markup.
//
// Scanning is lexical only. The scanner recognizes quoted literals, brace
// delimited value sets, bracket delimited generics, natural-language
// delimiters ("or", "of", "and", "to") and the control words "optional" and
// "default". It never validates that a name exists or that a generic is
// applied correctly.
//
// Unbalanced quotes and braces are reported as [diag.Diagnostic] values
// attributed to the line the expression came from. Scanning continues past
// every fault, so one pass finds all independent faults in an expression:
//
//	tokens, diags := typespec.Scan("'spam' or 'baz, optional", 23)
//	// diags[0].Kind == diag.UnterminatedQuote, diags[0].Line == 23
//
// Unbalanced brackets are accepted without a diagnostic; the resulting
// [KindBracketGeneric] token is simply marked as not well formed.
package typespec
