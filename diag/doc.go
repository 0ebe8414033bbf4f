// Package diag defines the line-attributed diagnostics produced while
// parsing docstrings.
//
// A [Diagnostic] reports a lexical fault in an inline type expression, such
// as a string literal without its closing quote. Diagnostics are data, not
// errors: parsing always continues and the faults are returned alongside the
// best-effort result.
//
// A [Bag] accumulates diagnostics in the order they are discovered. That
// order is not necessarily ascending by line; use [Bag.SortByLine] to opt
// into line order.
package diag
