// Package docstring converts Google-style and NumPy-style docstrings into
// canonical field-list markup.
//
// Parsing is fault tolerant. A docstring always produces markup; lexically
// malformed type expressions are reported as line-attributed diagnostics
// (see package diag) and never abort parsing.
//
// # Pipeline
//
// [Parser.Parse] runs each docstring through three stages:
//
//  1. Split: the text is divided into [Section] values using the [Style]
//     to recognize headers. Lines outside any recognized section become
//     prose sections, so every line belongs to exactly one section.
//
//  2. Extract: the bodies of field sections (parameters, attributes,
//     returns and so on) are divided into [Field] values. Each field type
//     expression is scanned as it is found.
//
//  3. Assemble: sections are rendered in input order. Parameters become
//     :param name: and :type name: pairs, returns become :returns: and
//     :rtype:, and prose-like sections such as Note become :note: blocks.
//
// Diagnostics are reported in discovery order. For attribute-like kinds
// (see [Kind.AttributeLike]) a first line of the form "type: description"
// is split; its type is scanned after all sections, so its diagnostics may
// follow diagnostics with larger line numbers. Use [WithSortedDiagnostics]
// to order them by line instead.
//
// # Styles
//
// Styles live in subpackages. Register them in a [Registry] to select one
// by name:
//
//	cfg := docstring.NewConfig()
//	cfg.Registry = styles.DefaultRegistry()
//	cfg.RegisterFlags(cmd.Flags())
//
//	p, err := cfg.NewParser(logger)
//	if err != nil {
//		return err
//	}
//
//	res, err := p.Parse(text, docstring.KindFunction)
package docstring
