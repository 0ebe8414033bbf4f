// Package report prints parse diagnostics as compiler-style warnings:
//
//	shop/cart.py:12: warning: malformed string literal (missing closing quote): 'Item
//
// Color is applied with fatih/color. [Config] resolves the --color flag,
// where "auto" enables color only when the destination is a terminal.
package report
