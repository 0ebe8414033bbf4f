package diag

import "slices"

// Bag accumulates diagnostics in discovery order.
//
// The zero value is an empty Bag ready for use. A Bag is not safe for
// concurrent use; each parse owns its own.
type Bag struct {
	items []Diagnostic
}

// Add appends diagnostics to the bag.
func (b *Bag) Add(ds ...Diagnostic) {
	b.items = append(b.items, ds...)
}

// Len returns the number of diagnostics.
func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns a copy of the diagnostics in discovery order.
func (b *Bag) Items() []Diagnostic {
	return slices.Clone(b.items)
}

// Merge appends the diagnostics of other, keeping their order.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}

	b.items = append(b.items, other.items...)
}

// SortByLine reorders diagnostics by ascending line. Diagnostics on the
// same line keep their discovery order.
func (b *Bag) SortByLine() {
	slices.SortStableFunc(b.items, func(x, y Diagnostic) int {
		return x.Line - y.Line
	})
}
