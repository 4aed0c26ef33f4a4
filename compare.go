package bptree

import "cmp"

// CompareFunc is a total-order comparator: it must return a value <0 if a<b,
// 0 if a==b, and >0 if a>b, consistently for all pairs the tree will ever
// see. The tree stores it once at construction and never inlines it into the
// data model (spec.md §9's "Comparator encapsulation").
type CompareFunc[K any] func(a, b K) int

// orderedCompare adapts cmp.Compare to a CompareFunc, used by NewOrdered for
// keys whose natural ordering (numeric, string) already satisfies
// cmp.Ordered.
func orderedCompare[K cmp.Ordered]() CompareFunc[K] {
	return func(a, b K) int { return cmp.Compare(a, b) }
}
