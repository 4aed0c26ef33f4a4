package bptree

// Iterator provides forward traversal of the leaf chain from a fixed
// starting point (spec.md §4.8). It reflects the chain at the moment it
// was constructed; mutating the tree while an iterator is live invalidates
// it (spec.md §5 "Iterator lifetime") — this is a caller-visible contract,
// not something this module detects or guards against. API shape grounded
// on the pack's forward Iterator reference design (Next/Key/Value).
type Iterator[K, V any] struct {
	leaf    *node[K, V]
	idx     int
	started bool
}

// NewIterator returns an iterator positioned before the first entry; call
// Next to advance onto it.
func (t *Tree[K, V]) NewIterator() *Iterator[K, V] {
	return &Iterator[K, V]{leaf: t.firstLeaf(), idx: 0}
}

// Next advances the iterator onto the next entry and reports whether one
// exists. It must be called before every Key/Value pair, including the
// first.
func (it *Iterator[K, V]) Next() bool {
	if it.started {
		it.idx++
	}
	it.started = true
	for it.leaf != nil {
		if it.idx < len(it.leaf.keys) {
			return true
		}
		it.leaf = it.leaf.next
		it.idx = 0
	}
	return false
}

// Key returns the current entry's key. Valid only after a Next call that
// returned true, and before the next call to Next.
func (it *Iterator[K, V]) Key() K {
	return it.leaf.keys[it.idx]
}

// Value returns the current entry's value. Valid only after a Next call
// that returned true, and before the next call to Next.
func (it *Iterator[K, V]) Value() V {
	return it.leaf.values[it.idx]
}

// All materializes every entry in ascending key order. Supplemented
// convenience (SPEC_FULL.md §9) built on the same iterator machinery as
// NewIterator, for callers that want a slice rather than a pull-based
// cursor.
func (t *Tree[K, V]) All() []Entry[K, V] {
	var out []Entry[K, V]
	for leaf := t.firstLeaf(); leaf != nil; leaf = leaf.next {
		for i, k := range leaf.keys {
			out = append(out, Entry[K, V]{Key: k, Value: leaf.values[i]})
		}
	}
	return out
}

// Len returns the number of live keys in the tree (spec.md §3 "count").
func (t *Tree[K, V]) Len() int {
	return t.count
}
