package bptree

import "cmp"

// Tree is an opaque handle owning a single B+ tree rooted at root (spec.md
// §2, §3). The zero value is not usable; construct with New or NewOrdered.
type Tree[K, V any] struct {
	root   *node[K, V]
	height int // number of levels; 1 for a root-only leaf
	count  int // total number of live keys

	maxKeys         int
	minLeafKeys     int
	minInternalKeys int

	compare CompareFunc[K]
	alloc   Allocator[K, V]
	debug   bool
}

// New creates an empty Tree with the given maxKeys (M, spec.md §3: M >= 3)
// and comparator. It fails with ErrInvalidArgument if maxKeys < 3.
func New[K, V any](maxKeys int, compare CompareFunc[K], opts ...Option[K, V]) (*Tree[K, V], error) {
	if maxKeys < 3 {
		return nil, ErrInvalidArgument
	}
	if compare == nil {
		return nil, ErrInvalidArgument
	}

	t := &Tree[K, V]{
		height:          1,
		count:           0,
		maxKeys:         maxKeys,
		minLeafKeys:     minLeafKeys(maxKeys),
		minInternalKeys: minInternalKeys(maxKeys),
		compare:         compare,
		alloc:           defaultAllocator[K, V]{},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.root = t.newEmptyLeaf()
	if t.debug {
		logDebug("create", map[string]any{"maxKeys": maxKeys})
	}
	return t, nil
}

// NewOrdered is a convenience constructor for keys whose natural ordering
// (numeric, string) already satisfies cmp.Ordered, deriving the comparator
// from cmp.Compare rather than requiring the caller to write one.
func NewOrdered[K cmp.Ordered, V any](maxKeys int, opts ...Option[K, V]) (*Tree[K, V], error) {
	return New[K, V](maxKeys, orderedCompare[K](), opts...)
}

// Get performs a point lookup (spec.md §4.3): O(height) comparisons,
// descending via internal search and finishing with a leaf search plus
// equality check.
func (t *Tree[K, V]) Get(key K) (V, error) {
	leaf := t.findLeaf(key)
	i := lowerBound(leaf.keys, key, t.compare)
	if i < len(leaf.keys) && t.compare(leaf.keys[i], key) == 0 {
		return leaf.values[i], nil
	}
	var zero V
	return zero, ErrNotFound
}

// Contains reports whether key is present, without allocating.
func (t *Tree[K, V]) Contains(key K) bool {
	_, err := t.Get(key)
	return err == nil
}

// findLeaf descends from the root to the leaf that would contain key,
// choosing children via childIndexFor at each internal node (spec.md §4.2).
func (t *Tree[K, V]) findLeaf(key K) *node[K, V] {
	n := t.root
	for !n.isLeaf {
		i := childIndexFor(n.keys, key, t.compare)
		n = n.children[i]
	}
	return n
}

// firstLeaf returns the leftmost leaf, or the (possibly empty) root leaf on
// an empty tree.
func (t *Tree[K, V]) firstLeaf() *node[K, V] {
	n := t.root
	for !n.isLeaf {
		n = n.children[0]
	}
	return n
}
