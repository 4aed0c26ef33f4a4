package bptree

// BulkLoad replaces the tree's contents with keys/values, which must be
// sorted strictly ascending by key (spec.md §4.7). On any precondition
// failure the tree is left empty (spec.md §5 "Bulk load failure... never
// leaves a half-built root reachable"), never partially built. Every node
// allocated during an aborted attempt is returned to the Allocator before
// the tree is reset to empty, and the tree being replaced — its prior
// contents on success, or the half-built attempt plus the prior contents on
// failure — is always freed, so a BoundedAllocator's budget never leaks
// across a BulkLoad call.
func (t *Tree[K, V]) BulkLoad(keys []K, values []V) error {
	if len(keys) != len(values) || len(keys) == 0 {
		t.reset()
		return ErrInvalidArgument
	}
	for i := 1; i < len(keys); i++ {
		c := t.compare(keys[i-1], keys[i])
		if c > 0 {
			t.reset()
			return ErrBulkLoadNotSorted
		}
		if c == 0 {
			t.reset()
			return ErrBulkLoadDuplicate
		}
	}

	var built []*node[K, V]

	leaves, err := t.buildLeafLevel(keys, values)
	built = append(built, leaves...)
	if err != nil {
		t.freeAll(built)
		t.reset()
		return err
	}

	level := leaves
	height := 1
	for len(level) > 1 {
		next, err := t.buildInternalLevel(level)
		built = append(built, next...)
		if err != nil {
			t.freeAll(built)
			t.reset()
			return err
		}
		level = next
		height++
	}

	t.freeSubtree(t.root)
	t.root = level[0]
	t.root.parent = nil
	t.height = height
	t.count = len(keys)
	if t.debug {
		logDebug("bulk_load", map[string]any{"count": len(keys)})
	}
	return nil
}

// reset frees the tree's current root subtree and restores the tree to a
// freshly-created empty state. Callers are responsible for freeing any
// nodes built during the aborted attempt first (via freeAll); reset itself
// never fails, even when the Allocator's budget is otherwise exhausted,
// because newEmptyLeaf falls back to a direct allocation.
func (t *Tree[K, V]) reset() {
	t.freeSubtree(t.root)
	t.root = t.newEmptyLeaf()
	t.height = 1
	t.count = 0
}

// freeSubtree returns every node in n's subtree to the Allocator via a
// post-order walk (spec.md §3 "Teardown frees all reachable nodes via
// post-order traversal"), used here to release the replaced tree's nodes
// before BulkLoad installs its new root.
func (t *Tree[K, V]) freeSubtree(n *node[K, V]) {
	if n == nil {
		return
	}
	for _, c := range n.children {
		t.freeSubtree(c)
	}
	t.alloc.FreeNode(n)
}

// freeAll returns a flat batch of nodes already built during an aborted
// BulkLoad attempt to the Allocator (spec.md §5: "frees all partially-built
// nodes").
func (t *Tree[K, V]) freeAll(nodes []*node[K, V]) {
	for _, n := range nodes {
		t.alloc.FreeNode(n)
	}
}

// buildLeafLevel partitions sorted input into runs of at most maxKeys
// pairs per leaf, chaining them left to right (spec.md §4.7 step 1). The
// last leaf holds whatever remains, so it may have fewer than minLeafKeys
// keys. On allocation failure it returns the leaves already built so the
// caller can free them.
func (t *Tree[K, V]) buildLeafLevel(keys []K, values []V) ([]*node[K, V], error) {
	var leaves []*node[K, V]
	for start := 0; start < len(keys); start += t.maxKeys {
		end := start + t.maxKeys
		if end > len(keys) {
			end = len(keys)
		}
		leaf, ok := t.alloc.AllocNode()
		if !ok {
			return leaves, ErrAllocationFailure
		}
		leaf.isLeaf = true
		leaf.keys = append(leaf.keys, keys[start:end]...)
		leaf.values = append(leaf.values, values[start:end]...)
		leaves = append(leaves, leaf)
	}
	for i := 0; i+1 < len(leaves); i++ {
		leaves[i].next = leaves[i+1]
	}
	return leaves, nil
}

// buildInternalLevel groups up to maxKeys+1 children under each new parent
// (spec.md §4.7 step 2), spreading them evenly over the fewest parents that
// can hold them so that every parent of a multi-parent level has at least
// minInternalKeys keys; the parent's key i (i >= 1) is the smallest key
// reachable from child i, i.e. minKey(children[i]). On allocation failure it
// returns the parents already built so the caller can free them.
func (t *Tree[K, V]) buildInternalLevel(children []*node[K, V]) ([]*node[K, V], error) {
	var level []*node[K, V]
	groupSize := t.maxKeys + 1
	numParents := (len(children) + groupSize - 1) / groupSize
	start := 0
	for p := 0; p < numParents; p++ {
		end := start + (len(children)-start)/(numParents-p)
		group := children[start:end]
		start = end

		parent, ok := t.alloc.AllocNode()
		if !ok {
			return level, ErrAllocationFailure
		}
		parent.isLeaf = false
		parent.children = append(parent.children, group...)
		for _, c := range group {
			c.parent = parent
		}
		for i := 1; i < len(group); i++ {
			parent.keys = append(parent.keys, minKey(group[i]))
		}
		level = append(level, parent)
	}
	return level, nil
}
