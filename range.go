package bptree

// GetRange returns the values of every key in the inclusive range
// [start, end], in ascending order (spec.md §4.6, §6: "get_range(tree,
// start, end) → (values[], n)"). Returns ErrInvalidRange if
// compare(start, end) > 0, per this module's documented discipline
// (SPEC_FULL.md §4.6, resolving spec.md's "implementations differ" open
// question) — a dedicated sentinel rather than silent empty success, so the
// malformed-range case is distinguishable from "range with no matches".
func (t *Tree[K, V]) GetRange(start, end K) ([]V, error) {
	entries, err := t.RangeEntries(start, end)
	if err != nil {
		return nil, err
	}
	values := make([]V, len(entries))
	for i, e := range entries {
		values[i] = e.Value
	}
	return values, nil
}

// RangeEntries is the Entry-returning variant of GetRange (SPEC_FULL.md §9),
// for callers that need the matching keys alongside the values rather than
// just the values spec.md §6 names.
func (t *Tree[K, V]) RangeEntries(start, end K) ([]Entry[K, V], error) {
	if t.compare(start, end) > 0 {
		return nil, ErrInvalidRange
	}

	var result []Entry[K, V]
	leaf := t.findLeaf(start)

	for leaf != nil {
		i := lowerBound(leaf.keys, start, t.compare)
		for ; i < len(leaf.keys); i++ {
			k := leaf.keys[i]
			if t.compare(k, end) > 0 {
				return result, nil
			}
			result = append(result, Entry[K, V]{Key: k, Value: leaf.values[i]})
		}
		leaf = leaf.next
	}
	return result, nil
}
