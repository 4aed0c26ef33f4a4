package bptree

// Allocator is the memory-allocation collaborator spec.md §1 and §6 scope to
// an external interface: "the memory allocator (default or caller-supplied)".
// Its method names mirror the Alloc/Release shape of flier-goutil's
// arena.Allocator interface, adapted to typed node-granularity allocation
// instead of a raw byte arena (see DESIGN.md for why the byte-level arena
// itself was not carried over).
type Allocator[K, V any] interface {
	// AllocNode returns a new, zeroed node and ok=true, or ok=false if the
	// allocator cannot satisfy the request. A false return must not have any
	// other observable side effect.
	AllocNode() (n *node[K, V], ok bool)

	// FreeNode returns a node to the allocator. Called by merges, root
	// shrink, and teardown. Implementations that do not recycle memory may
	// treat this as a no-op.
	FreeNode(n *node[K, V])
}

// defaultAllocator is backed by Go's garbage collector and never fails; this
// is the "maps to the platform allocator" default spec.md §6 calls for.
type defaultAllocator[K, V any] struct{}

func (defaultAllocator[K, V]) AllocNode() (*node[K, V], bool) {
	return &node[K, V]{}, true
}

func (defaultAllocator[K, V]) FreeNode(*node[K, V]) {}

// BoundedAllocator is a caller-supplied Allocator with a fixed node budget.
// It exists to make the AllocationFailure paths of spec.md §5 and §7
// deterministically testable: the GC-backed default allocator can never be
// made to fail on demand. Freed nodes return their budget to the pool, same
// as a real arena-with-free-list would.
type BoundedAllocator[K, V any] struct {
	remaining int
}

// NewBoundedAllocator returns an Allocator that can hand out at most max
// live nodes at a time.
func NewBoundedAllocator[K, V any](max int) *BoundedAllocator[K, V] {
	return &BoundedAllocator[K, V]{remaining: max}
}

func (a *BoundedAllocator[K, V]) AllocNode() (*node[K, V], bool) {
	if a.remaining <= 0 {
		return nil, false
	}
	a.remaining--
	return &node[K, V]{}, true
}

func (a *BoundedAllocator[K, V]) FreeNode(*node[K, V]) {
	a.remaining++
}

// Remaining reports how many further nodes this allocator can hand out.
func (a *BoundedAllocator[K, V]) Remaining() int {
	return a.remaining
}
