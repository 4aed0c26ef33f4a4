package bptree

// Option configures a Tree at construction time. The functional-options
// shape keeps New/NewOrdered's required parameters (maxKeys, compare) front
// and center while leaving the allocator and debug-logging collaborators of
// spec.md §6 optional, matching the teacher's preference for minimal
// required configuration.
type Option[K, V any] func(*Tree[K, V])

// WithAllocator supplies a caller-controlled Allocator (spec.md §6). The
// default, used when this option is omitted, is backed by Go's garbage
// collector and never fails.
func WithAllocator[K, V any](a Allocator[K, V]) Option[K, V] {
	return func(t *Tree[K, V]) { t.alloc = a }
}

// WithDebug enables the process-wide timestamped debug sink (spec.md §6)
// for this tree's structural mutations.
func WithDebug[K, V any](enabled bool) Option[K, V] {
	return func(t *Tree[K, V]) { t.debug = enabled }
}
