// Package bptree implements a generic, in-memory B+ tree: an ordered
// key/value index whose values live only in the leaves and whose leaves are
// threaded together so that range scans and full traversals run in
// leaf-chain order after an O(log n) descent.
//
// A Tree is created with New or NewOrdered and supports point lookup (Get,
// Contains), sorted insertion (Put, Upsert), deletion (Remove), inclusive
// range scans (GetRange), bottom-up bulk loading from presorted input
// (BulkLoad), forward iteration (NewIterator), and structural introspection
// (Stats, CheckInvariants).
//
// The tree is single-threaded: callers needing concurrent access must
// synchronize externally. It holds no on-disk state and is not persisted.
//
// Example usage:
//
//	tree, err := bptree.NewOrdered[int, string](4)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	tree.Put(10, "ten")
//	tree.Put(20, "twenty")
//
//	if value, err := tree.Get(10); err == nil {
//		fmt.Println(value)
//	}
//
//	values, err := tree.GetRange(5, 25)
package bptree
