package bptree

import "testing"

func TestSplitPropagation(t *testing.T) {
	tree, _ := NewOrdered[int, int](3)

	for i := 1; i <= 20; i++ {
		if err := tree.Put(i, i*10); err != nil {
			t.Fatalf("Put(%d): %v", i, err)
		}
	}

	for i := 1; i <= 20; i++ {
		v, err := tree.Get(i)
		if err != nil || v != i*10 {
			t.Errorf("Get(%d): expected %d, got %d (err %v)", i, i*10, v, err)
		}
	}
	if tree.Len() != 20 {
		t.Errorf("Len(): expected 20, got %d", tree.Len())
	}
	if !tree.CheckInvariants() {
		t.Error("CheckInvariants failed after sequential inserts causing splits")
	}
}

func TestInsertDescendingOrder(t *testing.T) {
	tree, _ := NewOrdered[int, int](3)

	for i := 20; i >= 1; i-- {
		if err := tree.Put(i, i); err != nil {
			t.Fatalf("Put(%d): %v", i, err)
		}
	}
	if tree.Len() != 20 {
		t.Errorf("Len(): expected 20, got %d", tree.Len())
	}
	if !tree.CheckInvariants() {
		t.Error("CheckInvariants failed after descending inserts")
	}
}

func TestRootGrowsOnSplit(t *testing.T) {
	tree, _ := NewOrdered[int, int](3)

	for i := 1; i <= 3; i++ {
		tree.Put(i, i)
	}
	if tree.height != 1 {
		t.Fatalf("expected height 1 before overflow, got %d", tree.height)
	}

	tree.Put(4, 4)
	if tree.height != 2 {
		t.Errorf("expected height 2 after root leaf split, got %d", tree.height)
	}
}

func TestAllocationFailureLeavesTreeUnchanged(t *testing.T) {
	alloc := NewBoundedAllocator[int, int](0)
	tree, err := New[int, int](3, orderedCompare[int](), WithAllocator[int, int](alloc))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for i := 1; i <= 3; i++ {
		if err := tree.Put(i, i); err != nil {
			t.Fatalf("Put(%d) before overflow: %v", i, err)
		}
	}

	if err := tree.Put(4, 4); err != ErrAllocationFailure {
		t.Fatalf("Put(4): expected ErrAllocationFailure, got %v", err)
	}
	if tree.Len() != 3 {
		t.Errorf("Len() after failed split: expected 3, got %d", tree.Len())
	}
	if _, err := tree.Get(4); err != ErrNotFound {
		t.Errorf("Get(4) after failed split: expected ErrNotFound, got %v", err)
	}
}
