package bptree

import "testing"

func TestNewRejectsSmallMaxKeys(t *testing.T) {
	if _, err := NewOrdered[int, string](2); err != ErrInvalidArgument {
		t.Errorf("New(maxKeys=2): expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewOrdered[int, string](3); err != nil {
		t.Errorf("New(maxKeys=3): expected success, got %v", err)
	}
}

func TestGetAndContainsOnEmptyTree(t *testing.T) {
	tree, _ := NewOrdered[int, string](4)

	if _, err := tree.Get(1); err != ErrNotFound {
		t.Errorf("Get on empty tree: expected ErrNotFound, got %v", err)
	}
	if tree.Contains(1) {
		t.Error("Contains on empty tree: expected false")
	}
}

func TestInsertAndFind(t *testing.T) {
	tree, err := NewOrdered[string, string](5)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, k := range []string{"apple", "banana", "cherry"} {
		if err := tree.Put(k, k); err != nil {
			t.Fatalf("Put(%s): %v", k, err)
		}
	}

	v, err := tree.Get("banana")
	if err != nil || v != "banana" {
		t.Errorf("Get(banana): expected (banana, nil), got (%v, %v)", v, err)
	}
	if _, err := tree.Get("durian"); err != ErrNotFound {
		t.Errorf("Get(durian): expected ErrNotFound, got %v", err)
	}
}

func TestDuplicateReject(t *testing.T) {
	tree, _ := NewOrdered[int, string](4)

	if err := tree.Put(3, "C"); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if err := tree.Put(3, "C2"); err != ErrDuplicateKey {
		t.Errorf("second Put: expected ErrDuplicateKey, got %v", err)
	}
	v, err := tree.Get(3)
	if err != nil || v != "C" {
		t.Errorf("Get(3): expected (C, nil), got (%v, %v)", v, err)
	}
}

func TestUpsertOverwritesWithoutDoubleCounting(t *testing.T) {
	tree, _ := NewOrdered[int, string](4)

	if err := tree.Upsert(1, "a"); err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}
	if tree.Len() != 1 {
		t.Fatalf("Len after first Upsert: expected 1, got %d", tree.Len())
	}
	if err := tree.Upsert(1, "b"); err != nil {
		t.Fatalf("Upsert overwrite: %v", err)
	}
	if tree.Len() != 1 {
		t.Errorf("Len after overwrite Upsert: expected 1, got %d", tree.Len())
	}
	v, _ := tree.Get(1)
	if v != "b" {
		t.Errorf("Get(1) after overwrite: expected b, got %s", v)
	}
}
