package segtree

import (
	"errors"
	"testing"
)

func TestEachVisitsInPreOrder(t *testing.T) {
	tree, _ := NewSum([]int{1, 3, 5, 7, 9, 11})
	var slots []int
	err := tree.Each(func(node Node[int]) error {
		slots = append(slots, node.Slot)
		return nil
	})
	if err != nil {
		t.Fatal(err.Error())
	}
	want := []int{1, 2, 4, 8, 9, 5, 3, 6, 12, 13, 7}
	if len(slots) != len(want) {
		t.Fatalf("expected %d nodes, visited %d: %v", len(want), len(slots), slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Fatalf("expected pre-order slots %v, got %v", want, slots)
		}
	}
}

func TestEachStopsOnError(t *testing.T) {
	tree, _ := NewMin([]int{3, 1, 2})
	stop := errors.New("stop")
	visited := 0
	err := tree.Each(func(node Node[int]) error {
		visited++
		if node.IsLeaf() {
			return stop
		}
		return nil
	})
	if err != stop {
		t.Errorf("expected Each to hand back the callback's error, got %v", err)
	}
	if visited != 3 {
		t.Errorf("expected walk to stop at first leaf (3 nodes), visited %d", visited)
	}
}

func TestLevelsAndHeight(t *testing.T) {
	tree, _ := NewLazyZeros[int](6)
	if h := Height[int](tree); h != 4 {
		t.Errorf("expected height 4 for 6 leaves, is %d", h)
	}
	levels := Levels[int](tree)
	sizes := []int{1, 2, 4, 4}
	for d, nodes := range levels {
		if len(nodes) != sizes[d] {
			t.Errorf("level %d: expected %d nodes, got %d", d, sizes[d], len(nodes))
		}
		for i := 1; i < len(nodes); i++ {
			if nodes[i-1].End >= nodes[i].Start {
				t.Errorf("level %d not ordered by interval: %v", d, nodes)
			}
		}
	}
	single, _ := NewSum([]int{5})
	if h := Height[int](single); h != 1 {
		t.Errorf("expected height 1 for a single leaf, is %d", h)
	}
}

func TestLazyEachResolvesPendingDeltas(t *testing.T) {
	tree, _ := NewLazyZeros[int](4)
	tree.RangeUpdate(0, 3, 2) // root contained; children carry +2
	tree.RangeUpdate(0, 1, 1) // pushes [0,1], its leaves carry +3
	err := tree.Each(func(node Node[int]) error {
		want := 0
		for i := node.Start; i <= node.End; i++ {
			want += 2
			if i <= 1 {
				want++
			}
		}
		if node.Value != want {
			t.Errorf("[%d,%d]: resolved value %d, want %d (stored %d, pending %d)",
				node.Start, node.End, node.Value, want, node.Stored, node.Pending)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err.Error())
	}
}
