package segtree

import "fmt"

// Check validates the stored aggregates of t: every inner node has to hold
// the merge of its children's aggregates, and every node has to be
// addressable within the allocated storage.
//
// Check is intended for tests and debugging; it visits every node.
func (t *Tree[N]) Check() error {
	if t == nil || t.n <= 0 || len(t.tree) < capacityFor(t.n) {
		return fmt.Errorf("%w: tree not initialized", ErrCorrupted)
	}
	if err := t.checkNode(rootSlot, 0, t.n-1); err != nil {
		T().Errorf("segtree: %s", err.Error())
		return err
	}
	return nil
}

func (t *Tree[N]) checkNode(k, start, end int) error {
	if k >= len(t.tree) {
		return fmt.Errorf("%w: slot %d for [%d,%d] exceeds capacity %d",
			ErrCorrupted, k, start, end, len(t.tree))
	}
	if start < 0 || start > end || end >= t.n {
		return fmt.Errorf("%w: slot %d has invalid interval [%d,%d]", ErrCorrupted, k, start, end)
	}
	if isLeaf(start, end) {
		return nil
	}
	lk, ls, le := left(k, start, end)
	rk, rs, re := right(k, start, end)
	if err := t.checkNode(lk, ls, le); err != nil {
		return err
	}
	if err := t.checkNode(rk, rs, re); err != nil {
		return err
	}
	if want := t.merge.add(t.tree[lk], t.tree[rk]); t.tree[k] != want {
		return fmt.Errorf("%w: %s at slot %d [%d,%d] is %v, children merge to %v",
			ErrCorrupted, t.merge.name(), k, start, end, t.tree[k], want)
	}
	return nil
}

// Check validates the stored aggregates and pending deltas of t against the
// storage invariant documented for LazyTree. For floating point values,
// rounding may let Check report mismatches which are not real defects.
//
// Check is intended for tests and debugging; it visits every node.
func (t *LazyTree[N]) Check() error {
	if t == nil || t.n <= 0 || len(t.tree) < capacityFor(t.n) || len(t.lazy) != len(t.tree) {
		return fmt.Errorf("%w: lazy tree not initialized", ErrCorrupted)
	}
	if err := t.checkNode(rootSlot, 0, t.n-1); err != nil {
		T().Errorf("segtree: %s", err.Error())
		return err
	}
	return nil
}

func (t *LazyTree[N]) checkNode(k, start, end int) error {
	if k >= len(t.tree) {
		return fmt.Errorf("%w: slot %d for [%d,%d] exceeds capacity %d",
			ErrCorrupted, k, start, end, len(t.tree))
	}
	if start < 0 || start > end || end >= t.n {
		return fmt.Errorf("%w: slot %d has invalid interval [%d,%d]", ErrCorrupted, k, start, end)
	}
	if isLeaf(start, end) {
		return nil
	}
	lk, ls, le := left(k, start, end)
	rk, rs, re := right(k, start, end)
	if err := t.checkNode(lk, ls, le); err != nil {
		return err
	}
	if err := t.checkNode(rk, rs, re); err != nil {
		return err
	}
	want := t.tree[lk] + t.lazy[lk]*N(width(ls, le)) +
		t.tree[rk] + t.lazy[rk]*N(width(rs, re))
	if t.tree[k] != want {
		return fmt.Errorf("%w: sum at slot %d [%d,%d] is %v, children resolve to %v",
			ErrCorrupted, k, start, end, t.tree[k], want)
	}
	return nil
}
