package segtree

import "fmt"

// Tree is a segment tree over a fixed number of values, aggregating either
// sums or minimums. Create one with NewSum or NewMin.
//
// The zero value is not usable.
type Tree[N Number] struct {
	merge merger[N]
	tree  []N // aggregates, addressed by slot; slot 0 is unused
	n     int // number of leaves
}

// NewSum creates a tree answering range sums over a copy of values.
// It returns ErrInvalidInput if values is empty.
func NewSum[N Number](values []N) (*Tree[N], error) {
	return build[N](sumMerger[N]{}, values)
}

// NewMin creates a tree answering range minimums over a copy of values.
// It returns ErrInvalidInput if values is empty.
func NewMin[N Number](values []N) (*Tree[N], error) {
	return build[N](minMerger[N]{top: Infinity[N]()}, values)
}

func build[N Number](m merger[N], values []N) (*Tree[N], error) {
	if len(values) == 0 {
		T().Debugf("segtree: refusing to build %s tree from empty input", m.name())
		return nil, fmt.Errorf("%w: sequence must not be empty", ErrInvalidInput)
	}
	t := &Tree[N]{
		merge: m,
		tree:  make([]N, capacityFor(len(values))),
		n:     len(values),
	}
	t.build(values, rootSlot, 0, t.n-1)
	T().Debugf("segtree: built %s tree over %d values", m.name(), t.n)
	return t, nil
}

func (t *Tree[N]) build(values []N, k, start, end int) {
	if isLeaf(start, end) {
		t.tree[k] = values[start]
		return
	}
	lk, ls, le := left(k, start, end)
	rk, rs, re := right(k, start, end)
	t.build(values, lk, ls, le)
	t.build(values, rk, rs, re)
	t.tree[k] = t.merge.add(t.tree[lk], t.tree[rk])
}

// Len returns the number of values the tree has been built over, or 0 for
// a nil tree.
func (t *Tree[N]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Kind returns the name of the aggregate, "sum" or "min".
func (t *Tree[N]) Kind() string {
	return t.merge.name()
}

// Identity returns the aggregate of an empty range: 0 for sums, Infinity
// for minimums.
func (t *Tree[N]) Identity() N {
	return t.merge.identity()
}

// Total returns the aggregate over all values.
func (t *Tree[N]) Total() N {
	return t.tree[rootSlot]
}

// Update sets the value at index to value and recomputes every aggregate
// on the path to the root. Runs in O(log n).
func (t *Tree[N]) Update(index int, value N) error {
	if !checkIndex(index, t.n) {
		T().Debugf("segtree: update index %d out of range [0,%d)", index, t.n)
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, t.n)
	}
	t.update(rootSlot, 0, t.n-1, index, value)
	return nil
}

func (t *Tree[N]) update(k, start, end, index int, value N) {
	if isLeaf(start, end) {
		t.tree[k] = value
		return
	}
	lk, ls, le := left(k, start, end)
	rk, rs, re := right(k, start, end)
	if index <= le {
		t.update(lk, ls, le, index, value)
	} else {
		t.update(rk, rs, re, index, value)
	}
	t.tree[k] = t.merge.add(t.tree[lk], t.tree[rk])
}

// Query returns the aggregate over the values at indices l…r (inclusive).
// Runs in O(log n).
func (t *Tree[N]) Query(l, r int) (N, error) {
	if !checkRange(l, r, t.n) {
		T().Debugf("segtree: query range [%d,%d] invalid for size %d", l, r, t.n)
		return t.merge.identity(), fmt.Errorf("%w: [%d,%d] for size %d", ErrInvalidRange, l, r, t.n)
	}
	return t.query(rootSlot, 0, t.n-1, l, r, nil), nil
}

// query aggregates [l,r] below slot k. visit, if not nil, is called for
// every node the query touches.
func (t *Tree[N]) query(k, start, end, l, r int, visit visitor) N {
	rel := relate(l, r, start, end)
	if visit != nil {
		visit(k, start, end, rel)
	}
	switch rel {
	case disjoint:
		return t.merge.identity()
	case contained:
		return t.tree[k]
	}
	lk, ls, le := left(k, start, end)
	rk, rs, re := right(k, start, end)
	return t.merge.add(t.query(lk, ls, le, l, r, visit), t.query(rk, rs, re, l, r, visit))
}

// Get returns the value at index.
func (t *Tree[N]) Get(index int) (N, error) {
	if !checkIndex(index, t.n) {
		return t.merge.identity(), fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, t.n)
	}
	return t.query(rootSlot, 0, t.n-1, index, index, nil), nil
}

// Values returns a copy of the current values in index order.
func (t *Tree[N]) Values() []N {
	values := make([]N, 0, t.n)
	_ = t.Each(func(node Node[N]) error {
		if node.IsLeaf() {
			values = append(values, node.Value)
		}
		return nil
	})
	return values
}

// String returns a short description of the tree.
func (t *Tree[N]) String() string {
	return fmt.Sprintf("segtree.Tree<%s, n=%d, total=%v>", t.Kind(), t.n, t.Total())
}
