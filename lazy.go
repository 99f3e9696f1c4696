package segtree

import "fmt"

// LazyTree is a sum segment tree which additionally supports adding a delta
// to every value of a range in O(log n).
//
// A range update stops at the nodes whose interval lies completely within
// the range. Their aggregates are corrected at once, while the delta for
// their descendants is parked in a parallel slice of pending deltas. Any
// later operation descending through such a node first pushes the pending
// delta one level down (see pushDown).
//
// Storage invariant: for every inner slot k with children a and b,
//
//	tree[k] == tree[a] + lazy[a]·|a| + tree[b] + lazy[b]·|b|
//
// where |x| is the width of the interval of x. The true aggregate of a node
// therefore is its stored aggregate plus its width times the sum of pending
// deltas on the path from the root down to (and including) the node.
type LazyTree[N Number] struct {
	tree []N // aggregates, addressed by slot
	lazy []N // pending deltas, same addressing
	n    int
}

// NewLazy creates a lazy sum tree over a copy of values.
// It returns ErrInvalidInput if values is empty.
func NewLazy[N Number](values []N) (*LazyTree[N], error) {
	if len(values) == 0 {
		T().Debugf("segtree: refusing to build lazy tree from empty input")
		return nil, fmt.Errorf("%w: sequence must not be empty", ErrInvalidInput)
	}
	t := newLazy[N](len(values))
	t.build(values, rootSlot, 0, t.n-1)
	T().Debugf("segtree: built lazy-sum tree over %d values", t.n)
	return t, nil
}

// NewLazyZeros creates a lazy sum tree over n zeros.
// It returns ErrInvalidInput if n is not positive.
func NewLazyZeros[N Number](n int) (*LazyTree[N], error) {
	if n <= 0 {
		T().Debugf("segtree: refusing to build lazy tree of size %d", n)
		return nil, fmt.Errorf("%w: size must be positive, is %d", ErrInvalidInput, n)
	}
	T().Debugf("segtree: created lazy-sum tree of %d zeros", n)
	return newLazy[N](n), nil
}

func newLazy[N Number](n int) *LazyTree[N] {
	return &LazyTree[N]{
		tree: make([]N, capacityFor(n)),
		lazy: make([]N, capacityFor(n)),
		n:    n,
	}
}

func (t *LazyTree[N]) build(values []N, k, start, end int) {
	if isLeaf(start, end) {
		t.tree[k] = values[start]
		return
	}
	lk, ls, le := left(k, start, end)
	rk, rs, re := right(k, start, end)
	t.build(values, lk, ls, le)
	t.build(values, rk, rs, re)
	t.tree[k] = t.tree[lk] + t.tree[rk]
}

// Len returns the number of values the tree has been built over, or 0 for
// a nil tree.
func (t *LazyTree[N]) Len() int {
	if t == nil {
		return 0
	}
	return t.n
}

// Kind returns "lazy-sum".
func (t *LazyTree[N]) Kind() string {
	return "lazy-sum"
}

// pushDown folds the pending delta of node k into its own aggregate and
// hands it on to the children, if any. Afterwards lazy[k] is 0.
func (t *LazyTree[N]) pushDown(k, start, end int) {
	d := t.lazy[k]
	if d == 0 {
		return
	}
	t.tree[k] += d * N(width(start, end))
	if !isLeaf(start, end) {
		t.lazy[2*k] += d
		t.lazy[2*k+1] += d
	}
	t.lazy[k] = 0
}

// RangeUpdate adds delta to every value at indices l…r (inclusive).
// Runs in O(log n).
func (t *LazyTree[N]) RangeUpdate(l, r int, delta N) error {
	if !checkRange(l, r, t.n) {
		T().Debugf("segtree: range update [%d,%d] invalid for size %d", l, r, t.n)
		return fmt.Errorf("%w: [%d,%d] for size %d", ErrInvalidRange, l, r, t.n)
	}
	t.rangeUpdate(rootSlot, 0, t.n-1, l, r, delta)
	return nil
}

func (t *LazyTree[N]) rangeUpdate(k, start, end, l, r int, delta N) {
	t.pushDown(k, start, end)
	switch relate(l, r, start, end) {
	case disjoint:
		return
	case contained:
		t.lazy[k] += delta
		t.pushDown(k, start, end)
		return
	}
	lk, ls, le := left(k, start, end)
	rk, rs, re := right(k, start, end)
	t.rangeUpdate(lk, ls, le, l, r, delta)
	t.rangeUpdate(rk, rs, re, l, r, delta)
	t.tree[k] = t.tree[lk] + t.tree[rk]
}

// Add adds delta to the value at index.
func (t *LazyTree[N]) Add(index int, delta N) error {
	if !checkIndex(index, t.n) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, t.n)
	}
	t.rangeUpdate(rootSlot, 0, t.n-1, index, index, delta)
	return nil
}

// Update sets the value at index to value. Pending deltas on the path to
// the leaf are pushed down first.
func (t *LazyTree[N]) Update(index int, value N) error {
	if !checkIndex(index, t.n) {
		T().Debugf("segtree: update index %d out of range [0,%d)", index, t.n)
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, t.n)
	}
	t.update(rootSlot, 0, t.n-1, index, value)
	return nil
}

func (t *LazyTree[N]) update(k, start, end, index int, value N) {
	t.pushDown(k, start, end)
	if isLeaf(start, end) {
		t.tree[k] = value
		return
	}
	lk, ls, le := left(k, start, end)
	rk, rs, re := right(k, start, end)
	if index <= le {
		t.update(lk, ls, le, index, value)
		t.pushDown(rk, rs, re)
	} else {
		t.pushDown(lk, ls, le)
		t.update(rk, rs, re, index, value)
	}
	t.tree[k] = t.tree[lk] + t.tree[rk]
}

// Query returns the sum of the values at indices l…r (inclusive).
// Runs in O(log n).
func (t *LazyTree[N]) Query(l, r int) (N, error) {
	if !checkRange(l, r, t.n) {
		T().Debugf("segtree: query range [%d,%d] invalid for size %d", l, r, t.n)
		return 0, fmt.Errorf("%w: [%d,%d] for size %d", ErrInvalidRange, l, r, t.n)
	}
	return t.query(rootSlot, 0, t.n-1, l, r, nil), nil
}

func (t *LazyTree[N]) query(k, start, end, l, r int, visit visitor) N {
	t.pushDown(k, start, end)
	rel := relate(l, r, start, end)
	if visit != nil {
		visit(k, start, end, rel)
	}
	switch rel {
	case disjoint:
		return 0
	case contained:
		return t.tree[k]
	}
	lk, ls, le := left(k, start, end)
	rk, rs, re := right(k, start, end)
	return t.query(lk, ls, le, l, r, visit) + t.query(rk, rs, re, l, r, visit)
}

// Get returns the value at index.
func (t *LazyTree[N]) Get(index int) (N, error) {
	if !checkIndex(index, t.n) {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, t.n)
	}
	return t.query(rootSlot, 0, t.n-1, index, index, nil), nil
}

// Total returns the sum over all values.
func (t *LazyTree[N]) Total() N {
	return t.tree[rootSlot] + t.lazy[rootSlot]*N(t.n)
}

// Values returns a copy of the current values in index order. Pending
// deltas are resolved without being pushed.
func (t *LazyTree[N]) Values() []N {
	values := make([]N, 0, t.n)
	_ = t.Each(func(node Node[N]) error {
		if node.IsLeaf() {
			values = append(values, node.Value)
		}
		return nil
	})
	return values
}

// Each calls f for every node of t in pre-order. Node.Value holds the
// aggregate with all pending deltas above and at the node resolved; the
// walk does not modify t.
func (t *LazyTree[N]) Each(f func(Node[N]) error) error {
	return t.each(rootSlot, 0, t.n-1, 0, 0, f)
}

func (t *LazyTree[N]) each(k, start, end, depth int, above N, f func(Node[N]) error) error {
	carry := above + t.lazy[k]
	node := Node[N]{
		Slot:    k,
		Start:   start,
		End:     end,
		Depth:   depth,
		Value:   t.tree[k] + carry*N(width(start, end)),
		Stored:  t.tree[k],
		Pending: t.lazy[k],
	}
	if err := f(node); err != nil {
		return err
	}
	if isLeaf(start, end) {
		return nil
	}
	lk, ls, le := left(k, start, end)
	if err := t.each(lk, ls, le, depth+1, carry, f); err != nil {
		return err
	}
	rk, rs, re := right(k, start, end)
	return t.each(rk, rs, re, depth+1, carry, f)
}

// String returns a short description of the tree.
func (t *LazyTree[N]) String() string {
	return fmt.Sprintf("segtree.LazyTree<n=%d, total=%v>", t.n, t.Total())
}
