package segtree

// Addressing of the implicit tree.
//
// A node is identified by its slot k together with the interval [start, end]
// it covers. Only k lives in storage; start and end are carried along by
// every recursive call. The root is (rootSlot, 0, n-1).

const rootSlot = 1

// capacityFor returns the number of storage slots needed for a tree over
// n leaves. Top-down bisection of a non-power-of-two interval may reach
// slots up to 4n.
func capacityFor(n int) int {
	return 4 * n
}

func mid(start, end int) int {
	return start + (end-start)/2
}

func left(k, start, end int) (int, int, int) {
	return 2 * k, start, mid(start, end)
}

func right(k, start, end int) (int, int, int) {
	return 2*k + 1, mid(start, end) + 1, end
}

func isLeaf(start, end int) bool {
	return start == end
}

func width(start, end int) int {
	return end - start + 1
}

// overlap is the relation between a query interval [l, r] and the interval
// [start, end] of a node.
type overlap int8

const (
	disjoint  overlap = iota // no index in common
	contained                // [start, end] lies completely within [l, r]
	partial                  // anything else
)

func (o overlap) String() string {
	switch o {
	case disjoint:
		return "disjoint"
	case contained:
		return "contained"
	}
	return "partial"
}

// relate classifies a node interval against a query interval. The order of
// tests matters: disjointness is checked before containment.
func relate(l, r, start, end int) overlap {
	if r < start || end < l {
		return disjoint
	}
	if l <= start && end <= r {
		return contained
	}
	return partial
}

// visitor observes the nodes a query descends to, together with their
// relation to the query interval.
type visitor func(k, start, end int, rel overlap)

// checkRange validates a query or update range for a tree of size n.
func checkRange(l, r, n int) bool {
	return 0 <= l && l <= r && r < n
}

func checkIndex(i, n int) bool {
	return 0 <= i && i < n
}
