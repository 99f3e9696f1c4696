package segtree

// Node is a read-only view of a single tree node, as handed out by Each.
type Node[N Number] struct {
	Slot    int // storage slot
	Start   int // first index covered
	End     int // last index covered
	Depth   int // 0 for the root
	Value   N   // aggregate of [Start, End], pending deltas resolved
	Stored  N   // aggregate as currently held in storage
	Pending N   // delta not yet pushed to the node's children (lazy trees only)
}

// IsLeaf is true for nodes covering a single index.
func (node Node[N]) IsLeaf() bool {
	return isLeaf(node.Start, node.End)
}

// Width is the number of indices covered by the node.
func (node Node[N]) Width() int {
	return width(node.Start, node.End)
}

// Inspector is implemented by Tree and LazyTree. It is used by tree dumps
// (DOT, console, HTML) to visit every node.
type Inspector[N Number] interface {
	Len() int
	Kind() string
	Each(func(Node[N]) error) error
}

var _ Inspector[int] = (*Tree[int])(nil)
var _ Inspector[int] = (*LazyTree[int])(nil)

// Each calls f for every node of t in pre-order (parent before children,
// left before right). If f returns an error, the walk stops and Each returns
// that error.
func (t *Tree[N]) Each(f func(Node[N]) error) error {
	return t.each(rootSlot, 0, t.n-1, 0, f)
}

func (t *Tree[N]) each(k, start, end, depth int, f func(Node[N]) error) error {
	node := Node[N]{
		Slot:   k,
		Start:  start,
		End:    end,
		Depth:  depth,
		Value:  t.tree[k],
		Stored: t.tree[k],
	}
	if err := f(node); err != nil {
		return err
	}
	if isLeaf(start, end) {
		return nil
	}
	lk, ls, le := left(k, start, end)
	if err := t.each(lk, ls, le, depth+1, f); err != nil {
		return err
	}
	rk, rs, re := right(k, start, end)
	return t.each(rk, rs, re, depth+1, f)
}

// Height returns the number of levels of an inspected tree.
func Height[N Number](t Inspector[N]) int {
	h := 0
	_ = t.Each(func(node Node[N]) error {
		if node.Depth+1 > h {
			h = node.Depth + 1
		}
		return nil
	})
	return h
}

// Levels groups the nodes of an inspected tree by depth. Within a level,
// nodes are ordered by their start index.
func Levels[N Number](t Inspector[N]) [][]Node[N] {
	var levels [][]Node[N]
	_ = t.Each(func(node Node[N]) error {
		for len(levels) <= node.Depth {
			levels = append(levels, nil)
		}
		levels[node.Depth] = append(levels[node.Depth], node)
		return nil
	})
	return levels
}
