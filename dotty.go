package segtree

import (
	"fmt"
	"io"
)

// ToDot outputs the internal structure of a segment tree in Graphviz DOT
// format (for debugging purposes).
//
// Inner nodes are drawn as circles, leaves as boxes. Nodes carrying a
// pending delta are highlighted and labeled with it.
func ToDot[N Number](t Inspector[N], w io.Writer) error {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	err := t.Each(func(node Node[N]) error {
		label := fmt.Sprintf("[%d,%d]\\n%v", node.Start, node.End, node.Value)
		if node.Pending != 0 {
			label += fmt.Sprintf("\\n+%v", node.Pending)
		}
		styles := nodeDotStyles(node.IsLeaf(), node.Pending != 0)
		nodelist += fmt.Sprintf("\t\"%d\" [label=\"%s\"%s];\n", node.Slot, label, styles)
		if !node.IsLeaf() {
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", node.Slot, 2*node.Slot)
			edgelist += fmt.Sprintf("\t\"%d\" -> \"%d\";\n", node.Slot, 2*node.Slot+1)
		}
		return nil
	})
	if err != nil {
		T().Errorf("segtree DOT: %s", err.Error())
		return err
	}
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	_, err = io.WriteString(w, "}\n")
	return err
}

func nodeDotStyles(isleaf bool, highlight bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,shape=circle"
	}
	if highlight {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexhlcolor)
	} else if !isleaf {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolor)
	}
	return s
}

const (
	hexcolor   = "#a3d7e4"
	hexhlcolor = "#FFAA66"
)
