package html

import (
	"fmt"
	"io"

	"github.com/npillmayer/segtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Table creates an HTML table element for a segment tree.
//
// Every level of the tree becomes a table row, every node a cell spanning as
// many columns as the node covers indices. Leaves above the bottom level
// span the remaining rows, so the bottom of the table lines up with the
// index space. Cells carry classes "inner" or "leaf", and "pending" if a
// lazy tree holds a pending delta for the node.
//
//	<table class="segtree sum">
//	  <tr><td colspan="6" class="inner" title="[0,5]">36</td></tr>
//	  …
//
// Nil trees, including typed nil pointers, are rejected with ErrInvalidInput.
func Table[N segtree.Number](t segtree.Inspector[N]) (*html.Node, error) {
	if t == nil || t.Len() == 0 {
		return nil, segtree.ErrInvalidInput
	}
	levels := segtree.Levels(t)
	height := len(levels)
	table := element(atom.Table, "class", "segtree "+t.Kind())
	for depth, nodes := range levels {
		tr := element(atom.Tr)
		for _, node := range nodes {
			class := "inner"
			if node.IsLeaf() {
				class = "leaf"
			}
			if node.Pending != 0 {
				class += " pending"
			}
			attrs := []string{
				"class", class,
				"title", fmt.Sprintf("[%d,%d]", node.Start, node.End),
			}
			if w := node.Width(); w > 1 {
				attrs = append(attrs, "colspan", fmt.Sprint(w))
			}
			if node.IsLeaf() && height-depth > 1 {
				attrs = append(attrs, "rowspan", fmt.Sprint(height-depth))
			}
			td := element(atom.Td, attrs...)
			td.AppendChild(text(fmt.Sprint(node.Value)))
			if node.Pending != 0 {
				sup := element(atom.Sup)
				sup.AppendChild(text(fmt.Sprintf("+%v", node.Pending)))
				td.AppendChild(sup)
			}
			tr.AppendChild(td)
		}
		table.AppendChild(tr)
	}
	tracer().Debugf("html: table for %s tree with %d rows", t.Kind(), height)
	return table, nil
}

// Render writes an HTML table for a segment tree to w.
func Render[N segtree.Number](t segtree.Inspector[N], w io.Writer) error {
	table, err := Table(t)
	if err != nil {
		return err
	}
	return html.Render(w, table)
}

func element(a atom.Atom, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
