package html

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/segtree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// cells parses rendered output back and collects the td elements per row.
func cells(t *testing.T, rendered string) [][]*html.Node {
	t.Helper()
	nodes, err := html.ParseFragment(strings.NewReader(rendered), &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	})
	if err != nil {
		t.Fatalf("cannot parse rendered table: %v", err)
	}
	var rows [][]*html.Node
	var collect func(n *html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			rows = append(rows, nil)
		}
		if n.Type == html.ElementNode && n.Data == "td" {
			rows[len(rows)-1] = append(rows[len(rows)-1], n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	for _, n := range nodes {
		collect(n)
	}
	return rows
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func TestRenderSumTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "segtree")
	defer teardown()
	//
	tree, _ := segtree.NewSum([]int{1, 3, 5, 7, 9, 11})
	var buf bytes.Buffer
	if err := Render[int](tree, &buf); err != nil {
		t.Fatal(err.Error())
	}
	t.Logf("%s", buf.String())
	rows := cells(t, buf.String())
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows for 6 leaves, got %d", len(rows))
	}
	total := 0
	for _, row := range rows {
		total += len(row)
	}
	if total != 11 {
		t.Errorf("expected 11 cells, got %d", total)
	}
	root := rows[0][0]
	if attr(root, "colspan") != "6" || root.FirstChild.Data != "36" {
		t.Errorf("unexpected root cell colspan=%q value=%q", attr(root, "colspan"), root.FirstChild.Data)
	}
	// [2,2] is a leaf on level 2 and spans the last two rows
	leaf := rows[2][1]
	if attr(leaf, "title") != "[2,2]" || attr(leaf, "rowspan") != "2" || attr(leaf, "class") != "leaf" {
		t.Errorf("unexpected cell for [2,2]: %v", leaf.Attr)
	}
}

func TestRenderPendingDeltas(t *testing.T) {
	tree, _ := segtree.NewLazyZeros[int](4)
	tree.RangeUpdate(2, 3, 5)
	var buf bytes.Buffer
	if err := Render[int](tree, &buf); err != nil {
		t.Fatal(err.Error())
	}
	if c := strings.Count(buf.String(), "leaf pending"); c != 2 {
		t.Errorf("expected 2 pending leaves, got %d: %s", c, buf.String())
	}
	if !strings.Contains(buf.String(), "<sup>+5</sup>") {
		t.Errorf("expected pending delta +5 as superscript: %s", buf.String())
	}
	if !strings.Contains(buf.String(), `class="segtree lazy-sum"`) {
		t.Errorf("expected table class to name the tree kind")
	}
}

func TestTableRejectsNilTree(t *testing.T) {
	var tree *segtree.Tree[int]
	if _, err := Table[int](tree); !errors.Is(err, segtree.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for nil tree, got %v", err)
	}
	var lazy *segtree.LazyTree[int]
	if err := Render[int](lazy, &bytes.Buffer{}); !errors.Is(err, segtree.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for nil lazy tree, got %v", err)
	}
}
