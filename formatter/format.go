package formatter

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/segtree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config contains parameters for tree output.
type Config struct {
	LineWidth int            // maximum line length in fixed width ‘en’s
	Context   *uax11.Context // context for display width of characters
}

const (
	branch     = "├─ "
	lastBranch = "└─ "
	stem       = "│  "
	blank      = "   "
)

var setupGraphemes sync.Once

// width returns the display width of s in fixed width positions.
func width(s string, context *uax11.Context) int {
	if s == "" { // grapheme breaking cannot handle empty input
		return 0
	}
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// line is a single formatted node.
type line struct {
	prefix  string // indentation and branch drawing
	label   string // covered interval
	value   string // aggregate
	pending string // pending delta, if any
	leaf    bool
}

// layout turns the nodes of a tree into lines, in pre-order.
func layout[N segtree.Number](t segtree.Inspector[N]) ([]line, error) {
	var lines []line
	var last []bool // last[d] is true if the current node at depth d is a right child
	err := t.Each(func(node segtree.Node[N]) error {
		for len(last) <= node.Depth {
			last = append(last, false)
		}
		last = last[:node.Depth+1]
		last[node.Depth] = node.Depth > 0 && node.Slot%2 == 1
		var b strings.Builder
		for d := 1; d < node.Depth; d++ {
			if last[d] {
				b.WriteString(blank)
			} else {
				b.WriteString(stem)
			}
		}
		if node.Depth > 0 {
			if last[node.Depth] {
				b.WriteString(lastBranch)
			} else {
				b.WriteString(branch)
			}
		}
		l := line{
			prefix: b.String(),
			label:  fmt.Sprintf("[%d,%d]", node.Start, node.End),
			value:  fmt.Sprint(node.Value),
			leaf:   node.IsLeaf(),
		}
		if node.Pending != 0 {
			l.pending = fmt.Sprintf("+%v", node.Pending)
		}
		lines = append(lines, l)
		return nil
	})
	return lines, err
}

// Output formats a tree and writes it to w, using format c for coloring.
// If config is nil, a default configuration for Latin text will be used;
// config itself is never modified.
// If c is nil, output will not be colored.
// Nil trees, including typed nil pointers, are rejected with an error.
func Output[N segtree.Number](t segtree.Inspector[N], w io.Writer, config *Config, c *Console) error {
	if t == nil || t.Len() == 0 {
		return fmt.Errorf("formatter: no tree to output: %w", segtree.ErrInvalidInput)
	}
	conf := Config{LineWidth: 65}
	if config != nil {
		conf = *config
	}
	if conf.Context == nil {
		conf.Context = uax11.LatinContext
	}
	config = &conf
	if c == nil {
		c = plainConsole
	}
	lines, err := layout(t)
	if err != nil {
		return err
	}
	column := 0
	for _, l := range lines {
		if lw := width(l.prefix, config.Context) + width(l.label, config.Context); lw > column {
			column = lw
		}
	}
	column += 2
	tracer().Debugf("formatting %s tree of %d nodes, value column %d", t.Kind(), len(lines), column)
	c.header(fmt.Sprintf("%s tree over %d values", t.Kind(), t.Len()), w)
	for _, l := range lines {
		used := width(l.prefix, config.Context) + width(l.label, config.Context)
		pad := column - used
		if vw := width(l.value, config.Context) + 1 + width(l.pending, config.Context); column+vw > config.LineWidth {
			pad = max(1, config.LineWidth-used-vw)
		}
		io.WriteString(w, l.prefix)
		c.interval(l.label, l.leaf, w)
		io.WriteString(w, strings.Repeat(" ", pad))
		c.aggregate(l.value, w)
		if l.pending != "" {
			io.WriteString(w, " ")
			c.delta(l.pending, w)
		}
		io.WriteString(w, "\n")
	}
	return nil
}

// ConfigFromTerminal is a simple helper for creating a formatting Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	if term.IsTerminal(1) {
		w, _, err := term.GetSize(1)
		if err != nil {
			config.LineWidth = 65
		} else {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	} else {
		config.LineWidth = 65
	}
	tracer().Infof("setting line length to %d en", config.LineWidth)
	return config
}
