package formatter

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/segtree"
	"github.com/npillmayer/uax/uax11"
)

// Palette holds the colors used for console output. Nil entries are
// printed uncolored.
type Palette struct {
	Header  *color.Color
	Inner   *color.Color // intervals of inner nodes
	Leaf    *color.Color // intervals of leaves
	Value   *color.Color
	Pending *color.Color // pending deltas of lazy trees
}

// DefaultPalette is used by NewConsole if no palette is given.
func DefaultPalette() *Palette {
	return &Palette{
		Header:  color.New(color.Bold),
		Inner:   color.New(color.FgBlue),
		Leaf:    color.New(color.FgGreen),
		Value:   color.New(color.FgHiWhite),
		Pending: color.New(color.FgRed, color.Bold),
	}
}

// Console is a format for outputting trees to a console with a fixed
// width font.
type Console struct {
	colors *Palette
}

var plainConsole = &Console{colors: &Palette{}}

// NewConsole creates a new console format. If palette is nil,
// DefaultPalette will be used.
func NewConsole(palette *Palette) *Console {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &Console{colors: palette}
}

// Print outputs a tree to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). Config.Context
// will also be created based on heuristics from the user environment.
func Print[N segtree.Number](t segtree.Inspector[N], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Output(t, os.Stdout, config, NewConsole(nil))
}

func (c *Console) header(s string, w io.Writer) {
	c.write(c.colors.Header, s+"\n", w)
}

func (c *Console) interval(s string, leaf bool, w io.Writer) {
	if leaf {
		c.write(c.colors.Leaf, s, w)
		return
	}
	c.write(c.colors.Inner, s, w)
}

func (c *Console) aggregate(s string, w io.Writer) {
	c.write(c.colors.Value, s, w)
}

func (c *Console) delta(s string, w io.Writer) {
	c.write(c.colors.Pending, s, w)
}

func (c *Console) write(col *color.Color, s string, w io.Writer) {
	if col != nil {
		col.Fprint(w, s)
		return
	}
	io.WriteString(w, s)
}
