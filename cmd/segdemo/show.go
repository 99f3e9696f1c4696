package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/segtree"
	"github.com/npillmayer/segtree/formatter"
	"github.com/npillmayer/segtree/html"
	"github.com/npillmayer/uax/uax11"
	"github.com/spf13/cobra"
)

type showOptions struct {
	kind   string
	format string
	adds   []string
	sets   []string
	plain  bool
}

func newShowCmd() *cobra.Command {
	opts := &showOptions{}
	cmd := &cobra.Command{
		Use:   "show [flags] value…",
		Short: "Build a tree over the given values and dump its structure",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args)
			if err != nil {
				return err
			}
			return show(cmd.OutOrStdout(), values, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "sum", "tree kind: sum, min or lazy")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "console", "output format: console, dot or html")
	cmd.Flags().StringArrayVar(&opts.adds, "add", nil, "range update l:r:delta (lazy trees only)")
	cmd.Flags().StringArrayVar(&opts.sets, "set", nil, "point update index:value")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "do not color console output")
	return cmd
}

func parseValues(args []string) ([]int64, error) {
	values := make([]int64, len(args))
	for i, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("value #%d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}

// parseInts splits s at colons into exactly n integers.
func parseInts(s string, n int) ([]int64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != n {
		return nil, fmt.Errorf("%q: expected %d colon-separated integers", s, n)
	}
	ints := make([]int64, n)
	for i, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		ints[i] = v
	}
	return ints, nil
}

// pointUpdater is implemented by all kinds of trees.
type pointUpdater interface {
	Update(index int, value int64) error
}

func build(values []int64, opts *showOptions) (segtree.Inspector[int64], error) {
	var tree segtree.Inspector[int64]
	var updater pointUpdater
	switch opts.kind {
	case "sum":
		t, err := segtree.NewSum(values)
		if err != nil {
			return nil, err
		}
		tree, updater = t, t
	case "min":
		t, err := segtree.NewMin(values)
		if err != nil {
			return nil, err
		}
		tree, updater = t, t
	case "lazy":
		t, err := segtree.NewLazy(values)
		if err != nil {
			return nil, err
		}
		for _, a := range opts.adds {
			ints, err := parseInts(a, 3)
			if err != nil {
				return nil, err
			}
			if err := t.RangeUpdate(int(ints[0]), int(ints[1]), ints[2]); err != nil {
				return nil, err
			}
		}
		tree, updater = t, t
	default:
		return nil, fmt.Errorf("unknown tree kind %q", opts.kind)
	}
	if opts.kind != "lazy" && len(opts.adds) > 0 {
		return nil, fmt.Errorf("range updates need a lazy tree, not %q", opts.kind)
	}
	for _, s := range opts.sets {
		ints, err := parseInts(s, 2)
		if err != nil {
			return nil, err
		}
		if err := updater.Update(int(ints[0]), ints[1]); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

func show(w io.Writer, values []int64, opts *showOptions) error {
	tree, err := build(values, opts)
	if err != nil {
		return err
	}
	switch opts.format {
	case "console":
		config := formatter.ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
		var console *formatter.Console
		if !opts.plain {
			console = formatter.NewConsole(nil)
		}
		return formatter.Output(tree, w, config, console)
	case "dot":
		return segtree.ToDot(tree, w)
	case "html":
		if err := html.Render(tree, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	}
	return fmt.Errorf("unknown output format %q", opts.format)
}
