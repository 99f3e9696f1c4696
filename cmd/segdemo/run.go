package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/segtree"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the demonstration scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd.OutOrStdout())
		},
	}
}

// runScenarios exercises every kind of tree and prints the results.
func runScenarios(w io.Writer) error {
	fmt.Fprintln(w, "=== Segment Tree (Sum) ===")
	sum, err := segtree.NewSum([]int{1, 3, 5, 7, 9, 11})
	if err != nil {
		return err
	}
	if err := printQuery(w, "Sum [1,3]", sum.Query, 1, 3); err != nil {
		return err
	}
	if err := printQuery(w, "Sum [0,5]", sum.Query, 0, 5); err != nil {
		return err
	}
	if err := sum.Update(2, 10); err != nil {
		return err
	}
	if err := printQuery(w, "After update arr[2]=10, Sum [1,3]", sum.Query, 1, 3); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n=== Segment Tree (Min) ===")
	minTree, err := segtree.NewMin([]int{2, 5, 1, 4, 9, 3})
	if err != nil {
		return err
	}
	if err := printQuery(w, "Min [1,4]", minTree.Query, 1, 4); err != nil {
		return err
	}
	if err := printQuery(w, "Min [3,5]", minTree.Query, 3, 5); err != nil {
		return err
	}

	fmt.Fprintln(w, "\n=== Lazy Segment Tree ===")
	lazy, err := segtree.NewLazyZeros[int](6)
	if err != nil {
		return err
	}
	if err := lazy.RangeUpdate(0, 5, 5); err != nil {
		return err
	}
	if err := printQuery(w, "Sum [0,5] after adding 5", lazy.Query, 0, 5); err != nil {
		return err
	}
	if err := lazy.RangeUpdate(2, 4, 3); err != nil {
		return err
	}
	if err := printQuery(w, "Sum [0,5] after adding 3 to [2,4]", lazy.Query, 0, 5); err != nil {
		return err
	}
	return printQuery(w, "Sum [2,4]", lazy.Query, 2, 4)
}

func printQuery(w io.Writer, title string, query func(l, r int) (int, error), l, r int) error {
	v, err := query(l, r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s: %d\n", title, v)
	return err
}
