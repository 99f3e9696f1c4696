// Command segdemo demonstrates the segtree module from the command line.
//
//	segdemo run
//	segdemo show --kind lazy --add 0:3:5 --format console 1 2 3 4 5
package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "segdemo",
		Short: "Demonstrate segment trees with sum, minimum and lazy range updates",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			gtrace.CoreTracer = gologadapter.New()
			if verbose {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
			} else {
				gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
			}
		},
		SilenceUsage: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "trace tree operations")
	root.AddCommand(newRunCmd(), newShowCmd())
	return root
}
