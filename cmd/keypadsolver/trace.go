package main

import (
	"fmt"

	"github.com/go-ricrob/keypadsolver/internal/solver"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newTraceCmd(opts *options) *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "trace <code>",
		Short: "Print the sequence typed on every keypad of the chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			a := solver.New(solver.WithLogger(opts.log))
			layers, err := a.Trace(code, depth)
			if err != nil {
				return err
			}
			complexity, err := a.Complexity(code, depth)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			out := termenv.NewOutput(w)
			for i, layer := range layers {
				label := out.String(fmt.Sprintf("%2d %4d", i, len(layer))).Faint()
				fmt.Fprintf(w, "%s %s\n", label, layer)
			}
			fmt.Fprintf(w, "complexity %s: %d\n", code, complexity)
			return nil
		},
	}

	cmd.Flags().IntVarP(&depth, "depth", "d", 2, fmt.Sprintf("Number of directional keypad robots (at most %d)", solver.MaxTraceDepth))
	return cmd
}
