package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-ricrob/keypadsolver/solver"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

func newSolveCmd(opts *options) *cobra.Command {
	var (
		depths   []int
		jsonMode bool
	)

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the sum of the code complexities for every depth",
		Long: `Reads one door code per line from file, the configured input file or stdin,
and prints the sum of the complexities of all codes for every depth.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.cfg.Input
			if len(args) > 0 {
				path = args[0]
			}
			codes, err := readCodes(cmd, path)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("depth") {
				depths = opts.cfg.Depths
			}
			for _, depth := range depths {
				if depth < 0 {
					return fmt.Errorf("invalid depth %d", depth)
				}
			}

			results, err := solver.New(codes, depths, solver.WithLogger(opts.log)).Run()
			if err != nil {
				return err
			}
			if jsonMode {
				return printJSON(cmd.OutOrStdout(), results)
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}

	cmd.Flags().IntSliceVarP(&depths, "depth", "d", nil, "Number of directional keypad robots (repeatable, overrides config)")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Print results as JSON lines")
	return cmd
}

func readCodes(cmd *cobra.Command, path string) ([]string, error) {
	if path == "" || path == "-" {
		return solver.ReadCodes(cmd.InOrStdin())
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	codes, err := solver.ReadCodes(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return codes, nil
}

func printResults(w io.Writer, results []solver.Result) {
	out := termenv.NewOutput(w)
	for _, result := range results {
		depth := out.String(strconv.Itoa(result.Depth)).Foreground(out.Color("#818cf8"))
		sum := out.String(strconv.Itoa(result.Sum)).Bold()
		fmt.Fprintf(w, "depth %s: %s\n", depth, sum)
	}
}

type jsonResult struct {
	Depth    int `json:"depth"`
	Sum      int `json:"sum"`
	MemoSize int `json:"memo_size"`
}

func printJSON(w io.Writer, results []solver.Result) error {
	enc := json.NewEncoder(w)
	for _, result := range results {
		if err := enc.Encode(jsonResult(result)); err != nil {
			return err
		}
	}
	return nil
}
