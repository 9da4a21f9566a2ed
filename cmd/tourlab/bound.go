package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hexwald/tourlab/geom"
	"github.com/hexwald/tourlab/tsp"
)

var (
	boundInput string
	boundGrid  int
	boundCount int
	boundSeed  int64
)

var boundCmd = &cobra.Command{
	Use:   "bound",
	Short: "Compute the 1-tree lower bound for an instance",
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			ps  geom.PointSet
			err error
		)
		if boundInput != "" {
			ps, err = loadPoints(boundInput)
		} else {
			ps, err = geom.Sample(boundGrid, boundCount, boundSeed)
		}
		if err != nil {
			return err
		}

		b := tsp.OneTreeBound(ps)
		fmt.Fprintf(cmd.OutOrStdout(), "points: %d\nbound:  %.3f (%s)\n", len(ps), b.Value, b.Method)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(boundCmd)

	boundCmd.Flags().StringVar(&boundInput, "input", "", "JSON point file (default: sample an instance)")
	boundCmd.Flags().IntVar(&boundGrid, "grid", 8, "grid size for sampling")
	boundCmd.Flags().IntVar(&boundCount, "count", 10, "points to sample when --input is unset")
	boundCmd.Flags().Int64Var(&boundSeed, "seed", 0, "RNG seed (0 = fixed default)")
}
