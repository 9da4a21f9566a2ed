package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hexwald/tourlab/geom"
)

var (
	sampleGrid  int
	sampleCount int
	sampleSeed  int64
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Sample a random instance on a g×g grid",
	Long: `Sample k distinct points with integer coordinates in 0..g-1 and
sequential identifiers, reproducible by seed (0 selects the fixed default
seed). Output is a JSON point array suitable for 'tourlab solve --input'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ps, err := geom.Sample(sampleGrid, sampleCount, sampleSeed)
		if err != nil {
			return err
		}
		slog.Debug("sampled instance", "grid", sampleGrid, "count", sampleCount, "seed", sampleSeed)

		out, err := writePoints(ps)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().IntVar(&sampleGrid, "grid", 8, "grid size g (points range over 0..g-1)")
	sampleCmd.Flags().IntVar(&sampleCount, "count", 10, "number of points to sample")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 0, "RNG seed (0 = fixed default)")
}
