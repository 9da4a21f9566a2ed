package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/spf13/cobra"

	"github.com/hexwald/tourlab/geom"
	"github.com/hexwald/tourlab/tsp"
)

var (
	solveAlgo    string
	solveInput   string
	solveGrid    int
	solveCount   int
	solveSeed    int64
	solveSteps   bool
	solveGeoJSON string
)

// algoByName maps the CLI spelling to the dispatcher route.
var algoByName = map[string]tsp.Algo{
	"sweep":      tsp.SweepConstruct,
	"curve":      tsp.CurveConstruct,
	"two-opt":    tsp.TwoOptOnly,
	"pair-swap":  tsp.PairSwapOnly,
	"combined":   tsp.CombinedImprove,
	"exhaustive": tsp.ExhaustiveSearch,
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Construct, improve and verify a tour",
	Long: `Run the selected algorithm over an instance (from --input, or freshly
sampled), report the tour, its length and the 1-tree optimality verdict,
and optionally export the tour as GeoJSON or replay the step trace.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		algo, ok := algoByName[solveAlgo]
		if !ok {
			return fmt.Errorf("unknown algorithm %q: %w", solveAlgo, tsp.ErrUnsupportedAlgorithm)
		}

		ps, err := instancePoints()
		if err != nil {
			return err
		}

		opts := tsp.DefaultOptions()
		opts.Algo = algo
		opts.GridSize = solveGrid

		if algo == tsp.ExhaustiveSearch && len(ps) > 1 {
			perms := int64(1)
			for i := int64(2); i < int64(len(ps)); i++ {
				perms *= i
			}
			slog.Debug("exhaustive search space", "permutations", humanize.Comma(perms))
		}

		w := cmd.OutOrStdout()

		var sol tsp.Solution
		if solveSteps {
			solT, steps, errT := tsp.SolveTrace(ps, opts)
			if errT != nil {
				return errT
			}
			sol = solT
			for i, s := range steps {
				fmt.Fprintf(w, "step %3d  %s\n", i+1, s.Description())
			}
		} else {
			sol, err = tsp.Solve(ps, opts)
			if err != nil {
				return err
			}
		}

		fmt.Fprintf(w, "points:      %d\n", len(ps))
		fmt.Fprintf(w, "tour:        %v\n", sol.Tour)
		fmt.Fprintf(w, "length:      %.3f\n", sol.Length)
		if sol.Improvement > 0 {
			fmt.Fprintf(w, "improvement: %.3f\n", sol.Improvement)
		}

		v := tsp.VerifyOptimality(sol.Length, ps, opts)
		fmt.Fprintf(w, "bound:       %.3f (%s)\n", v.LowerBound, v.Method)
		if v.IsOptimal {
			fmt.Fprintln(w, "verdict:     proven optimal")
		} else {
			fmt.Fprintf(w, "verdict:     gap %.3f (%.1f%%)\n", v.Gap, 100*v.RelGap)
		}

		if solveGeoJSON != "" {
			if err = exportGeoJSON(solveGeoJSON, ps, sol); err != nil {
				return err
			}
			slog.Debug("wrote geojson", "path", solveGeoJSON)
		}

		return nil
	},
}

// instancePoints loads --input or samples a fresh instance.
func instancePoints() (geom.PointSet, error) {
	if solveInput != "" {
		return loadPoints(solveInput)
	}

	return geom.Sample(solveGrid, solveCount, solveSeed)
}

// exportGeoJSON writes the closed tour as a LineString feature plus one
// Point feature per input point.
func exportGeoJSON(path string, ps geom.PointSet, sol tsp.Solution) error {
	fc := geojson.NewFeatureCollection()

	ls := make(orb.LineString, 0, len(sol.Tour)+1)
	for _, idx := range sol.Tour {
		ls = append(ls, orb.Point{float64(ps[idx].X), float64(ps[idx].Y)})
	}
	if len(sol.Tour) > 0 {
		first := ps[sol.Tour[0]]
		ls = append(ls, orb.Point{float64(first.X), float64(first.Y)}) // close the loop
	}

	tour := geojson.NewFeature(ls)
	tour.Properties["length"] = math.Round(sol.Length*1000) / 1000
	fc.Append(tour)

	for _, p := range ps {
		f := geojson.NewFeature(orb.Point{float64(p.X), float64(p.Y)})
		f.Properties["id"] = p.ID
		fc.Append(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVar(&solveAlgo, "algo", "combined",
		"algorithm: sweep, curve, two-opt, pair-swap, combined, exhaustive")
	solveCmd.Flags().StringVar(&solveInput, "input", "", "JSON point file (default: sample an instance)")
	solveCmd.Flags().IntVar(&solveGrid, "grid", 8, "grid size for sampling and curve projection")
	solveCmd.Flags().IntVar(&solveCount, "count", 10, "points to sample when --input is unset")
	solveCmd.Flags().Int64Var(&solveSeed, "seed", 0, "RNG seed (0 = fixed default)")
	solveCmd.Flags().BoolVar(&solveSteps, "steps", false, "print the progressive step trace")
	solveCmd.Flags().StringVar(&solveGeoJSON, "geojson", "", "write the tour as GeoJSON to this path")
}
