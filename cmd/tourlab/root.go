// Command tourlab is a demo CLI around the tourlab engine: it samples
// grid instances, builds and improves tours, verifies them against the
// 1-tree bound, and exports results as GeoJSON for display.
//
// The engine itself never logs; all operational output here belongs to the
// CLI layer.
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hexwald/tourlab/geom"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tourlab",
	Short: "Build, improve and verify tours over 2-D grid points",
	Long: `tourlab runs the tourlab TSP engine from the command line.

Sample a random instance, construct a tour (radial sweep or Moore curve
projection), improve it (2-opt, pair swap, combined), solve small
instances exactly, and check results against the 1-tree lower bound.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// jsonPoint is the on-disk point representation shared by sample/solve.
type jsonPoint struct {
	ID int `json:"id"`
	X  int `json:"x"`
	Y  int `json:"y"`
}

// loadPoints reads a JSON point array written by the sample command.
func loadPoints(path string) (geom.PointSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var jps []jsonPoint
	if err = json.Unmarshal(data, &jps); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	ps := make(geom.PointSet, len(jps))
	for i, p := range jps {
		ps[i] = geom.Point{ID: p.ID, X: p.X, Y: p.Y}
	}

	return ps, nil
}

// writePoints renders a point set as an indented JSON array.
func writePoints(ps geom.PointSet) ([]byte, error) {
	jps := make([]jsonPoint, len(ps))
	for i, p := range ps {
		jps[i] = jsonPoint{ID: p.ID, X: p.X, Y: p.Y}
	}

	return json.MarshalIndent(jps, "", "  ")
}
