package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/goprint/pkg/geometry"
	"github.com/philipparndt/goprint/pkg/optimize"
	"github.com/philipparndt/goprint/pkg/transform"
	"github.com/spf13/cobra"
)

var (
	orientOut      string
	orientProgress bool
)

var orientCmd = &cobra.Command{
	Use:   "orient [file]",
	Short: "Find the orientation with the fewest overhangs",
	Long: `Search rotations about X and Z on a grid and report the one that leaves the
fewest overhanging faces. With --out the rotated, centered model is written.`,
	Args: cobra.ExactArgs(1),
	Run:  runOrient,
}

func init() {
	rootCmd.AddCommand(orientCmd)

	orientCmd.Flags().StringVarP(&orientOut, "out", "o", "", "Write the reoriented model to this STL file")
	orientCmd.Flags().BoolVar(&orientProgress, "progress", false, "Show search progress")
}

func runOrient(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()
	model := loadModel(ctx, args[0])

	opts := cfg.SearchOptions()
	if orientProgress {
		opts.Progress = func(done, total int) {
			fmt.Fprintf(os.Stderr, "\rEvaluated %d/%d orientations", done, total)
		}
	}

	res, err := optimize.FindOptimalRotation(ctx, model.Mesh, opts)
	if orientProgress {
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Orientation Search")
	fmt.Println("==================")
	fmt.Printf("Candidates: %d\n", res.Evaluated)
	fmt.Printf("Best rotation: X %.0f°, Y %.0f°, Z %.0f°\n",
		geometry.Rad2Deg(res.RX), geometry.Rad2Deg(res.RY), geometry.Rad2Deg(res.RZ))
	fmt.Printf("Overhangs: %d -> %d (%.1f%% fewer)\n", res.OriginalCount, res.BestCount, res.Reduction)
	fmt.Printf("Max overhang angle: %.1f°\n", res.MaxAngle)

	if orientOut != "" {
		m := transform.CenterOnBuildPlate(transform.Rotate(model.Mesh, res.RX, res.RY, res.RZ))
		writeMesh(orientOut, model.Name, m)
	}
}
