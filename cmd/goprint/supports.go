package main

import (
	"fmt"

	"github.com/philipparndt/goprint/pkg/analysis"
	"github.com/philipparndt/goprint/pkg/mesh"
	"github.com/philipparndt/goprint/pkg/repair"
	"github.com/spf13/cobra"
)

var (
	supportsOut  string
	supportsOnly bool
	supportsList bool
)

var supportsCmd = &cobra.Command{
	Use:   "supports [file]",
	Short: "Generate support pillars under overhangs",
	Long: `Place cylindrical pillars under the highest overhangs, from the model floor up
to the overhanging face. By default the pillars are merged into the model;
--only writes the pillars alone.`,
	Args: cobra.ExactArgs(1),
	Run:  runSupports,
}

func init() {
	rootCmd.AddCommand(supportsCmd)

	supportsCmd.Flags().StringVarP(&supportsOut, "out", "o", "", "Output STL file")
	supportsCmd.Flags().BoolVar(&supportsOnly, "only", false, "Write only the pillars")
	supportsCmd.Flags().BoolVar(&supportsList, "list", false, "List pillar sites without writing a file")
}

func runSupports(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()
	model := loadModel(ctx, args[0])

	radius := cfg.Supports.Radius
	sites := repair.SupportSites(model.Mesh, radius)
	if len(sites) == 0 {
		fmt.Println("No overhang needs a support pillar.")
		return
	}

	fmt.Printf("Support pillars: %d\n", len(sites))
	for i, s := range sites {
		fmt.Printf("  %2d. %s\n", i+1, analysis.FormatVector(s))
	}
	if supportsList || supportsOut == "" {
		return
	}

	pillars, _ := repair.GenerateSupportPillars(model.Mesh, radius, cfg.Supports.Segments)
	out := pillars
	if !supportsOnly {
		out = mesh.Merge(model.Mesh, pillars)
	}
	writeMesh(supportsOut, model.Name, out)
}
