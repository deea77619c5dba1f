package main

import (
	"context"
	"fmt"
	"os"

	"github.com/philipparndt/goprint/pkg/analysis"
	"github.com/philipparndt/goprint/pkg/mesh"
	"github.com/philipparndt/goprint/pkg/repair"
	"github.com/spf13/cobra"
)

var (
	fixIDs []string
	fixOut string
)

var fixCmd = &cobra.Command{
	Use:   "fix [file]",
	Short: "Apply repairs and write the result",
	Long: `Apply one or more fixes in the given order and write the repaired model as
binary STL. The model is re-analyzed before each fix, so later fixes see the
result of earlier ones.`,
	Example: "  goprint fix part.stl --id rotate --id base -o part-fixed.stl",
	Args:    cobra.ExactArgs(1),
	Run:     runFix,
}

func init() {
	rootCmd.AddCommand(fixCmd)

	fixCmd.Flags().StringSliceVar(&fixIDs, "id", nil, "Fix to apply (repeatable): rotate, supports, scale, thicken, center, base")
	fixCmd.Flags().StringVarP(&fixOut, "out", "o", "", "Output STL file")
	_ = fixCmd.MarkFlagRequired("id")
	_ = fixCmd.MarkFlagRequired("out")
}

func runFix(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()
	model := loadModel(ctx, args[0])

	m := model.Mesh
	for _, id := range fixIDs {
		res, err := applyFix(ctx, m, id)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		status := "skipped"
		if res.Success {
			status = "applied"
			m = res.Mesh
		}
		fmt.Printf("%-8s %-8s %s", id, status, res.Description)
		if res.Improvement != nil {
			fmt.Printf(" (%.1f%%)", *res.Improvement)
		}
		fmt.Println()
	}

	writeMesh(fixOut, model.Name, m)
}

func applyFix(ctx context.Context, m mesh.Mesh, id string) (repair.FixResult, error) {
	a, err := analysis.Analyze(ctx, m, profile())
	if err != nil {
		return repair.FixResult{}, err
	}
	f, ok := repair.Find(repair.AvailableFixes(m, a, cfg.RepairOptions()), id)
	if !ok {
		return repair.FixResult{Mesh: m, Description: "not applicable to this model"}, nil
	}
	res, err := f.Apply(ctx)
	if err != nil {
		return repair.FixResult{}, fmt.Errorf("fix %s: %w", id, err)
	}
	return res, nil
}
