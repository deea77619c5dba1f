package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/philipparndt/goprint/pkg/analysis"
	"github.com/philipparndt/goprint/pkg/repair"
	"github.com/spf13/cobra"
)

var fixesJSON bool

var fixesCmd = &cobra.Command{
	Use:   "fixes [file]",
	Short: "List repairs applicable to a model",
	Long:  "Analyze the model and list the fixes that address its problems, most important first. Apply them with the fix command.",
	Args:  cobra.ExactArgs(1),
	Run:   runFixes,
}

func init() {
	rootCmd.AddCommand(fixesCmd)

	fixesCmd.Flags().BoolVar(&fixesJSON, "json", false, "Print the fixes as JSON")
}

func runFixes(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()
	model := loadModel(ctx, args[0])

	a, err := analysis.Analyze(ctx, model.Mesh, profile())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fixes := repair.AvailableFixes(model.Mesh, a, cfg.RepairOptions())

	if fixesJSON {
		printJSON(fixes)
		return
	}

	fmt.Printf("Available Fixes (score %d/100)\n", a.Printability.Score)
	fmt.Println("=============================")
	for _, f := range fixes {
		fmt.Printf("%-10s %-9s %s\n", f.ID, "["+strings.ToUpper(string(f.Severity))+"]", f.Name)
		fmt.Printf("%-20s %s\n", "", f.Description)
	}
}
