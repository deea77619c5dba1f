package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/philipparndt/goprint/internal/logging"
	"github.com/philipparndt/goprint/pkg/analysis"
	"github.com/philipparndt/goprint/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	analyzeJSON  bool
	analyzeWatch bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Report printability of a model",
	Long: `Estimate wall thickness, overhangs, weight, print time and cost, and score
how well the model will print. With --watch the report is refreshed whenever
the file, or any OpenSCAD file it includes, changes.`,
	Args: cobra.ExactArgs(1),
	Run:  runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the report as JSON")
	analyzeCmd.Flags().BoolVarP(&analyzeWatch, "watch", "w", false, "Re-analyze on file changes")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	filename := args[0]

	sources, err := analyzeOnce(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if !analyzeWatch {
			os.Exit(1)
		}
	}
	if !analyzeWatch {
		return
	}
	if len(sources) == 0 {
		sources = []string{filename}
	}

	fw, err := watcher.NewFileWatcher(watcher.DefaultDebounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	err = fw.Watch(sources, func(changed string) {
		fmt.Printf("\nFile changed: %s\n", changed)
		if _, err := analyzeOnce(filename); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logging.New("cli").Info("watching for changes", "files", len(sources))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	fw.Run(ctx)
}

// analyzeOnce loads and reports on filename and returns the files the model
// was built from.
func analyzeOnce(filename string) ([]string, error) {
	ctx, cancel := commandContext()
	defer cancel()

	model, err := loadModelErr(ctx, filename)
	if err != nil {
		return nil, err
	}
	a, err := analysis.Analyze(ctx, model.Mesh, profile())
	if err != nil {
		return model.Sources, fmt.Errorf("analyze %s: %w", filename, err)
	}

	if analyzeJSON {
		printJSON(a)
	} else {
		printAnalysis(filename, a)
	}
	return model.Sources, nil
}

func printAnalysis(filename string, a analysis.Analysis) {
	g := a.Geometry
	fmt.Println("Printability Report")
	fmt.Println("===================")
	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Material: %s\n\n", a.Material)

	fmt.Println("Geometry:")
	fmt.Printf("  Triangles: %d\n", g.TriangleCount)
	fmt.Printf("  Volume: %.2f cm³\n", g.Volume/1000)
	fmt.Printf("  Surface Area: %.2f cm²\n", g.SurfaceArea/100)
	fmt.Printf("  Size: %.1f x %.1f x %.1f mm (W x D x H)\n\n", g.Width, g.Depth, g.Height)

	fmt.Println("Wall Thickness (estimated):")
	fmt.Printf("  Min: %s\n", analysis.FormatMeasurement(a.WallThickness.Min, ""))
	fmt.Printf("  Max: %s\n", analysis.FormatMeasurement(a.WallThickness.Max, ""))
	fmt.Printf("  Average: %s\n\n", analysis.FormatMeasurement(a.WallThickness.Average, ""))

	fmt.Println("Overhangs:")
	fmt.Printf("  Faces: %d\n", a.Overhangs.Count)
	fmt.Printf("  Max angle: %.1f°\n\n", a.Overhangs.MaxAngle)

	fmt.Println("Estimate:")
	fmt.Printf("  Weight: %.1f g\n", a.Estimate.Weight)
	fmt.Printf("  Print time: %s\n", formatMinutes(a.Estimate.PrintTime))
	fmt.Printf("  Material cost: %.2f\n\n", a.Estimate.MaterialCost)

	fmt.Printf("Score: %d/100\n", a.Printability.Score)
	printList("Issues", a.Printability.Issues)
	printList("Suggestions", a.Printability.Suggestions)
}

func printList(title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Printf("\n%s:\n", title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
}

func formatMinutes(minutes float64) string {
	h := int(minutes) / 60
	m := int(minutes) % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %02dm", h, m)
}
