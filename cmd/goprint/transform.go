package main

import (
	"fmt"

	"github.com/philipparndt/goprint/pkg/analysis"
	"github.com/philipparndt/goprint/pkg/geometry"
	"github.com/philipparndt/goprint/pkg/transform"
	"github.com/spf13/cobra"
)

var (
	rotX, rotY, rotZ float64
	scaleFactor      float64
	centerModel      bool
	transformOut     string
)

var transformCmd = &cobra.Command{
	Use:   "transform [file]",
	Short: "Rotate, scale and center a model",
	Long: `Rotate about X, then Y, then Z (degrees), scale uniformly, and optionally
center the result on the build plate. Operations run in that order.`,
	Args: cobra.ExactArgs(1),
	Run:  runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().Float64Var(&rotX, "rx", 0, "Rotation about X in degrees")
	transformCmd.Flags().Float64Var(&rotY, "ry", 0, "Rotation about Y in degrees")
	transformCmd.Flags().Float64Var(&rotZ, "rz", 0, "Rotation about Z in degrees")
	transformCmd.Flags().Float64Var(&scaleFactor, "scale", 1, "Uniform scale factor")
	transformCmd.Flags().BoolVar(&centerModel, "center", false, "Center on the build plate")
	transformCmd.Flags().StringVarP(&transformOut, "out", "o", "", "Output STL file")
	_ = transformCmd.MarkFlagRequired("out")
}

func runTransform(cmd *cobra.Command, args []string) {
	ctx, cancel := commandContext()
	defer cancel()
	model := loadModel(ctx, args[0])

	m := model.Mesh
	if rotX != 0 || rotY != 0 || rotZ != 0 {
		m = transform.Rotate(m, geometry.Deg2Rad(rotX), geometry.Deg2Rad(rotY), geometry.Deg2Rad(rotZ))
	}
	if scaleFactor != 1 {
		m = transform.Scale(m, scaleFactor)
	}
	if centerModel {
		m = transform.CenterOnBuildPlate(m)
	}

	bbox := analysis.BoundingBox(m)
	fmt.Printf("Size: %.1f x %.1f x %.1f mm (W x D x H)\n", bbox.Width(), bbox.Depth(), bbox.Height())
	writeMesh(transformOut, model.Name, m)
}
