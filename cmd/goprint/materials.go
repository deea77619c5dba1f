package main

import (
	"fmt"
	"strings"

	"github.com/philipparndt/goprint/pkg/material"
	"github.com/spf13/cobra"
)

var materialsJSON bool

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List filament presets",
	Args:  cobra.NoArgs,
	Run:   runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)

	materialsCmd.Flags().BoolVar(&materialsJSON, "json", false, "Print the presets as JSON")
}

func runMaterials(cmd *cobra.Command, args []string) {
	profiles := material.All()
	if materialsJSON {
		printJSON(profiles)
		return
	}

	fmt.Printf("%-8s %-10s %-12s %-10s %s\n", "Name", "Density", "Cost/g", "Speed", "Nozzle/Bed")
	fmt.Println("---------------------------------------------------------------")
	for _, p := range profiles {
		temps := "-"
		if p.Thermal != nil {
			temps = fmt.Sprintf("%.0f/%.0f °C", p.Thermal.NozzleTemp, p.Thermal.BedTemp)
		}
		marker := ""
		if strings.EqualFold(p.Name, cfg.Material) {
			marker = " *"
		}
		fmt.Printf("%-8s %-10s %-12.3f %-10s %s%s\n",
			p.Name,
			fmt.Sprintf("%.2f g/cm³", p.Density),
			p.CostPerGram,
			fmt.Sprintf("%.0f mm/s", p.PrintSpeed),
			temps,
			marker)
	}
}
