package analysis

import (
	"math"

	"github.com/philipparndt/goprint/pkg/material"
)

// FDM flow model constants.
const (
	LayerHeight    = 0.2  // mm
	NozzleDiameter = 0.4  // mm
	MaxFlowRate    = 32.0 // mm³/s, hotend limit

	travelOverhead       = 0.30
	accelerationOverhead = 0.10
	layerChangeOverhead  = 0.05
	retractionOverhead   = 0.05

	heatingMinutes = 3.0
)

// PrintEstimate is the material and time budget for one print.
type PrintEstimate struct {
	Weight       float64 `json:"weight"`       // g
	PrintTime    float64 `json:"printTime"`    // minutes
	MaterialCost float64 `json:"materialCost"` // currency units
}

// EffectiveFlow returns the volumetric extrusion rate for a nominal speed.
func EffectiveFlow(printSpeed float64) float64 {
	return math.Min(MaxFlowRate, printSpeed*LayerHeight*NozzleDiameter)
}

// EstimatePrint computes weight, time and cost for a solid part of the
// given volume in mm³.
func EstimatePrint(volume float64, profile material.Profile) PrintEstimate {
	weight := volume / 1000 * profile.Density

	minutes := heatingMinutes
	if flow := EffectiveFlow(profile.PrintSpeed); flow > 0 {
		baseSeconds := volume / flow
		overhead := travelOverhead + accelerationOverhead + layerChangeOverhead + retractionOverhead
		minutes += baseSeconds * (1 + overhead) / 60
	}

	return PrintEstimate{
		Weight:       weight,
		PrintTime:    minutes,
		MaterialCost: weight * profile.CostPerGram,
	}
}
