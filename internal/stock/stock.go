// Package stock derives alert levels and KPI rollups from filament roll
// records. It never mutates stock; rolls are maintained manually through the
// inventory endpoints.
package stock

import (
	"sort"

	"printshop/internal/model"
)

// RollStatus is the alert level of a single roll.
type RollStatus string

const (
	StatusCritical RollStatus = "critical"
	StatusLow      RollStatus = "low"
	StatusGood     RollStatus = "good"
)

// Status returns the alert level for a roll. A roll at or below its
// threshold is critical, at or below twice the threshold is low, and good
// otherwise. This is the single cutoff rule; every call site goes through
// here.
func Status(currentGrams, thresholdGrams float64) RollStatus {
	switch {
	case currentGrams <= thresholdGrams:
		return StatusCritical
	case currentGrams <= thresholdGrams*2:
		return StatusLow
	default:
		return StatusGood
	}
}

// Summary is the KPI rollup over a set of rolls. AverageFillPercent is the
// unweighted mean of each roll's current/total ratio; TotalValue prices the
// remaining weight of rolls that carry a cost figure.
type Summary struct {
	RollCount          int     `json:"rollCount"`
	TotalWeightGrams   float64 `json:"totalWeightGrams"`
	AverageFillPercent float64 `json:"averageFillPercent"`
	TotalValue         float64 `json:"totalValue"`
	LowStockCount      int     `json:"lowStockCount"`
}

// MaterialGroup is the per-material rollup used for grouped display.
type MaterialGroup struct {
	Material string               `json:"material"`
	Rolls    []model.FilamentRoll `json:"rolls"`
	Summary  Summary              `json:"summary"`
}

// Summarize computes the KPI rollup over rolls. LowStockCount counts rolls
// whose status is not good.
func Summarize(rolls []model.FilamentRoll) Summary {
	s := Summary{RollCount: len(rolls)}
	if len(rolls) == 0 {
		return s
	}

	var fillSum float64
	for _, roll := range rolls {
		s.TotalWeightGrams += roll.CurrentWeightGrams
		if roll.TotalWeightGrams > 0 {
			fillSum += roll.CurrentWeightGrams / roll.TotalWeightGrams * 100
		}
		if roll.CostPerKg != nil {
			s.TotalValue += roll.CurrentWeightGrams / 1000 * *roll.CostPerKg
		}
		if Status(roll.CurrentWeightGrams, roll.ThresholdGrams) != StatusGood {
			s.LowStockCount++
		}
	}
	s.AverageFillPercent = fillSum / float64(len(rolls))

	return s
}

// GroupByMaterial buckets rolls by material and computes each bucket's own
// rollup with the same formulas. Groups come back sorted by material name.
func GroupByMaterial(rolls []model.FilamentRoll) []MaterialGroup {
	byMaterial := make(map[string][]model.FilamentRoll)
	for _, roll := range rolls {
		byMaterial[roll.Material] = append(byMaterial[roll.Material], roll)
	}

	materials := make([]string, 0, len(byMaterial))
	for material := range byMaterial {
		materials = append(materials, material)
	}
	sort.Strings(materials)

	groups := make([]MaterialGroup, 0, len(materials))
	for _, material := range materials {
		groups = append(groups, MaterialGroup{
			Material: material,
			Rolls:    byMaterial[material],
			Summary:  Summarize(byMaterial[material]),
		})
	}

	return groups
}
