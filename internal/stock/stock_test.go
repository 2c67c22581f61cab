package stock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printshop/internal/model"
)

func f64(v float64) *float64 { return &v }

func TestStatus(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		threshold float64
		expected  RollStatus
	}{
		{name: "below threshold is critical", current: 50, threshold: 100, expected: StatusCritical},
		{name: "at threshold is critical", current: 100, threshold: 100, expected: StatusCritical},
		{name: "within double threshold is low", current: 150, threshold: 100, expected: StatusLow},
		{name: "at double threshold is low", current: 200, threshold: 100, expected: StatusLow},
		{name: "above double threshold is good", current: 250, threshold: 100, expected: StatusGood},
		{name: "empty roll", current: 0, threshold: 100, expected: StatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Status(tt.current, tt.threshold))
		})
	}
}

func TestSummarize(t *testing.T) {
	rolls := []model.FilamentRoll{
		{Material: "PLA", TotalWeightGrams: 1000, CurrentWeightGrams: 500, ThresholdGrams: 100, CostPerKg: f64(20)},
		{Material: "PLA", TotalWeightGrams: 1000, CurrentWeightGrams: 80, ThresholdGrams: 100, CostPerKg: f64(20)},
		{Material: "PETG", TotalWeightGrams: 2000, CurrentWeightGrams: 2000, ThresholdGrams: 200},
	}

	s := Summarize(rolls)
	assert.Equal(t, 3, s.RollCount)
	assert.InDelta(t, 2580.0, s.TotalWeightGrams, 1e-9)
	// fills: 50%, 8%, 100% -> mean 52.666...
	assert.InDelta(t, 52.666666, s.AverageFillPercent, 1e-4)
	// value: 0.5*20 + 0.08*20, third roll has no cost figure
	assert.InDelta(t, 11.6, s.TotalValue, 1e-9)
	// second roll is critical (80 <= 100)
	assert.Equal(t, 1, s.LowStockCount)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.RollCount)
	assert.Zero(t, s.TotalWeightGrams)
	assert.Zero(t, s.AverageFillPercent)
	assert.Zero(t, s.TotalValue)
	assert.Zero(t, s.LowStockCount)
}

func TestGroupByMaterial(t *testing.T) {
	rolls := []model.FilamentRoll{
		{Material: "PLA", TotalWeightGrams: 1000, CurrentWeightGrams: 900, ThresholdGrams: 100},
		{Material: "PETG", TotalWeightGrams: 1000, CurrentWeightGrams: 150, ThresholdGrams: 100},
		{Material: "PLA", TotalWeightGrams: 1000, CurrentWeightGrams: 300, ThresholdGrams: 100},
	}

	groups := GroupByMaterial(rolls)
	require.Len(t, groups, 2)

	// Sorted by material name.
	assert.Equal(t, "PETG", groups[0].Material)
	assert.Equal(t, "PLA", groups[1].Material)

	assert.Equal(t, 1, groups[0].Summary.RollCount)
	assert.Equal(t, 1, groups[0].Summary.LowStockCount) // 150 <= 200 is low

	assert.Equal(t, 2, groups[1].Summary.RollCount)
	assert.InDelta(t, 1200.0, groups[1].Summary.TotalWeightGrams, 1e-9)
	assert.InDelta(t, 60.0, groups[1].Summary.AverageFillPercent, 1e-9)
	assert.Equal(t, 0, groups[1].Summary.LowStockCount)
}
