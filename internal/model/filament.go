package model

import (
	"time"

	"github.com/google/uuid"
)

// FilamentRoll represents one physical spool tracked as an independent
// inventory unit. Invariant: 0 <= CurrentWeightGrams <= TotalWeightGrams.
type FilamentRoll struct {
	ID                 uuid.UUID `json:"id" db:"id"`
	Material           string    `json:"material" db:"material"`
	Color              string    `json:"color" db:"color"`
	Brand              string    `json:"brand" db:"brand"`
	TotalWeightGrams   float64   `json:"totalWeightGrams" db:"total_weight_grams"`
	CurrentWeightGrams float64   `json:"currentWeightGrams" db:"current_weight_grams"`
	ThresholdGrams     float64   `json:"thresholdGrams" db:"threshold_grams"`
	CostPerKg          *float64  `json:"costPerKg,omitempty" db:"cost_per_kg"`
	Supplier           *string   `json:"supplier,omitempty" db:"supplier"`
	CreatedAt          time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time `json:"updatedAt" db:"updated_at"`
}

// FilamentRollRequest represents the request payload for creating rolls.
// Quantity > 1 creates that many independent roll rows, each with the full
// field set; rolls are depleted individually so there is no aggregate row.
type FilamentRollRequest struct {
	Material           string   `json:"material"`
	Color              string   `json:"color"`
	Brand              string   `json:"brand"`
	TotalWeightGrams   float64  `json:"totalWeightGrams"`
	CurrentWeightGrams *float64 `json:"currentWeightGrams,omitempty"`
	ThresholdGrams     float64  `json:"thresholdGrams"`
	CostPerKg          *float64 `json:"costPerKg,omitempty"`
	Supplier           *string  `json:"supplier,omitempty"`
	Quantity           int      `json:"quantity"`
}
