package model

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalogue item that can be printed. TimePerPlateHours
// is the estimated print time for one full plate; QuantityPerPlate is how
// many units fit on a single plate.
type Product struct {
	ID                    uuid.UUID `json:"id" db:"id"`
	Name                  string    `json:"name" db:"name"`
	Material              string    `json:"material" db:"material"`
	TimePerPlateHours     float64   `json:"timePerPlateHours" db:"time_per_plate_hours"`
	QuantityPerPlate      int       `json:"quantityPerPlate" db:"quantity_per_plate"`
	FilamentGramsPerUnit  *float64  `json:"filamentGramsPerUnit,omitempty" db:"filament_grams_per_unit"`
	FilamentMetersPerUnit *float64  `json:"filamentMetersPerUnit,omitempty" db:"filament_meters_per_unit"`
	Price                 *float64  `json:"price,omitempty" db:"price"`
	DesignFile            *string   `json:"designFile,omitempty" db:"design_file"`
	DrawingFile           *string   `json:"drawingFile,omitempty" db:"drawing_file"`
	CreatedAt             time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt             time.Time `json:"updatedAt" db:"updated_at"`
}

// ProductRequest represents the request payload for creating or updating a
// product.
type ProductRequest struct {
	Name                  string   `json:"name"`
	Material              string   `json:"material"`
	TimePerPlateHours     float64  `json:"timePerPlateHours"`
	QuantityPerPlate      int      `json:"quantityPerPlate"`
	FilamentGramsPerUnit  *float64 `json:"filamentGramsPerUnit,omitempty"`
	FilamentMetersPerUnit *float64 `json:"filamentMetersPerUnit,omitempty"`
	Price                 *float64 `json:"price,omitempty"`
}
