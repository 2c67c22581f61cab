// Package plan computes the build plan for print jobs: how many plates a
// desired quantity needs, the aggregate print time, and the filament each
// job will consume.
package plan

import (
	"fmt"
	"math"

	"printshop/internal/model"
)

// ErrUnknownProduct is returned when a job references a product that cannot
// be resolved. The calculation refuses rather than silently reporting zero
// plates.
var ErrUnknownProduct = model.NewDomainError(model.ErrCodeProductNotFound, "Referenced product not found")

// PlatesNeeded returns ceil(quantityNeeded / quantityPerPlate). A
// quantityPerPlate below 1 is treated as 1; quantityNeeded must be at least 1.
func PlatesNeeded(quantityNeeded, quantityPerPlate int) (int, error) {
	if quantityNeeded < 1 {
		return 0, model.ErrInvalidQuantity
	}
	if quantityPerPlate < 1 {
		quantityPerPlate = 1
	}

	return int(math.Ceil(float64(quantityNeeded) / float64(quantityPerPlate))), nil
}

// TotalPrintTime returns the aggregate print time in decimal hours for the
// given number of plates.
func TotalPrintTime(plates int, perPlateHours float64) float64 {
	return float64(plates) * perPlateHours
}

// JobName synthesizes the display name for a product-backed print job.
func JobName(productName string, quantity, plates int) string {
	return fmt.Sprintf("%s (%d pieces, %d plates)", productName, quantity, plates)
}
