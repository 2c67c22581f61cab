package plan

import (
	"github.com/google/uuid"

	"printshop/internal/model"
)

// Requirement is the filament an order needs in one material, summed across
// all of its prints.
type Requirement struct {
	Material    string  `json:"material"`
	TotalGrams  float64 `json:"totalGrams"`
	TotalMeters float64 `json:"totalMeters"`
}

// Availability compares a material requirement against on-hand stock.
type Availability struct {
	Material       string  `json:"material"`
	RequiredGrams  float64 `json:"requiredGrams"`
	AvailableGrams float64 `json:"availableGrams"`
	Sufficient     bool    `json:"sufficient"`
}

// Requirements aggregates per-material filament consumption for an order's
// prints. Per-unit figures come from each print's product; prints without a
// product, or whose product has no per-unit figures, contribute nothing.
func Requirements(prints []model.Print, products map[uuid.UUID]model.Product) map[string]Requirement {
	reqs := make(map[string]Requirement)

	for _, p := range prints {
		if p.ProductID == nil {
			continue
		}
		product, ok := products[*p.ProductID]
		if !ok {
			continue
		}

		req := reqs[p.Material]
		req.Material = p.Material
		if product.FilamentGramsPerUnit != nil {
			req.TotalGrams += *product.FilamentGramsPerUnit * float64(p.Quantity)
		}
		if product.FilamentMetersPerUnit != nil {
			req.TotalMeters += *product.FilamentMetersPerUnit * float64(p.Quantity)
		}
		reqs[p.Material] = req
	}

	return reqs
}

// CheckAvailability sums current weight across all rolls of the given
// material and compares it against the required grams. Read-only, never
// mutates stock.
func CheckAvailability(material string, requiredGrams float64, rolls []model.FilamentRoll) Availability {
	var available float64
	for _, roll := range rolls {
		if roll.Material == material {
			available += roll.CurrentWeightGrams
		}
	}

	return Availability{
		Material:       material,
		RequiredGrams:  requiredGrams,
		AvailableGrams: available,
		Sufficient:     available >= requiredGrams,
	}
}
