package model

import (
	"time"

	"github.com/google/uuid"
)

// Order represents a customer's request bundling one or more print jobs.
// TotalEstimatedHours is a cache over the prints and is recomputed whenever
// print composition changes.
type Order struct {
	ID                  uuid.UUID   `json:"id" db:"id"`
	CustomerID          uuid.UUID   `json:"customerId" db:"customer_id"`
	Number              string      `json:"number" db:"number"`
	Status              OrderStatus `json:"status" db:"status"`
	InvoiceNumber       *string     `json:"invoiceNumber,omitempty" db:"invoice_number"`
	Reference           *string     `json:"reference,omitempty" db:"reference"`
	Notes               *string     `json:"notes,omitempty" db:"notes"`
	TotalEstimatedHours float64     `json:"totalEstimatedHours" db:"total_estimated_hours"`
	CreatedAt           time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time   `json:"updatedAt" db:"updated_at"`
}

// Print represents one job within an order. The product reference is
// optional; ad hoc jobs carry their own name and material. EstimatedHours is
// pre-aggregated across all plates of the job.
type Print struct {
	ID             uuid.UUID   `json:"id" db:"id"`
	OrderID        uuid.UUID   `json:"orderId" db:"order_id"`
	ProductID      *uuid.UUID  `json:"productId,omitempty" db:"product_id"`
	Name           string      `json:"name" db:"name"`
	Quantity       int         `json:"quantity" db:"quantity"`
	Material       string      `json:"material" db:"material"`
	EstimatedHours float64     `json:"estimatedHours" db:"estimated_hours"`
	Status         PrintStatus `json:"status" db:"status"`
	FilamentRollID *uuid.UUID  `json:"filamentRollId,omitempty" db:"filament_roll_id"`
	CreatedAt      time.Time   `json:"createdAt" db:"created_at"`
}

// OrderRequest represents the request payload for creating an order. Either
// CustomerID or Customer must be supplied; an unknown phone number in
// Customer creates the customer as part of the order.
type OrderRequest struct {
	CustomerID    *uuid.UUID        `json:"customerId,omitempty"`
	Customer      *CustomerRequest  `json:"customer,omitempty"`
	InvoiceNumber *string           `json:"invoiceNumber,omitempty"`
	Reference     *string           `json:"reference,omitempty"`
	Notes         *string           `json:"notes,omitempty"`
	Jobs          []PrintJobRequest `json:"jobs"`
}

// PrintJobRequest represents a single desired print job in an order request.
// Jobs referencing a product inherit its material and per-plate figures;
// ad hoc jobs must carry Name, Material and EstimatedHours themselves.
type PrintJobRequest struct {
	ProductID      *uuid.UUID `json:"productId,omitempty"`
	Name           *string    `json:"name,omitempty"`
	Material       *string    `json:"material,omitempty"`
	Quantity       int        `json:"quantity"`
	EstimatedHours *float64   `json:"estimatedHours,omitempty"`
	FilamentRollID *uuid.UUID `json:"filamentRollId,omitempty"`
}

// OrderResponse represents the composed order returned by the API: the order
// row plus its customer and prints.
type OrderResponse struct {
	Order    Order    `json:"order"`
	Customer Customer `json:"customer"`
	Prints   []Print  `json:"prints"`
}

// StatusUpdateRequest carries a bare status value for order and print status
// updates.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
