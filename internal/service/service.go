package service

import (
	"context"
	"io"
	"time"

	"printshop/internal/model"
	"printshop/internal/report"
	"printshop/internal/stock"

	"github.com/google/uuid"
)

// CustomerService defines operations for customer management.
type CustomerService interface {
	// Create registers a new customer; the phone number must be unused.
	Create(ctx context.Context, req *model.CustomerRequest) (*model.Customer, error)

	// GetByPhone retrieves a customer by messaging handle.
	GetByPhone(ctx context.Context, phone string) (*model.Customer, error)

	List(ctx context.Context) ([]model.Customer, error)
}

// ProductService defines operations for catalogue management.
type ProductService interface {
	Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error)

	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	List(ctx context.Context) ([]model.Product, error)

	Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// AttachFile stores an uploaded design or drawing file for a product
	// and records its path. kind is "design" or "drawing".
	AttachFile(ctx context.Context, id uuid.UUID, kind, filename string, src io.Reader) (*model.Product, error)
}

// FilamentCheckResult compares one material's requirement for an order
// against the aggregate on-hand stock of that material.
type FilamentCheckResult struct {
	Material       string  `json:"material"`
	RequiredGrams  float64 `json:"requiredGrams"`
	RequiredMeters float64 `json:"requiredMeters"`
	AvailableGrams float64 `json:"availableGrams"`
	Sufficient     bool    `json:"sufficient"`
}

// OrderService defines operations for order and print-job management.
type OrderService interface {
	// Create composes an order from desired product quantities: it looks up
	// or creates the customer, expands each job into plates and print time,
	// and writes the order with its prints in one transaction.
	Create(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)

	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error)

	List(ctx context.Context) ([]model.Order, error)

	// UpdateStatus sets the order status; the transition must be allowed by
	// the workflow.
	UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*model.Order, error)

	// Advance moves the order to its next status. advanced is false when
	// the order is already completed; the caller then triggers the
	// notification flow instead.
	Advance(ctx context.Context, id uuid.UUID) (resp *model.OrderResponse, advanced bool, err error)

	UpdatePrintStatus(ctx context.Context, printID uuid.UUID, rawStatus string) (*model.Print, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// FilamentCheck aggregates the order's per-material filament
	// requirements and compares them against current stock. Read-only.
	FilamentCheck(ctx context.Context, id uuid.UUID) ([]FilamentCheckResult, error)

	// ReportData assembles the order aggregate for rendering, including the
	// externally computed estimated completion date.
	ReportData(ctx context.Context, id uuid.UUID, now time.Time) (*report.Data, error)
}

// RollAlert pairs a filament roll with its derived alert status.
type RollAlert struct {
	model.FilamentRoll
	Status stock.RollStatus `json:"status"`
}

// StockService defines operations for filament inventory management.
type StockService interface {
	// Create adds rolls; a request quantity of N creates N independent roll
	// records.
	Create(ctx context.Context, req *model.FilamentRollRequest) ([]model.FilamentRoll, error)

	GetByID(ctx context.Context, id uuid.UUID) (*RollAlert, error)

	List(ctx context.Context) ([]RollAlert, error)

	Update(ctx context.Context, id uuid.UUID, req *model.FilamentRollRequest) (*model.FilamentRoll, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// LowStock lists rolls whose alert status is not good.
	LowStock(ctx context.Context) ([]RollAlert, error)

	Summary(ctx context.Context) (stock.Summary, error)

	Groups(ctx context.Context) ([]stock.MaterialGroup, error)
}

// NotificationService composes WhatsApp status notifications and share
// links; there is no transport, the link is handed back to the caller.
type NotificationService interface {
	// Send composes the status message for an order, records it, and
	// returns the record with its share link.
	Send(ctx context.Context, orderID uuid.UUID) (*model.WhatsAppMessage, error)

	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]model.WhatsAppMessage, error)
}
