package repository

import (
	"context"

	"printshop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CustomerRepository defines the interface for customer data access
// operations. Lookups return (nil, nil) when no row matches.
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error

	// CreateTx inserts a customer within the provided transaction, used by
	// the lookup-or-create step of order creation.
	CreateTx(ctx context.Context, tx pgx.Tx, customer *model.Customer) error

	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)

	// GetByPhone retrieves a customer by messaging handle.
	GetByPhone(ctx context.Context, phone string) (*model.Customer, error)

	List(ctx context.Context) ([]model.Customer, error)
}

// ProductRepository defines the interface for catalogue data access
// operations.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error

	GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error)

	// GetByIDs retrieves multiple products keyed by ID.
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]model.Product, error)

	List(ctx context.Context) ([]model.Product, error)

	Update(ctx context.Context, product *model.Product) error

	// SetFilePaths records the stored design/drawing file paths for a
	// product; nil values leave the existing path untouched.
	SetFilePaths(ctx context.Context, id uuid.UUID, designFile, drawingFile *string) error

	Delete(ctx context.Context, id uuid.UUID) error
}

// OrderRepository defines the interface for order and print data access
// operations. Order creation spans multiple inserts and therefore runs
// inside a caller-provided transaction.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreatePrints inserts the order's print jobs within the provided
	// transaction.
	CreatePrints(ctx context.Context, tx pgx.Tx, prints []model.Print) error

	// GetByID retrieves an order along with its prints, ordered by
	// creation.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.Print, error)

	List(ctx context.Context) ([]model.Order, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error

	Delete(ctx context.Context, id uuid.UUID) error

	GetPrintByID(ctx context.Context, id uuid.UUID) (*model.Print, error)

	UpdatePrintStatus(ctx context.Context, id uuid.UUID, status model.PrintStatus) error

	ListPrints(ctx context.Context, orderID uuid.UUID) ([]model.Print, error)
}

// StockRepository defines the interface for filament roll data access
// operations.
type StockRepository interface {
	// CreateBatch inserts rolls as independent rows; a bulk add of N rolls
	// is N inserts, not one aggregate record.
	CreateBatch(ctx context.Context, rolls []model.FilamentRoll) error

	GetByID(ctx context.Context, id uuid.UUID) (*model.FilamentRoll, error)

	List(ctx context.Context) ([]model.FilamentRoll, error)

	ListByMaterial(ctx context.Context, material string) ([]model.FilamentRoll, error)

	Update(ctx context.Context, roll *model.FilamentRoll) error

	Delete(ctx context.Context, id uuid.UUID) error
}

// MessageRepository defines the interface for outbound notification
// records.
type MessageRepository interface {
	Create(ctx context.Context, msg *model.WhatsAppMessage) error

	ListByOrder(ctx context.Context, orderID uuid.UUID) ([]model.WhatsAppMessage, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status model.MessageStatus) error
}
