package repository

import (
	"context"
	"fmt"

	"printshop/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateOrder inserts a new order within the provided transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	query := `
		INSERT INTO orders (id, customer_id, number, status, invoice_number, reference,
			notes, total_estimated_hours, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := tx.Exec(ctx, query,
		order.ID, order.CustomerID, order.Number, order.Status, order.InvoiceNumber,
		order.Reference, order.Notes, order.TotalEstimatedHours, order.CreatedAt, order.UpdatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID.String()).
		Str("number", order.Number).
		Msg("order created")

	return nil
}

// CreatePrints inserts print jobs within the provided transaction using a
// batch.
func (r *orderRepository) CreatePrints(ctx context.Context, tx pgx.Tx, prints []model.Print) error {
	if len(prints) == 0 {
		return nil
	}

	query := `
		INSERT INTO prints (id, order_id, product_id, name, quantity, material,
			estimated_hours, status, filament_roll_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	batch := &pgx.Batch{}
	for _, p := range prints {
		batch.Queue(query, p.ID, p.OrderID, p.ProductID, p.Name, p.Quantity,
			p.Material, p.EstimatedHours, p.Status, p.FilamentRollID, p.CreatedAt)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(prints); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", prints[i].OrderID.String()).
				Str("print_name", prints[i].Name).
				Msg("failed to create print")
			return fmt.Errorf("failed to create print: %w", err)
		}
	}

	r.logger.Debug().Int("count", len(prints)).Msg("prints created")
	return nil
}

const printColumns = `id, order_id, product_id, name, quantity, material,
	estimated_hours, status, filament_roll_id, created_at`

func scanPrint(row pgx.Row) (*model.Print, error) {
	var p model.Print
	err := row.Scan(&p.ID, &p.OrderID, &p.ProductID, &p.Name, &p.Quantity,
		&p.Material, &p.EstimatedHours, &p.Status, &p.FilamentRollID, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const orderColumns = `id, customer_id, number, status, invoice_number, reference,
	notes, total_estimated_hours, created_at, updated_at`

func scanOrder(row pgx.Row) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.CustomerID, &o.Number, &o.Status, &o.InvoiceNumber,
		&o.Reference, &o.Notes, &o.TotalEstimatedHours, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetByID retrieves an order by its ID along with its prints.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.Print, error) {
	order, err := scanOrder(r.pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, nil, fmt.Errorf("failed to query order: %w", err)
	}

	prints, err := r.ListPrints(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	return order, prints, nil
}

func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	r.logger.Debug().
		Str("order_id", id.String()).
		Str("status", string(status)).
		Msg("order status updated")
	return nil
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}

	r.logger.Debug().Str("order_id", id.String()).Msg("order deleted")
	return nil
}

func (r *orderRepository) GetPrintByID(ctx context.Context, id uuid.UUID) (*model.Print, error) {
	p, err := scanPrint(r.pool.QueryRow(ctx,
		`SELECT `+printColumns+` FROM prints WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("print_id", id.String()).Msg("failed to query print")
		return nil, fmt.Errorf("failed to query print: %w", err)
	}
	return p, nil
}

func (r *orderRepository) UpdatePrintStatus(ctx context.Context, id uuid.UUID, status model.PrintStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE prints SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		r.logger.Error().Err(err).Str("print_id", id.String()).Msg("failed to update print status")
		return fmt.Errorf("failed to update print status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPrintNotFound
	}

	r.logger.Debug().
		Str("print_id", id.String()).
		Str("status", string(status)).
		Msg("print status updated")
	return nil
}

func (r *orderRepository) ListPrints(ctx context.Context, orderID uuid.UUID) ([]model.Print, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+printColumns+` FROM prints WHERE order_id = $1 ORDER BY created_at, id`,
		orderID)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to query prints")
		return nil, fmt.Errorf("failed to query prints: %w", err)
	}
	defer rows.Close()

	var prints []model.Print
	for rows.Next() {
		p, err := scanPrint(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan print row")
			return nil, fmt.Errorf("failed to scan print: %w", err)
		}
		prints = append(prints, *p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating print rows")
		return nil, fmt.Errorf("error iterating prints: %w", err)
	}

	return prints, nil
}
