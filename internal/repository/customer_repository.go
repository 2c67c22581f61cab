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

// customerRepository implements the CustomerRepository interface using
// PostgreSQL.
type customerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCustomerRepository creates a new PostgreSQL-backed customer repository.
func NewCustomerRepository(pool *pgxpool.Pool, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

const insertCustomerQuery = `
	INSERT INTO customers (id, name, phone, email, address, notes, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (r *customerRepository) Create(ctx context.Context, c *model.Customer) error {
	_, err := r.pool.Exec(ctx, insertCustomerQuery,
		c.ID, c.Name, c.Phone, c.Email, c.Address, c.Notes, c.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("phone", c.Phone).Msg("failed to create customer")
		return fmt.Errorf("failed to create customer: %w", err)
	}

	r.logger.Debug().Str("customer_id", c.ID.String()).Msg("customer created")
	return nil
}

func (r *customerRepository) CreateTx(ctx context.Context, tx pgx.Tx, c *model.Customer) error {
	_, err := tx.Exec(ctx, insertCustomerQuery,
		c.ID, c.Name, c.Phone, c.Email, c.Address, c.Notes, c.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("phone", c.Phone).Msg("failed to create customer in tx")
		return fmt.Errorf("failed to create customer: %w", err)
	}
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	query := `
		SELECT id, name, phone, email, address, notes, created_at
		FROM customers
		WHERE id = $1
	`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.Notes, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("customer_id", id.String()).Msg("customer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to query customer")
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}

	return &c, nil
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	query := `
		SELECT id, name, phone, email, address, notes, created_at
		FROM customers
		WHERE phone = $1
	`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, phone).Scan(
		&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.Notes, &c.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		r.logger.Error().Err(err).Str("phone", phone).Msg("failed to query customer by phone")
		return nil, fmt.Errorf("failed to query customer by phone: %w", err)
	}

	return &c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]model.Customer, error) {
	query := `
		SELECT id, name, phone, email, address, notes, created_at
		FROM customers
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query customers")
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []model.Customer
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email, &c.Address, &c.Notes, &c.CreatedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan customer row")
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating customer rows")
		return nil, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, nil
}
