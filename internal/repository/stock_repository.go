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

// stockRepository implements the StockRepository interface using PostgreSQL.
type stockRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewStockRepository creates a new PostgreSQL-backed filament stock
// repository.
func NewStockRepository(pool *pgxpool.Pool, logger zerolog.Logger) StockRepository {
	return &stockRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "stock").Logger(),
	}
}

const rollColumns = `id, material, color, brand, total_weight_grams, current_weight_grams,
	threshold_grams, cost_per_kg, supplier, created_at, updated_at`

func scanRoll(row pgx.Row) (*model.FilamentRoll, error) {
	var roll model.FilamentRoll
	err := row.Scan(&roll.ID, &roll.Material, &roll.Color, &roll.Brand,
		&roll.TotalWeightGrams, &roll.CurrentWeightGrams, &roll.ThresholdGrams,
		&roll.CostPerKg, &roll.Supplier, &roll.CreatedAt, &roll.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &roll, nil
}

// CreateBatch inserts rolls as independent rows.
func (r *stockRepository) CreateBatch(ctx context.Context, rolls []model.FilamentRoll) error {
	if len(rolls) == 0 {
		return nil
	}

	query := `
		INSERT INTO filament_rolls (id, material, color, brand, total_weight_grams,
			current_weight_grams, threshold_grams, cost_per_kg, supplier,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	batch := &pgx.Batch{}
	for _, roll := range rolls {
		batch.Queue(query, roll.ID, roll.Material, roll.Color, roll.Brand,
			roll.TotalWeightGrams, roll.CurrentWeightGrams, roll.ThresholdGrams,
			roll.CostPerKg, roll.Supplier, roll.CreatedAt, roll.UpdatedAt)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(rolls); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("material", rolls[i].Material).
				Msg("failed to create filament roll")
			return fmt.Errorf("failed to create filament roll: %w", err)
		}
	}

	r.logger.Debug().Int("count", len(rolls)).Msg("filament rolls created")
	return nil
}

func (r *stockRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.FilamentRoll, error) {
	roll, err := scanRoll(r.pool.QueryRow(ctx,
		`SELECT `+rollColumns+` FROM filament_rolls WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("roll_id", id.String()).Msg("filament roll not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("roll_id", id.String()).Msg("failed to query filament roll")
		return nil, fmt.Errorf("failed to query filament roll: %w", err)
	}
	return roll, nil
}

func (r *stockRepository) List(ctx context.Context) ([]model.FilamentRoll, error) {
	return r.queryRolls(ctx,
		`SELECT `+rollColumns+` FROM filament_rolls ORDER BY material, color, created_at`)
}

func (r *stockRepository) ListByMaterial(ctx context.Context, material string) ([]model.FilamentRoll, error) {
	return r.queryRolls(ctx,
		`SELECT `+rollColumns+` FROM filament_rolls WHERE material = $1 ORDER BY created_at`,
		material)
}

func (r *stockRepository) queryRolls(ctx context.Context, query string, args ...any) ([]model.FilamentRoll, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query filament rolls")
		return nil, fmt.Errorf("failed to query filament rolls: %w", err)
	}
	defer rows.Close()

	var rolls []model.FilamentRoll
	for rows.Next() {
		roll, err := scanRoll(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan filament roll row")
			return nil, fmt.Errorf("failed to scan filament roll: %w", err)
		}
		rolls = append(rolls, *roll)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating filament roll rows")
		return nil, fmt.Errorf("error iterating filament rolls: %w", err)
	}

	return rolls, nil
}

func (r *stockRepository) Update(ctx context.Context, roll *model.FilamentRoll) error {
	query := `
		UPDATE filament_rolls
		SET material = $2, color = $3, brand = $4, total_weight_grams = $5,
			current_weight_grams = $6, threshold_grams = $7, cost_per_kg = $8,
			supplier = $9, updated_at = $10
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		roll.ID, roll.Material, roll.Color, roll.Brand, roll.TotalWeightGrams,
		roll.CurrentWeightGrams, roll.ThresholdGrams, roll.CostPerKg,
		roll.Supplier, roll.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("roll_id", roll.ID.String()).Msg("failed to update filament roll")
		return fmt.Errorf("failed to update filament roll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRollNotFound
	}

	return nil
}

func (r *stockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM filament_rolls WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("roll_id", id.String()).Msg("failed to delete filament roll")
		return fmt.Errorf("failed to delete filament roll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRollNotFound
	}

	r.logger.Debug().Str("roll_id", id.String()).Msg("filament roll deleted")
	return nil
}
