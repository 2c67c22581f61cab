package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"printshop/internal/model"
	"printshop/internal/repository"
	"printshop/internal/stock"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// stockService implements StockService.
type stockService struct {
	repo   repository.StockRepository
	logger zerolog.Logger
}

// NewStockService creates a new filament stock service.
func NewStockService(repo repository.StockRepository, logger zerolog.Logger) StockService {
	return &stockService{
		repo:   repo,
		logger: logger.With().Str("service", "stock").Logger(),
	}
}

func validateRollRequest(req *model.FilamentRollRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "filament roll request is required")
	}
	if strings.TrimSpace(req.Material) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "roll material is required")
	}
	if req.TotalWeightGrams <= 0 {
		return model.NewDomainError(model.ErrCodeValidation, "total weight must be greater than zero")
	}
	if req.ThresholdGrams < 0 {
		return model.NewDomainError(model.ErrCodeValidation, "threshold cannot be negative")
	}
	if req.CurrentWeightGrams != nil &&
		(*req.CurrentWeightGrams < 0 || *req.CurrentWeightGrams > req.TotalWeightGrams) {
		return model.ErrInvalidWeight
	}
	return nil
}

// Create adds rolls to the ledger. A quantity of N produces N independent
// rows, each carrying the full field set, since every spool is depleted
// individually.
func (s *stockService) Create(ctx context.Context, req *model.FilamentRollRequest) ([]model.FilamentRoll, error) {
	if err := validateRollRequest(req); err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	current := req.TotalWeightGrams
	if req.CurrentWeightGrams != nil {
		current = *req.CurrentWeightGrams
	}

	now := time.Now()
	rolls := make([]model.FilamentRoll, quantity)
	for i := range rolls {
		rolls[i] = model.FilamentRoll{
			ID:                 uuid.New(),
			Material:           req.Material,
			Color:              req.Color,
			Brand:              req.Brand,
			TotalWeightGrams:   req.TotalWeightGrams,
			CurrentWeightGrams: current,
			ThresholdGrams:     req.ThresholdGrams,
			CostPerKg:          req.CostPerKg,
			Supplier:           req.Supplier,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
	}

	if err := s.repo.CreateBatch(ctx, rolls); err != nil {
		return nil, fmt.Errorf("failed to create filament rolls: %w", err)
	}

	s.logger.Info().
		Int("count", quantity).
		Str("material", req.Material).
		Msg("filament rolls added")

	return rolls, nil
}

func (s *stockService) GetByID(ctx context.Context, id uuid.UUID) (*RollAlert, error) {
	roll, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get filament roll: %w", err)
	}
	if roll == nil {
		return nil, model.ErrRollNotFound
	}

	return &RollAlert{
		FilamentRoll: *roll,
		Status:       stock.Status(roll.CurrentWeightGrams, roll.ThresholdGrams),
	}, nil
}

func (s *stockService) List(ctx context.Context) ([]RollAlert, error) {
	rolls, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list filament rolls: %w", err)
	}

	alerts := make([]RollAlert, len(rolls))
	for i, roll := range rolls {
		alerts[i] = RollAlert{
			FilamentRoll: roll,
			Status:       stock.Status(roll.CurrentWeightGrams, roll.ThresholdGrams),
		}
	}
	return alerts, nil
}

// Update applies field edits to one roll, including manual weight
// corrections and restocks. A nil current weight keeps the stored value.
func (s *stockService) Update(ctx context.Context, id uuid.UUID, req *model.FilamentRollRequest) (*model.FilamentRoll, error) {
	if err := validateRollRequest(req); err != nil {
		return nil, err
	}

	roll, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update filament roll: %w", err)
	}
	if roll == nil {
		return nil, model.ErrRollNotFound
	}

	roll.Material = req.Material
	roll.Color = req.Color
	roll.Brand = req.Brand
	roll.TotalWeightGrams = req.TotalWeightGrams
	if req.CurrentWeightGrams != nil {
		roll.CurrentWeightGrams = *req.CurrentWeightGrams
	}
	roll.ThresholdGrams = req.ThresholdGrams
	roll.CostPerKg = req.CostPerKg
	roll.Supplier = req.Supplier
	roll.UpdatedAt = time.Now()

	if roll.CurrentWeightGrams < 0 || roll.CurrentWeightGrams > roll.TotalWeightGrams {
		return nil, model.ErrInvalidWeight
	}

	if err := s.repo.Update(ctx, roll); err != nil {
		return nil, err
	}

	return roll, nil
}

func (s *stockService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// LowStock lists rolls whose alert status is low or critical.
func (s *stockService) LowStock(ctx context.Context) ([]RollAlert, error) {
	all, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	var alerts []RollAlert
	for _, a := range all {
		if a.Status != stock.StatusGood {
			alerts = append(alerts, a)
		}
	}
	return alerts, nil
}

func (s *stockService) Summary(ctx context.Context) (stock.Summary, error) {
	rolls, err := s.repo.List(ctx)
	if err != nil {
		return stock.Summary{}, fmt.Errorf("failed to summarize stock: %w", err)
	}
	return stock.Summarize(rolls), nil
}

func (s *stockService) Groups(ctx context.Context) ([]stock.MaterialGroup, error) {
	rolls, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to group stock: %w", err)
	}
	return stock.GroupByMaterial(rolls), nil
}
