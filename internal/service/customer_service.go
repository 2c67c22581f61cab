package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"printshop/internal/model"
	"printshop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// customerService implements CustomerService.
type customerService struct {
	repo   repository.CustomerRepository
	logger zerolog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo repository.CustomerRepository, logger zerolog.Logger) CustomerService {
	return &customerService{
		repo:   repo,
		logger: logger.With().Str("service", "customer").Logger(),
	}
}

func validateCustomerRequest(req *model.CustomerRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "customer request is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "customer name is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "customer phone is required")
	}
	return nil
}

func (s *customerService) Create(ctx context.Context, req *model.CustomerRequest) (*model.Customer, error) {
	if err := validateCustomerRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByPhone(ctx, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	if existing != nil {
		return nil, model.NewDomainError(model.ErrCodeValidation,
			fmt.Sprintf("customer with phone %s already exists", req.Phone))
	}

	customer := &model.Customer{
		ID:        uuid.New(),
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		Notes:     req.Notes,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info().
		Str("customer_id", customer.ID.String()).
		Str("phone", customer.Phone).
		Msg("customer created")

	return customer, nil
}

func (s *customerService) GetByPhone(ctx context.Context, phone string) (*model.Customer, error) {
	customer, err := s.repo.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}
	return customer, nil
}

func (s *customerService) List(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}
