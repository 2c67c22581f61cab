package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"printshop/internal/model"
	"printshop/internal/plan"
	"printshop/internal/report"
	"printshop/internal/repository"
	"printshop/internal/workflow"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	stockRepo    repository.StockRepository
	logger       zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		stockRepo:    stockRepo,
		logger:       logger.With().Str("service", "order").Logger(),
	}
}

// newOrderNumber generates a human-readable order number such as
// PS-20260115-A3F9.
func newOrderNumber(now time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:4])
	return fmt.Sprintf("PS-%s-%s", now.Format("20060102"), suffix)
}

func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "order request is required")
	}
	if req.CustomerID == nil && req.Customer == nil {
		return model.NewDomainError(model.ErrCodeValidation, "customer ID or customer details are required")
	}
	if req.Customer != nil {
		if err := validateCustomerRequest(req.Customer); err != nil {
			return err
		}
	}
	if len(req.Jobs) == 0 {
		return model.NewDomainError(model.ErrCodeValidation, "order must contain at least one print job")
	}

	for i, job := range req.Jobs {
		if job.Quantity < 1 {
			s.logger.Warn().
				Int("job_index", i).
				Int("quantity", job.Quantity).
				Msg("invalid job quantity")
			return model.ErrInvalidQuantity
		}
		if job.ProductID == nil {
			if job.Name == nil || strings.TrimSpace(*job.Name) == "" {
				return model.NewDomainError(model.ErrCodeValidation,
					fmt.Sprintf("job %d: ad hoc jobs require a name", i))
			}
			if job.Material == nil || strings.TrimSpace(*job.Material) == "" {
				return model.NewDomainError(model.ErrCodeValidation,
					fmt.Sprintf("job %d: ad hoc jobs require a material", i))
			}
			if job.EstimatedHours == nil || *job.EstimatedHours <= 0 {
				return model.NewDomainError(model.ErrCodeValidation,
					fmt.Sprintf("job %d: ad hoc jobs require an estimated time", i))
			}
		}
	}

	return nil
}

// Create composes an order inside a single transaction: customer
// lookup-or-create, order insert, then one insert per expanded print job.
func (s *orderService) Create(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	// Resolve referenced products up front.
	productIDs := make([]uuid.UUID, 0, len(req.Jobs))
	for _, job := range req.Jobs {
		if job.ProductID != nil {
			productIDs = append(productIDs, *job.ProductID)
		}
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	for _, id := range productIDs {
		if _, ok := products[id]; !ok {
			s.logger.Warn().Str("product_id", id.String()).Msg("order references unknown product")
			return nil, plan.ErrUnknownProduct
		}
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	// Customer lookup-or-create.
	var customer *model.Customer
	if req.CustomerID != nil {
		customer, err = s.customerRepo.GetByID(ctx, *req.CustomerID)
		if err != nil {
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
		if customer == nil {
			err = model.ErrCustomerNotFound
			return nil, err
		}
	} else {
		customer, err = s.customerRepo.GetByPhone(ctx, req.Customer.Phone)
		if err != nil {
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
		if customer == nil {
			customer = &model.Customer{
				ID:        uuid.New(),
				Name:      req.Customer.Name,
				Phone:     req.Customer.Phone,
				Email:     req.Customer.Email,
				Address:   req.Customer.Address,
				Notes:     req.Customer.Notes,
				CreatedAt: time.Now(),
			}
			if err = s.customerRepo.CreateTx(ctx, tx, customer); err != nil {
				return nil, fmt.Errorf("failed to create order: %w", err)
			}
		}
	}

	now := time.Now()
	order := &model.Order{
		ID:            uuid.New(),
		CustomerID:    customer.ID,
		Number:        newOrderNumber(now),
		Status:        model.OrderQueued,
		InvoiceNumber: req.InvoiceNumber,
		Reference:     req.Reference,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// Expand each job into plates and aggregate print time.
	prints := make([]model.Print, 0, len(req.Jobs))
	for _, job := range req.Jobs {
		var p model.Print
		p, err = s.expandJob(job, products, order.ID, now)
		if err != nil {
			return nil, err
		}
		prints = append(prints, p)
	}
	order.TotalEstimatedHours = workflow.TotalHours(prints)

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.orderRepo.CreatePrints(ctx, tx, prints); err != nil {
		return nil, fmt.Errorf("failed to create prints: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("number", order.Number).
		Int("print_count", len(prints)).
		Float64("total_hours", order.TotalEstimatedHours).
		Msg("order created")

	return &model.OrderResponse{Order: *order, Customer: *customer, Prints: prints}, nil
}

// expandJob turns one requested job into a print row: plates needed, total
// print time and the synthesized display name.
func (s *orderService) expandJob(job model.PrintJobRequest, products map[uuid.UUID]model.Product, orderID uuid.UUID, now time.Time) (model.Print, error) {
	p := model.Print{
		ID:             uuid.New(),
		OrderID:        orderID,
		ProductID:      job.ProductID,
		Quantity:       job.Quantity,
		Status:         model.PrintQueued,
		FilamentRollID: job.FilamentRollID,
		CreatedAt:      now,
	}

	if job.ProductID == nil {
		p.Name = *job.Name
		p.Material = *job.Material
		p.EstimatedHours = *job.EstimatedHours
		return p, nil
	}

	product, ok := products[*job.ProductID]
	if !ok {
		return model.Print{}, plan.ErrUnknownProduct
	}

	plates, err := plan.PlatesNeeded(job.Quantity, product.QuantityPerPlate)
	if err != nil {
		return model.Print{}, err
	}

	p.Name = plan.JobName(product.Name, job.Quantity, plates)
	p.Material = product.Material
	p.EstimatedHours = plan.TotalPrintTime(plates, product.TimePerPlateHours)

	return p, nil
}

func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error) {
	order, prints, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	customer, err := s.customerRepo.GetByID(ctx, order.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	return &model.OrderResponse{Order: *order, Customer: *customer, Prints: prints}, nil
}

func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, rawStatus string) (*model.Order, error) {
	next := model.OrderStatus(rawStatus)
	if !next.Valid() {
		return nil, model.ErrInvalidStatus
	}

	order, _, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	if !workflow.CanTransitionOrder(order.Status, next) {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("from", string(order.Status)).
			Str("to", string(next)).
			Msg("rejected order status transition")
		return nil, model.ErrInvalidTransition
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	order.Status = next
	order.UpdatedAt = time.Now()
	return order, nil
}

// Advance moves the order one step along queued -> in_progress ->
// completed. At completed it reports advanced=false so the caller can run
// the notification flow instead.
func (s *orderService) Advance(ctx context.Context, id uuid.UUID) (*model.OrderResponse, bool, error) {
	resp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	next, ok := workflow.NextOrderStatus(resp.Order.Status)
	if !ok {
		return resp, false, nil
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, next); err != nil {
		return nil, false, err
	}

	resp.Order.Status = next
	resp.Order.UpdatedAt = time.Now()

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", string(next)).
		Msg("order advanced")

	return resp, true, nil
}

func (s *orderService) UpdatePrintStatus(ctx context.Context, printID uuid.UUID, rawStatus string) (*model.Print, error) {
	next, ok := model.ParsePrintStatus(rawStatus)
	if !ok {
		return nil, model.ErrInvalidStatus
	}

	p, err := s.orderRepo.GetPrintByID(ctx, printID)
	if err != nil {
		return nil, fmt.Errorf("failed to update print status: %w", err)
	}
	if p == nil {
		return nil, model.ErrPrintNotFound
	}

	if !workflow.CanTransitionPrint(p.Status, next) {
		s.logger.Warn().
			Str("print_id", printID.String()).
			Str("from", string(p.Status)).
			Str("to", string(next)).
			Msg("rejected print status transition")
		return nil, model.ErrInvalidTransition
	}

	if err := s.orderRepo.UpdatePrintStatus(ctx, printID, next); err != nil {
		return nil, err
	}

	p.Status = next
	return p, nil
}

func (s *orderService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.orderRepo.Delete(ctx, id)
}

// FilamentCheck aggregates per-material requirements over the order's
// prints and compares them against stock. Stock is consulted, never
// decremented.
func (s *orderService) FilamentCheck(ctx context.Context, id uuid.UUID) ([]FilamentCheckResult, error) {
	order, prints, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check filament: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	productIDs := make([]uuid.UUID, 0, len(prints))
	for _, p := range prints {
		if p.ProductID != nil {
			productIDs = append(productIDs, *p.ProductID)
		}
	}

	products, err := s.productRepo.GetByIDs(ctx, productIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to check filament: %w", err)
	}

	reqs := plan.Requirements(prints, products)

	results := make([]FilamentCheckResult, 0, len(reqs))
	for material, req := range reqs {
		// Only the materials the order actually needs are fetched.
		rolls, err := s.stockRepo.ListByMaterial(ctx, material)
		if err != nil {
			return nil, fmt.Errorf("failed to check filament: %w", err)
		}

		avail := plan.CheckAvailability(material, req.TotalGrams, rolls)
		results = append(results, FilamentCheckResult{
			Material:       material,
			RequiredGrams:  req.TotalGrams,
			RequiredMeters: req.TotalMeters,
			AvailableGrams: avail.AvailableGrams,
			Sufficient:     avail.Sufficient,
		})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Material < results[j].Material })

	return results, nil
}

// ReportData assembles the aggregate for the report renderer. The estimated
// completion date is derived here, outside the renderer, as now plus the
// remaining print time.
func (s *orderService) ReportData(ctx context.Context, id uuid.UUID, now time.Time) (*report.Data, error) {
	resp, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	data := &report.Data{
		Order:    resp.Order,
		Customer: resp.Customer,
		Prints:   resp.Prints,
	}

	if resp.Order.Status != model.OrderCompleted {
		remaining := workflow.RemainingHours(resp.Prints)
		eta := now.Add(time.Duration(remaining * float64(time.Hour)))
		data.EstimatedCompletion = &eta
	}

	return data, nil
}
