package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"printshop/internal/model"
	"printshop/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	repo      repository.ProductRepository
	uploadDir string
	logger    zerolog.Logger
}

// NewProductService creates a new product service. Uploaded design files are
// stored under uploadDir with generated names.
func NewProductService(repo repository.ProductRepository, uploadDir string, logger zerolog.Logger) ProductService {
	return &productService{
		repo:      repo,
		uploadDir: uploadDir,
		logger:    logger.With().Str("service", "product").Logger(),
	}
}

func validateProductRequest(req *model.ProductRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeValidation, "product request is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "product name is required")
	}
	if strings.TrimSpace(req.Material) == "" {
		return model.NewDomainError(model.ErrCodeValidation, "product material is required")
	}
	if req.TimePerPlateHours <= 0 {
		return model.NewDomainError(model.ErrCodeValidation, "time per plate must be greater than zero")
	}
	if req.FilamentGramsPerUnit != nil && *req.FilamentGramsPerUnit < 0 {
		return model.NewDomainError(model.ErrCodeValidation, "filament weight per unit cannot be negative")
	}
	if req.FilamentMetersPerUnit != nil && *req.FilamentMetersPerUnit < 0 {
		return model.NewDomainError(model.ErrCodeValidation, "filament length per unit cannot be negative")
	}
	return nil
}

func (s *productService) Create(ctx context.Context, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	quantityPerPlate := req.QuantityPerPlate
	if quantityPerPlate < 1 {
		quantityPerPlate = 1
	}

	now := time.Now()
	product := &model.Product{
		ID:                    uuid.New(),
		Name:                  req.Name,
		Material:              req.Material,
		TimePerPlateHours:     req.TimePerPlateHours,
		QuantityPerPlate:      quantityPerPlate,
		FilamentGramsPerUnit:  req.FilamentGramsPerUnit,
		FilamentMetersPerUnit: req.FilamentMetersPerUnit,
		Price:                 req.Price,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Str("product_id", product.ID.String()).
		Str("name", product.Name).
		Msg("product created")

	return product, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	if product == nil {
		return nil, model.ErrProductNotFound
	}
	return product, nil
}

func (s *productService) List(ctx context.Context) ([]model.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

func (s *productService) Update(ctx context.Context, id uuid.UUID, req *model.ProductRequest) (*model.Product, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}

	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.Material = req.Material
	product.TimePerPlateHours = req.TimePerPlateHours
	product.QuantityPerPlate = req.QuantityPerPlate
	if product.QuantityPerPlate < 1 {
		product.QuantityPerPlate = 1
	}
	product.FilamentGramsPerUnit = req.FilamentGramsPerUnit
	product.FilamentMetersPerUnit = req.FilamentMetersPerUnit
	product.Price = req.Price
	product.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// AttachFile stores the uploaded file under the upload directory with a
// generated name and records its path on the product.
func (s *productService) AttachFile(ctx context.Context, id uuid.UUID, kind, filename string, src io.Reader) (*model.Product, error) {
	if kind != "design" && kind != "drawing" {
		return nil, model.NewDomainError(model.ErrCodeValidation, "file kind must be design or drawing")
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	storedName := uuid.New().String() + filepath.Ext(filename)
	storedPath := filepath.Join(s.uploadDir, storedName)

	dst, err := os.Create(storedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to store uploaded file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(storedPath)
		return nil, fmt.Errorf("failed to store uploaded file: %w", err)
	}

	var designFile, drawingFile *string
	if kind == "design" {
		designFile = &storedPath
	} else {
		drawingFile = &storedPath
	}

	if err := s.repo.SetFilePaths(ctx, id, designFile, drawingFile); err != nil {
		os.Remove(storedPath)
		return nil, err
	}

	s.logger.Info().
		Str("product_id", id.String()).
		Str("kind", kind).
		Str("path", storedPath).
		Msg("product file attached")

	return s.GetByID(ctx, id)
}
