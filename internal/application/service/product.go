package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/pkg/apperror"
)

// ProductService manages the pharmacy catalog.
type ProductService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput carries a new catalog entry.
type CreateProductInput struct {
	ItemCode             string
	Name                 string
	UnitPrice            decimal.Decimal
	Unit                 string
	Category             string
	Brand                string
	Dosage               string
	RequiresPrescription bool
	Barcode              *string
	CurrentStock         int
	ReorderPoint         int
}

func (s *ProductService) Create(ctx context.Context, input CreateProductInput) (*entity.Product, error) {
	itemCode := strings.TrimSpace(input.ItemCode)
	if itemCode == "" {
		return nil, apperror.NewValidationError("item code is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperror.NewValidationError("product name is required")
	}
	if input.UnitPrice.IsNegative() {
		return nil, apperror.NewValidationError("unit price cannot be negative")
	}

	existing, err := s.productRepo.GetByItemCode(ctx, itemCode)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("item code " + itemCode + " already exists")
	}

	product := &entity.Product{
		ItemCode:             itemCode,
		Name:                 strings.TrimSpace(input.Name),
		UnitPrice:            input.UnitPrice,
		Unit:                 input.Unit,
		Category:             input.Category,
		Brand:                input.Brand,
		Dosage:               input.Dosage,
		RequiresPrescription: input.RequiresPrescription,
		Barcode:              input.Barcode,
		CurrentStock:         input.CurrentStock,
		ReorderPoint:         input.ReorderPoint,
		Active:               true,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

func (s *ProductService) GetByItemCode(ctx context.Context, itemCode string) (*entity.Product, error) {
	product, err := s.productRepo.GetByItemCode(ctx, itemCode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput applies partial updates; nil fields keep their value.
type UpdateProductInput struct {
	Name         *string
	UnitPrice    *decimal.Decimal
	Unit         *string
	Category     *string
	Brand        *string
	Dosage       *string
	Barcode      *string
	CurrentStock *int
	ReorderPoint *int
	Active       *bool
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*entity.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if strings.TrimSpace(*input.Name) == "" {
			return nil, apperror.NewValidationError("product name is required")
		}
		product.Name = strings.TrimSpace(*input.Name)
	}
	if input.UnitPrice != nil {
		if input.UnitPrice.IsNegative() {
			return nil, apperror.NewValidationError("unit price cannot be negative")
		}
		product.UnitPrice = *input.UnitPrice
	}
	if input.Unit != nil {
		product.Unit = *input.Unit
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Brand != nil {
		product.Brand = *input.Brand
	}
	if input.Dosage != nil {
		product.Dosage = *input.Dosage
	}
	if input.Barcode != nil {
		product.Barcode = input.Barcode
	}
	if input.CurrentStock != nil {
		product.CurrentStock = *input.CurrentStock
	}
	if input.ReorderPoint != nil {
		product.ReorderPoint = *input.ReorderPoint
	}
	if input.Active != nil {
		product.Active = *input.Active
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

func (s *ProductService) List(ctx context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	return s.productRepo.List(ctx, params)
}

// LowStock lists active products at or below their reorder point.
func (s *ProductService) LowStock(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	low := make([]entity.Product, 0)
	for _, p := range products {
		if p.Active && p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}
