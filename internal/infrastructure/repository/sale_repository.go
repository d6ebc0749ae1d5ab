package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	domainRepo "github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/pkg/pagination"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale ledger repository backed by Postgres
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// Create persists the sale and its lines in one transaction so the ledger
// never holds a sale without its items.
func (r *saleRepository) Create(ctx context.Context, sale *entity.SaleTransaction) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleTransaction, error) {
	var sale entity.SaleTransaction
	err := r.db.WithContext(ctx).Preload("Lines").First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetByReceiptNo(ctx context.Context, receiptNo string) (*entity.SaleTransaction, error) {
	var sale entity.SaleTransaction
	err := r.db.WithContext(ctx).Preload("Lines").First(&sale, "receipt_no = ?", receiptNo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.SaleTransaction, int64, error) {
	var sales []entity.SaleTransaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SaleTransaction{})

	if params.Search != "" {
		query = query.Where("receipt_no ILIKE ?", "%"+params.Search+"%")
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.PaymentMethod != nil {
		query = query.Where("payment_method = ?", *params.PaymentMethod)
	}
	if params.CashierID != nil {
		query = query.Where("cashier_id = ?", *params.CashierID)
	}
	if params.StartDate != nil {
		query = query.Where("transaction_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("transaction_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()
	err := query.Preload("Lines").
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("transaction_at DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]entity.SaleTransaction, error) {
	var sales []entity.SaleTransaction
	err := r.db.WithContext(ctx).Preload("Lines").
		Where("transaction_at >= ? AND transaction_at < ?", dayStart, dayEnd).
		Order("transaction_at ASC").
		Find(&sales).Error
	return sales, err
}
