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

type returnRepository struct {
	db *gorm.DB
}

// NewReturnRepository creates a new return ledger repository backed by Postgres
func NewReturnRepository(db *gorm.DB) domainRepo.ReturnRepository {
	return &returnRepository{db: db}
}

func (r *returnRepository) Create(ctx context.Context, ret *entity.ReturnTransaction) error {
	return r.db.WithContext(ctx).Create(ret).Error
}

func (r *returnRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReturnTransaction, error) {
	var ret entity.ReturnTransaction
	err := r.db.WithContext(ctx).Preload("Lines").First(&ret, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ret, err
}

func (r *returnRepository) List(ctx context.Context, params *domainRepo.ReturnFilterParams) ([]entity.ReturnTransaction, int64, error) {
	var returns []entity.ReturnTransaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ReturnTransaction{})

	if params.ReceiptNo != "" {
		query = query.Where("receipt_no = ?", params.ReceiptNo)
	}
	if params.StartDate != nil {
		query = query.Where("returned_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("returned_at <= ?", *params.EndDate)
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
		Order("returned_at DESC").
		Find(&returns).Error

	return returns, total, err
}

func (r *returnRepository) ListByRange(ctx context.Context, start, end time.Time) ([]entity.ReturnTransaction, error) {
	var returns []entity.ReturnTransaction
	err := r.db.WithContext(ctx).Preload("Lines").
		Where("returned_at >= ? AND returned_at < ?", start, end).
		Order("returned_at ASC").
		Find(&returns).Error
	return returns, err
}
