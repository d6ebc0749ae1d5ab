package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/enum"
	"github.com/pharmaplus/pos-api/pkg/pagination"
)

// SaleRepository defines the interface for the finalized-sale ledger.
// Appends must be serialized by the store itself; reads return consistent
// snapshots so report aggregation never blocks writers.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.SaleTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleTransaction, error)
	GetByReceiptNo(ctx context.Context, receiptNo string) (*entity.SaleTransaction, error)
	List(ctx context.Context, params *SaleFilterParams) ([]entity.SaleTransaction, int64, error)
	ListByDay(ctx context.Context, dayStart, dayEnd time.Time) ([]entity.SaleTransaction, error)
}

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination    *pagination.PaginationParams
	Search        string
	Status        *enum.TransactionStatus
	PaymentMethod *enum.PaymentMethod
	CashierID     *uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
}
