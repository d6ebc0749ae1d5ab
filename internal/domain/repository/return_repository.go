package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/pkg/pagination"
)

// ReturnRepository defines the interface for the append-only return ledger.
type ReturnRepository interface {
	Create(ctx context.Context, ret *entity.ReturnTransaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ReturnTransaction, error)
	List(ctx context.Context, params *ReturnFilterParams) ([]entity.ReturnTransaction, int64, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]entity.ReturnTransaction, error)
}

// ReturnFilterParams contains filtering parameters for return queries
type ReturnFilterParams struct {
	Pagination *pagination.PaginationParams
	ReceiptNo  string
	StartDate  *time.Time
	EndDate    *time.Time
}
