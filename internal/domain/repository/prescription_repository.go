package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/enum"
	"github.com/pharmaplus/pos-api/pkg/pagination"
)

// PrescriptionRepository defines the interface for prescription records.
type PrescriptionRepository interface {
	Create(ctx context.Context, prescription *entity.Prescription) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)
	Update(ctx context.Context, prescription *entity.Prescription) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *PrescriptionFilterParams) ([]entity.Prescription, int64, error)
	ListByRange(ctx context.Context, start, end time.Time) ([]entity.Prescription, error)
}

// PrescriptionFilterParams contains filtering parameters for prescription queries
type PrescriptionFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	DoctorID   string
	Status     *enum.PrescriptionStatus
	StartDate  *time.Time
	EndDate    *time.Time
}
