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

type prescriptionRepository struct {
	db *gorm.DB
}

// NewPrescriptionRepository creates a new prescription repository backed by Postgres
func NewPrescriptionRepository(db *gorm.DB) domainRepo.PrescriptionRepository {
	return &prescriptionRepository{db: db}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *entity.Prescription) error {
	return r.db.WithContext(ctx).Create(prescription).Error
}

func (r *prescriptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := r.db.WithContext(ctx).Preload("Medicines").First(&prescription, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &prescription, err
}

func (r *prescriptionRepository) Update(ctx context.Context, prescription *entity.Prescription) error {
	return r.db.WithContext(ctx).Save(prescription).Error
}

func (r *prescriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Prescription{}, "id = ?", id).Error
}

func (r *prescriptionRepository) List(ctx context.Context, params *domainRepo.PrescriptionFilterParams) ([]entity.Prescription, int64, error) {
	var prescriptions []entity.Prescription
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Prescription{})

	if params.Search != "" {
		query = query.Where("patient_name ILIKE ? OR doctor_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.DoctorID != "" {
		query = query.Where("doctor_id = ?", params.DoctorID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.StartDate != nil {
		query = query.Where("issued_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("issued_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()
	err := query.Preload("Medicines").
		Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("issued_at DESC").
		Find(&prescriptions).Error

	return prescriptions, total, err
}

func (r *prescriptionRepository) ListByRange(ctx context.Context, start, end time.Time) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := r.db.WithContext(ctx).Preload("Medicines").
		Where("issued_at >= ? AND issued_at < ?", start, end).
		Order("issued_at ASC").
		Find(&prescriptions).Error
	return prescriptions, err
}
