package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/enum"
	"github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/pkg/apperror"
)

// PrescriptionService manages prescription records linked to sales of
// prescription-only medicines.
type PrescriptionService struct {
	prescriptionRepo repository.PrescriptionRepository
}

func NewPrescriptionService(prescriptionRepo repository.PrescriptionRepository) *PrescriptionService {
	return &PrescriptionService{prescriptionRepo: prescriptionRepo}
}

// CreatePrescriptionInput carries a new prescription and its medicine lines.
type CreatePrescriptionInput struct {
	PatientName string
	PatientAge  int
	DoctorName  string
	DoctorID    string
	IssuedAt    time.Time
	Notes       *string
	ImagePath   *string
	Medicines   []PrescriptionMedicineInput
}

type PrescriptionMedicineInput struct {
	MedicineName string
	ItemCode     string
	Dosage       string
	Frequency    string
	Duration     string
	Quantity     int
	Instructions *string
}

func (s *PrescriptionService) Create(ctx context.Context, input CreatePrescriptionInput) (*entity.Prescription, error) {
	if err := validatePrescription(input); err != nil {
		return nil, err
	}

	prescription := &entity.Prescription{
		PatientName: strings.TrimSpace(input.PatientName),
		PatientAge:  input.PatientAge,
		DoctorName:  strings.TrimSpace(input.DoctorName),
		DoctorID:    strings.TrimSpace(input.DoctorID),
		IssuedAt:    input.IssuedAt,
		Notes:       input.Notes,
		ImagePath:   input.ImagePath,
		Status:      enum.PrescriptionPending,
	}
	for _, med := range input.Medicines {
		prescription.Medicines = append(prescription.Medicines, entity.PrescriptionMedicine{
			MedicineName: strings.TrimSpace(med.MedicineName),
			ItemCode:     strings.TrimSpace(med.ItemCode),
			Dosage:       med.Dosage,
			Frequency:    med.Frequency,
			Duration:     med.Duration,
			Quantity:     med.Quantity,
			Instructions: med.Instructions,
		})
	}

	if err := s.prescriptionRepo.Create(ctx, prescription); err != nil {
		return nil, err
	}
	return prescription, nil
}

func validatePrescription(input CreatePrescriptionInput) error {
	if strings.TrimSpace(input.PatientName) == "" {
		return apperror.NewValidationError("patient name is required")
	}
	if input.PatientAge < 0 || input.PatientAge > 150 {
		return apperror.NewValidationError("patient age is out of range")
	}
	if strings.TrimSpace(input.DoctorName) == "" {
		return apperror.NewValidationError("doctor name is required")
	}
	if input.IssuedAt.IsZero() {
		return apperror.NewValidationError("issue date is required")
	}
	if input.IssuedAt.After(time.Now()) {
		return apperror.NewValidationError("issue date cannot be in the future")
	}
	if len(input.Medicines) == 0 {
		return apperror.NewValidationError("prescription needs at least one medicine")
	}
	for i, med := range input.Medicines {
		if strings.TrimSpace(med.MedicineName) == "" {
			return apperror.NewValidationError(fmt.Sprintf("medicine %d has no name", i+1))
		}
		if med.Quantity < 1 {
			return apperror.NewValidationError(fmt.Sprintf("medicine %d has invalid quantity", i+1))
		}
	}
	return nil
}

func (s *PrescriptionService) Get(ctx context.Context, id uuid.UUID) (*entity.Prescription, error) {
	prescription, err := s.prescriptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prescription == nil {
		return nil, apperror.NewNotFoundError("Prescription")
	}
	return prescription, nil
}

func (s *PrescriptionService) List(ctx context.Context, params *repository.PrescriptionFilterParams) ([]entity.Prescription, int64, error) {
	return s.prescriptionRepo.List(ctx, params)
}

// UpdateStatus moves a pending prescription to filled or cancelled.
// Filled and cancelled prescriptions are terminal.
func (s *PrescriptionService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.PrescriptionStatus) (*entity.Prescription, error) {
	prescription, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if status != enum.PrescriptionFilled && status != enum.PrescriptionCancelled {
		return nil, apperror.NewValidationError("status must be FILLED or CANCELLED")
	}
	if prescription.Status != enum.PrescriptionPending {
		return nil, apperror.NewConflictError("prescription is already " + prescription.Status.String())
	}
	prescription.Status = status
	if err := s.prescriptionRepo.Update(ctx, prescription); err != nil {
		return nil, err
	}
	return prescription, nil
}

func (s *PrescriptionService) Delete(ctx context.Context, id uuid.UUID) error {
	prescription, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if prescription.Status == enum.PrescriptionFilled {
		return apperror.NewConflictError("filled prescriptions cannot be deleted")
	}
	return s.prescriptionRepo.Delete(ctx, id)
}
