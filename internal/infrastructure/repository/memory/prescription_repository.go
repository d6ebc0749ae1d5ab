package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/pkg/apperror"
)

type prescriptionRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]entity.Prescription
}

func NewPrescriptionRepository() repository.PrescriptionRepository {
	return &prescriptionRepository{byID: make(map[uuid.UUID]entity.Prescription)}
}

func (r *prescriptionRepository) Create(_ context.Context, prescription *entity.Prescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prescription.ID == uuid.Nil {
		prescription.ID = uuid.New()
	}
	for i := range prescription.Medicines {
		if prescription.Medicines[i].ID == uuid.Nil {
			prescription.Medicines[i].ID = uuid.New()
		}
		prescription.Medicines[i].PrescriptionID = prescription.ID
	}
	now := time.Now()
	prescription.CreatedAt = now
	prescription.UpdatedAt = now
	r.byID[prescription.ID] = copyPrescription(*prescription)
	return nil
}

func (r *prescriptionRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	prescription, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	prescription = copyPrescription(prescription)
	return &prescription, nil
}

func (r *prescriptionRepository) Update(_ context.Context, prescription *entity.Prescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[prescription.ID]; !ok {
		return apperror.NewNotFoundError("Prescription")
	}
	prescription.UpdatedAt = time.Now()
	r.byID[prescription.ID] = copyPrescription(*prescription)
	return nil
}

func (r *prescriptionRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return apperror.NewNotFoundError("Prescription")
	}
	delete(r.byID, id)
	return nil
}

func (r *prescriptionRepository) List(_ context.Context, params *repository.PrescriptionFilterParams) ([]entity.Prescription, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]entity.Prescription, 0, len(r.byID))
	for _, prescription := range r.byID {
		if params != nil && !prescriptionMatches(prescription, params) {
			continue
		}
		matched = append(matched, copyPrescription(prescription))
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].IssuedAt.After(matched[j].IssuedAt)
	})

	total := int64(len(matched))
	if params != nil && params.Pagination != nil {
		start := params.Pagination.Offset()
		if start > len(matched) {
			start = len(matched)
		}
		end := start + params.Pagination.PerPage
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (r *prescriptionRepository) ListByRange(_ context.Context, start, end time.Time) ([]entity.Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Prescription, 0)
	for _, prescription := range r.byID {
		if prescription.IssuedAt.Before(start) || !prescription.IssuedAt.Before(end) {
			continue
		}
		out = append(out, copyPrescription(prescription))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].IssuedAt.Before(out[j].IssuedAt)
	})
	return out, nil
}

func prescriptionMatches(prescription entity.Prescription, params *repository.PrescriptionFilterParams) bool {
	if params.DoctorID != "" && prescription.DoctorID != params.DoctorID {
		return false
	}
	if params.Status != nil && prescription.Status != *params.Status {
		return false
	}
	if params.StartDate != nil && prescription.IssuedAt.Before(*params.StartDate) {
		return false
	}
	if params.EndDate != nil && prescription.IssuedAt.After(*params.EndDate) {
		return false
	}
	if params.Search != "" {
		needle := strings.ToLower(params.Search)
		if !strings.Contains(strings.ToLower(prescription.PatientName), needle) &&
			!strings.Contains(strings.ToLower(prescription.DoctorName), needle) {
			return false
		}
	}
	return true
}

func copyPrescription(prescription entity.Prescription) entity.Prescription {
	medicines := make([]entity.PrescriptionMedicine, len(prescription.Medicines))
	copy(medicines, prescription.Medicines)
	prescription.Medicines = medicines
	return prescription
}
