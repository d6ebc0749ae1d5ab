package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmaplus/pos-api/internal/application/service"
	"github.com/pharmaplus/pos-api/internal/domain/enum"
	"github.com/pharmaplus/pos-api/internal/infrastructure/repository/memory"
	"github.com/pharmaplus/pos-api/pkg/apperror"
)

func prescriptionInput() service.CreatePrescriptionInput {
	return service.CreatePrescriptionInput{
		PatientName: "Maria Santos",
		PatientAge:  67,
		DoctorName:  "Dr. Cruz",
		DoctorID:    "PRC-12345",
		IssuedAt:    time.Now().Add(-24 * time.Hour),
		Medicines: []service.PrescriptionMedicineInput{
			{MedicineName: "Amoxicillin 250mg", ItemCode: "MED002", Dosage: "250mg", Frequency: "3x daily", Duration: "7 days", Quantity: 21},
		},
	}
}

func TestCreatePrescription(t *testing.T) {
	svc := service.NewPrescriptionService(memory.NewPrescriptionRepository())

	created, err := svc.Create(context.Background(), prescriptionInput())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Equal(t, enum.PrescriptionPending, created.Status)
	require.Len(t, created.Medicines, 1)
	assert.Equal(t, 21, created.Medicines[0].Quantity)
}

func TestCreatePrescriptionValidation(t *testing.T) {
	svc := service.NewPrescriptionService(memory.NewPrescriptionRepository())
	ctx := context.Background()

	cases := map[string]func(*service.CreatePrescriptionInput){
		"missing patient name": func(in *service.CreatePrescriptionInput) { in.PatientName = "  " },
		"age out of range":     func(in *service.CreatePrescriptionInput) { in.PatientAge = 170 },
		"missing doctor name":  func(in *service.CreatePrescriptionInput) { in.DoctorName = "" },
		"missing issue date":   func(in *service.CreatePrescriptionInput) { in.IssuedAt = time.Time{} },
		"future issue date":    func(in *service.CreatePrescriptionInput) { in.IssuedAt = time.Now().Add(48 * time.Hour) },
		"no medicines":         func(in *service.CreatePrescriptionInput) { in.Medicines = nil },
		"unnamed medicine":     func(in *service.CreatePrescriptionInput) { in.Medicines[0].MedicineName = " " },
		"zero quantity":        func(in *service.CreatePrescriptionInput) { in.Medicines[0].Quantity = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			input := prescriptionInput()
			mutate(&input)
			_, err := svc.Create(ctx, input)
			assert.True(t, apperror.IsValidation(err))
		})
	}
}

func TestUpdatePrescriptionStatus(t *testing.T) {
	svc := service.NewPrescriptionService(memory.NewPrescriptionRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, prescriptionInput())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, created.ID, enum.PrescriptionFilled)
	require.NoError(t, err)
	assert.Equal(t, enum.PrescriptionFilled, updated.Status)

	_, err = svc.UpdateStatus(ctx, created.ID, enum.PrescriptionCancelled)
	assert.True(t, apperror.IsConflict(err))
}

func TestUpdatePrescriptionStatusRejectsPending(t *testing.T) {
	svc := service.NewPrescriptionService(memory.NewPrescriptionRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, prescriptionInput())
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, created.ID, enum.PrescriptionPending)
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdatePrescriptionStatusUnknown(t *testing.T) {
	svc := service.NewPrescriptionService(memory.NewPrescriptionRepository())

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), enum.PrescriptionFilled)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeletePrescription(t *testing.T) {
	svc := service.NewPrescriptionService(memory.NewPrescriptionRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, prescriptionInput())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteFilledPrescriptionRejected(t *testing.T) {
	svc := service.NewPrescriptionService(memory.NewPrescriptionRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, prescriptionInput())
	require.NoError(t, err)
	_, err = svc.UpdateStatus(ctx, created.ID, enum.PrescriptionFilled)
	require.NoError(t, err)

	err = svc.Delete(ctx, created.ID)
	assert.True(t, apperror.IsConflict(err))
}
