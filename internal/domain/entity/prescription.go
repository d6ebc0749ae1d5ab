package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pharmaplus/pos-api/internal/domain/enum"
)

// Prescription records a doctor's prescription presented at the counter.
type Prescription struct {
	ID          uuid.UUID               `gorm:"type:uuid;primary_key" json:"id"`
	PatientName string                  `gorm:"size:255;not null" json:"patient_name"`
	PatientAge  int                     `gorm:"default:0" json:"patient_age"`
	DoctorName  string                  `gorm:"size:255;not null" json:"doctor_name"`
	DoctorID    string                  `gorm:"size:100;index" json:"doctor_id"`
	IssuedAt    time.Time               `gorm:"not null;index" json:"issued_at"`
	Notes       *string                 `gorm:"type:text" json:"notes,omitempty"`
	Status      enum.PrescriptionStatus `gorm:"default:0" json:"status"`
	ImagePath   *string                 `gorm:"size:255" json:"image_path,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
	DeletedAt   gorm.DeletedAt          `gorm:"index" json:"-"`

	// Relationships
	Medicines []PrescriptionMedicine `gorm:"foreignKey:PrescriptionID" json:"medicines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new prescription
func (p *Prescription) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Prescription model
func (Prescription) TableName() string {
	return "prescriptions"
}

// PrescriptionMedicine is one medicine line on a prescription.
type PrescriptionMedicine struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PrescriptionID uuid.UUID      `gorm:"type:uuid;not null;index" json:"prescription_id"`
	MedicineName   string         `gorm:"size:255;not null" json:"medicine_name"`
	ItemCode       string         `gorm:"size:100;index" json:"item_code"`
	Dosage         string         `gorm:"size:100;not null" json:"dosage"`
	Frequency      string         `gorm:"size:100;not null" json:"frequency"`
	Duration       string         `gorm:"size:100;not null" json:"duration"`
	Quantity       int            `gorm:"not null" json:"quantity"`
	Instructions   *string        `gorm:"type:text" json:"instructions,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Prescription Prescription `gorm:"foreignKey:PrescriptionID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new prescription medicine
func (m *PrescriptionMedicine) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PrescriptionMedicine model
func (PrescriptionMedicine) TableName() string {
	return "prescription_medicines"
}
