package request

import "time"

// PrescriptionMedicineRequest is one medicine line on a prescription
type PrescriptionMedicineRequest struct {
	MedicineName string  `json:"medicine_name" binding:"required,max=255"`
	ItemCode     string  `json:"item_code" binding:"omitempty,max=100"`
	Dosage       string  `json:"dosage" binding:"required,max=100"`
	Frequency    string  `json:"frequency" binding:"required,max=100"`
	Duration     string  `json:"duration" binding:"required,max=100"`
	Quantity     int     `json:"quantity" binding:"required,min=1"`
	Instructions *string `json:"instructions"`
}

// CreatePrescriptionRequest represents a prescription creation request
type CreatePrescriptionRequest struct {
	PatientName string                        `json:"patient_name" binding:"required,max=255"`
	PatientAge  int                           `json:"patient_age" binding:"min=0,max=150"`
	DoctorName  string                        `json:"doctor_name" binding:"required,max=255"`
	DoctorID    string                        `json:"doctor_id" binding:"omitempty,max=100"`
	IssuedAt    time.Time                     `json:"issued_at" binding:"required"`
	Notes       *string                       `json:"notes"`
	ImagePath   *string                       `json:"image_path"`
	Medicines   []PrescriptionMedicineRequest `json:"medicines" binding:"required,min=1,dive"`
}

// UpdatePrescriptionStatusRequest moves a prescription to a terminal status
type UpdatePrescriptionStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=FILLED CANCELLED"`
}

// PrescriptionFilterRequest represents prescription listing filters
type PrescriptionFilterRequest struct {
	Search    string `form:"search"`
	DoctorID  string `form:"doctor_id"`
	Status    string `form:"status"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
