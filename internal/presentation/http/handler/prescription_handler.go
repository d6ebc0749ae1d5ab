package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pharmaplus/pos-api/internal/application/service"
	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/enum"
	"github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/internal/presentation/http/dto/request"
	"github.com/pharmaplus/pos-api/internal/presentation/http/dto/response"
	"github.com/pharmaplus/pos-api/pkg/pagination"
)

// PrescriptionHandler handles prescription HTTP requests
type PrescriptionHandler struct {
	prescriptionService *service.PrescriptionService
}

// NewPrescriptionHandler creates a new prescription handler
func NewPrescriptionHandler(prescriptionService *service.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{prescriptionService: prescriptionService}
}

// Create records a new prescription
func (h *PrescriptionHandler) Create(c *gin.Context) {
	var req request.CreatePrescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := service.CreatePrescriptionInput{
		PatientName: req.PatientName,
		PatientAge:  req.PatientAge,
		DoctorName:  req.DoctorName,
		DoctorID:    req.DoctorID,
		IssuedAt:    req.IssuedAt,
		Notes:       req.Notes,
		ImagePath:   req.ImagePath,
	}
	for _, med := range req.Medicines {
		input.Medicines = append(input.Medicines, service.PrescriptionMedicineInput{
			MedicineName: med.MedicineName,
			ItemCode:     med.ItemCode,
			Dosage:       med.Dosage,
			Frequency:    med.Frequency,
			Duration:     med.Duration,
			Quantity:     med.Quantity,
			Instructions: med.Instructions,
		})
	}

	prescription, err := h.prescriptionService.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Prescription created", prescription)
}

// Get returns one prescription with its medicines
func (h *PrescriptionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid prescription ID")
		return
	}

	prescription, err := h.prescriptionService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Prescription retrieved", prescription)
}

// List handles listing prescriptions
func (h *PrescriptionHandler) List(c *gin.Context) {
	var filter request.PrescriptionFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.PrescriptionFilterParams{
		Pagination: paginationFrom(filter.Page, filter.PerPage),
		Search:     filter.Search,
		DoctorID:   filter.DoctorID,
	}
	switch filter.Status {
	case "PENDING":
		status := enum.PrescriptionPending
		params.Status = &status
	case "FILLED":
		status := enum.PrescriptionFilled
		params.Status = &status
	case "CANCELLED":
		status := enum.PrescriptionCancelled
		params.Status = &status
	}
	if filter.StartDate != "" {
		start, err := parseDate(filter.StartDate)
		if err != nil {
			response.Error(c, err)
			return
		}
		params.StartDate = &start
	}
	if filter.EndDate != "" {
		end, err := parseDate(filter.EndDate)
		if err != nil {
			response.Error(c, err)
			return
		}
		end = end.AddDate(0, 0, 1).Add(-1)
		params.EndDate = &end
	}

	prescriptions, total, err := h.prescriptionService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(prescriptions,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination[entity.Prescription](c, 200, "Prescriptions retrieved", result)
}

// UpdateStatus moves a pending prescription to FILLED or CANCELLED
func (h *PrescriptionHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid prescription ID")
		return
	}

	var req request.UpdatePrescriptionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	status := enum.PrescriptionFilled
	if req.Status == "CANCELLED" {
		status = enum.PrescriptionCancelled
	}

	prescription, err := h.prescriptionService.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Prescription status updated", prescription)
}

// Delete removes a prescription that has not been filled
func (h *PrescriptionHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid prescription ID")
		return
	}

	if err := h.prescriptionService.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
