package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pharmaplus/pos-api/internal/application/service"
	"github.com/pharmaplus/pos-api/internal/presentation/http/dto/response"
)

// ReportHandler handles management report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// DailySales reports one register day; defaults to today
func (h *ReportHandler) DailySales(c *gin.Context) {
	date := time.Now()
	if value := c.Query("date"); value != "" {
		parsed, err := parseDate(value)
		if err != nil {
			response.Error(c, err)
			return
		}
		date = parsed
	}

	report, err := h.reportService.DailySales(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Daily sales report generated", report)
}

// Inventory reports the current catalog valuation
func (h *ReportHandler) Inventory(c *gin.Context) {
	report, err := h.reportService.Inventory(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Inventory report generated", report)
}

// Prescriptions reports an inclusive date range; defaults to the last 30 days
func (h *ReportHandler) Prescriptions(c *gin.Context) {
	start, end, err := rangeFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reportService.Prescriptions(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Prescription report generated", report)
}

// Returns reports an inclusive date range; defaults to the last 30 days
func (h *ReportHandler) Returns(c *gin.Context) {
	start, end, err := rangeFromQuery(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.reportService.Returns(c.Request.Context(), start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Return report generated", report)
}

func rangeFromQuery(c *gin.Context) (time.Time, time.Time, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -30)

	if value := c.Query("start_date"); value != "" {
		parsed, err := parseDate(value)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = parsed
	}
	if value := c.Query("end_date"); value != "" {
		parsed, err := parseDate(value)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = parsed
	}
	return start, end, nil
}
