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

// SaleHandler handles finalized-sale HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List handles listing finalized sales
func (h *SaleHandler) List(c *gin.Context) {
	var filter request.SaleFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.SaleFilterParams{
		Pagination: paginationFrom(filter.Page, filter.PerPage),
		Search:     filter.Search,
	}
	switch filter.Status {
	case "COMPLETED":
		status := enum.TransactionCompleted
		params.Status = &status
	case "VOIDED":
		status := enum.TransactionVoided
		params.Status = &status
	}
	if filter.PaymentMethod != "" {
		method := enum.ParsePaymentMethod(filter.PaymentMethod)
		params.PaymentMethod = &method
	}
	if filter.CashierID != "" {
		cashierID, err := uuid.Parse(filter.CashierID)
		if err == nil {
			params.CashierID = &cashierID
		}
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

	sales, total, err := h.saleService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(sales,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination[entity.SaleTransaction](c, 200, "Sales retrieved", result)
}

// Get returns one finalized sale
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale retrieved", sale)
}

// Receipt returns the printable receipt view of a sale
func (h *SaleHandler) Receipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	receipt, err := h.saleService.Receipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt retrieved", receipt)
}
