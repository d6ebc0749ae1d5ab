package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pharmaplus/pos-api/internal/application/service"
	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/internal/presentation/http/dto/request"
	"github.com/pharmaplus/pos-api/internal/presentation/http/dto/response"
	"github.com/pharmaplus/pos-api/internal/presentation/http/middleware"
	"github.com/pharmaplus/pos-api/pkg/pagination"
)

// ReturnHandler handles merchandise return HTTP requests
type ReturnHandler struct {
	returnService *service.ReturnService
}

// NewReturnHandler creates a new return handler
func NewReturnHandler(returnService *service.ReturnService) *ReturnHandler {
	return &ReturnHandler{returnService: returnService}
}

// Lookup fetches the sale behind a receipt number for line selection
func (h *ReturnHandler) Lookup(c *gin.Context) {
	sale, err := h.returnService.LookupReceipt(c.Request.Context(), c.Query("receipt_no"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Receipt retrieved", sale)
}

// Process validates and appends a return transaction
func (h *ReturnHandler) Process(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ProcessReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := service.ProcessReturnInput{
		ReceiptNo:   req.ReceiptNo,
		Reason:      req.Reason,
		ProcessedBy: userID,
	}
	for _, line := range req.Lines {
		input.Lines = append(input.Lines, service.ReturnLineInput{
			SaleLineID:     line.SaleLineID,
			ReturnQuantity: line.ReturnQuantity,
		})
	}

	ret, err := h.returnService.Process(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Return processed", ret)
}

// Get returns one return transaction
func (h *ReturnHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid return ID")
		return
	}

	ret, err := h.returnService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Return retrieved", ret)
}

// List handles listing return transactions
func (h *ReturnHandler) List(c *gin.Context) {
	var filter request.ReturnFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ReturnFilterParams{
		Pagination: paginationFrom(filter.Page, filter.PerPage),
		ReceiptNo:  filter.ReceiptNo,
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

	returns, total, err := h.returnService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	result := pagination.NewPaginatedResult(returns,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total))
	response.SuccessWithPagination[entity.ReturnTransaction](c, 200, "Returns retrieved", result)
}
