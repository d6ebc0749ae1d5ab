package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pharmaplus/pos-api/internal/application/service"
	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/enum"
	"github.com/pharmaplus/pos-api/internal/presentation/http/dto/request"
	"github.com/pharmaplus/pos-api/internal/presentation/http/dto/response"
	"github.com/pharmaplus/pos-api/internal/presentation/http/middleware"
)

// TerminalHandler handles the open-transaction endpoints of a register
type TerminalHandler struct {
	terminalService *service.TerminalService
	holdService     *service.HoldService
}

// NewTerminalHandler creates a new terminal handler
func NewTerminalHandler(terminalService *service.TerminalService, holdService *service.HoldService) *TerminalHandler {
	return &TerminalHandler{terminalService: terminalService, holdService: holdService}
}

// Cart returns the terminal's open transaction with fresh totals
func (h *TerminalHandler) Cart(c *gin.Context) {
	snap, err := h.terminalService.Snapshot(c.Request.Context(), c.Param("terminal_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Cart retrieved", snap)
}

// Scan adds a catalog item to the open transaction
func (h *TerminalHandler) Scan(c *gin.Context) {
	var req request.ScanItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	snap, err := h.terminalService.Scan(c.Request.Context(), c.Param("terminal_id"), req.ItemCode)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Item added", snap)
}

// UpdateQuantity changes one line's quantity; zero removes the line
func (h *TerminalHandler) UpdateQuantity(c *gin.Context) {
	lineID, err := uuid.Parse(c.Param("line_id"))
	if err != nil {
		response.BadRequest(c, "Invalid line ID")
		return
	}

	var req request.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	snap, err := h.terminalService.SetQuantity(c.Request.Context(), c.Param("terminal_id"), lineID, *req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Quantity updated", snap)
}

// RemoveLine removes one line from the open transaction
func (h *TerminalHandler) RemoveLine(c *gin.Context) {
	lineID, err := uuid.Parse(c.Param("line_id"))
	if err != nil {
		response.BadRequest(c, "Invalid line ID")
		return
	}

	snap, err := h.terminalService.RemoveLine(c.Request.Context(), c.Param("terminal_id"), lineID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Line removed", snap)
}

// SetDiscount selects the transaction discount
func (h *TerminalHandler) SetDiscount(c *gin.Context) {
	var req request.SetDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sel := entity.DiscountSelection{CustomPercent: req.CustomPercent}
	switch req.Type {
	case "SeniorPWD":
		sel.Type = enum.DiscountSeniorPWD
	case "Custom":
		sel.Type = enum.DiscountCustom
	default:
		sel.Type = enum.DiscountNone
	}

	snap, err := h.terminalService.SetDiscount(c.Request.Context(), c.Param("terminal_id"), sel)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Discount applied", snap)
}

// SetCustomer attaches customer details to the open transaction
func (h *TerminalHandler) SetCustomer(c *gin.Context) {
	var req request.SetCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	snap, err := h.terminalService.SetCustomer(c.Request.Context(), c.Param("terminal_id"),
		req.CustomerID, req.CustomerName, req.StarPointsID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Customer set", snap)
}

// Void abandons the open transaction
func (h *TerminalHandler) Void(c *gin.Context) {
	if err := h.terminalService.Void(c.Request.Context(), c.Param("terminal_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transaction voided", nil)
}

// Checkout finalizes the open transaction into the sale ledger
func (h *TerminalHandler) Checkout(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.terminalService.Checkout(c.Request.Context(), service.CheckoutInput{
		TerminalID:     c.Param("terminal_id"),
		CashierID:      userID,
		PaymentMethod:  enum.ParsePaymentMethod(req.PaymentMethod),
		PrescriptionID: req.PrescriptionID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Checkout completed", sale)
}

// Hold parks the open transaction
func (h *TerminalHandler) Hold(c *gin.Context) {
	var req request.HoldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	held, err := h.terminalService.Hold(c.Request.Context(), c.Param("terminal_id"), req.Note)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Transaction held", held)
}

// Recall claims a held transaction into this terminal's cart
func (h *TerminalHandler) Recall(c *gin.Context) {
	snap, err := h.terminalService.Recall(c.Request.Context(), c.Param("terminal_id"), c.Param("held_id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Transaction recalled", snap)
}

// ListHeld lists parked transactions, oldest first
func (h *TerminalHandler) ListHeld(c *gin.Context) {
	held, err := h.holdService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Held transactions retrieved", held)
}

// DeleteHeld discards a parked transaction without recalling it
func (h *TerminalHandler) DeleteHeld(c *gin.Context) {
	if err := h.holdService.Delete(c.Request.Context(), c.Param("held_id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
