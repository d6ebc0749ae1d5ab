package request

import "github.com/google/uuid"

// ReturnLineRequest requests a quantity of one sale line to be returned
type ReturnLineRequest struct {
	SaleLineID     uuid.UUID `json:"sale_line_id" binding:"required"`
	ReturnQuantity int       `json:"return_quantity" binding:"min=0"`
}

// ProcessReturnRequest represents a full return request against a receipt
type ProcessReturnRequest struct {
	ReceiptNo string              `json:"receipt_no" binding:"required,max=100"`
	Reason    string              `json:"reason"`
	Lines     []ReturnLineRequest `json:"lines" binding:"required"`
}

// ReturnFilterRequest represents return listing filter parameters
type ReturnFilterRequest struct {
	ReceiptNo string `form:"receipt_no"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}
