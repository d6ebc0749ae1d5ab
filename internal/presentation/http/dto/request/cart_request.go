package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ScanItemRequest adds one catalog item to the terminal's open transaction
type ScanItemRequest struct {
	ItemCode string `json:"item_code" binding:"required,max=100"`
}

// UpdateQuantityRequest changes a line's quantity; zero or less removes it
type UpdateQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// SetDiscountRequest selects the transaction discount
type SetDiscountRequest struct {
	Type          string          `json:"type" binding:"required,oneof=None SeniorPWD Custom"`
	CustomPercent decimal.Decimal `json:"custom_percent"`
}

// SetCustomerRequest attaches customer details to the open transaction
type SetCustomerRequest struct {
	CustomerID   *string `json:"customer_id" binding:"omitempty,max=100"`
	CustomerName *string `json:"customer_name" binding:"omitempty,max=255"`
	StarPointsID *string `json:"star_points_id" binding:"omitempty,max=100"`
}

// CheckoutRequest finalizes the open transaction
type CheckoutRequest struct {
	PaymentMethod  string     `json:"payment_method" binding:"required,oneof=CASH CARD OTHER"`
	PrescriptionID *uuid.UUID `json:"prescription_id"`
}

// HoldRequest parks the open transaction with an optional note
type HoldRequest struct {
	Note string `json:"note" binding:"max=255"`
}
