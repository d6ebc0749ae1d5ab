package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pharmaplus/pos-api/internal/domain/enum"
)

// LineItem is one product entry with quantity in an open or held transaction.
// Its identity is the line id, not the item code: repeated scans of the same
// product produce separate lines. Quantity is the only field a cart mutates
// after add.
type LineItem struct {
	ID                   uuid.UUID       `json:"id"`
	ItemCode             string          `json:"item_code"`
	ProductName          string          `json:"product_name"`
	UnitPrice            decimal.Decimal `json:"unit_price"`
	Quantity             int             `json:"quantity"`
	Unit                 string          `json:"unit"`
	Category             string          `json:"category"`
	Brand                string          `json:"brand"`
	Dosage               string          `json:"dosage"`
	RequiresPrescription bool            `json:"requires_prescription"`
}

// LineTotal returns unit price multiplied by quantity.
func (l LineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// DiscountSelection is the single active discount policy for a transaction.
// CustomPercent is only meaningful when Type is DiscountCustom.
type DiscountSelection struct {
	Type          enum.DiscountType `json:"type"`
	CustomPercent decimal.Decimal   `json:"custom_percent,omitempty"`
}

// NoDiscount returns the default selection.
func NoDiscount() DiscountSelection {
	return DiscountSelection{Type: enum.DiscountNone}
}

// Totals is the derived pricing breakdown of a transaction. It is computed on
// demand and never stored.
type Totals struct {
	SubTotal           decimal.Decimal `json:"sub_total"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	DiscountedSubTotal decimal.Decimal `json:"discounted_sub_total"`
	VAT                decimal.Decimal `json:"vat"`
	Total              decimal.Decimal `json:"total"`
}

// TransactionSnapshot is an immutable view of a terminal's open transaction:
// its lines, discount selection, customer fields and freshly computed totals.
// Snapshots are what the hold/recall registry stores and what checkout
// finalizes.
type TransactionSnapshot struct {
	Lines        []LineItem        `json:"lines"`
	Discount     DiscountSelection `json:"discount"`
	CustomerID   *string           `json:"customer_id,omitempty"`
	CustomerName *string           `json:"customer_name,omitempty"`
	StarPointsID *string           `json:"star_points_id,omitempty"`
	Totals       Totals            `json:"totals"`
}

// Clone returns a deep copy of the snapshot so later cart mutation cannot
// alter a held or finalized record.
func (s TransactionSnapshot) Clone() TransactionSnapshot {
	out := s
	out.Lines = make([]LineItem, len(s.Lines))
	copy(out.Lines, s.Lines)
	if s.CustomerID != nil {
		v := *s.CustomerID
		out.CustomerID = &v
	}
	if s.CustomerName != nil {
		v := *s.CustomerName
		out.CustomerName = &v
	}
	if s.StarPointsID != nil {
		v := *s.StarPointsID
		out.StarPointsID = &v
	}
	return out
}
