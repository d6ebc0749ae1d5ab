package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pharmaplus/pos-api/internal/domain/enum"
)

// SaleTransaction is a finalized, immutable sale record. It is created once at
// checkout (or void) and is never mutated afterwards; returns are tracked in a
// separate ledger and netted only at report time.
type SaleTransaction struct {
	ID               uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptNo        string                 `gorm:"size:100;unique;not null" json:"receipt_no"`
	BranchCode       string                 `gorm:"size:20;not null;index" json:"branch_code"`
	CashierID        uuid.UUID              `gorm:"type:uuid;not null;index" json:"cashier_id"`
	CustomerID       *string                `gorm:"size:100" json:"customer_id,omitempty"`
	CustomerName     *string                `gorm:"size:255" json:"customer_name,omitempty"`
	StarPointsID     *string                `gorm:"size:100" json:"star_points_id,omitempty"`
	DiscountType     enum.DiscountType      `gorm:"default:0" json:"discount_type"`
	DiscountPercent  decimal.Decimal        `gorm:"type:numeric(5,2);default:0" json:"discount_percent"`
	SubTotal         decimal.Decimal        `gorm:"type:numeric(14,4);not null" json:"sub_total"`
	DiscountAmount   decimal.Decimal        `gorm:"type:numeric(14,4);not null" json:"discount_amount"`
	VAT              decimal.Decimal        `gorm:"type:numeric(14,4);not null" json:"vat"`
	Total            decimal.Decimal        `gorm:"type:numeric(14,4);not null" json:"total"`
	StarPointsEarned int                    `gorm:"default:0" json:"star_points_earned"`
	PaymentMethod    enum.PaymentMethod     `gorm:"default:0" json:"payment_method"`
	Status           enum.TransactionStatus `gorm:"default:2" json:"status"`
	PrescriptionID   *uuid.UUID             `gorm:"type:uuid;index" json:"prescription_id,omitempty"`
	TransactionAt    time.Time              `gorm:"not null;index" json:"transaction_at"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
	DeletedAt        gorm.DeletedAt         `gorm:"index" json:"-"`

	// Relationships
	Lines []SaleLine `gorm:"foreignKey:SaleID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sale transaction
func (s *SaleTransaction) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleTransaction model
func (SaleTransaction) TableName() string {
	return "sale_transactions"
}

// LocalDate returns the transaction's calendar day in its own location,
// matching register-close conventions.
func (s *SaleTransaction) LocalDate() string {
	return s.TransactionAt.Format("2006-01-02")
}

// SaleLine is one line item on a finalized sale. Product attributes are
// denormalized at checkout so the receipt stays stable even if the catalog
// changes later.
type SaleLine struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SaleID               uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_id"`
	ItemCode             string          `gorm:"size:100;not null;index" json:"item_code"`
	ProductName          string          `gorm:"size:255;not null" json:"product_name"`
	UnitPrice            decimal.Decimal `gorm:"type:numeric(12,4);not null" json:"unit_price"`
	Quantity             int             `gorm:"not null" json:"quantity"`
	Unit                 string          `gorm:"size:50" json:"unit"`
	Category             string          `gorm:"size:100" json:"category"`
	Brand                string          `gorm:"size:100" json:"brand"`
	Dosage               string          `gorm:"size:100" json:"dosage"`
	RequiresPrescription bool            `gorm:"default:false" json:"requires_prescription"`
	LineTotal            decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"line_total"`
	CreatedAt            time.Time       `json:"created_at"`

	// Relationships
	Sale SaleTransaction `gorm:"foreignKey:SaleID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sale line
func (l *SaleLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleLine model
func (SaleLine) TableName() string {
	return "sale_lines"
}

// AsLineItem converts a persisted sale line back into the cart line-item
// shape used by the return processor.
func (l SaleLine) AsLineItem() LineItem {
	return LineItem{
		ID:                   l.ID,
		ItemCode:             l.ItemCode,
		ProductName:          l.ProductName,
		UnitPrice:            l.UnitPrice,
		Quantity:             l.Quantity,
		Unit:                 l.Unit,
		Category:             l.Category,
		Brand:                l.Brand,
		Dosage:               l.Dosage,
		RequiresPrescription: l.RequiresPrescription,
	}
}
