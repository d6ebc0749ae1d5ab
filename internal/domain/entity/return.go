package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReturnTransaction records a processed return against a completed sale.
// It is append-only: once created it is never updated, and processing a
// return never mutates the referenced sale.
type ReturnTransaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReturnNo    string          `gorm:"size:100;unique;not null" json:"return_no"`
	ReceiptNo   string          `gorm:"size:100;not null;index" json:"receipt_no"`
	Reason      string          `gorm:"type:text;not null" json:"reason"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"total_amount"`
	ProcessedBy uuid.UUID       `gorm:"type:uuid;not null;index" json:"processed_by"`
	ReturnedAt  time.Time       `gorm:"not null;index" json:"returned_at"`
	CreatedAt   time.Time       `json:"created_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Lines []ReturnLine `gorm:"foreignKey:ReturnID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new return transaction
func (r *ReturnTransaction) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReturnTransaction model
func (ReturnTransaction) TableName() string {
	return "return_transactions"
}

// ReturnLine is one returned line, a subset of an original sale line with
// return quantity never exceeding the purchased quantity.
type ReturnLine struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ReturnID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"return_id"`
	SaleLineID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"sale_line_id"`
	ItemCode       string          `gorm:"size:100;not null;index" json:"item_code"`
	ProductName    string          `gorm:"size:255;not null" json:"product_name"`
	UnitPrice      decimal.Decimal `gorm:"type:numeric(12,4);not null" json:"unit_price"`
	ReturnQuantity int             `gorm:"not null" json:"return_quantity"`
	LineTotal      decimal.Decimal `gorm:"type:numeric(14,4);not null" json:"line_total"`
	CreatedAt      time.Time       `json:"created_at"`

	// Relationships
	Return ReturnTransaction `gorm:"foreignKey:ReturnID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new return line
func (l *ReturnLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReturnLine model
func (ReturnLine) TableName() string {
	return "return_lines"
}
