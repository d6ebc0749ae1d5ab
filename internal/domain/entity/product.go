package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a pharmacy catalog item.
type Product struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ItemCode             string          `gorm:"size:100;unique;not null" json:"item_code"`
	Name                 string          `gorm:"size:255;not null" json:"name"`
	UnitPrice            decimal.Decimal `gorm:"type:numeric(12,4);not null" json:"unit_price"`
	Unit                 string          `gorm:"size:50" json:"unit"`
	Category             string          `gorm:"size:100;index" json:"category"`
	Brand                string          `gorm:"size:100" json:"brand"`
	Dosage               string          `gorm:"size:100" json:"dosage"`
	RequiresPrescription bool            `gorm:"default:false" json:"requires_prescription"`
	Barcode              *string         `gorm:"size:100;index" json:"barcode,omitempty"`
	CurrentStock         int             `gorm:"default:0" json:"current_stock"`
	ReorderPoint         int             `gorm:"default:0" json:"reorder_point"`
	Active               bool            `gorm:"default:true" json:"active"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
	DeletedAt            gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// IsLowStock reports whether the product is at or below its reorder point.
func (p *Product) IsLowStock() bool {
	return p.CurrentStock <= p.ReorderPoint
}

// StockValue returns the value of the current stock at the unit price.
func (p *Product) StockValue() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.CurrentStock)))
}
