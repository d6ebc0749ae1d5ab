package request

import "github.com/shopspring/decimal"

// CreateProductRequest represents a catalog entry creation request
type CreateProductRequest struct {
	ItemCode             string          `json:"item_code" binding:"required,max=100"`
	Name                 string          `json:"name" binding:"required,min=2,max=255"`
	UnitPrice            decimal.Decimal `json:"unit_price" binding:"required"`
	Unit                 string          `json:"unit" binding:"omitempty,max=50"`
	Category             string          `json:"category" binding:"omitempty,max=100"`
	Brand                string          `json:"brand" binding:"omitempty,max=100"`
	Dosage               string          `json:"dosage" binding:"omitempty,max=100"`
	RequiresPrescription bool            `json:"requires_prescription"`
	Barcode              *string         `json:"barcode" binding:"omitempty,max=100"`
	CurrentStock         int             `json:"current_stock" binding:"min=0"`
	ReorderPoint         int             `json:"reorder_point" binding:"min=0"`
}

// UpdateProductRequest represents a catalog entry update request
type UpdateProductRequest struct {
	Name         *string          `json:"name" binding:"omitempty,min=2,max=255"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	Unit         *string          `json:"unit" binding:"omitempty,max=50"`
	Category     *string          `json:"category" binding:"omitempty,max=100"`
	Brand        *string          `json:"brand" binding:"omitempty,max=100"`
	Dosage       *string          `json:"dosage" binding:"omitempty,max=100"`
	Barcode      *string          `json:"barcode" binding:"omitempty,max=100"`
	CurrentStock *int             `json:"current_stock" binding:"omitempty,min=0"`
	ReorderPoint *int             `json:"reorder_point" binding:"omitempty,min=0"`
	Active       *bool            `json:"active"`
}

// ProductFilterRequest represents catalog filter parameters
type ProductFilterRequest struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	LowStock bool   `form:"low_stock"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
