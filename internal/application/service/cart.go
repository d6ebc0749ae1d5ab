package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/pkg/apperror"
)

// Cart holds the open transaction state for a single terminal. It is not
// safe for concurrent use on its own; TerminalService serializes access.
type Cart struct {
	lines        []entity.LineItem
	discount     entity.DiscountSelection
	customerID   *string
	customerName *string
	starPointsID *string
}

func NewCart() *Cart {
	return &Cart{discount: entity.NoDiscount()}
}

// AddProduct appends a fresh line with quantity 1. Scanning the same
// product twice produces two lines; cashiers adjust quantities explicitly.
func (c *Cart) AddProduct(p *entity.Product) entity.LineItem {
	line := entity.LineItem{
		ID:                   uuid.New(),
		ItemCode:             p.ItemCode,
		ProductName:          p.Name,
		UnitPrice:            p.UnitPrice,
		Quantity:             1,
		Unit:                 p.Unit,
		Category:             p.Category,
		Brand:                p.Brand,
		Dosage:               p.Dosage,
		RequiresPrescription: p.RequiresPrescription,
	}
	c.lines = append(c.lines, line)
	return line
}

// SetQuantity updates a line's quantity. A quantity below 1 removes the
// line instead of leaving a zero-quantity entry behind.
func (c *Cart) SetQuantity(lineID uuid.UUID, quantity int) error {
	idx := c.indexOf(lineID)
	if idx < 0 {
		return apperror.NewNotFoundError("Line item")
	}
	if quantity < 1 {
		c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
		return nil
	}
	c.lines[idx].Quantity = quantity
	return nil
}

func (c *Cart) RemoveLine(lineID uuid.UUID) error {
	idx := c.indexOf(lineID)
	if idx < 0 {
		return apperror.NewNotFoundError("Line item")
	}
	c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
	return nil
}

func (c *Cart) SetDiscount(sel entity.DiscountSelection) error {
	if !sel.Type.IsValid() {
		return apperror.NewValidationError(fmt.Sprintf("unknown discount type %d", int(sel.Type)))
	}
	c.discount = sel
	return nil
}

func (c *Cart) SetCustomer(customerID, customerName, starPointsID *string) {
	c.customerID = customerID
	c.customerName = customerName
	c.starPointsID = starPointsID
}

// Restore replaces the cart contents with a previously held snapshot.
func (c *Cart) Restore(snap entity.TransactionSnapshot) {
	clone := snap.Clone()
	c.lines = clone.Lines
	c.discount = clone.Discount
	c.customerID = clone.CustomerID
	c.customerName = clone.CustomerName
	c.starPointsID = clone.StarPointsID
}

func (c *Cart) Clear() {
	c.lines = nil
	c.discount = entity.NoDiscount()
	c.customerID = nil
	c.customerName = nil
	c.starPointsID = nil
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Snapshot deep-copies the cart state and recomputes totals so callers
// can never mutate the live cart through the returned value.
func (c *Cart) Snapshot() (entity.TransactionSnapshot, error) {
	totals, err := ComputeTotals(c.lines, c.discount)
	if err != nil {
		return entity.TransactionSnapshot{}, err
	}
	snap := entity.TransactionSnapshot{
		Lines:        c.lines,
		Discount:     c.discount,
		CustomerID:   c.customerID,
		CustomerName: c.customerName,
		StarPointsID: c.starPointsID,
		Totals:       totals,
	}
	return snap.Clone(), nil
}

func (c *Cart) indexOf(lineID uuid.UUID) int {
	for i, line := range c.lines {
		if line.ID == lineID {
			return i
		}
	}
	return -1
}
