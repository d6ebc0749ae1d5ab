package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/enum"
	"github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/pkg/apperror"
	"github.com/pharmaplus/pos-api/pkg/txid"
)

// TerminalService owns the open transaction of every register. Each terminal
// has at most one open cart, and all mutations of a cart go through the
// service mutex so handler goroutines never interleave on the same state.
type TerminalService struct {
	mu    sync.Mutex
	carts map[string]*Cart

	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
	holds       *HoldService
	ids         *txid.Generator

	branchCode       string
	starPointDivisor int64
}

func NewTerminalService(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	holds *HoldService,
	ids *txid.Generator,
	branchCode string,
	starPointDivisor int64,
) *TerminalService {
	return &TerminalService{
		carts:            make(map[string]*Cart),
		productRepo:      productRepo,
		saleRepo:         saleRepo,
		holds:            holds,
		ids:              ids,
		branchCode:       branchCode,
		starPointDivisor: starPointDivisor,
	}
}

func (s *TerminalService) cart(terminalID string) *Cart {
	c, ok := s.carts[terminalID]
	if !ok {
		c = NewCart()
		s.carts[terminalID] = c
	}
	return c
}

// Scan looks the item up in the catalog and appends it to the terminal's
// cart as a new line. Unknown and inactive items are rejected.
func (s *TerminalService) Scan(ctx context.Context, terminalID, itemCode string) (*entity.TransactionSnapshot, error) {
	product, err := s.productRepo.GetByItemCode(ctx, itemCode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	if !product.Active {
		return nil, apperror.NewValidationError("product " + product.ItemCode + " is no longer sold")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(terminalID)
	cart.AddProduct(product)
	return s.snapshot(cart)
}

func (s *TerminalService) SetQuantity(_ context.Context, terminalID string, lineID uuid.UUID, quantity int) (*entity.TransactionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(terminalID)
	if err := cart.SetQuantity(lineID, quantity); err != nil {
		return nil, err
	}
	return s.snapshot(cart)
}

func (s *TerminalService) RemoveLine(_ context.Context, terminalID string, lineID uuid.UUID) (*entity.TransactionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(terminalID)
	if err := cart.RemoveLine(lineID); err != nil {
		return nil, err
	}
	return s.snapshot(cart)
}

func (s *TerminalService) SetDiscount(_ context.Context, terminalID string, sel entity.DiscountSelection) (*entity.TransactionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(terminalID)
	if err := cart.SetDiscount(sel); err != nil {
		return nil, err
	}
	return s.snapshot(cart)
}

func (s *TerminalService) SetCustomer(_ context.Context, terminalID string, customerID, customerName, starPointsID *string) (*entity.TransactionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.cart(terminalID)
	cart.SetCustomer(customerID, customerName, starPointsID)
	return s.snapshot(cart)
}

// Snapshot returns the current cart state with freshly computed totals.
func (s *TerminalService) Snapshot(_ context.Context, terminalID string) (*entity.TransactionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(s.cart(terminalID))
}

// Void abandons the open transaction without recording anything.
func (s *TerminalService) Void(_ context.Context, terminalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart(terminalID).Clear()
	return nil
}

// CheckoutInput carries the cashier's tender details into checkout.
type CheckoutInput struct {
	TerminalID     string
	CashierID      uuid.UUID
	PaymentMethod  enum.PaymentMethod
	PrescriptionID *uuid.UUID
}

// Checkout finalizes the open transaction: totals are recomputed one last
// time, a receipt number is issued and the sale is appended to the ledger.
// The cart is cleared only after the write succeeds.
func (s *TerminalService) Checkout(ctx context.Context, input CheckoutInput) (*entity.SaleTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(input.TerminalID)
	if cart.Empty() {
		return nil, apperror.NewValidationError("cannot check out a transaction with no line items")
	}
	snap, err := cart.Snapshot()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	sale := &entity.SaleTransaction{
		ReceiptNo:        s.ids.NextReceiptNo(now),
		BranchCode:       s.branchCode,
		CashierID:        input.CashierID,
		CustomerID:       snap.CustomerID,
		CustomerName:     snap.CustomerName,
		StarPointsID:     snap.StarPointsID,
		DiscountType:     snap.Discount.Type,
		DiscountPercent:  DiscountRate(snap.Discount).Mul(hundred),
		SubTotal:         snap.Totals.SubTotal,
		DiscountAmount:   snap.Totals.DiscountAmount,
		VAT:              snap.Totals.VAT,
		Total:            snap.Totals.Total,
		StarPointsEarned: starPointsFor(snap, s.starPointDivisor),
		PaymentMethod:    input.PaymentMethod,
		Status:           enum.TransactionCompleted,
		PrescriptionID:   input.PrescriptionID,
		TransactionAt:    now,
	}
	for _, line := range snap.Lines {
		sale.Lines = append(sale.Lines, entity.SaleLine{
			ItemCode:             line.ItemCode,
			ProductName:          line.ProductName,
			UnitPrice:            line.UnitPrice,
			Quantity:             line.Quantity,
			Unit:                 line.Unit,
			Category:             line.Category,
			Brand:                line.Brand,
			Dosage:               line.Dosage,
			RequiresPrescription: line.RequiresPrescription,
			LineTotal:            line.LineTotal(),
		})
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	cart.Clear()
	return sale, nil
}

// Hold parks the open transaction in the registry and frees the terminal.
func (s *TerminalService) Hold(ctx context.Context, terminalID, note string) (*entity.HeldTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cart(terminalID)
	snap, err := cart.Snapshot()
	if err != nil {
		return nil, err
	}
	held, err := s.holds.Hold(ctx, snap, note)
	if err != nil {
		return nil, err
	}
	cart.Clear()
	return held, nil
}

// Recall claims a held transaction and loads it into the terminal's cart,
// replacing whatever was open. Clients confirm with the cashier before
// discarding a non-empty cart.
func (s *TerminalService) Recall(ctx context.Context, terminalID, heldID string) (*entity.TransactionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	held, err := s.holds.Recall(ctx, heldID)
	if err != nil {
		return nil, err
	}
	cart := s.cart(terminalID)
	cart.Restore(held.Snapshot)
	return s.snapshot(cart)
}

func (s *TerminalService) snapshot(cart *Cart) (*entity.TransactionSnapshot, error) {
	snap, err := cart.Snapshot()
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// starPointsFor awards points only when the customer presented a loyalty id.
func starPointsFor(snap entity.TransactionSnapshot, divisor int64) int {
	if snap.StarPointsID == nil || *snap.StarPointsID == "" {
		return 0
	}
	return StarPointsEarned(snap.Totals.Total, divisor)
}
