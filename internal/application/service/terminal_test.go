package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmaplus/pos-api/internal/application/service"
	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/enum"
	"github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/internal/infrastructure/repository/memory"
	"github.com/pharmaplus/pos-api/pkg/apperror"
	"github.com/pharmaplus/pos-api/pkg/txid"
)

type terminalFixture struct {
	terminals *service.TerminalService
	holds     *service.HoldService
	products  repository.ProductRepository
	sales     repository.SaleRepository
}

func newTerminalFixture(t *testing.T) *terminalFixture {
	t.Helper()
	ctx := context.Background()

	products := memory.NewProductRepository()
	require.NoError(t, products.Create(ctx, product("MED001", "Paracetamol 500mg", "5.99")))
	require.NoError(t, products.Create(ctx, product("MED002", "Amoxicillin 250mg", "12.99")))

	inactive := product("MED999", "Discontinued Syrup", "9.99")
	inactive.Active = false
	require.NoError(t, products.Create(ctx, inactive))

	sales := memory.NewSaleRepository()
	ids := txid.NewGenerator("B001")
	holds := service.NewHoldService(memory.NewHeldRepository(), ids)
	terminals := service.NewTerminalService(products, sales, holds, ids, "B001", 200)

	return &terminalFixture{terminals: terminals, holds: holds, products: products, sales: sales}
}

func TestTerminalScanAddsLine(t *testing.T) {
	f := newTerminalFixture(t)
	ctx := context.Background()

	snap, err := f.terminals.Scan(ctx, "T1", "MED001")
	require.NoError(t, err)
	require.Len(t, snap.Lines, 1)
	assert.Equal(t, "Paracetamol 500mg", snap.Lines[0].ProductName)
	assert.Equal(t, 1, snap.Lines[0].Quantity)
}

func TestTerminalScanUnknownItem(t *testing.T) {
	f := newTerminalFixture(t)

	_, err := f.terminals.Scan(context.Background(), "T1", "NOPE")
	assert.True(t, apperror.IsNotFound(err))
}

func TestTerminalScanInactiveItem(t *testing.T) {
	f := newTerminalFixture(t)

	_, err := f.terminals.Scan(context.Background(), "T1", "MED999")
	assert.True(t, apperror.IsValidation(err))
}

func TestTerminalsAreIsolated(t *testing.T) {
	f := newTerminalFixture(t)
	ctx := context.Background()

	_, err := f.terminals.Scan(ctx, "T1", "MED001")
	require.NoError(t, err)

	snap, err := f.terminals.Snapshot(ctx, "T2")
	require.NoError(t, err)
	assert.Empty(t, snap.Lines)
}

func TestTerminalCheckout(t *testing.T) {
	f := newTerminalFixture(t)
	ctx := context.Background()
	cashier := uuid.New()

	_, err := f.terminals.Scan(ctx, "T1", "MED001")
	require.NoError(t, err)
	_, err = f.terminals.Scan(ctx, "T1", "MED001")
	require.NoError(t, err)

	sale, err := f.terminals.Checkout(ctx, service.CheckoutInput{
		TerminalID:    "T1",
		CashierID:     cashier,
		PaymentMethod: enum.PaymentCash,
	})
	require.NoError(t, err)

	assert.Regexp(t, `^B001-\d{6}-00001$`, sale.ReceiptNo)
	assert.Equal(t, enum.TransactionCompleted, sale.Status)
	assert.True(t, sale.Total.Equal(decimal.RequireFromString("13.4176")), "total %s", sale.Total)
	require.Len(t, sale.Lines, 2)

	// Ledger holds the sale
	stored, err := f.sales.GetByReceiptNo(ctx, sale.ReceiptNo)
	require.NoError(t, err)
	require.NotNil(t, stored)

	// Cart is cleared after checkout
	snap, err := f.terminals.Snapshot(ctx, "T1")
	require.NoError(t, err)
	assert.Empty(t, snap.Lines)
}

func TestTerminalCheckoutEmptyCart(t *testing.T) {
	f := newTerminalFixture(t)

	_, err := f.terminals.Checkout(context.Background(), service.CheckoutInput{
		TerminalID:    "T1",
		CashierID:     uuid.New(),
		PaymentMethod: enum.PaymentCash,
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestTerminalCheckoutStarPoints(t *testing.T) {
	f := newTerminalFixture(t)
	ctx := context.Background()

	_, err := f.terminals.Scan(ctx, "T1", "MED002")
	require.NoError(t, err)
	snap, err := f.terminals.Snapshot(ctx, "T1")
	require.NoError(t, err)
	_, err = f.terminals.SetQuantity(ctx, "T1", snap.Lines[0].ID, 30)
	require.NoError(t, err)

	star := "SP-1001"
	_, err = f.terminals.SetCustomer(ctx, "T1", nil, nil, &star)
	require.NoError(t, err)

	sale, err := f.terminals.Checkout(ctx, service.CheckoutInput{
		TerminalID:    "T1",
		CashierID:     uuid.New(),
		PaymentMethod: enum.PaymentCard,
	})
	require.NoError(t, err)

	// 30 * 12.99 = 389.70, +12% VAT = 436.464 -> 2 points
	assert.Equal(t, 2, sale.StarPointsEarned)
}

func TestTerminalHoldAndRecallRoundTrip(t *testing.T) {
	f := newTerminalFixture(t)
	ctx := context.Background()

	_, err := f.terminals.Scan(ctx, "T1", "MED001")
	require.NoError(t, err)
	_, err = f.terminals.SetDiscount(ctx, "T1", entity.DiscountSelection{Type: enum.DiscountSeniorPWD})
	require.NoError(t, err)

	held, err := f.terminals.Hold(ctx, "T1", "waiting on card")
	require.NoError(t, err)

	// Terminal is free after the hold
	snap, err := f.terminals.Snapshot(ctx, "T1")
	require.NoError(t, err)
	assert.Empty(t, snap.Lines)

	// Recall on another terminal restores lines and discount
	recalled, err := f.terminals.Recall(ctx, "T2", held.ID)
	require.NoError(t, err)
	require.Len(t, recalled.Lines, 1)
	assert.Equal(t, "MED001", recalled.Lines[0].ItemCode)
	assert.Equal(t, enum.DiscountSeniorPWD, recalled.Discount.Type)
}

func TestTerminalHoldEmptyCart(t *testing.T) {
	f := newTerminalFixture(t)

	_, err := f.terminals.Hold(context.Background(), "T1", "")
	assert.True(t, apperror.IsValidation(err))
}

func TestTerminalVoidDiscardsCart(t *testing.T) {
	f := newTerminalFixture(t)
	ctx := context.Background()

	_, err := f.terminals.Scan(ctx, "T1", "MED001")
	require.NoError(t, err)
	require.NoError(t, f.terminals.Void(ctx, "T1"))

	snap, err := f.terminals.Snapshot(ctx, "T1")
	require.NoError(t, err)
	assert.Empty(t, snap.Lines)

	// Nothing reaches the ledger
	sales, _, err := f.sales.List(ctx, &repository.SaleFilterParams{})
	require.NoError(t, err)
	assert.Empty(t, sales)
}

func TestTerminalReceiptNumbersAreSequential(t *testing.T) {
	f := newTerminalFixture(t)
	ctx := context.Background()

	var receipts []string
	for i := 0; i < 3; i++ {
		_, err := f.terminals.Scan(ctx, "T1", "MED001")
		require.NoError(t, err)
		sale, err := f.terminals.Checkout(ctx, service.CheckoutInput{
			TerminalID:    "T1",
			CashierID:     uuid.New(),
			PaymentMethod: enum.PaymentCash,
		})
		require.NoError(t, err)
		receipts = append(receipts, sale.ReceiptNo)
	}

	assert.Regexp(t, `-00001$`, receipts[0])
	assert.Regexp(t, `-00002$`, receipts[1])
	assert.Regexp(t, `-00003$`, receipts[2])
}
