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

type returnFixture struct {
	returns *service.ReturnService
	sales   repository.SaleRepository
	sale    *entity.SaleTransaction
}

func newReturnFixture(t *testing.T) *returnFixture {
	t.Helper()
	ctx := context.Background()

	products := memory.NewProductRepository()
	require.NoError(t, products.Create(ctx, product("MED001", "Paracetamol 500mg", "5.99")))
	require.NoError(t, products.Create(ctx, product("MED002", "Amoxicillin 250mg", "12.99")))

	sales := memory.NewSaleRepository()
	ids := txid.NewGenerator("B001")
	holds := service.NewHoldService(memory.NewHeldRepository(), ids)
	terminals := service.NewTerminalService(products, sales, holds, ids, "B001", 200)

	_, err := terminals.Scan(ctx, "T1", "MED001")
	require.NoError(t, err)
	snap, err := terminals.Snapshot(ctx, "T1")
	require.NoError(t, err)
	_, err = terminals.SetQuantity(ctx, "T1", snap.Lines[0].ID, 3)
	require.NoError(t, err)
	_, err = terminals.Scan(ctx, "T1", "MED002")
	require.NoError(t, err)

	sale, err := terminals.Checkout(ctx, service.CheckoutInput{
		TerminalID:    "T1",
		CashierID:     uuid.New(),
		PaymentMethod: enum.PaymentCash,
	})
	require.NoError(t, err)

	return &returnFixture{
		returns: service.NewReturnService(sales, memory.NewReturnRepository(), ids),
		sales:   sales,
		sale:    sale,
	}
}

func (f *returnFixture) lineByCode(code string) entity.SaleLine {
	for _, line := range f.sale.Lines {
		if line.ItemCode == code {
			return line
		}
	}
	return entity.SaleLine{}
}

func TestLookupReceipt(t *testing.T) {
	f := newReturnFixture(t)

	sale, err := f.returns.LookupReceipt(context.Background(), f.sale.ReceiptNo)
	require.NoError(t, err)
	assert.Equal(t, f.sale.ReceiptNo, sale.ReceiptNo)
	assert.Len(t, sale.Lines, 2)
}

func TestLookupReceiptBlank(t *testing.T) {
	f := newReturnFixture(t)

	_, err := f.returns.LookupReceipt(context.Background(), "   ")
	assert.True(t, apperror.IsValidation(err))
}

func TestLookupReceiptUnknown(t *testing.T) {
	f := newReturnFixture(t)

	_, err := f.returns.LookupReceipt(context.Background(), "B001-260101-99999")
	assert.True(t, apperror.IsNotFound(err))
}

func TestProcessReturnPartialLine(t *testing.T) {
	f := newReturnFixture(t)

	ret, err := f.returns.Process(context.Background(), service.ProcessReturnInput{
		ReceiptNo: f.sale.ReceiptNo,
		Reason:    "damaged packaging",
		Lines: []service.ReturnLineInput{
			{SaleLineID: f.lineByCode("MED001").ID, ReturnQuantity: 2},
		},
		ProcessedBy: uuid.New(),
	})
	require.NoError(t, err)

	assert.Regexp(t, `^RET\d+$`, ret.ReturnNo)
	require.Len(t, ret.Lines, 1)
	assert.Equal(t, 2, ret.Lines[0].ReturnQuantity)
	assert.True(t, ret.TotalAmount.Equal(decimal.RequireFromString("11.98")), "total %s", ret.TotalAmount)
}

func TestProcessReturnOverQuantity(t *testing.T) {
	f := newReturnFixture(t)

	_, err := f.returns.Process(context.Background(), service.ProcessReturnInput{
		ReceiptNo: f.sale.ReceiptNo,
		Reason:    "damaged packaging",
		Lines: []service.ReturnLineInput{
			{SaleLineID: f.lineByCode("MED001").ID, ReturnQuantity: 4},
		},
		ProcessedBy: uuid.New(),
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestProcessReturnNothingSelected(t *testing.T) {
	f := newReturnFixture(t)

	_, err := f.returns.Process(context.Background(), service.ProcessReturnInput{
		ReceiptNo: f.sale.ReceiptNo,
		Reason:    "damaged packaging",
		Lines: []service.ReturnLineInput{
			{SaleLineID: f.lineByCode("MED001").ID, ReturnQuantity: 0},
		},
		ProcessedBy: uuid.New(),
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestProcessReturnMissingReason(t *testing.T) {
	f := newReturnFixture(t)

	_, err := f.returns.Process(context.Background(), service.ProcessReturnInput{
		ReceiptNo: f.sale.ReceiptNo,
		Reason:    "  ",
		Lines: []service.ReturnLineInput{
			{SaleLineID: f.lineByCode("MED001").ID, ReturnQuantity: 1},
		},
		ProcessedBy: uuid.New(),
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestProcessReturnUnknownLine(t *testing.T) {
	f := newReturnFixture(t)

	_, err := f.returns.Process(context.Background(), service.ProcessReturnInput{
		ReceiptNo: f.sale.ReceiptNo,
		Reason:    "damaged packaging",
		Lines: []service.ReturnLineInput{
			{SaleLineID: uuid.New(), ReturnQuantity: 1},
		},
		ProcessedBy: uuid.New(),
	})
	assert.True(t, apperror.IsValidation(err))
}

func TestProcessReturnLeavesSaleUntouched(t *testing.T) {
	f := newReturnFixture(t)
	ctx := context.Background()

	_, err := f.returns.Process(ctx, service.ProcessReturnInput{
		ReceiptNo: f.sale.ReceiptNo,
		Reason:    "damaged packaging",
		Lines: []service.ReturnLineInput{
			{SaleLineID: f.lineByCode("MED001").ID, ReturnQuantity: 3},
		},
		ProcessedBy: uuid.New(),
	})
	require.NoError(t, err)

	stored, err := f.sales.GetByReceiptNo(ctx, f.sale.ReceiptNo)
	require.NoError(t, err)
	assert.True(t, stored.Total.Equal(f.sale.Total))
	require.Len(t, stored.Lines, 2)
	for i, line := range stored.Lines {
		assert.Equal(t, f.sale.Lines[i].Quantity, line.Quantity)
	}
}

func TestProcessReturnSameLineTwiceInRequest(t *testing.T) {
	f := newReturnFixture(t)

	lineID := f.lineByCode("MED001").ID
	_, err := f.returns.Process(context.Background(), service.ProcessReturnInput{
		ReceiptNo: f.sale.ReceiptNo,
		Reason:    "damaged packaging",
		Lines: []service.ReturnLineInput{
			{SaleLineID: lineID, ReturnQuantity: 2},
			{SaleLineID: lineID, ReturnQuantity: 2},
		},
		ProcessedBy: uuid.New(),
	})
	assert.True(t, apperror.IsValidation(err))
}
