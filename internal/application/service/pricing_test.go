package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmaplus/pos-api/internal/application/service"
	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/enum"
	"github.com/pharmaplus/pos-api/pkg/apperror"
)

func line(code string, price string, qty int) entity.LineItem {
	return entity.LineItem{
		ID:        uuid.New(),
		ItemCode:  code,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestComputeTotalsNoDiscount(t *testing.T) {
	lines := []entity.LineItem{
		line("MED001", "5.99", 2),
	}

	totals, err := service.ComputeTotals(lines, entity.NoDiscount())
	require.NoError(t, err)

	assert.True(t, totals.SubTotal.Equal(decimal.RequireFromString("11.98")), "subtotal %s", totals.SubTotal)
	assert.True(t, totals.DiscountAmount.IsZero())
	assert.True(t, totals.VAT.Equal(decimal.RequireFromString("1.4376")), "vat %s", totals.VAT)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("13.4176")), "total %s", totals.Total)
}

func TestComputeTotalsSeniorPWD(t *testing.T) {
	lines := []entity.LineItem{
		line("MED001", "5.99", 2),
	}

	totals, err := service.ComputeTotals(lines, entity.DiscountSelection{Type: enum.DiscountSeniorPWD})
	require.NoError(t, err)

	assert.True(t, totals.DiscountAmount.Equal(decimal.RequireFromString("2.396")), "discount %s", totals.DiscountAmount)
	assert.True(t, totals.DiscountedSubTotal.Equal(decimal.RequireFromString("9.584")), "discounted %s", totals.DiscountedSubTotal)
	assert.True(t, totals.VAT.Equal(decimal.RequireFromString("1.15008")), "vat %s", totals.VAT)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("10.73408")), "total %s", totals.Total)
}

func TestComputeTotalsCustomDiscount(t *testing.T) {
	lines := []entity.LineItem{
		line("MED002", "100.00", 1),
	}

	totals, err := service.ComputeTotals(lines, entity.DiscountSelection{
		Type:          enum.DiscountCustom,
		CustomPercent: decimal.NewFromInt(10),
	})
	require.NoError(t, err)

	assert.True(t, totals.DiscountAmount.Equal(decimal.NewFromInt(10)))
	assert.True(t, totals.VAT.Equal(decimal.RequireFromString("10.8")))
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("100.8")))
}

func TestComputeTotalsCustomDiscountClamped(t *testing.T) {
	lines := []entity.LineItem{
		line("MED002", "50.00", 1),
	}

	over, err := service.ComputeTotals(lines, entity.DiscountSelection{
		Type:          enum.DiscountCustom,
		CustomPercent: decimal.NewFromInt(150),
	})
	require.NoError(t, err)
	assert.True(t, over.DiscountedSubTotal.IsZero(), "discount above 100 clamps to the full subtotal")
	assert.True(t, over.Total.IsZero())

	under, err := service.ComputeTotals(lines, entity.DiscountSelection{
		Type:          enum.DiscountCustom,
		CustomPercent: decimal.NewFromInt(-20),
	})
	require.NoError(t, err)
	assert.True(t, under.DiscountAmount.IsZero(), "negative discount clamps to zero")
}

func TestComputeTotalsVATAppliesAfterDiscount(t *testing.T) {
	lines := []entity.LineItem{
		line("MED003", "200.00", 1),
	}

	totals, err := service.ComputeTotals(lines, entity.DiscountSelection{Type: enum.DiscountSeniorPWD})
	require.NoError(t, err)

	// VAT on the discounted 160, never on the raw 200.
	assert.True(t, totals.VAT.Equal(decimal.RequireFromString("19.2")), "vat %s", totals.VAT)
	assert.True(t, totals.Total.Equal(decimal.RequireFromString("179.2")))
}

func TestComputeTotalsEmptyCart(t *testing.T) {
	totals, err := service.ComputeTotals(nil, entity.NoDiscount())
	require.NoError(t, err)

	assert.True(t, totals.SubTotal.IsZero())
	assert.True(t, totals.VAT.IsZero())
	assert.True(t, totals.Total.IsZero())
}

func TestComputeTotalsRejectsInvalidLines(t *testing.T) {
	_, err := service.ComputeTotals([]entity.LineItem{line("MED001", "5.99", 0)}, entity.NoDiscount())
	assert.True(t, apperror.IsValidation(err))

	_, err = service.ComputeTotals([]entity.LineItem{line("MED001", "-1.00", 1)}, entity.NoDiscount())
	assert.True(t, apperror.IsValidation(err))
}

func TestStarPointsEarned(t *testing.T) {
	assert.Equal(t, 0, service.StarPointsEarned(decimal.RequireFromString("199.99"), 200))
	assert.Equal(t, 1, service.StarPointsEarned(decimal.NewFromInt(200), 200))
	assert.Equal(t, 2, service.StarPointsEarned(decimal.RequireFromString("459.50"), 200))
	assert.Equal(t, 0, service.StarPointsEarned(decimal.NewFromInt(500), 0))
}
