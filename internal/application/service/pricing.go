package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/enum"
	"github.com/pharmaplus/pos-api/pkg/apperror"
)

// VAT is charged on the discounted subtotal, never on the raw subtotal.
var (
	vatRate       = decimal.NewFromFloat(0.12)
	seniorPWDRate = decimal.NewFromFloat(0.20)
	hundred       = decimal.NewFromInt(100)
	maxCustomPct  = decimal.NewFromInt(100)
)

// DiscountRate resolves a discount selection to a fractional rate.
// Custom percentages outside [0, 100] are clamped into range.
func DiscountRate(sel entity.DiscountSelection) decimal.Decimal {
	switch sel.Type {
	case enum.DiscountSeniorPWD:
		return seniorPWDRate
	case enum.DiscountCustom:
		pct := sel.CustomPercent
		if pct.IsNegative() {
			pct = decimal.Zero
		}
		if pct.GreaterThan(maxCustomPct) {
			pct = maxCustomPct
		}
		return pct.Div(hundred)
	default:
		return decimal.Zero
	}
}

// ComputeTotals derives the monetary breakdown for a set of line items.
// It is a pure function of its inputs and never mutates the lines.
func ComputeTotals(lines []entity.LineItem, sel entity.DiscountSelection) (entity.Totals, error) {
	subTotal := decimal.Zero
	for _, line := range lines {
		if line.Quantity < 1 {
			return entity.Totals{}, apperror.NewValidationError(fmt.Sprintf("line item %s has invalid quantity %d", line.ItemCode, line.Quantity))
		}
		if line.UnitPrice.IsNegative() {
			return entity.Totals{}, apperror.NewValidationError(fmt.Sprintf("line item %s has negative unit price", line.ItemCode))
		}
		subTotal = subTotal.Add(line.LineTotal())
	}

	discountAmount := subTotal.Mul(DiscountRate(sel))
	discounted := subTotal.Sub(discountAmount)
	vat := discounted.Mul(vatRate)

	return entity.Totals{
		SubTotal:           subTotal,
		DiscountAmount:     discountAmount,
		DiscountedSubTotal: discounted,
		VAT:                vat,
		Total:              discounted.Add(vat),
	}, nil
}

// StarPointsEarned awards one point per full divisor of the final total.
func StarPointsEarned(total decimal.Decimal, divisor int64) int {
	if divisor <= 0 || total.IsNegative() {
		return 0
	}
	return int(total.Div(decimal.NewFromInt(divisor)).IntPart())
}
