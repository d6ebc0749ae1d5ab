package entity

import "github.com/shopspring/decimal"

// ReceiptHeader holds the store header shown at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// Receipt is a value object composed from a finalized sale at read time.
// It is not a database entity.
type Receipt struct {
	Header           ReceiptHeader   `json:"header"`
	ReceiptNo        string          `json:"receipt_no"`
	Date             string          `json:"date"`
	Cashier          string          `json:"cashier,omitempty"`
	Customer         string          `json:"customer,omitempty"`
	PaymentMethod    string          `json:"payment_method,omitempty"`
	Items            []ReceiptItem   `json:"items"`
	SubTotal         decimal.Decimal `json:"sub_total"`
	DiscountLabel    string          `json:"discount_label,omitempty"`
	DiscountAmount   decimal.Decimal `json:"discount_amount"`
	VAT              decimal.Decimal `json:"vat"`
	Total            decimal.Decimal `json:"total"`
	StarPointsEarned int             `json:"star_points_earned"`
}

// ReceiptFromSale builds the printable receipt view of a finalized sale.
func ReceiptFromSale(sale *SaleTransaction, header ReceiptHeader, cashier string) Receipt {
	items := make([]ReceiptItem, 0, len(sale.Lines))
	for _, l := range sale.Lines {
		items = append(items, ReceiptItem{
			Name:      l.ProductName,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     l.LineTotal,
		})
	}

	customer := ""
	if sale.CustomerName != nil {
		customer = *sale.CustomerName
	}

	discountLabel := ""
	if sale.DiscountType.String() != "None" {
		discountLabel = sale.DiscountType.String() + " (" + sale.DiscountPercent.StringFixed(0) + "%)"
	}

	return Receipt{
		Header:           header,
		ReceiptNo:        sale.ReceiptNo,
		Date:             sale.TransactionAt.Format("2006-01-02 15:04:05"),
		Cashier:          cashier,
		Customer:         customer,
		PaymentMethod:    sale.PaymentMethod.String(),
		Items:            items,
		SubTotal:         sale.SubTotal,
		DiscountLabel:    discountLabel,
		DiscountAmount:   sale.DiscountAmount,
		VAT:              sale.VAT,
		Total:            sale.Total,
		StarPointsEarned: sale.StarPointsEarned,
	}
}
