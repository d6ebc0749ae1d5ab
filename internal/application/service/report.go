package service

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pharmaplus/pos-api/internal/domain/enum"
	"github.com/pharmaplus/pos-api/internal/domain/repository"
)

// ReportService aggregates the ledgers into management reports. All reports
// are computed on demand from repository snapshots and never mutate stores,
// so running the same report twice over unchanged data gives the same result.
type ReportService struct {
	saleRepo         repository.SaleRepository
	returnRepo       repository.ReturnRepository
	productRepo      repository.ProductRepository
	prescriptionRepo repository.PrescriptionRepository
}

func NewReportService(
	saleRepo repository.SaleRepository,
	returnRepo repository.ReturnRepository,
	productRepo repository.ProductRepository,
	prescriptionRepo repository.PrescriptionRepository,
) *ReportService {
	return &ReportService{
		saleRepo:         saleRepo,
		returnRepo:       returnRepo,
		productRepo:      productRepo,
		prescriptionRepo: prescriptionRepo,
	}
}

// TopSellingItem is one catalog item ranked by sales amount.
type TopSellingItem struct {
	ItemCode    string          `json:"item_code"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// DailySalesReport summarizes one register day.
type DailySalesReport struct {
	Date                 string                     `json:"date"`
	TotalSales           decimal.Decimal            `json:"total_sales"`
	TotalTransactions    int                        `json:"total_transactions"`
	TotalReturns         decimal.Decimal            `json:"total_returns"`
	NetSales             decimal.Decimal            `json:"net_sales"`
	SalesByCategory      map[string]decimal.Decimal `json:"sales_by_category"`
	SalesByPaymentMethod map[string]decimal.Decimal `json:"sales_by_payment_method"`
	TopSellingItems      []TopSellingItem           `json:"top_selling_items"`
}

// DailySales reports the calendar day containing date, in date's location.
// Only completed sales count; returns processed that day are netted out.
func (s *ReportService) DailySales(ctx context.Context, date time.Time) (*DailySalesReport, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	sales, err := s.saleRepo.ListByDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	returns, err := s.returnRepo.ListByRange(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	report := &DailySalesReport{
		Date:                 dayStart.Format("2006-01-02"),
		TotalSales:           decimal.Zero,
		TotalReturns:         decimal.Zero,
		SalesByCategory:      make(map[string]decimal.Decimal),
		SalesByPaymentMethod: make(map[string]decimal.Decimal),
		TopSellingItems:      []TopSellingItem{},
	}

	type itemAgg struct {
		name     string
		quantity int
		amount   decimal.Decimal
	}
	items := make(map[string]*itemAgg)

	for _, sale := range sales {
		if sale.Status != enum.TransactionCompleted {
			continue
		}
		report.TotalSales = report.TotalSales.Add(sale.Total)
		report.TotalTransactions++

		method := sale.PaymentMethod.String()
		report.SalesByPaymentMethod[method] = mapAdd(report.SalesByPaymentMethod, method, sale.Total)

		for _, line := range sale.Lines {
			report.SalesByCategory[line.Category] = mapAdd(report.SalesByCategory, line.Category, line.LineTotal)

			agg, ok := items[line.ItemCode]
			if !ok {
				agg = &itemAgg{name: line.ProductName, amount: decimal.Zero}
				items[line.ItemCode] = agg
			}
			agg.quantity += line.Quantity
			agg.amount = agg.amount.Add(line.LineTotal)
		}
	}

	for _, ret := range returns {
		report.TotalReturns = report.TotalReturns.Add(ret.TotalAmount)
	}
	report.NetSales = report.TotalSales.Sub(report.TotalReturns)

	ranked := make([]TopSellingItem, 0, len(items))
	for code, agg := range items {
		ranked = append(ranked, TopSellingItem{
			ItemCode:    code,
			ProductName: agg.name,
			Quantity:    agg.quantity,
			TotalAmount: agg.amount,
		})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].TotalAmount.Equal(ranked[j].TotalAmount) {
			return ranked[i].TotalAmount.GreaterThan(ranked[j].TotalAmount)
		}
		if ranked[i].Quantity != ranked[j].Quantity {
			return ranked[i].Quantity > ranked[j].Quantity
		}
		return ranked[i].ItemCode < ranked[j].ItemCode
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	report.TopSellingItems = ranked

	return report, nil
}

// InventoryReportItem is one catalog row with its stock valuation.
type InventoryReportItem struct {
	ItemCode     string          `json:"item_code"`
	ProductName  string          `json:"product_name"`
	Category     string          `json:"category"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CurrentStock int             `json:"current_stock"`
	ReorderPoint int             `json:"reorder_point"`
	StockValue   decimal.Decimal `json:"stock_value"`
	LowStock     bool            `json:"low_stock"`
}

// InventoryReport values the catalog at current prices.
type InventoryReport struct {
	GeneratedAt   time.Time             `json:"generated_at"`
	TotalItems    int                   `json:"total_items"`
	TotalValue    decimal.Decimal       `json:"total_value"`
	LowStockCount int                   `json:"low_stock_count"`
	Items         []InventoryReportItem `json:"items"`
}

func (s *ReportService) Inventory(ctx context.Context) (*InventoryReport, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &InventoryReport{
		GeneratedAt: time.Now(),
		TotalValue:  decimal.Zero,
		Items:       make([]InventoryReportItem, 0, len(products)),
	}
	for _, p := range products {
		if !p.Active {
			continue
		}
		value := p.StockValue()
		low := p.IsLowStock()
		report.Items = append(report.Items, InventoryReportItem{
			ItemCode:     p.ItemCode,
			ProductName:  p.Name,
			Category:     p.Category,
			UnitPrice:    p.UnitPrice,
			CurrentStock: p.CurrentStock,
			ReorderPoint: p.ReorderPoint,
			StockValue:   value,
			LowStock:     low,
		})
		report.TotalItems++
		report.TotalValue = report.TotalValue.Add(value)
		if low {
			report.LowStockCount++
		}
	}
	sort.Slice(report.Items, func(i, j int) bool {
		return report.Items[i].ItemCode < report.Items[j].ItemCode
	})
	return report, nil
}

// PrescriptionReport summarizes prescriptions issued in a date range.
type PrescriptionReport struct {
	StartDate            string         `json:"start_date"`
	EndDate              string         `json:"end_date"`
	TotalPrescriptions   int            `json:"total_prescriptions"`
	ByStatus             map[string]int `json:"by_status"`
	ByDoctor             map[string]int `json:"by_doctor"`
	ByMedicine           map[string]int `json:"by_medicine"`
	AverageMedicineLines float64        `json:"average_medicine_lines"`
}

// Prescriptions aggregates the inclusive date range [start, end].
func (s *ReportService) Prescriptions(ctx context.Context, start, end time.Time) (*PrescriptionReport, error) {
	rangeStart, rangeEnd := dayRange(start, end)
	prescriptions, err := s.prescriptionRepo.ListByRange(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	report := &PrescriptionReport{
		StartDate:  rangeStart.Format("2006-01-02"),
		EndDate:    end.Format("2006-01-02"),
		ByStatus:   make(map[string]int),
		ByDoctor:   make(map[string]int),
		ByMedicine: make(map[string]int),
	}
	totalLines := 0
	for _, p := range prescriptions {
		report.TotalPrescriptions++
		report.ByStatus[p.Status.String()]++
		report.ByDoctor[p.DoctorName]++
		for _, med := range p.Medicines {
			report.ByMedicine[med.MedicineName]++
			totalLines++
		}
	}
	if report.TotalPrescriptions > 0 {
		report.AverageMedicineLines = float64(totalLines) / float64(report.TotalPrescriptions)
	}
	return report, nil
}

// ReturnReportProduct is one item ranked by returned amount.
type ReturnReportProduct struct {
	ItemCode    string          `json:"item_code"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// ReturnReport summarizes returns processed in a date range.
type ReturnReport struct {
	StartDate    string                `json:"start_date"`
	EndDate      string                `json:"end_date"`
	TotalReturns int                   `json:"total_returns"`
	TotalAmount  decimal.Decimal       `json:"total_amount"`
	ByReason     map[string]int        `json:"by_reason"`
	ByProduct    []ReturnReportProduct `json:"by_product"`
}

// Returns aggregates the inclusive date range [start, end].
func (s *ReportService) Returns(ctx context.Context, start, end time.Time) (*ReturnReport, error) {
	rangeStart, rangeEnd := dayRange(start, end)
	returns, err := s.returnRepo.ListByRange(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	report := &ReturnReport{
		StartDate:   rangeStart.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		TotalAmount: decimal.Zero,
		ByReason:    make(map[string]int),
		ByProduct:   []ReturnReportProduct{},
	}

	type productAgg struct {
		name     string
		quantity int
		amount   decimal.Decimal
	}
	products := make(map[string]*productAgg)

	for _, ret := range returns {
		report.TotalReturns++
		report.TotalAmount = report.TotalAmount.Add(ret.TotalAmount)
		report.ByReason[ret.Reason]++
		for _, line := range ret.Lines {
			agg, ok := products[line.ItemCode]
			if !ok {
				agg = &productAgg{name: line.ProductName, amount: decimal.Zero}
				products[line.ItemCode] = agg
			}
			agg.quantity += line.ReturnQuantity
			agg.amount = agg.amount.Add(line.LineTotal)
		}
	}

	for code, agg := range products {
		report.ByProduct = append(report.ByProduct, ReturnReportProduct{
			ItemCode:    code,
			ProductName: agg.name,
			Quantity:    agg.quantity,
			TotalAmount: agg.amount,
		})
	}
	sort.Slice(report.ByProduct, func(i, j int) bool {
		if !report.ByProduct[i].TotalAmount.Equal(report.ByProduct[j].TotalAmount) {
			return report.ByProduct[i].TotalAmount.GreaterThan(report.ByProduct[j].TotalAmount)
		}
		return report.ByProduct[i].ItemCode < report.ByProduct[j].ItemCode
	})
	return report, nil
}

// dayRange converts an inclusive pair of dates into a half-open timestamp
// range covering both whole days.
func dayRange(start, end time.Time) (time.Time, time.Time) {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).AddDate(0, 0, 1)
	return s, e
}

func mapAdd(m map[string]decimal.Decimal, key string, amount decimal.Decimal) decimal.Decimal {
	cur, ok := m[key]
	if !ok {
		cur = decimal.Zero
	}
	return cur.Add(amount)
}
