package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmaplus/pos-api/internal/application/service"
	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/enum"
	"github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/internal/infrastructure/repository/memory"
)

var reportDay = time.Date(2026, time.March, 14, 0, 0, 0, 0, time.Local)

type reportFixture struct {
	reports       *service.ReportService
	sales         repository.SaleRepository
	returns       repository.ReturnRepository
	products      repository.ProductRepository
	prescriptions repository.PrescriptionRepository
}

func newReportFixture() *reportFixture {
	sales := memory.NewSaleRepository()
	returns := memory.NewReturnRepository()
	products := memory.NewProductRepository()
	prescriptions := memory.NewPrescriptionRepository()
	return &reportFixture{
		reports:       service.NewReportService(sales, returns, products, prescriptions),
		sales:         sales,
		returns:       returns,
		products:      products,
		prescriptions: prescriptions,
	}
}

func saleLine(code, name, category, price string, qty int) entity.SaleLine {
	unit := decimal.RequireFromString(price)
	return entity.SaleLine{
		ItemCode:    code,
		ProductName: name,
		Category:    category,
		UnitPrice:   unit,
		Quantity:    qty,
		LineTotal:   unit.Mul(decimal.NewFromInt(int64(qty))),
	}
}

func (f *reportFixture) addSale(t *testing.T, receiptNo string, at time.Time, status enum.TransactionStatus, method enum.PaymentMethod, lines ...entity.SaleLine) {
	t.Helper()
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.LineTotal)
	}
	sale := &entity.SaleTransaction{
		ReceiptNo:     receiptNo,
		BranchCode:    "B001",
		CashierID:     uuid.New(),
		SubTotal:      total,
		Total:         total,
		PaymentMethod: method,
		Status:        status,
		TransactionAt: at,
		Lines:         lines,
	}
	require.NoError(t, f.sales.Create(context.Background(), sale))
}

func (f *reportFixture) addReturn(t *testing.T, returnNo, receiptNo, reason, amount string, at time.Time, lines ...entity.ReturnLine) {
	t.Helper()
	ret := &entity.ReturnTransaction{
		ReturnNo:    returnNo,
		ReceiptNo:   receiptNo,
		Reason:      reason,
		TotalAmount: decimal.RequireFromString(amount),
		ProcessedBy: uuid.New(),
		ReturnedAt:  at,
		Lines:       lines,
	}
	require.NoError(t, f.returns.Create(context.Background(), ret))
}

func TestDailySalesTotalsAndNetting(t *testing.T) {
	f := newReportFixture()
	at := reportDay.Add(10 * time.Hour)

	f.addSale(t, "B001-260314-00001", at, enum.TransactionCompleted, enum.PaymentCash,
		saleLine("MED001", "Paracetamol 500mg", "Analgesic", "5.99", 2))
	f.addSale(t, "B001-260314-00002", at.Add(time.Hour), enum.TransactionCompleted, enum.PaymentCard,
		saleLine("MED002", "Amoxicillin 250mg", "Antibiotic", "12.99", 1))
	f.addReturn(t, "RET1", "B001-260314-00001", "damaged packaging", "5.99", at.Add(2*time.Hour))

	report, err := f.reports.DailySales(context.Background(), reportDay)
	require.NoError(t, err)

	assert.Equal(t, "2026-03-14", report.Date)
	assert.Equal(t, 2, report.TotalTransactions)
	assert.True(t, report.TotalSales.Equal(decimal.RequireFromString("24.97")), "sales %s", report.TotalSales)
	assert.True(t, report.TotalReturns.Equal(decimal.RequireFromString("5.99")))
	assert.True(t, report.NetSales.Equal(decimal.RequireFromString("18.98")), "net %s", report.NetSales)
	assert.True(t, report.SalesByCategory["Analgesic"].Equal(decimal.RequireFromString("11.98")))
	assert.True(t, report.SalesByPaymentMethod["CASH"].Equal(decimal.RequireFromString("11.98")))
	assert.True(t, report.SalesByPaymentMethod["CARD"].Equal(decimal.RequireFromString("12.99")))
}

func TestDailySalesExcludesVoidedAndOtherDays(t *testing.T) {
	f := newReportFixture()

	f.addSale(t, "B001-260314-00001", reportDay.Add(9*time.Hour), enum.TransactionCompleted, enum.PaymentCash,
		saleLine("MED001", "Paracetamol 500mg", "Analgesic", "5.99", 1))
	f.addSale(t, "B001-260314-00002", reportDay.Add(11*time.Hour), enum.TransactionVoided, enum.PaymentCash,
		saleLine("MED002", "Amoxicillin 250mg", "Antibiotic", "12.99", 4))
	f.addSale(t, "B001-260315-00001", reportDay.AddDate(0, 0, 1), enum.TransactionCompleted, enum.PaymentCash,
		saleLine("MED003", "Cetirizine 10mg", "Antihistamine", "8.50", 1))

	report, err := f.reports.DailySales(context.Background(), reportDay)
	require.NoError(t, err)

	assert.Equal(t, 1, report.TotalTransactions)
	assert.True(t, report.TotalSales.Equal(decimal.RequireFromString("5.99")))
	require.Len(t, report.TopSellingItems, 1)
	assert.Equal(t, "MED001", report.TopSellingItems[0].ItemCode)
}

func TestDailySalesTopSellersRanking(t *testing.T) {
	f := newReportFixture()
	at := reportDay.Add(10 * time.Hour)

	// Six items: ranking is amount desc, quantity desc, then item code, and
	// only the top five survive.
	f.addSale(t, "B001-260314-00001", at, enum.TransactionCompleted, enum.PaymentCash,
		saleLine("MED006", "Ibuprofen 200mg", "Analgesic", "50.00", 2),
		saleLine("MED002", "Amoxicillin 250mg", "Antibiotic", "20.00", 2),
		saleLine("MED001", "Paracetamol 500mg", "Analgesic", "10.00", 4),
		saleLine("MED005", "Ascorbic Acid", "Vitamin", "40.00", 1),
		saleLine("MED004", "Omeprazole 20mg", "Antacid", "8.00", 5),
		saleLine("MED003", "Cetirizine 10mg", "Antihistamine", "1.00", 1))

	report, err := f.reports.DailySales(context.Background(), reportDay)
	require.NoError(t, err)

	require.Len(t, report.TopSellingItems, 5)
	codes := make([]string, 0, 5)
	for _, item := range report.TopSellingItems {
		codes = append(codes, item.ItemCode)
	}
	// MED006 100.00, MED001 and MED002 tie at 40.00 with MED001 winning on
	// quantity, MED005 40.00 qty 1, MED004 40.00 qty 5 beats both on quantity.
	assert.Equal(t, []string{"MED006", "MED004", "MED001", "MED002", "MED005"}, codes)
}

func TestDailySalesEmptyDay(t *testing.T) {
	f := newReportFixture()

	report, err := f.reports.DailySales(context.Background(), reportDay)
	require.NoError(t, err)

	assert.Equal(t, 0, report.TotalTransactions)
	assert.True(t, report.TotalSales.IsZero())
	assert.True(t, report.NetSales.IsZero())
	assert.Empty(t, report.TopSellingItems)
	assert.Empty(t, report.SalesByCategory)
}

func TestDailySalesIdempotent(t *testing.T) {
	f := newReportFixture()
	f.addSale(t, "B001-260314-00001", reportDay.Add(10*time.Hour), enum.TransactionCompleted, enum.PaymentCash,
		saleLine("MED001", "Paracetamol 500mg", "Analgesic", "5.99", 2))

	first, err := f.reports.DailySales(context.Background(), reportDay)
	require.NoError(t, err)
	second, err := f.reports.DailySales(context.Background(), reportDay)
	require.NoError(t, err)

	assert.Equal(t, first.TotalTransactions, second.TotalTransactions)
	assert.True(t, first.TotalSales.Equal(second.TotalSales))
	assert.Equal(t, first.TopSellingItems, second.TopSellingItems)
}

func TestInventoryReport(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	low := product("MED001", "Paracetamol 500mg", "10.00")
	low.CurrentStock = 5
	low.ReorderPoint = 5
	require.NoError(t, f.products.Create(ctx, low))

	stocked := product("MED002", "Amoxicillin 250mg", "20.00")
	stocked.CurrentStock = 40
	stocked.ReorderPoint = 10
	require.NoError(t, f.products.Create(ctx, stocked))

	inactive := product("MED999", "Old Syrup", "3.00")
	inactive.Active = false
	require.NoError(t, f.products.Create(ctx, inactive))

	report, err := f.reports.Inventory(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalItems)
	assert.Equal(t, 1, report.LowStockCount)
	assert.True(t, report.TotalValue.Equal(decimal.RequireFromString("850.00")), "value %s", report.TotalValue)
	require.Len(t, report.Items, 2)
	assert.Equal(t, "MED001", report.Items[0].ItemCode)
	assert.True(t, report.Items[0].LowStock)
	assert.False(t, report.Items[1].LowStock)
}

func TestPrescriptionReport(t *testing.T) {
	f := newReportFixture()
	ctx := context.Background()

	require.NoError(t, f.prescriptions.Create(ctx, &entity.Prescription{
		PatientName: "Maria Santos",
		PatientAge:  67,
		DoctorName:  "Dr. Cruz",
		IssuedAt:    reportDay.Add(9 * time.Hour),
		Status:      enum.PrescriptionFilled,
		Medicines: []entity.PrescriptionMedicine{
			{MedicineName: "Amoxicillin", Quantity: 21},
			{MedicineName: "Paracetamol", Quantity: 10},
		},
	}))
	require.NoError(t, f.prescriptions.Create(ctx, &entity.Prescription{
		PatientName: "Jose Reyes",
		PatientAge:  42,
		DoctorName:  "Dr. Cruz",
		IssuedAt:    reportDay.Add(14 * time.Hour),
		Status:      enum.PrescriptionPending,
		Medicines: []entity.PrescriptionMedicine{
			{MedicineName: "Amoxicillin", Quantity: 14},
		},
	}))
	require.NoError(t, f.prescriptions.Create(ctx, &entity.Prescription{
		PatientName: "Out Of Range",
		PatientAge:  30,
		DoctorName:  "Dr. Lim",
		IssuedAt:    reportDay.AddDate(0, 0, 5),
		Status:      enum.PrescriptionPending,
		Medicines: []entity.PrescriptionMedicine{
			{MedicineName: "Cetirizine", Quantity: 7},
		},
	}))

	report, err := f.reports.Prescriptions(ctx, reportDay, reportDay)
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalPrescriptions)
	assert.Equal(t, 1, report.ByStatus["FILLED"])
	assert.Equal(t, 1, report.ByStatus["PENDING"])
	assert.Equal(t, 2, report.ByDoctor["Dr. Cruz"])
	assert.Equal(t, 2, report.ByMedicine["Amoxicillin"])
	assert.InDelta(t, 1.5, report.AverageMedicineLines, 0.0001)
}

func TestReturnReport(t *testing.T) {
	f := newReportFixture()
	at := reportDay.Add(10 * time.Hour)

	f.addReturn(t, "RET1", "B001-260314-00001", "damaged packaging", "11.98", at,
		entity.ReturnLine{ItemCode: "MED001", ProductName: "Paracetamol 500mg", ReturnQuantity: 2, LineTotal: decimal.RequireFromString("11.98")})
	f.addReturn(t, "RET2", "B001-260314-00002", "wrong item", "12.99", at.Add(time.Hour),
		entity.ReturnLine{ItemCode: "MED002", ProductName: "Amoxicillin 250mg", ReturnQuantity: 1, LineTotal: decimal.RequireFromString("12.99")})
	f.addReturn(t, "RET3", "B001-260314-00003", "damaged packaging", "5.99", at.Add(2*time.Hour),
		entity.ReturnLine{ItemCode: "MED001", ProductName: "Paracetamol 500mg", ReturnQuantity: 1, LineTotal: decimal.RequireFromString("5.99")})

	report, err := f.reports.Returns(context.Background(), reportDay, reportDay)
	require.NoError(t, err)

	assert.Equal(t, 3, report.TotalReturns)
	assert.True(t, report.TotalAmount.Equal(decimal.RequireFromString("30.96")), "amount %s", report.TotalAmount)
	assert.Equal(t, 2, report.ByReason["damaged packaging"])
	assert.Equal(t, 1, report.ByReason["wrong item"])
	require.Len(t, report.ByProduct, 2)
	assert.Equal(t, "MED001", report.ByProduct[0].ItemCode)
	assert.Equal(t, 3, report.ByProduct[0].Quantity)
	assert.True(t, report.ByProduct[0].TotalAmount.Equal(decimal.RequireFromString("17.97")))
}
