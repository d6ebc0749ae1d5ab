package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/pkg/apperror"
)

// saleRepository is an in-memory sale ledger. Appends are serialized by the
// mutex; reads hand out copies so aggregation never observes a half-written
// record.
type saleRepository struct {
	mu        sync.RWMutex
	byID      map[uuid.UUID]entity.SaleTransaction
	byReceipt map[string]uuid.UUID
}

func NewSaleRepository() repository.SaleRepository {
	return &saleRepository{
		byID:      make(map[uuid.UUID]entity.SaleTransaction),
		byReceipt: make(map[string]uuid.UUID),
	}
}

func (r *saleRepository) Create(_ context.Context, sale *entity.SaleTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byReceipt[sale.ReceiptNo]; exists {
		return apperror.NewConflictError("receipt " + sale.ReceiptNo + " already exists")
	}
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	for i := range sale.Lines {
		if sale.Lines[i].ID == uuid.Nil {
			sale.Lines[i].ID = uuid.New()
		}
		sale.Lines[i].SaleID = sale.ID
	}
	sale.CreatedAt = time.Now()
	r.byID[sale.ID] = copySale(*sale)
	r.byReceipt[sale.ReceiptNo] = sale.ID
	return nil
}

func (r *saleRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.SaleTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sale, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	sale = copySale(sale)
	return &sale, nil
}

func (r *saleRepository) GetByReceiptNo(_ context.Context, receiptNo string) (*entity.SaleTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byReceipt[receiptNo]
	if !ok {
		return nil, nil
	}
	sale := copySale(r.byID[id])
	return &sale, nil
}

func (r *saleRepository) List(_ context.Context, params *repository.SaleFilterParams) ([]entity.SaleTransaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]entity.SaleTransaction, 0, len(r.byID))
	for _, sale := range r.byID {
		if params != nil && !saleMatches(sale, params) {
			continue
		}
		matched = append(matched, copySale(sale))
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].TransactionAt.After(matched[j].TransactionAt)
	})

	total := int64(len(matched))
	if params != nil && params.Pagination != nil {
		start := params.Pagination.Offset()
		if start > len(matched) {
			start = len(matched)
		}
		end := start + params.Pagination.PerPage
		if end > len(matched) {
			end = len(matched)
		}
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (r *saleRepository) ListByDay(_ context.Context, dayStart, dayEnd time.Time) ([]entity.SaleTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.SaleTransaction, 0)
	for _, sale := range r.byID {
		if sale.TransactionAt.Before(dayStart) || !sale.TransactionAt.Before(dayEnd) {
			continue
		}
		out = append(out, copySale(sale))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].TransactionAt.Before(out[j].TransactionAt)
	})
	return out, nil
}

func saleMatches(sale entity.SaleTransaction, params *repository.SaleFilterParams) bool {
	if params.Status != nil && sale.Status != *params.Status {
		return false
	}
	if params.PaymentMethod != nil && sale.PaymentMethod != *params.PaymentMethod {
		return false
	}
	if params.CashierID != nil && sale.CashierID != *params.CashierID {
		return false
	}
	if params.StartDate != nil && sale.TransactionAt.Before(*params.StartDate) {
		return false
	}
	if params.EndDate != nil && sale.TransactionAt.After(*params.EndDate) {
		return false
	}
	if params.Search != "" && !strings.Contains(strings.ToLower(sale.ReceiptNo), strings.ToLower(params.Search)) {
		return false
	}
	return true
}

func copySale(sale entity.SaleTransaction) entity.SaleTransaction {
	lines := make([]entity.SaleLine, len(sale.Lines))
	copy(lines, sale.Lines)
	sale.Lines = lines
	return sale
}
