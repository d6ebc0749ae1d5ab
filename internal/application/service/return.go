package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/enum"
	"github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/pkg/apperror"
	"github.com/pharmaplus/pos-api/pkg/txid"
)

// ReturnService processes merchandise returns against completed sales.
// Returns never rewrite the original sale; they are appended to their own
// ledger and netted against sales at report time.
type ReturnService struct {
	saleRepo   repository.SaleRepository
	returnRepo repository.ReturnRepository
	ids        *txid.Generator
}

func NewReturnService(saleRepo repository.SaleRepository, returnRepo repository.ReturnRepository, ids *txid.Generator) *ReturnService {
	return &ReturnService{saleRepo: saleRepo, returnRepo: returnRepo, ids: ids}
}

// LookupReceipt fetches the completed sale behind a receipt number so the
// cashier can pick lines to return. Voided receipts are not returnable and
// look the same as missing ones.
func (s *ReturnService) LookupReceipt(ctx context.Context, receiptNo string) (*entity.SaleTransaction, error) {
	receiptNo = strings.TrimSpace(receiptNo)
	if receiptNo == "" {
		return nil, apperror.NewValidationError("receipt number is required")
	}
	sale, err := s.saleRepo.GetByReceiptNo(ctx, receiptNo)
	if err != nil {
		return nil, err
	}
	if sale == nil || sale.Status != enum.TransactionCompleted {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return sale, nil
}

// ReturnLineInput is one requested return quantity against a sale line.
type ReturnLineInput struct {
	SaleLineID     uuid.UUID
	ReturnQuantity int
}

// ProcessReturnInput carries a full return request.
type ProcessReturnInput struct {
	ReceiptNo   string
	Lines       []ReturnLineInput
	Reason      string
	ProcessedBy uuid.UUID
}

// Process validates the request against the original sale and appends a
// return transaction. Quantities above the purchased quantity are rejected
// per line; partial returns of a line are allowed.
func (s *ReturnService) Process(ctx context.Context, input ProcessReturnInput) (*entity.ReturnTransaction, error) {
	sale, err := s.LookupReceipt(ctx, input.ReceiptNo)
	if err != nil {
		return nil, err
	}

	saleLines := make(map[uuid.UUID]entity.SaleLine, len(sale.Lines))
	for _, line := range sale.Lines {
		saleLines[line.ID] = line
	}

	selected := 0
	for _, req := range input.Lines {
		if req.ReturnQuantity < 0 {
			return nil, apperror.NewValidationError("return quantity cannot be negative")
		}
		if req.ReturnQuantity > 0 {
			selected++
		}
	}
	if selected == 0 {
		return nil, apperror.NewValidationError("no items selected for return")
	}

	now := time.Now()
	ret := &entity.ReturnTransaction{
		ReturnNo:    s.ids.NextReturnNo(now),
		ReceiptNo:   sale.ReceiptNo,
		ProcessedBy: input.ProcessedBy,
		ReturnedAt:  now,
	}

	total := decimal.Zero
	seen := make(map[uuid.UUID]bool, len(input.Lines))
	for _, req := range input.Lines {
		if req.ReturnQuantity == 0 {
			continue
		}
		saleLine, ok := saleLines[req.SaleLineID]
		if !ok {
			return nil, apperror.NewValidationError("line is not on this receipt")
		}
		if seen[req.SaleLineID] {
			return nil, apperror.NewValidationError("line listed twice in return request")
		}
		seen[req.SaleLineID] = true
		if req.ReturnQuantity > saleLine.Quantity {
			return nil, apperror.NewValidationError(fmt.Sprintf(
				"cannot return %d of %s, only %d purchased",
				req.ReturnQuantity, saleLine.ItemCode, saleLine.Quantity,
			))
		}
		lineTotal := saleLine.UnitPrice.Mul(decimal.NewFromInt(int64(req.ReturnQuantity)))
		ret.Lines = append(ret.Lines, entity.ReturnLine{
			SaleLineID:     saleLine.ID,
			ItemCode:       saleLine.ItemCode,
			ProductName:    saleLine.ProductName,
			UnitPrice:      saleLine.UnitPrice,
			ReturnQuantity: req.ReturnQuantity,
			LineTotal:      lineTotal,
		})
		total = total.Add(lineTotal)
	}

	reason := strings.TrimSpace(input.Reason)
	if reason == "" {
		return nil, apperror.NewValidationError("return reason is required")
	}
	ret.Reason = reason
	ret.TotalAmount = total

	if err := s.returnRepo.Create(ctx, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *ReturnService) Get(ctx context.Context, id uuid.UUID) (*entity.ReturnTransaction, error) {
	ret, err := s.returnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ret == nil {
		return nil, apperror.NewNotFoundError("Return")
	}
	return ret, nil
}

func (s *ReturnService) List(ctx context.Context, params *repository.ReturnFilterParams) ([]entity.ReturnTransaction, int64, error) {
	return s.returnRepo.List(ctx, params)
}
