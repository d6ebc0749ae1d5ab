package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/pkg/apperror"
)

// SaleService reads the finalized-sale ledger for receipt reprints and
// back-office listings. The ledger is append-only; there are no updates here.
type SaleService struct {
	saleRepo repository.SaleRepository
	userRepo repository.UserRepository
	header   entity.ReceiptHeader
}

func NewSaleService(saleRepo repository.SaleRepository, userRepo repository.UserRepository, header entity.ReceiptHeader) *SaleService {
	return &SaleService{saleRepo: saleRepo, userRepo: userRepo, header: header}
}

func (s *SaleService) Get(ctx context.Context, id uuid.UUID) (*entity.SaleTransaction, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

func (s *SaleService) GetByReceiptNo(ctx context.Context, receiptNo string) (*entity.SaleTransaction, error) {
	sale, err := s.saleRepo.GetByReceiptNo(ctx, receiptNo)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return sale, nil
}

func (s *SaleService) List(ctx context.Context, params *repository.SaleFilterParams) ([]entity.SaleTransaction, int64, error) {
	return s.saleRepo.List(ctx, params)
}

// Receipt composes the printable receipt view for a sale.
func (s *SaleService) Receipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	sale, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	cashier := ""
	if user, err := s.userRepo.GetByID(ctx, sale.CashierID); err == nil && user != nil {
		cashier = user.FullName()
	}
	receipt := entity.ReceiptFromSale(sale, s.header, cashier)
	return &receipt, nil
}
