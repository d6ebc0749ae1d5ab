package service

import (
	"context"
	"time"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/pkg/apperror"
	"github.com/pharmaplus/pos-api/pkg/txid"
)

// HoldService parks in-flight transactions so the terminal can serve the
// next customer. Recall is destructive: a held transaction can be claimed
// exactly once even when two terminals race for it.
type HoldService struct {
	registry repository.HeldTransactionRepository
	ids      *txid.Generator
}

func NewHoldService(registry repository.HeldTransactionRepository, ids *txid.Generator) *HoldService {
	return &HoldService{registry: registry, ids: ids}
}

func (s *HoldService) Hold(ctx context.Context, snap entity.TransactionSnapshot, note string) (*entity.HeldTransaction, error) {
	if len(snap.Lines) == 0 {
		return nil, apperror.NewValidationError("cannot hold a transaction with no line items")
	}
	now := time.Now()
	held := &entity.HeldTransaction{
		ID:       s.ids.NextHeldID(now),
		Snapshot: snap.Clone(),
		Note:     note,
		HeldAt:   now,
	}
	if err := s.registry.Put(ctx, held); err != nil {
		return nil, err
	}
	return held, nil
}

// Recall removes the held transaction from the registry and returns it.
// Whoever gets here second receives a not-found error.
func (s *HoldService) Recall(ctx context.Context, id string) (*entity.HeldTransaction, error) {
	held, err := s.registry.Take(ctx, id)
	if err != nil {
		return nil, err
	}
	if held == nil {
		return nil, apperror.NewNotFoundError("Held transaction")
	}
	return held, nil
}

func (s *HoldService) Delete(ctx context.Context, id string) error {
	return s.registry.Delete(ctx, id)
}

// List returns held transactions oldest first.
func (s *HoldService) List(ctx context.Context) ([]entity.HeldTransaction, error) {
	return s.registry.List(ctx)
}
