package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
)

// IdempotencyRepository stores replayable responses for retried writes.
// Keys are looked up per user; expired keys are reaped by DeleteExpired.
type IdempotencyRepository interface {
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	Create(ctx context.Context, ikey *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
