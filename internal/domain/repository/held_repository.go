package repository

import (
	"context"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
)

// HeldTransactionRepository is the hold/recall registry's store. Put, Take and
// Delete must be serialized relative to each other by the implementation so
// that two concurrent Takes of the same id cannot both succeed: exactly one
// receives the record, the other gets (nil, nil).
type HeldTransactionRepository interface {
	// Put stores a held transaction. The id must be unique in the registry.
	Put(ctx context.Context, held *entity.HeldTransaction) error
	// Take atomically removes and returns the held transaction, or (nil, nil)
	// if the id is absent.
	Take(ctx context.Context, id string) (*entity.HeldTransaction, error)
	// Delete removes without returning; absent ids are not an error.
	Delete(ctx context.Context, id string) error
	// List returns held transactions ordered by held timestamp ascending.
	List(ctx context.Context) ([]entity.HeldTransaction, error)
}
