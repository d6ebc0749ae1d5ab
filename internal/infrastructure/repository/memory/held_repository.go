package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/pkg/apperror"
)

// heldRepository keeps held transactions in process memory. Holds are
// short-lived working state, not durable records, so they live here rather
// than in the database; a restart simply clears the parking lot.
type heldRepository struct {
	mu   sync.Mutex
	held map[string]entity.HeldTransaction
}

func NewHeldRepository() repository.HeldTransactionRepository {
	return &heldRepository{held: make(map[string]entity.HeldTransaction)}
}

func (r *heldRepository) Put(_ context.Context, held *entity.HeldTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.held[held.ID]; exists {
		return apperror.NewConflictError("held transaction " + held.ID + " already exists")
	}
	r.held[held.ID] = held.Clone()
	return nil
}

// Take removes and returns under one lock acquisition, so concurrent claims
// of the same id resolve to exactly one winner.
func (r *heldRepository) Take(_ context.Context, id string) (*entity.HeldTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	held, ok := r.held[id]
	if !ok {
		return nil, nil
	}
	delete(r.held, id)
	return &held, nil
}

func (r *heldRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.held, id)
	return nil
}

func (r *heldRepository) List(_ context.Context) ([]entity.HeldTransaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.HeldTransaction, 0, len(r.held))
	for _, held := range r.held {
		out = append(out, held.Clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].HeldAt.Equal(out[j].HeldAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].HeldAt.Before(out[j].HeldAt)
	})
	return out, nil
}
