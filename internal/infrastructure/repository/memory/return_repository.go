package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/repository"
	"github.com/pharmaplus/pos-api/pkg/apperror"
)

// returnRepository is an in-memory return ledger mirroring the sale ledger's
// copy-on-read discipline.
type returnRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]entity.ReturnTransaction
}

func NewReturnRepository() repository.ReturnRepository {
	return &returnRepository{byID: make(map[uuid.UUID]entity.ReturnTransaction)}
}

func (r *returnRepository) Create(_ context.Context, ret *entity.ReturnTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.ReturnNo == ret.ReturnNo {
			return apperror.NewConflictError("return " + ret.ReturnNo + " already exists")
		}
	}
	if ret.ID == uuid.Nil {
		ret.ID = uuid.New()
	}
	for i := range ret.Lines {
		if ret.Lines[i].ID == uuid.Nil {
			ret.Lines[i].ID = uuid.New()
		}
		ret.Lines[i].ReturnID = ret.ID
	}
	ret.CreatedAt = time.Now()
	r.byID[ret.ID] = copyReturn(*ret)
	return nil
}

func (r *returnRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.ReturnTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ret, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	ret = copyReturn(ret)
	return &ret, nil
}

func (r *returnRepository) List(_ context.Context, params *repository.ReturnFilterParams) ([]entity.ReturnTransaction, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]entity.ReturnTransaction, 0, len(r.byID))
	for _, ret := range r.byID {
		if params != nil {
			if params.ReceiptNo != "" && ret.ReceiptNo != params.ReceiptNo {
				continue
			}
			if params.StartDate != nil && ret.ReturnedAt.Before(*params.StartDate) {
				continue
			}
			if params.EndDate != nil && ret.ReturnedAt.After(*params.EndDate) {
				continue
			}
		}
		matched = append(matched, copyReturn(ret))
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ReturnedAt.After(matched[j].ReturnedAt)
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

func (r *returnRepository) ListByRange(_ context.Context, start, end time.Time) ([]entity.ReturnTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.ReturnTransaction, 0)
	for _, ret := range r.byID {
		if ret.ReturnedAt.Before(start) || !ret.ReturnedAt.Before(end) {
			continue
		}
		out = append(out, copyReturn(ret))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ReturnedAt.Before(out[j].ReturnedAt)
	})
	return out, nil
}

func copyReturn(ret entity.ReturnTransaction) entity.ReturnTransaction {
	lines := make([]entity.ReturnLine, len(ret.Lines))
	copy(lines, ret.Lines)
	ret.Lines = lines
	return ret
}
