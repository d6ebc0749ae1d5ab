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

// productRepository is an in-memory catalog used by the test suite and by
// local development without a database.
type productRepository struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]entity.Product
	byCode map[string]uuid.UUID
}

func NewProductRepository() repository.ProductRepository {
	return &productRepository{
		byID:   make(map[uuid.UUID]entity.Product),
		byCode: make(map[string]uuid.UUID),
	}
}

func (r *productRepository) Create(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byCode[product.ItemCode]; exists {
		return apperror.NewConflictError("item code " + product.ItemCode + " already exists")
	}
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.byID[product.ID] = *product
	r.byCode[product.ItemCode] = product.ID
	return nil
}

func (r *productRepository) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (r *productRepository) GetByItemCode(_ context.Context, itemCode string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byCode[itemCode]
	if !ok {
		return nil, nil
	}
	product := r.byID[id]
	return &product, nil
}

func (r *productRepository) Update(_ context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[product.ID]; !ok {
		return apperror.NewNotFoundError("Product")
	}
	product.UpdatedAt = time.Now()
	r.byID[product.ID] = *product
	return nil
}

func (r *productRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.byID[id]
	if !ok {
		return apperror.NewNotFoundError("Product")
	}
	delete(r.byID, id)
	delete(r.byCode, product.ItemCode)
	return nil
}

func (r *productRepository) List(_ context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]entity.Product, 0, len(r.byID))
	for _, product := range r.byID {
		if params != nil && !productMatches(product, params) {
			continue
		}
		matched = append(matched, product)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].ItemCode < matched[j].ItemCode
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

func (r *productRepository) ListAll(_ context.Context) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Product, 0, len(r.byID))
	for _, product := range r.byID {
		out = append(out, product)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ItemCode < out[j].ItemCode
	})
	return out, nil
}

func productMatches(product entity.Product, params *repository.ProductFilterParams) bool {
	if params.Category != "" && product.Category != params.Category {
		return false
	}
	if params.LowStock && !product.IsLowStock() {
		return false
	}
	if params.Search != "" {
		needle := strings.ToLower(params.Search)
		if !strings.Contains(strings.ToLower(product.Name), needle) &&
			!strings.Contains(strings.ToLower(product.ItemCode), needle) &&
			!strings.Contains(strings.ToLower(product.Brand), needle) {
			return false
		}
	}
	return true
}
