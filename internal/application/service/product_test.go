package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmaplus/pos-api/internal/application/service"
	"github.com/pharmaplus/pos-api/internal/infrastructure/repository/memory"
	"github.com/pharmaplus/pos-api/pkg/apperror"
)

func productInput(code string) service.CreateProductInput {
	return service.CreateProductInput{
		ItemCode:     code,
		Name:         "Paracetamol 500mg",
		UnitPrice:    decimal.RequireFromString("5.99"),
		Unit:         "tablet",
		Category:     "Analgesic",
		CurrentStock: 100,
		ReorderPoint: 20,
	}
}

func TestCreateProduct(t *testing.T) {
	svc := service.NewProductService(memory.NewProductRepository())

	created, err := svc.Create(context.Background(), productInput("MED001"))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.True(t, created.Active)

	fetched, err := svc.GetByItemCode(context.Background(), "MED001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestCreateProductDuplicateItemCode(t *testing.T) {
	svc := service.NewProductService(memory.NewProductRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, productInput("MED001"))
	require.NoError(t, err)

	_, err = svc.Create(ctx, productInput("MED001"))
	assert.True(t, apperror.IsConflict(err))
}

func TestCreateProductValidation(t *testing.T) {
	svc := service.NewProductService(memory.NewProductRepository())
	ctx := context.Background()

	input := productInput("  ")
	_, err := svc.Create(ctx, input)
	assert.True(t, apperror.IsValidation(err))

	input = productInput("MED001")
	input.UnitPrice = decimal.RequireFromString("-1")
	_, err = svc.Create(ctx, input)
	assert.True(t, apperror.IsValidation(err))
}

func TestUpdateProductPartial(t *testing.T) {
	svc := service.NewProductService(memory.NewProductRepository())
	ctx := context.Background()

	created, err := svc.Create(ctx, productInput("MED001"))
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("6.49")
	updated, err := svc.Update(ctx, created.ID, service.UpdateProductInput{UnitPrice: &newPrice})
	require.NoError(t, err)

	assert.True(t, updated.UnitPrice.Equal(newPrice))
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.CurrentStock, updated.CurrentStock)
}

func TestLowStockBoundaryInclusive(t *testing.T) {
	svc := service.NewProductService(memory.NewProductRepository())
	ctx := context.Background()

	atPoint := productInput("MED001")
	atPoint.CurrentStock = 20
	atPoint.ReorderPoint = 20
	_, err := svc.Create(ctx, atPoint)
	require.NoError(t, err)

	above := productInput("MED002")
	above.CurrentStock = 21
	above.ReorderPoint = 20
	_, err = svc.Create(ctx, above)
	require.NoError(t, err)

	low, err := svc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 1)
	assert.Equal(t, "MED001", low[0].ItemCode)
}

func TestGetProductUnknown(t *testing.T) {
	svc := service.NewProductService(memory.NewProductRepository())

	_, err := svc.Get(context.Background(), uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}
