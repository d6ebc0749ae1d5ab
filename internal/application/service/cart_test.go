package service_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmaplus/pos-api/internal/application/service"
	"github.com/pharmaplus/pos-api/internal/domain/entity"
	"github.com/pharmaplus/pos-api/internal/domain/enum"
	"github.com/pharmaplus/pos-api/pkg/apperror"
)

func product(code, name, price string) *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		ItemCode:  code,
		Name:      name,
		UnitPrice: decimal.RequireFromString(price),
		Active:    true,
	}
}

func TestCartScanSameItemTwiceKeepsSeparateLines(t *testing.T) {
	cart := service.NewCart()
	paracetamol := product("MED001", "Paracetamol 500mg", "5.99")

	first := cart.AddProduct(paracetamol)
	second := cart.AddProduct(paracetamol)

	assert.NotEqual(t, first.ID, second.ID)

	snap, err := cart.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Lines, 2)
	assert.Equal(t, 1, snap.Lines[0].Quantity)
	assert.Equal(t, 1, snap.Lines[1].Quantity)
	assert.True(t, snap.Totals.SubTotal.Equal(decimal.RequireFromString("11.98")))
}

func TestCartSetQuantity(t *testing.T) {
	cart := service.NewCart()
	line := cart.AddProduct(product("MED001", "Paracetamol 500mg", "5.99"))

	require.NoError(t, cart.SetQuantity(line.ID, 3))

	snap, err := cart.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Lines[0].Quantity)
	assert.True(t, snap.Totals.SubTotal.Equal(decimal.RequireFromString("17.97")))
}

func TestCartSetQuantityBelowOneRemovesLine(t *testing.T) {
	cart := service.NewCart()
	line := cart.AddProduct(product("MED001", "Paracetamol 500mg", "5.99"))

	require.NoError(t, cart.SetQuantity(line.ID, 0))
	assert.True(t, cart.Empty())
}

func TestCartRemoveUnknownLine(t *testing.T) {
	cart := service.NewCart()
	cart.AddProduct(product("MED001", "Paracetamol 500mg", "5.99"))

	err := cart.RemoveLine(uuid.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestCartSnapshotIsDeepCopy(t *testing.T) {
	cart := service.NewCart()
	cart.AddProduct(product("MED001", "Paracetamol 500mg", "5.99"))

	snap, err := cart.Snapshot()
	require.NoError(t, err)

	snap.Lines[0].Quantity = 99

	fresh, err := cart.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, 1, fresh.Lines[0].Quantity)
}

func TestCartClearResetsDiscountAndCustomer(t *testing.T) {
	cart := service.NewCart()
	cart.AddProduct(product("MED001", "Paracetamol 500mg", "5.99"))
	require.NoError(t, cart.SetDiscount(entity.DiscountSelection{Type: enum.DiscountSeniorPWD}))
	name := "Juan Dela Cruz"
	cart.SetCustomer(nil, &name, nil)

	cart.Clear()

	snap, err := cart.Snapshot()
	require.NoError(t, err)
	assert.True(t, cart.Empty())
	assert.Equal(t, enum.DiscountNone, snap.Discount.Type)
	assert.Nil(t, snap.CustomerName)
}

func TestCartRestoreReplacesContents(t *testing.T) {
	cart := service.NewCart()
	cart.AddProduct(product("MED001", "Paracetamol 500mg", "5.99"))

	held := service.NewCart()
	held.AddProduct(product("MED002", "Amoxicillin 250mg", "12.99"))
	require.NoError(t, held.SetDiscount(entity.DiscountSelection{Type: enum.DiscountSeniorPWD}))
	snap, err := held.Snapshot()
	require.NoError(t, err)

	cart.Restore(snap)

	restored, err := cart.Snapshot()
	require.NoError(t, err)
	require.Len(t, restored.Lines, 1)
	assert.Equal(t, "MED002", restored.Lines[0].ItemCode)
	assert.Equal(t, enum.DiscountSeniorPWD, restored.Discount.Type)
}
