package stock

import (
	"context"
	"testing"
	"time"

	"github.com/angelmondragon/pantry-backend/pkg/db"
	"github.com/angelmondragon/pantry-backend/pkg/db/dbtest"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/pantry-backend/pkg/errors"
	"github.com/angelmondragon/pantry-backend/pkg/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (Service, *db.Client) {
	t.Helper()
	client := dbtest.New(t)
	svc, err := NewService(NewRepository(client.DB()), client)
	require.NoError(t, err)
	return svc, client
}

func mustCreateProduct(t *testing.T, client *db.Client, name string) *models.Product {
	t.Helper()
	p := &models.Product{Name: name, Category: "Despensa"}
	require.NoError(t, client.DB().Create(p).Error)
	return p
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

func countStock(t *testing.T, client *db.Client) int64 {
	t.Helper()
	var count int64
	require.NoError(t, client.DB().Model(&models.Stock{}).Count(&count).Error)
	return count
}

func TestCreateThenGet(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	product := mustCreateProduct(t, client, "Arroz")
	expires := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)

	created, err := svc.Create(ctx, CreateStockInput{
		ProductID:       product.ID,
		Quantity:        dec("10.456"),
		Unit:            "kg",
		MinimumQuantity: dec("2"),
		ExpiresAt:       &expires,
		Location:        strPtr("Armário"),
	})
	require.NoError(t, err)
	assert.Equal(t, "10.46", created.Quantity)
	assert.Equal(t, "2.00", created.MinimumQuantity)
	require.NotNil(t, created.Product)
	assert.Equal(t, "Arroz", created.Product.Name)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Quantity, got.Quantity)
	assert.Equal(t, created.Unit, got.Unit)
	require.NotNil(t, got.ExpiresAt)
	assert.True(t, expires.Equal(*got.ExpiresAt))
	assert.Equal(t, "Armário", *got.Location)
}

func TestCreateDefaultsQuantitiesToZero(t *testing.T) {
	svc, client := newTestService(t)
	product := mustCreateProduct(t, client, "Sal")

	created, err := svc.Create(context.Background(), CreateStockInput{ProductID: product.ID, Unit: "g"})
	require.NoError(t, err)
	assert.Equal(t, "0.00", created.Quantity)
	assert.Equal(t, "0.00", created.MinimumQuantity)
	assert.Nil(t, created.ExpiresAt)
	assert.Nil(t, created.Location)
}

func TestBelowMinimumFlag(t *testing.T) {
	svc, client := newTestService(t)
	product := mustCreateProduct(t, client, "Café")
	ctx := context.Background()

	low, err := svc.Create(ctx, CreateStockInput{ProductID: product.ID, Quantity: dec("0.5"), MinimumQuantity: dec("1"), Unit: "kg"})
	require.NoError(t, err)
	assert.True(t, low.BelowMinimum)

	ok, err := svc.Create(ctx, CreateStockInput{ProductID: product.ID, Quantity: dec("1"), MinimumQuantity: dec("1"), Unit: "kg"})
	require.NoError(t, err)
	assert.False(t, ok.BelowMinimum)
}

func TestCreateForMissingProduct(t *testing.T) {
	svc, client := newTestService(t)

	_, err := svc.Create(context.Background(), CreateStockInput{ProductID: 999, Quantity: dec("10"), Unit: "kg"})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	assert.Equal(t, "Produto não encontrado", pkgerrors.As(err).Message())
	assert.Zero(t, countStock(t, client))
}

func TestCreateValidation(t *testing.T) {
	svc, client := newTestService(t)
	product := mustCreateProduct(t, client, "Óleo")

	_, err := svc.Create(context.Background(), CreateStockInput{
		ProductID:       product.ID,
		Quantity:        dec("-1"),
		Unit:            "",
		MinimumQuantity: dec("100000000"),
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	details := typed.Details().(map[string]string)
	assert.Contains(t, details, "quantidade_atual")
	assert.Contains(t, details, "quantidade_minima")
	assert.Contains(t, details, "unidade_medida")
	assert.Zero(t, countStock(t, client))
}

func TestListFiltersByProduct(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	a := mustCreateProduct(t, client, "A")
	b := mustCreateProduct(t, client, "B")

	for _, pid := range []uint{a.ID, b.ID, a.ID} {
		_, err := svc.Create(ctx, CreateStockInput{ProductID: pid, Unit: "un"})
		require.NoError(t, err)
	}

	all, err := svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	onlyA, err := svc.List(ctx, ListFilter{ProductID: &a.ID})
	require.NoError(t, err)
	require.Len(t, onlyA, 2)
	for _, row := range onlyA {
		assert.Equal(t, a.ID, row.ProductID)
	}
}

func TestUpdatePartialAndClear(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	product := mustCreateProduct(t, client, "Feijão")
	expires := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)

	created, err := svc.Create(ctx, CreateStockInput{
		ProductID: product.ID,
		Quantity:  dec("5"),
		Unit:      "kg",
		ExpiresAt: &expires,
		Location:  strPtr("Despensa"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateStockInput{Quantity: dec("3.5")})
	require.NoError(t, err)
	assert.Equal(t, "3.50", updated.Quantity)
	assert.Equal(t, "kg", updated.Unit)
	assert.Equal(t, "Despensa", *updated.Location)
	require.NotNil(t, updated.ExpiresAt)

	cleared, err := svc.Update(ctx, created.ID, UpdateStockInput{
		ExpiresAt: types.Null[time.Time](),
		Location:  types.Null[string](),
	})
	require.NoError(t, err)
	assert.Nil(t, cleared.ExpiresAt)
	assert.Nil(t, cleared.Location)
	assert.Equal(t, "3.50", cleared.Quantity)
}

func TestUpdateMissingAndBadProduct(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	product := mustCreateProduct(t, client, "Milho")

	_, err := svc.Update(ctx, 12345, UpdateStockInput{Unit: strPtr("g")})
	require.Error(t, err)
	assert.Equal(t, MsgNotFound, pkgerrors.As(err).Message())

	created, err := svc.Create(ctx, CreateStockInput{ProductID: product.ID, Unit: "kg"})
	require.NoError(t, err)

	missing := uint(777)
	_, err = svc.Update(ctx, created.ID, UpdateStockInput{ProductID: &missing, Unit: strPtr("g")})
	require.Error(t, err)
	assert.Equal(t, "Produto não encontrado", pkgerrors.As(err).Message())

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "kg", got.Unit)
	assert.Equal(t, product.ID, got.ProductID)
}

func TestDelete(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	product := mustCreateProduct(t, client, "Aveia")

	created, err := svc.Create(ctx, CreateStockInput{ProductID: product.ID, Unit: "g"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	err = svc.Delete(ctx, created.ID)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	assert.Equal(t, MsgNotFound, pkgerrors.As(err).Message())

	// the product itself survives
	var count int64
	require.NoError(t, client.DB().Model(&models.Product{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
