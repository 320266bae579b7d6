package consumption

import (
	"context"
	"testing"
	"time"

	"github.com/angelmondragon/pantry-backend/pkg/db"
	"github.com/angelmondragon/pantry-backend/pkg/db/dbtest"
	"github.com/angelmondragon/pantry-backend/pkg/db/models"
	pkgerrors "github.com/angelmondragon/pantry-backend/pkg/errors"
	"github.com/angelmondragon/pantry-backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*service, *db.Client) {
	t.Helper()
	client := dbtest.New(t)
	svc, err := NewService(NewRepository(client.DB()), client)
	require.NoError(t, err)
	return svc.(*service), client
}

func mustCreateProduct(t *testing.T, client *db.Client) *models.Product {
	t.Helper()
	p := &models.Product{Name: "Café", Category: "Bebidas"}
	require.NoError(t, client.DB().Create(p).Error)
	return p
}

func intPtr(i int) *int { return &i }

func TestCreateThenGet(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	product := mustCreateProduct(t, client)
	entered := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)

	created, err := svc.Create(ctx, CreateHistoryInput{ProductID: product.ID, EnteredAt: &entered})
	require.NoError(t, err)
	assert.Zero(t, created.UsageFreq)
	assert.Nil(t, created.LastUsed)
	assert.True(t, entered.Equal(created.EnteredAt))
	require.NotNil(t, created.Product)
	assert.Equal(t, product.ID, created.Product.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, created.EnteredAt.Equal(got.EnteredAt))
}

func TestCreateRequiresEntryDateAndProduct(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateHistoryInput{UsageFreq: intPtr(-1)})
	require.Error(t, err)
	details := pkgerrors.As(err).Details().(map[string]string)
	assert.Contains(t, details, "produto_id")
	assert.Contains(t, details, "data_entrada")
	assert.Contains(t, details, "frequencia_uso")

	now := time.Now()
	_, err = svc.Create(ctx, CreateHistoryInput{ProductID: 404, EnteredAt: &now})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	assert.Equal(t, "Produto não encontrado", pkgerrors.As(err).Message())

	var count int64
	require.NoError(t, client.DB().Model(&models.ConsumptionHistory{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRecordUsage(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	product := mustCreateProduct(t, client)
	entered := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	fixed := time.Date(2026, 2, 1, 12, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	created, err := svc.Create(ctx, CreateHistoryInput{ProductID: product.ID, EnteredAt: &entered, UsageFreq: intPtr(2)})
	require.NoError(t, err)

	used, err := svc.RecordUsage(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, used.UsageFreq)
	require.NotNil(t, used.LastUsed)
	assert.True(t, fixed.Equal(*used.LastUsed))

	used, err = svc.RecordUsage(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, used.UsageFreq)

	_, err = svc.RecordUsage(ctx, created.ID+10)
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	assert.Equal(t, MsgNotFound, pkgerrors.As(err).Message())
}

func TestUpdatePartialAndClear(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	product := mustCreateProduct(t, client)
	entered := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	last := time.Date(2026, 1, 12, 9, 0, 0, 0, time.UTC)

	created, err := svc.Create(ctx, CreateHistoryInput{ProductID: product.ID, EnteredAt: &entered, LastUsed: &last})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, UpdateHistoryInput{UsageFreq: intPtr(7)})
	require.NoError(t, err)
	assert.Equal(t, 7, updated.UsageFreq)
	require.NotNil(t, updated.LastUsed)

	cleared, err := svc.Update(ctx, created.ID, UpdateHistoryInput{LastUsed: types.Null[time.Time]()})
	require.NoError(t, err)
	assert.Nil(t, cleared.LastUsed)
	assert.Equal(t, 7, cleared.UsageFreq)

	_, err = svc.Update(ctx, created.ID+1, UpdateHistoryInput{UsageFreq: intPtr(1)})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
}

func TestListAndDelete(t *testing.T) {
	svc, client := newTestService(t)
	ctx := context.Background()
	product := mustCreateProduct(t, client)
	now := time.Now()

	var ids []uint
	for i := 0; i < 3; i++ {
		created, err := svc.Create(ctx, CreateHistoryInput{ProductID: product.ID, EnteredAt: &now})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	list, err := svc.List(ctx, ListFilter{ProductID: &product.ID})
	require.NoError(t, err)
	assert.Len(t, list, 3)

	require.NoError(t, svc.Delete(ctx, ids[0]))
	err = svc.Delete(ctx, ids[0])
	assert.Equal(t, MsgNotFound, pkgerrors.As(err).Message())

	list, err = svc.List(ctx, ListFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
