package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	catalog *domain.Catalog
}

func (s stubCatalog) LoadCatalog(context.Context, int64) *domain.Catalog {
	return s.catalog
}

func newCartFixture(products ...domain.Product) (*CartUseCase, *fakeCartRepo, *fakeSessionRepo) {
	carts := newFakeCartRepo()
	sessions := newFakeSessionRepo()
	rid := int64(3)
	sessions.sessions[sid] = domain.Session{ID: sid, RestaurantID: &rid}

	catalog := stubCatalog{catalog: &domain.Catalog{RestaurantID: 3, Products: products}}

	return NewCartUC(carts, sessions, catalog, logger.NewNopLogger(), domain.LanguageRu), carts, sessions
}

func TestCart_AddItem(t *testing.T) {
	ctx := context.Background()
	uc, carts, _ := newCartFixture(plov())

	view, err := uc.AddItem(ctx, sid, 7)
	require.NoError(t, err)
	assert.Equal(t, 1, view.Count)

	view, err = uc.AddItem(ctx, sid, 7)
	require.NoError(t, err)

	require.Len(t, view.Lines, 1)
	assert.Equal(t, 2, view.Lines[0].Quantity)
	assert.Equal(t, 2, view.Count)
	assert.True(t, decimal.NewFromInt(70000).Equal(view.ProductTotal))
	assert.True(t, decimal.NewFromInt(4000).Equal(view.ContainerTotal))
	assert.True(t, decimal.NewFromInt(74000).Equal(view.Total))
	assert.Equal(t, 2, carts.saves)
}

func TestCart_AddItem_Rejected(t *testing.T) {
	ctx := context.Background()
	soldOut := plov()
	soldOut.ID = 8
	soldOut.InStock = false

	uc, carts, sessions := newCartFixture(plov(), soldOut)

	_, err := uc.AddItem(ctx, sid, 8)
	assert.ErrorIs(t, err, e.ErrOutOfStock)

	_, err = uc.AddItem(ctx, sid, 404)
	assert.ErrorIs(t, err, e.ErrProductNotFound)

	delete(sessions.sessions, sid)
	_, err = uc.AddItem(ctx, sid, 7)
	assert.ErrorIs(t, err, e.ErrRestaurantNotSelected)

	assert.Equal(t, 0, carts.saves)
}

func TestCart_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	lagman := plov()
	lagman.ID = 9
	uc, _, _ := newCartFixture(plov(), lagman)

	_, err := uc.AddItem(ctx, sid, 7)
	require.NoError(t, err)
	_, err = uc.AddItem(ctx, sid, 9)
	require.NoError(t, err)

	view, err := uc.UpdateQuantity(ctx, sid, 7, 5)
	require.NoError(t, err)
	assert.Equal(t, 6, view.Count)

	view, err = uc.UpdateQuantity(ctx, sid, 7, 0)
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, int64(9), view.Lines[0].ProductID)

	view, err = uc.RemoveItem(ctx, sid, 9)
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.True(t, view.Total.IsZero())
}

func TestCart_Clear(t *testing.T) {
	ctx := context.Background()
	uc, carts, _ := newCartFixture(plov())

	_, err := uc.AddItem(ctx, sid, 7)
	require.NoError(t, err)

	require.NoError(t, uc.Clear(ctx, sid))

	view, err := uc.GetCart(ctx, sid)
	require.NoError(t, err)
	assert.Equal(t, 0, view.Count)
	assert.Empty(t, carts.lines)
}

func TestCart_RequiresSession(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newCartFixture(plov())

	_, err := uc.GetCart(ctx, "")
	assert.ErrorIs(t, err, e.ErrSessionRequired)

	_, err = uc.UpdateQuantity(ctx, "", 7, 1)
	assert.ErrorIs(t, err, e.ErrSessionRequired)

	assert.ErrorIs(t, uc.Clear(ctx, ""), e.ErrSessionRequired)
}
