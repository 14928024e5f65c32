package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogFixture struct {
	uc       *CatalogUseCase
	backend  *fakeBackend
	cache    *fakeCatalogCache
	sessions *fakeSessionRepo
}

func newCatalogFixture() *catalogFixture {
	f := &catalogFixture{
		backend:  newFakeBackend(),
		cache:    newFakeCatalogCache(),
		sessions: newFakeSessionRepo(),
	}

	categories, products := menuFixture()
	f.backend.categories[3] = categories
	f.backend.products[3] = products

	rid := int64(3)
	f.sessions.sessions[sid] = domain.Session{ID: sid, RestaurantID: &rid}

	f.uc = NewCatalogUC(f.backend, f.cache, f.sessions, logger.NewNopLogger(), domain.LanguageRu)
	return f
}

func TestCatalog_LoadCatalog(t *testing.T) {
	f := newCatalogFixture()

	catalog := f.uc.LoadCatalog(context.Background(), 3)

	assert.Len(t, catalog.Categories, 10)
	assert.Len(t, catalog.Products, 6)
	assert.Equal(t, 2, f.backend.catalogCalls)
	assert.Equal(t, 1, f.cache.sets)

	again := f.uc.LoadCatalog(context.Background(), 3)
	assert.Len(t, again.Products, 6)
	assert.Equal(t, 2, f.backend.catalogCalls, "served from cache")
}

func TestCatalog_LoadCatalog_FailureGivesEmptyCatalog(t *testing.T) {
	tests := []struct {
		name  string
		setup func(b *fakeBackend)
	}{
		{name: "categories", setup: func(b *fakeBackend) { b.categoriesErr = errBoom }},
		{name: "products", setup: func(b *fakeBackend) { b.productsErr = errBoom }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCatalogFixture()
			tt.setup(f.backend)

			catalog := f.uc.LoadCatalog(context.Background(), 3)

			assert.True(t, catalog.IsEmpty())
			assert.Equal(t, int64(3), catalog.RestaurantID)
			assert.Equal(t, 0, f.cache.sets, "failed load is not cached")
		})
	}
}

func TestCatalog_GetView(t *testing.T) {
	f := newCatalogFixture()

	view, err := f.uc.GetView(context.Background(), sid, domain.LanguageRu)
	require.NoError(t, err)

	assert.Equal(t, int64(3), view.RestaurantID)
	assert.Nil(t, view.Selected)
	require.Len(t, view.Groups, 1)
	assert.False(t, view.ScrollToTop)
}

func TestCatalog_GetView_BackendDown(t *testing.T) {
	f := newCatalogFixture()
	f.backend.productsErr = errBoom

	view, err := f.uc.GetView(context.Background(), sid, domain.LanguageRu)
	require.NoError(t, err)

	assert.True(t, view.Empty)
}

func TestCatalog_OpenAndCloseCategory(t *testing.T) {
	ctx := context.Background()
	f := newCatalogFixture()

	view, err := f.uc.OpenCategory(ctx, sid, 10, domain.LanguageUz)
	require.NoError(t, err)

	require.NotNil(t, view.Selected)
	assert.Equal(t, "Issiq", view.Selected.Title)
	assert.Len(t, view.Sections, 3)
	assert.True(t, view.ScrollToTop)
	assert.Equal(t, int64(10), *f.sessions.sessions[sid].SelectedCategoryID)

	view, err = f.uc.GetView(ctx, sid, domain.LanguageRu)
	require.NoError(t, err)
	require.NotNil(t, view.Selected)
	assert.Equal(t, int64(10), view.Selected.ID)

	view, err = f.uc.CloseCategory(ctx, sid, domain.LanguageRu)
	require.NoError(t, err)
	assert.Nil(t, view.Selected)
	assert.True(t, view.ScrollToTop)
	assert.Nil(t, f.sessions.sessions[sid].SelectedCategoryID)
}

func TestCatalog_OpenCategory_NotNavigable(t *testing.T) {
	f := newCatalogFixture()

	for _, id := range []int64{1, 11, 22, 999} {
		_, err := f.uc.OpenCategory(context.Background(), sid, id, domain.LanguageRu)
		assert.ErrorIs(t, err, e.ErrCategoryNotFound, "category %d", id)
	}
	assert.Nil(t, f.sessions.sessions[sid].SelectedCategoryID)
}

func TestCatalog_GetView_ResetsStaleSelection(t *testing.T) {
	f := newCatalogFixture()
	s := f.sessions.sessions[sid]
	s.SelectedCategoryID = i64(11)
	f.sessions.sessions[sid] = s

	view, err := f.uc.GetView(context.Background(), sid, domain.LanguageRu)
	require.NoError(t, err)

	assert.Nil(t, view.Selected)
	assert.Nil(t, f.sessions.sessions[sid].SelectedCategoryID)
}

func TestCatalog_RestaurantNotSelected(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	_, err := f.uc.GetView(ctx, "fresh", domain.LanguageRu)
	assert.ErrorIs(t, err, e.ErrRestaurantNotSelected)

	_, err = f.uc.OpenCategory(ctx, "fresh", 10, domain.LanguageRu)
	assert.ErrorIs(t, err, e.ErrRestaurantNotSelected)

	_, err = f.uc.CloseCategory(ctx, "fresh", domain.LanguageRu)
	assert.ErrorIs(t, err, e.ErrRestaurantNotSelected)
}

func TestCatalog_Refresh_RefetchesMenu(t *testing.T) {
	f := newCatalogFixture()
	ctx := context.Background()

	_, err := f.uc.GetView(ctx, sid, domain.LanguageRu)
	require.NoError(t, err)
	require.Equal(t, 2, f.backend.catalogCalls)

	_, err = f.uc.GetView(ctx, sid, domain.LanguageRu)
	require.NoError(t, err)
	require.Equal(t, 2, f.backend.catalogCalls, "served from cache")

	view, err := f.uc.Refresh(ctx, sid, domain.LanguageRu)
	require.NoError(t, err)
	assert.Equal(t, int64(3), view.RestaurantID)
	assert.Equal(t, 4, f.backend.catalogCalls)
}

func TestCatalog_Refresh_NoRestaurant(t *testing.T) {
	f := newCatalogFixture()

	_, err := f.uc.Refresh(context.Background(), "fresh-session", domain.LanguageRu)
	assert.ErrorIs(t, err, e.ErrRestaurantNotSelected)
}
