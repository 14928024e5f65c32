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

func newSessionFixture() (*SessionUseCase, *fakeSessionRepo, *fakeCartRepo) {
	sessions := newFakeSessionRepo()
	carts := newFakeCartRepo()
	backend := newFakeBackend()
	backend.restaurants = []domain.Restaurant{{ID: 1, Name: "Rayhon"}, {ID: 2, Name: "Caravan"}}

	return NewSessionUC(sessions, carts, backend, logger.NewNopLogger(), domain.LanguageRu), sessions, carts
}

func TestSession_SelectRestaurant_SwitchClearsCart(t *testing.T) {
	ctx := context.Background()
	uc, _, carts := newSessionFixture()

	_, err := uc.SelectRestaurant(ctx, sid, 1)
	require.NoError(t, err)

	r1 := plov()
	r1.RestaurantID = 1
	require.NoError(t, carts.Save(ctx, sid, cartWith(r1)))

	session, err := uc.SelectRestaurant(ctx, sid, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), *session.RestaurantID)

	cart, _ := carts.Get(ctx, sid)
	assert.True(t, cart.IsEmpty(), "switch to another restaurant clears the cart")

	_, err = uc.SelectRestaurant(ctx, sid, 1)
	require.NoError(t, err)
	cart, _ = carts.Get(ctx, sid)
	assert.True(t, cart.IsEmpty())
}

func TestSession_SelectRestaurant_FirstSelectionKeepsCart(t *testing.T) {
	ctx := context.Background()
	uc, _, carts := newSessionFixture()

	require.NoError(t, carts.Save(ctx, sid, cartWith(plov())))

	_, err := uc.SelectRestaurant(ctx, sid, 1)
	require.NoError(t, err)

	cart, _ := carts.Get(ctx, sid)
	assert.Equal(t, 1, cart.Count())
}

func TestSession_SelectRestaurant_SameRestaurantKeepsState(t *testing.T) {
	ctx := context.Background()
	uc, sessions, carts := newSessionFixture()

	rid, catID := int64(1), int64(10)
	sessions.sessions[sid] = domain.Session{ID: sid, RestaurantID: &rid, SelectedCategoryID: &catID}
	require.NoError(t, carts.Save(ctx, sid, cartWith(plov())))

	session, err := uc.SelectRestaurant(ctx, sid, 1)
	require.NoError(t, err)

	require.NotNil(t, session.SelectedCategoryID)
	assert.Equal(t, int64(10), *session.SelectedCategoryID)
	cart, _ := carts.Get(ctx, sid)
	assert.Equal(t, 1, cart.Count())
}

func TestSession_SelectRestaurant_ResetsCategoryOnSwitch(t *testing.T) {
	ctx := context.Background()
	uc, sessions, _ := newSessionFixture()

	rid, catID := int64(1), int64(10)
	sessions.sessions[sid] = domain.Session{ID: sid, RestaurantID: &rid, SelectedCategoryID: &catID}

	session, err := uc.SelectRestaurant(ctx, sid, 2)
	require.NoError(t, err)

	assert.Nil(t, session.SelectedCategoryID)
	assert.Nil(t, sessions.sessions[sid].SelectedCategoryID)
}

func TestSession_SelectRestaurant_Errors(t *testing.T) {
	ctx := context.Background()
	uc, sessions, _ := newSessionFixture()

	_, err := uc.SelectRestaurant(ctx, sid, 0)
	assert.ErrorIs(t, err, e.ErrMissingFields)

	_, err = uc.SelectRestaurant(ctx, sid, 99)
	assert.ErrorIs(t, err, e.ErrRestaurantNotFound)
	assert.Empty(t, sessions.sessions)

	_, err = uc.SelectRestaurant(ctx, " ", 1)
	assert.ErrorIs(t, err, e.ErrSessionRequired)
}

func TestSession_GetSession_New(t *testing.T) {
	uc, sessions, _ := newSessionFixture()

	session, err := uc.GetSession(context.Background(), sid)
	require.NoError(t, err)

	assert.Equal(t, sid, session.ID)
	assert.Equal(t, domain.LanguageRu, session.Language)
	assert.Nil(t, session.RestaurantID)
	assert.Empty(t, sessions.sessions, "reading does not persist")
}

func TestSession_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	uc, sessions, _ := newSessionFixture()

	loc := domain.Coordinates{Lat: 41.3, Lng: 69.2}
	session, err := uc.UpdateProfile(ctx, sid, domain.UserProfile{
		FullName:     "  Азиз ",
		Phone:        " +998 ",
		LastAddress:  "Навои 1",
		LastLocation: &loc,
	})
	require.NoError(t, err)

	assert.Equal(t, "Азиз", session.Profile.FullName)
	assert.Equal(t, "+998", session.Profile.Phone)
	assert.Equal(t, "Азиз", sessions.sessions[sid].Profile.FullName)

	bad := domain.Coordinates{Lat: 91, Lng: 0}
	_, err = uc.UpdateProfile(ctx, sid, domain.UserProfile{LastLocation: &bad})
	assert.ErrorIs(t, err, e.ErrInvalidCoordinates)
}
