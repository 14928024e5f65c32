package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sid = "session-1"

func plov() domain.Product {
	return domain.Product{
		ID:             7,
		RestaurantID:   3,
		CategoryID:     10,
		NameRu:         "Плов",
		NameUz:         "Osh",
		Unit:           "порция",
		Price:          decimal.NewFromInt(35000),
		ContainerPrice: decimal.NewFromInt(2000),
		InStock:        true,
	}
}

func cartWith(products ...domain.Product) *domain.Cart {
	c := domain.NewCart(nil)
	for _, p := range products {
		c.Add(p)
	}
	return c
}

func noon() time.Time {
	return time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
}

type checkoutFixture struct {
	uc       *CheckoutUseCase
	carts    *fakeCartRepo
	sessions *fakeSessionRepo
	guard    *fakeGuard
	backend  *fakeBackend
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	f := &checkoutFixture{
		carts:    newFakeCartRepo(),
		sessions: newFakeSessionRepo(),
		guard:    newFakeGuard(),
		backend:  newFakeBackend(),
	}
	f.backend.ack = &domain.OrderAck{
		OrderNumber:   "ORD-1-1",
		TotalAmount:   decimal.NewFromInt(70000),
		PaymentMethod: domain.PaymentCash,
		Status:        domain.OrderStatusNew,
	}

	f.uc = NewCheckoutUC(f.carts, f.sessions, f.guard, f.backend, logger.NewNopLogger(), time.UTC, domain.LanguageRu)
	f.uc.now = noon

	rid := int64(3)
	f.sessions.sessions[sid] = domain.Session{ID: sid, RestaurantID: &rid, Language: domain.LanguageRu}

	return f
}

func (f *checkoutFixture) putCart(t *testing.T, c *domain.Cart) {
	t.Helper()
	require.NoError(t, f.carts.Save(context.Background(), sid, c))
}

func validForm() domain.OrderForm {
	return domain.OrderForm{
		CustomerName:    " Азиз ",
		CustomerPhone:   "+998901234567",
		DeliveryAddress: "Ташкент, ул. Навои 1",
	}
}

func TestBuildOrderDraft_Validation(t *testing.T) {
	pinned := domain.Coordinates{Lat: 41.31, Lng: 69.24}

	tests := []struct {
		name      string
		cart      *domain.Cart
		form      domain.OrderForm
		wantField string
		wantErr   error
	}{
		{
			name:      "empty cart",
			cart:      domain.NewCart(nil),
			form:      validForm(),
			wantField: "cart",
			wantErr:   e.ErrCartEmpty,
		},
		{
			name:      "empty cart is reported before phone",
			cart:      domain.NewCart(nil),
			form:      domain.OrderForm{},
			wantField: "cart",
			wantErr:   e.ErrCartEmpty,
		},
		{
			name:      "blank phone",
			cart:      cartWith(plov()),
			form:      domain.OrderForm{CustomerPhone: "  ", DeliveryAddress: "x"},
			wantField: "customer_phone",
			wantErr:   e.ErrPhoneRequired,
		},
		{
			name:      "no address and no pin",
			cart:      cartWith(plov()),
			form:      domain.OrderForm{CustomerPhone: "+998"},
			wantField: "delivery_address",
			wantErr:   e.ErrAddressRequired,
		},
		{
			name:      "pin out of range",
			cart:      cartWith(plov()),
			form:      domain.OrderForm{CustomerPhone: "+998", DeliveryCoordinates: &domain.Coordinates{Lat: 999, Lng: 999}},
			wantField: "delivery_coordinates",
			wantErr:   e.ErrInvalidCoordinates,
		},
		{
			name:      "pin out of range next to an address",
			cart:      cartWith(plov()),
			form:      domain.OrderForm{CustomerPhone: "+998", DeliveryAddress: "x", DeliveryCoordinates: &domain.Coordinates{Lat: 41.3, Lng: 181}},
			wantField: "delivery_coordinates",
			wantErr:   e.ErrInvalidCoordinates,
		},
		{
			name:      "slot in the past",
			cart:      cartWith(plov()),
			form:      domain.OrderForm{CustomerPhone: "+998", DeliveryCoordinates: &pinned, DeliveryTime: "09:00"},
			wantField: "delivery_time",
			wantErr:   e.ErrInvalidDeliveryTime,
		},
		{
			name:      "unknown payment method",
			cart:      cartWith(plov()),
			form:      domain.OrderForm{CustomerPhone: "+998", DeliveryAddress: "x", PaymentMethod: "barter"},
			wantField: "payment_method",
			wantErr:   e.ErrStatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft, err := BuildOrderDraft(tt.cart, tt.form, nil, noon())

			require.Error(t, err)
			assert.Nil(t, draft)
			assert.ErrorIs(t, err, tt.wantErr)

			var vErr *e.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
		})
	}
}

func TestBuildOrderDraft(t *testing.T) {
	draft, err := BuildOrderDraft(cartWith(plov(), plov()), validForm(), nil, noon())
	require.NoError(t, err)

	assert.Equal(t, int64(3), draft.RestaurantID)
	assert.Equal(t, "Азиз", draft.CustomerName)
	assert.Equal(t, domain.PaymentCash, draft.PaymentMethod)
	assert.Equal(t, domain.DeliveryASAP, draft.DeliveryTime)
	assert.Equal(t, "2026-03-14", draft.DeliveryDate)
	assert.Nil(t, draft.DeliveryCoordinates)

	require.Len(t, draft.Items, 1)
	item := draft.Items[0]
	require.NotNil(t, item.ProductID)
	assert.Equal(t, int64(7), *item.ProductID)
	assert.Equal(t, "Плов", item.ProductName)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "порция", item.Unit)
	assert.True(t, decimal.NewFromInt(70000).Equal(draft.Total()))
}

func TestBuildOrderDraft_PinnedLocation(t *testing.T) {
	pinned := domain.Coordinates{Lat: 41.31, Lng: 69.24}
	form := domain.OrderForm{CustomerPhone: "+998", DeliveryCoordinates: &pinned, DeliveryTime: "13:00"}

	draft, err := BuildOrderDraft(cartWith(plov()), form, nil, noon())
	require.NoError(t, err)

	assert.Equal(t, domain.PinnedLocationAddress, draft.DeliveryAddress)
	require.NotNil(t, draft.DeliveryCoordinates)
	assert.Equal(t, pinned, *draft.DeliveryCoordinates)
	assert.Equal(t, "13:00", draft.DeliveryTime)

	pinned.Lat = 0
	assert.Equal(t, 41.31, draft.DeliveryCoordinates.Lat, "coordinates are copied")
}

func TestBuildOrderDraft_PriceSnapshot(t *testing.T) {
	p := plov()
	cart := cartWith(p)

	// Цена в каталоге поменялась после добавления в корзину.
	p.Price = decimal.NewFromInt(99000)

	draft, err := BuildOrderDraft(cart, validForm(), nil, noon())
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(35000).Equal(draft.Items[0].Price))
}

func TestBuildOrderDraft_RestaurantFromSession(t *testing.T) {
	rid := int64(42)
	line := domain.NewCartLine(plov())
	line.RestaurantID = 0
	cart := domain.NewCart([]domain.CartLine{line})

	draft, err := BuildOrderDraft(cart, validForm(), &domain.Session{RestaurantID: &rid}, noon())
	require.NoError(t, err)

	assert.Equal(t, int64(42), draft.RestaurantID)
}

func TestNewReceipt(t *testing.T) {
	draft, err := BuildOrderDraft(cartWith(plov()), validForm(), nil, noon())
	require.NoError(t, err)

	receipt := NewReceipt(draft, &domain.OrderAck{OrderNumber: "ORD-9"})

	assert.Equal(t, "ORD-9", receipt.OrderNumber)
	assert.True(t, decimal.NewFromInt(35000).Equal(receipt.TotalAmount), "falls back to draft total")
	assert.Equal(t, domain.PaymentCash, receipt.PaymentMethod)
	assert.Equal(t, draft.DeliveryAddress, receipt.DeliveryAddress)
	assert.Equal(t, draft.Items, receipt.Items)
}

func TestCheckout_Submit(t *testing.T) {
	f := newCheckoutFixture(t)
	f.putCart(t, cartWith(plov(), plov()))

	receipt, err := f.uc.Submit(context.Background(), sid, validForm())
	require.NoError(t, err)

	assert.Equal(t, "ORD-1-1", receipt.OrderNumber)
	assert.True(t, decimal.NewFromInt(70000).Equal(receipt.TotalAmount))
	assert.Equal(t, 1, f.backend.orderCount())

	cart, _ := f.carts.Get(context.Background(), sid)
	assert.True(t, cart.IsEmpty(), "cart cleared after success")

	saved := f.sessions.sessions[sid]
	assert.Equal(t, "Азиз", saved.Profile.FullName)
	assert.Equal(t, "+998901234567", saved.Profile.Phone)
	assert.Equal(t, "Ташкент, ул. Навои 1", saved.Profile.LastAddress)

	assert.Equal(t, 1, f.guard.released)
	assert.Empty(t, f.guard.held)
}

func TestCheckout_Submit_EmptyCartMakesNoCall(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.uc.Submit(context.Background(), sid, validForm())

	assert.ErrorIs(t, err, e.ErrCartEmpty)
	assert.Equal(t, 0, f.backend.orderCount())
	assert.Equal(t, 1, f.guard.released)
}

func TestCheckout_Submit_AddressRequiredMakesNoCall(t *testing.T) {
	f := newCheckoutFixture(t)
	f.putCart(t, cartWith(plov()))

	_, err := f.uc.Submit(context.Background(), sid, domain.OrderForm{CustomerPhone: "+998901234567"})

	assert.ErrorIs(t, err, e.ErrAddressRequired)
	assert.Equal(t, 0, f.backend.orderCount())

	cart, _ := f.carts.Get(context.Background(), sid)
	assert.Equal(t, 1, cart.Count())
}

func TestCheckout_Submit_BackendFailureKeepsCart(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantMessage string
	}{
		{name: "api message", err: e.NewAPIError(http.StatusBadRequest, "Ресторан закрыт"), wantMessage: "Ресторан закрыт"},
		{name: "network", err: errBoom, wantMessage: submitFailedMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCheckoutFixture(t)
			f.putCart(t, cartWith(plov()))
			f.backend.orderErr = tt.err

			receipt, err := f.uc.Submit(context.Background(), sid, validForm())

			require.Error(t, err)
			assert.Nil(t, receipt)
			assert.ErrorIs(t, err, e.ErrBackendUnavailable)

			var sErr *e.SubmitError
			require.ErrorAs(t, err, &sErr)
			assert.Equal(t, tt.wantMessage, sErr.Message)
			assert.Equal(t, tt.wantMessage, err.Error())

			cart, _ := f.carts.Get(context.Background(), sid)
			assert.Equal(t, 1, cart.Count(), "cart kept for retry")
			assert.Equal(t, 1, f.guard.released)
		})
	}
}

func TestCheckout_Submit_RejectsConcurrentSubmit(t *testing.T) {
	f := newCheckoutFixture(t)
	f.putCart(t, cartWith(plov()))

	var nestedErr error
	f.backend.orderHook = func() {
		_, nestedErr = f.uc.Submit(context.Background(), sid, validForm())
	}

	_, err := f.uc.Submit(context.Background(), sid, validForm())
	require.NoError(t, err)

	assert.True(t, errors.Is(nestedErr, e.ErrSubmitInProgress))
	assert.Equal(t, 1, f.backend.orderCount())
}

func TestCheckout_Submit_KeepsLockTakenAfterExpiry(t *testing.T) {
	f := newCheckoutFixture(t)
	f.putCart(t, cartWith(plov()))

	// Блокировка истекла во время запроса к API и её взяла другая отправка.
	f.backend.orderHook = func() {
		f.guard.mu.Lock()
		f.guard.held[sid] = "other"
		f.guard.mu.Unlock()
	}

	_, err := f.uc.Submit(context.Background(), sid, validForm())
	require.NoError(t, err)

	assert.Equal(t, 1, f.guard.released)
	assert.Equal(t, "other", f.guard.held[sid])
}

func TestCheckout_Submit_RequiresSession(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.uc.Submit(context.Background(), "", validForm())

	assert.ErrorIs(t, err, e.ErrSessionRequired)
}

func TestCheckout_Slots(t *testing.T) {
	f := newCheckoutFixture(t)
	f.uc.location = time.FixedZone("UZT", 5*60*60)

	res := f.uc.Slots(context.Background())

	// 12:00 UTC = 17:00 по Ташкенту.
	assert.Equal(t, "2026-03-14", res.Date)
	assert.True(t, res.ScheduledAvailable)
	require.NotEmpty(t, res.Slots)
	assert.Equal(t, "17:45", res.Slots[0])
}

func TestCheckout_SlotsLateEvening(t *testing.T) {
	f := newCheckoutFixture(t)
	f.uc.now = func() time.Time { return time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC) }

	res := f.uc.Slots(context.Background())

	assert.False(t, res.ScheduledAvailable)
	assert.Empty(t, res.Slots)
}

func TestCheckout_Prefill(t *testing.T) {
	f := newCheckoutFixture(t)
	loc := domain.Coordinates{Lat: 41.3, Lng: 69.2}
	s := f.sessions.sessions[sid]
	s.Profile = domain.UserProfile{FullName: "Азиз", Phone: "+998", LastAddress: "Навои 1", LastLocation: &loc}
	f.sessions.sessions[sid] = s

	prefill, err := f.uc.Prefill(context.Background(), sid)
	require.NoError(t, err)

	assert.Equal(t, "Азиз", prefill.CustomerName)
	assert.Equal(t, "+998", prefill.CustomerPhone)
	assert.Equal(t, "Навои 1", prefill.DeliveryAddress)
	assert.Equal(t, &loc, prefill.DeliveryCoordinates)
	assert.Equal(t, domain.PaymentCash, prefill.PaymentMethod)
	assert.Equal(t, domain.DeliveryASAP, prefill.DeliveryTime)
}

func TestCheckout_QuoteDelivery(t *testing.T) {
	f := newCheckoutFixture(t)
	f.backend.quote = &domain.DeliveryQuote{Cost: decimal.NewFromInt(9000), DistanceKm: 4.2}

	quote, err := f.uc.QuoteDelivery(context.Background(), sid, domain.Coordinates{Lat: 41.3, Lng: 69.2})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(9000).Equal(quote.Cost))

	_, err = f.uc.QuoteDelivery(context.Background(), sid, domain.Coordinates{Lat: 120, Lng: 69.2})
	assert.ErrorIs(t, err, e.ErrInvalidCoordinates)

	_, err = f.uc.QuoteDelivery(context.Background(), "other", domain.Coordinates{Lat: 41.3, Lng: 69.2})
	assert.ErrorIs(t, err, e.ErrRestaurantNotSelected)
}
