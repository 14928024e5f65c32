package http

import (
	"context"
	"fmt"
	"sync"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
)

type fakeMenuUC struct {
	categories []domain.Category
	products   []domain.Product
	filter     usecase.ProductFilter
	err        error
}

func (f *fakeMenuUC) ListCategories(_ context.Context, _ *int64) ([]domain.Category, error) {
	return f.categories, f.err
}

func (f *fakeMenuUC) ListProducts(_ context.Context, filter usecase.ProductFilter) ([]domain.Product, error) {
	f.filter = filter
	return f.products, f.err
}

func (f *fakeMenuUC) GetProduct(_ context.Context, id int64) (*domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, e.ErrProductNotFound
}

func (f *fakeMenuUC) ListRestaurants(context.Context) ([]domain.Restaurant, error) {
	return nil, f.err
}

func (f *fakeMenuUC) GetRestaurant(_ context.Context, _ int64) (*domain.Restaurant, error) {
	return nil, e.ErrRestaurantNotFound
}

type fakeOrderUC struct {
	draft *domain.OrderDraft
	order *domain.Order
	err   error
}

func (f *fakeOrderUC) CreateOrder(_ context.Context, draft *domain.OrderDraft) (*domain.Order, error) {
	f.draft = draft
	return f.order, f.err
}

func (f *fakeOrderUC) GetOrder(_ context.Context, number string) (*domain.Order, error) {
	if f.order == nil || f.order.OrderNumber != number {
		return nil, e.ErrOrderNotFound
	}
	return f.order, nil
}

type fakeDeliveryUC struct {
	req    *usecase.DeliveryCalcReq
	quote  *domain.DeliveryQuote
	tariff domain.DeliveryTariff
}

func (f *fakeDeliveryUC) Calculate(_ context.Context, req *usecase.DeliveryCalcReq) (*domain.DeliveryQuote, error) {
	f.req = req
	return f.quote, nil
}

func (f *fakeDeliveryUC) Tariff() domain.DeliveryTariff {
	return f.tariff
}

type fakeSessionUC struct {
	sessionIDs []string
}

func (f *fakeSessionUC) GetSession(_ context.Context, id string) (*domain.Session, error) {
	f.sessionIDs = append(f.sessionIDs, id)
	return domain.NewSession(id, domain.LanguageRu), nil
}

func (f *fakeSessionUC) SelectRestaurant(_ context.Context, id string, restaurantID int64) (*domain.Session, error) {
	s := domain.NewSession(id, domain.LanguageRu)
	s.RestaurantID = &restaurantID
	return s, nil
}

func (f *fakeSessionUC) UpdateProfile(_ context.Context, id string, profile domain.UserProfile) (*domain.Session, error) {
	s := domain.NewSession(id, domain.LanguageRu)
	s.Profile = profile
	return s, nil
}

type fakeCatalogUC struct {
	view *usecase.CatalogView
	lang domain.Language
	err  error
}

func (f *fakeCatalogUC) ListRestaurants(context.Context) ([]domain.Restaurant, error) {
	return nil, f.err
}

func (f *fakeCatalogUC) GetView(_ context.Context, _ string, lang domain.Language) (*usecase.CatalogView, error) {
	f.lang = lang
	return f.view, f.err
}

func (f *fakeCatalogUC) OpenCategory(_ context.Context, _ string, _ int64, lang domain.Language) (*usecase.CatalogView, error) {
	f.lang = lang
	return f.view, f.err
}

func (f *fakeCatalogUC) CloseCategory(_ context.Context, _ string, lang domain.Language) (*usecase.CatalogView, error) {
	f.lang = lang
	return f.view, f.err
}

func (f *fakeCatalogUC) Refresh(_ context.Context, _ string, lang domain.Language) (*usecase.CatalogView, error) {
	f.lang = lang
	return f.view, f.err
}

type fakeCartUC struct {
	cart    *domain.Cart
	err     error
	cleared bool
}

func (f *fakeCartUC) view() (*usecase.CartView, error) {
	if f.err != nil {
		return nil, f.err
	}
	return usecase.NewCartView(f.cart), nil
}

func (f *fakeCartUC) GetCart(context.Context, string) (*usecase.CartView, error) {
	return f.view()
}

func (f *fakeCartUC) AddItem(context.Context, string, int64) (*usecase.CartView, error) {
	return f.view()
}

func (f *fakeCartUC) UpdateQuantity(_ context.Context, _ string, productID int64, quantity int) (*usecase.CartView, error) {
	f.cart.UpdateQuantity(productID, quantity)
	return f.view()
}

func (f *fakeCartUC) RemoveItem(_ context.Context, _ string, productID int64) (*usecase.CartView, error) {
	f.cart.Remove(productID)
	return f.view()
}

func (f *fakeCartUC) Clear(context.Context, string) error {
	f.cleared = true
	return f.err
}

type fakeCheckoutUC struct {
	form    domain.OrderForm
	receipt *domain.Receipt
	err     error
}

func (f *fakeCheckoutUC) Slots(context.Context) *usecase.SlotsRes {
	return &usecase.SlotsRes{Date: "2026-03-14", Slots: []string{"12:15", "12:30"}, ScheduledAvailable: true}
}

func (f *fakeCheckoutUC) Prefill(context.Context, string) (*usecase.CheckoutPrefill, error) {
	return &usecase.CheckoutPrefill{CustomerName: "Азиз", PaymentMethod: domain.PaymentCash, DeliveryTime: domain.DeliveryASAP}, nil
}

func (f *fakeCheckoutUC) QuoteDelivery(context.Context, string, domain.Coordinates) (*domain.DeliveryQuote, error) {
	return nil, e.ErrRestaurantNotSelected
}

func (f *fakeCheckoutUC) Submit(_ context.Context, _ string, form domain.OrderForm) (*domain.Receipt, error) {
	f.form = form
	return f.receipt, f.err
}

// recordingLogger запоминает info-сообщения, остальное отбрасывает.
type recordingLogger struct {
	mu    sync.Mutex
	infos []string
}

func (l *recordingLogger) Debugf(string, ...any) {}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warnf(string, ...any) {}

func (l *recordingLogger) Errorf(error, string, ...any) {}

func (l *recordingLogger) With(...any) logger.Logger { return l }

func (l *recordingLogger) infoLines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.infos...)
}
