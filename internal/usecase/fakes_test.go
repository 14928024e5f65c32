package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
)

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	saveErr  error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]domain.Session{}}
}

func (f *fakeSessionRepo) Get(_ context.Context, id string) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	s, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (f *fakeSessionRepo) Save(_ context.Context, s *domain.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.saveErr != nil {
		return f.saveErr
	}
	f.sessions[s.ID] = *s
	return nil
}

type fakeCartRepo struct {
	mu    sync.Mutex
	lines map[string][]domain.CartLine
	saves int
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{lines: map[string][]domain.CartLine{}}
}

func (f *fakeCartRepo) Get(_ context.Context, id string) (*domain.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.NewCart(f.lines[id]), nil
}

func (f *fakeCartRepo) Save(_ context.Context, id string, cart *domain.Cart) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	f.lines[id] = cart.Lines()
	return nil
}

func (f *fakeCartRepo) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.lines, id)
	return nil
}

type fakeCatalogCache struct {
	mu       sync.Mutex
	catalogs map[int64]domain.Catalog
	sets     int
}

func newFakeCatalogCache() *fakeCatalogCache {
	return &fakeCatalogCache{catalogs: map[int64]domain.Catalog{}}
}

func (f *fakeCatalogCache) Get(_ context.Context, id int64) (*domain.Catalog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	c, ok := f.catalogs[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (f *fakeCatalogCache) Set(_ context.Context, c *domain.Catalog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.catalogs[c.RestaurantID] = *c
	return nil
}

func (f *fakeCatalogCache) Invalidate(_ context.Context, ids ...int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, id := range ids {
		delete(f.catalogs, id)
	}
	return nil
}

type fakeBackend struct {
	mu            sync.Mutex
	categories    map[int64][]domain.Category
	products      map[int64][]domain.Product
	restaurants   []domain.Restaurant
	categoriesErr error
	productsErr   error
	orderErr      error
	ack           *domain.OrderAck
	quote         *domain.DeliveryQuote
	orders        []*domain.OrderDraft
	catalogCalls  int
	orderHook     func()
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		categories: map[int64][]domain.Category{},
		products:   map[int64][]domain.Product{},
	}
}

func (f *fakeBackend) GetCategories(_ context.Context, id int64) ([]domain.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catalogCalls++
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return f.categories[id], nil
}

func (f *fakeBackend) GetProducts(_ context.Context, id int64) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.catalogCalls++
	if f.productsErr != nil {
		return nil, f.productsErr
	}
	return f.products[id], nil
}

func (f *fakeBackend) GetRestaurants(context.Context) ([]domain.Restaurant, error) {
	return f.restaurants, nil
}

func (f *fakeBackend) GetRestaurant(_ context.Context, id int64) (*domain.Restaurant, error) {
	for i := range f.restaurants {
		if f.restaurants[i].ID == id {
			r := f.restaurants[i]
			return &r, nil
		}
	}
	return nil, e.ErrRestaurantNotFound
}

func (f *fakeBackend) CreateOrder(_ context.Context, draft *domain.OrderDraft) (*domain.OrderAck, error) {
	if f.orderHook != nil {
		f.orderHook()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, draft)
	if f.orderErr != nil {
		return nil, f.orderErr
	}
	return f.ack, nil
}

func (f *fakeBackend) CalculateDelivery(_ context.Context, _ *DeliveryCalcReq) (*domain.DeliveryQuote, error) {
	if f.quote == nil {
		return nil, e.ErrBackendUnavailable
	}
	return f.quote, nil
}

func (f *fakeBackend) orderCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

type fakeGuard struct {
	mu       sync.Mutex
	held     map[string]string
	seq      int
	released int
}

func newFakeGuard() *fakeGuard {
	return &fakeGuard{held: map[string]string{}}
}

func (f *fakeGuard) Acquire(_ context.Context, id string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.held[id]; ok {
		return "", false, nil
	}
	f.seq++
	token := fmt.Sprintf("t%d", f.seq)
	f.held[id] = token
	return token, true, nil
}

func (f *fakeGuard) Release(_ context.Context, id, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.held[id] == token {
		delete(f.held, id)
	}
	f.released++
	return nil
}

type fakeOrderRepo struct {
	created   []*domain.Order
	history   []domain.OrderStatus
	createErr error
	byNumber  map[string]*domain.Order
}

func (f *fakeOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	saved := *o
	saved.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &saved)
	return &saved, nil
}

func (f *fakeOrderRepo) AddStatusHistory(_ context.Context, _ int64, status domain.OrderStatus) error {
	f.history = append(f.history, status)
	return nil
}

func (f *fakeOrderRepo) GetByNumber(_ context.Context, number string) (*domain.Order, error) {
	if o, ok := f.byNumber[number]; ok {
		return o, nil
	}
	return nil, e.ErrOrderNotFound
}

type fakeOutboxRepo struct {
	events []*OutboxEvent
}

func (f *fakeOutboxRepo) Create(_ context.Context, ev *OutboxEvent) (*OutboxEvent, error) {
	f.events = append(f.events, ev)
	return ev, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(context.Context, int) ([]*OutboxEvent, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(context.Context, int64) error { return nil }

func (f *fakeOutboxRepo) ReturnToPending(context.Context, int64) error { return nil }

type fakeEncoder struct{}

func (fakeEncoder) EncodeOrderCreated(eventID string, o *domain.Order) ([]byte, error) {
	return []byte(eventID + ":" + o.OrderNumber), nil
}

// fakeTx выполняет fn без транзакции и запоминает, была ли ошибка (то есть откат).
type fakeTx struct {
	commits   int
	rollbacks int
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

type fakeRestaurantRepo struct {
	restaurants map[int64]domain.Restaurant
}

func (f *fakeRestaurantRepo) ListActive(context.Context) ([]domain.Restaurant, error) {
	out := make([]domain.Restaurant, 0, len(f.restaurants))
	for _, r := range f.restaurants {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRestaurantRepo) GetByID(_ context.Context, id int64) (*domain.Restaurant, error) {
	r, ok := f.restaurants[id]
	if !ok {
		return nil, e.ErrRestaurantNotFound
	}
	return &r, nil
}

type fakeRoutes struct {
	km  float64
	err error
}

func (f fakeRoutes) RoadDistanceKm(context.Context, domain.Coordinates, domain.Coordinates) (float64, error) {
	return f.km, f.err
}

var errBoom = errors.New("boom")
