package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
)

// submitFailedMessage показывается, если API не вернул своего сообщения об ошибке.
const submitFailedMessage = "Не удалось оформить заказ. Попробуйте ещё раз"

const guardReleaseTimeout = 2 * time.Second

// BuildOrderDraft собирает тело заказа из корзины и формы. Проверки идут по порядку:
// корзина, телефон, адрес или точка на карте, время доставки. Первая же ошибка возвращается
// как ValidationError с именем поля. Цены берутся из строк корзины, дата всегда сегодняшняя.
func BuildOrderDraft(cart *domain.Cart, form domain.OrderForm, user *domain.Session, now time.Time) (*domain.OrderDraft, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, e.NewValidationError("cart", e.ErrCartEmpty)
	}

	phone := strings.TrimSpace(form.CustomerPhone)
	if phone == "" {
		return nil, e.NewValidationError("customer_phone", e.ErrPhoneRequired)
	}

	address := strings.TrimSpace(form.DeliveryAddress)
	if address == "" && form.DeliveryCoordinates == nil {
		return nil, e.NewValidationError("delivery_address", e.ErrAddressRequired)
	}
	if form.DeliveryCoordinates != nil {
		if err := form.DeliveryCoordinates.Validate(); err != nil {
			return nil, e.NewValidationError("delivery_coordinates", e.ErrInvalidCoordinates)
		}
	}
	if address == "" {
		address = domain.PinnedLocationAddress
	}

	deliveryTime := strings.TrimSpace(form.DeliveryTime)
	if deliveryTime == "" {
		deliveryTime = domain.DeliveryASAP
	}
	if deliveryTime != domain.DeliveryASAP && !isValidSlot(deliveryTime, now) {
		return nil, e.NewValidationError("delivery_time", e.ErrInvalidDeliveryTime)
	}

	restaurantID, ok := cart.RestaurantID()
	if !ok && user != nil && user.RestaurantID != nil {
		restaurantID = *user.RestaurantID
	}

	if !form.PaymentMethod.IsValid() {
		return nil, e.NewValidationError("payment_method", e.ErrStatusBadRequest)
	}
	payment := form.PaymentMethod
	if payment == "" {
		payment = domain.PaymentCash
	}

	lines := cart.Lines()
	items := make([]domain.OrderItem, 0, len(lines))
	for _, l := range lines {
		productID := l.ProductID
		items = append(items, domain.OrderItem{
			ProductID:   &productID,
			ProductName: l.NameRu,
			Quantity:    l.Quantity,
			Unit:        l.Unit,
			Price:       l.Price,
		})
	}

	var coords *domain.Coordinates
	if form.DeliveryCoordinates != nil {
		c := *form.DeliveryCoordinates
		coords = &c
	}

	return &domain.OrderDraft{
		Items:               items,
		RestaurantID:        restaurantID,
		DeliveryAddress:     address,
		DeliveryCoordinates: coords,
		CustomerName:        strings.TrimSpace(form.CustomerName),
		CustomerPhone:       phone,
		PaymentMethod:       payment,
		Comment:             strings.TrimSpace(form.Comment),
		DeliveryDate:        now.Format(domain.DeliveryDateLayout),
		DeliveryTime:        deliveryTime,
	}, nil
}

// NewReceipt строит чек из отправленного черновика и ответа API.
func NewReceipt(draft *domain.OrderDraft, ack *domain.OrderAck) *domain.Receipt {
	items := make([]domain.OrderItem, len(draft.Items))
	copy(items, draft.Items)

	total := ack.TotalAmount
	if total.IsZero() {
		total = draft.Total()
	}

	payment := ack.PaymentMethod
	if payment == "" {
		payment = draft.PaymentMethod
	}

	return &domain.Receipt{
		OrderNumber:     ack.OrderNumber,
		RestaurantID:    draft.RestaurantID,
		Items:           items,
		TotalAmount:     total,
		PaymentMethod:   payment,
		DeliveryAddress: draft.DeliveryAddress,
		DeliveryDate:    draft.DeliveryDate,
		DeliveryTime:    draft.DeliveryTime,
		CustomerName:    draft.CustomerName,
		CustomerPhone:   draft.CustomerPhone,
	}
}

// CheckoutUseCase оформляет заказ из корзины сессии.
type CheckoutUseCase struct {
	carts       CartRepository
	sessions    SessionRepository
	guard       SubmitGuard
	orders      BackendOrderAPI
	logger      logger.Logger
	location    *time.Location
	defaultLang domain.Language
	now         func() time.Time
}

func NewCheckoutUC(
	carts CartRepository,
	sessions SessionRepository,
	guard SubmitGuard,
	orders BackendOrderAPI,
	logger logger.Logger,
	location *time.Location,
	defaultLang domain.Language,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		carts:       carts,
		sessions:    sessions,
		guard:       guard,
		orders:      orders,
		logger:      logger,
		location:    location,
		defaultLang: defaultLang,
		now:         time.Now,
	}
}

func (c *CheckoutUseCase) localNow() time.Time {
	return c.now().In(c.location)
}

// Slots возвращает слоты на сегодня. Пустой список означает, что доступна только доставка "как можно скорее".
func (c *CheckoutUseCase) Slots(_ context.Context) *SlotsRes {
	now := c.localNow()
	slots := GenerateSlots(now)

	return &SlotsRes{
		Date:               now.Format(domain.DeliveryDateLayout),
		Slots:              slots,
		ScheduledAvailable: len(slots) > 0,
	}
}

// Prefill заполняет форму данными профиля сессии.
func (c *CheckoutUseCase) Prefill(ctx context.Context, sessionID string) (*CheckoutPrefill, error) {
	const op = "CheckoutUseCase.Prefill"

	session, err := loadOrCreateSession(ctx, c.sessions, c.logger, sessionID, c.defaultLang)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &CheckoutPrefill{
		CustomerName:        session.Profile.FullName,
		CustomerPhone:       session.Profile.Phone,
		DeliveryAddress:     session.Profile.LastAddress,
		DeliveryCoordinates: session.Profile.LastLocation,
		PaymentMethod:       domain.PaymentCash,
		DeliveryTime:        domain.DeliveryASAP,
	}, nil
}

// QuoteDelivery считает доставку от активного ресторана до точки клиента.
func (c *CheckoutUseCase) QuoteDelivery(ctx context.Context, sessionID string, to domain.Coordinates) (*domain.DeliveryQuote, error) {
	const op = "CheckoutUseCase.QuoteDelivery"

	if err := to.Validate(); err != nil {
		return nil, e.Wrap(op, e.NewValidationError("coordinates", err))
	}

	session, err := loadOrCreateSession(ctx, c.sessions, c.logger, sessionID, c.defaultLang)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if session.RestaurantID == nil {
		return nil, e.Wrap(op, e.ErrRestaurantNotSelected)
	}

	quote, err := c.orders.CalculateDelivery(ctx, &DeliveryCalcReq{RestaurantID: *session.RestaurantID, Customer: to})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return quote, nil
}

// Submit отправляет заказ. Пока отправка идёт, повторная для той же сессии отклоняется.
// Ошибки проверки возвращаются до обращения к API. При ошибке API корзина сохраняется,
// а пользователю уходит одно сообщение; при успехе корзина очищается.
func (c *CheckoutUseCase) Submit(ctx context.Context, sessionID string, form domain.OrderForm) (*domain.Receipt, error) {
	const op = "CheckoutUseCase.Submit"

	session, err := loadOrCreateSession(ctx, c.sessions, c.logger, sessionID, c.defaultLang)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	token, acquired, err := c.guard.Acquire(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if !acquired {
		return nil, e.Wrap(op, e.ErrSubmitInProgress)
	}
	defer func() {
		releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), guardReleaseTimeout)
		defer cancel()
		if err := c.guard.Release(releaseCtx, sessionID, token); err != nil {
			c.logger.Warnf("failed to release submit guard for session %s: %v", sessionID, err)
		}
	}()

	cart, err := c.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	draft, err := BuildOrderDraft(cart, form, session, c.localNow())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ack, err := c.orders.CreateOrder(ctx, draft)
	if err != nil {
		c.logger.Errorf(err, "order submission failed for session %s", sessionID)
		return nil, e.NewSubmitError(e.UserMessage(err, submitFailedMessage), errors.Join(e.ErrBackendUnavailable, err))
	}

	// Заказ уже создан: ошибки ниже только логируются.
	if err := c.carts.Delete(ctx, sessionID); err != nil {
		c.logger.Warnf("order %s created but cart was not cleared: %v", ack.OrderNumber, e.Wrap(op, err))
	}

	c.rememberProfile(ctx, session, draft)

	c.logger.Infof("order %s submitted for session %s", ack.OrderNumber, sessionID)
	return NewReceipt(draft, ack), nil
}

func (c *CheckoutUseCase) rememberProfile(ctx context.Context, session *domain.Session, draft *domain.OrderDraft) {
	if draft.CustomerName != "" {
		session.Profile.FullName = draft.CustomerName
	}
	session.Profile.Phone = draft.CustomerPhone
	if draft.DeliveryAddress != domain.PinnedLocationAddress {
		session.Profile.LastAddress = draft.DeliveryAddress
	}
	if draft.DeliveryCoordinates != nil {
		session.Profile.LastLocation = draft.DeliveryCoordinates
	}

	if err := c.sessions.Save(ctx, session); err != nil {
		c.logger.Warnf("failed to save profile for session %s: %v", session.ID, err)
	}
}
