package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/google/uuid"
)

// OrderUseCase создаёт заказы: заказ, позиции, история статусов и событие outbox пишутся одной транзакцией.
type OrderUseCase struct {
	orderRepo      OrderRepository
	restaurantRepo RestaurantRepository
	outboxRepo     OutboxRepository
	encoder        OrderEventEncoder
	tx             TxRunner
	logger         logger.Logger
	now            func() time.Time
	suffix         func() int
}

func NewOrderUC(
	orderRepo OrderRepository,
	restaurantRepo RestaurantRepository,
	outboxRepo OutboxRepository,
	encoder OrderEventEncoder,
	tx TxRunner,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:      orderRepo,
		restaurantRepo: restaurantRepo,
		outboxRepo:     outboxRepo,
		encoder:        encoder,
		tx:             tx,
		logger:         logger,
		now:            time.Now,
		suffix:         func() int { return rand.Intn(1000) },
	}
}

// CreateOrder сохраняет заказ со статусом new. Сумма считается как Σ price × quantity позиций.
func (o *OrderUseCase) CreateOrder(ctx context.Context, draft *domain.OrderDraft) (*domain.Order, error) {
	const op = "OrderUseCase.CreateOrder"

	if err := o.validateDraft(draft); err != nil {
		return nil, e.Wrap(op, err)
	}

	if draft.RestaurantID != 0 {
		if _, err := o.restaurantRepo.GetByID(ctx, draft.RestaurantID); err != nil {
			return nil, e.Wrap(op, err)
		}
	}

	order := o.newOrder(draft)

	err := o.tx.WithinTx(ctx, func(ctx context.Context) error {
		created, err := o.orderRepo.Create(ctx, order)
		if err != nil {
			return err
		}

		if err := o.orderRepo.AddStatusHistory(ctx, created.ID, created.Status); err != nil {
			return err
		}

		eventID := uuid.NewString()
		payload, err := o.encoder.EncodeOrderCreated(eventID, created)
		if err != nil {
			return err
		}

		if _, err := o.outboxRepo.Create(ctx, NewOutboxEvent(eventID, EventOrderCreated, created.ID, payload)); err != nil {
			return err
		}

		order = created
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	o.logger.Infof("order %s created, total %s", order.OrderNumber, order.TotalAmount.String())
	return order, nil
}

func (o *OrderUseCase) GetOrder(ctx context.Context, orderNumber string) (*domain.Order, error) {
	const op = "OrderUseCase.GetOrder"

	if strings.TrimSpace(orderNumber) == "" {
		return nil, e.Wrap(op, e.ErrOrderNotFound)
	}

	order, err := o.orderRepo.GetByNumber(ctx, orderNumber)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

func (o *OrderUseCase) validateDraft(draft *domain.OrderDraft) error {
	if draft == nil || len(draft.Items) == 0 {
		return e.NewValidationError("items", e.ErrCartEmpty)
	}

	for _, it := range draft.Items {
		if strings.TrimSpace(it.ProductName) == "" {
			return e.NewValidationError("items.product_name", e.ErrMissingFields)
		}
		if it.Quantity <= 0 {
			return e.NewValidationError("items.quantity", e.ErrInvalidQuantity)
		}
		if it.Price.IsNegative() {
			return e.NewValidationError("items.price", e.ErrInvalidPrice)
		}
	}

	if strings.TrimSpace(draft.CustomerPhone) == "" {
		return e.NewValidationError("customer_phone", e.ErrPhoneRequired)
	}

	if strings.TrimSpace(draft.DeliveryAddress) == "" && draft.DeliveryCoordinates == nil {
		return e.NewValidationError("delivery_address", e.ErrAddressRequired)
	}
	if draft.DeliveryCoordinates != nil {
		if err := draft.DeliveryCoordinates.Validate(); err != nil {
			return e.NewValidationError("delivery_coordinates", e.ErrInvalidCoordinates)
		}
	}

	if !draft.PaymentMethod.IsValid() {
		return e.NewValidationError("payment_method", e.ErrStatusBadRequest)
	}

	return nil
}

func (o *OrderUseCase) newOrder(draft *domain.OrderDraft) *domain.Order {
	now := o.now()

	payment := draft.PaymentMethod
	if payment == "" {
		payment = domain.PaymentCash
	}

	deliveryTime := draft.DeliveryTime
	if deliveryTime == "" {
		deliveryTime = domain.DeliveryASAP
	}

	items := make([]domain.OrderItem, len(draft.Items))
	copy(items, draft.Items)

	return &domain.Order{
		OrderNumber:         fmt.Sprintf("ORD-%d-%d", now.UnixMilli(), o.suffix()),
		RestaurantID:        draft.RestaurantID,
		TotalAmount:         domain.ItemsTotal(items),
		DeliveryAddress:     draft.DeliveryAddress,
		DeliveryCoordinates: draft.DeliveryCoordinates,
		CustomerName:        draft.CustomerName,
		CustomerPhone:       draft.CustomerPhone,
		PaymentMethod:       payment,
		Comment:             draft.Comment,
		DeliveryDate:        draft.DeliveryDate,
		DeliveryTime:        deliveryTime,
		Status:              domain.OrderStatusNew,
		Items:               items,
		CreatedAt:           now,
	}
}
