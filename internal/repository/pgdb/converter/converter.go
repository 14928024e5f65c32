package converter

import (
	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
)

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
type CategoryConverter interface {
	ToEntity(model *CategoryModel) *domain.Category
	ToArrEntity(models []CategoryModel) []domain.Category
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
type ProductConverter interface {
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

// RestaurantConverter преобразует сущности Restaurant между domain и моделью PostgreSQL.
type RestaurantConverter interface {
	ToEntity(model *RestaurantModel) *domain.Restaurant
	ToArrEntity(models []RestaurantModel) []domain.Restaurant
}

// OrderConverter преобразует заказ и его позиции между domain и моделями PostgreSQL.
type OrderConverter interface {
	ToModel(entity *domain.Order) *OrderModel
	ToEntity(model *OrderModel, items []OrderItemModel) *domain.Order
	ToItemModels(orderID int64, items []domain.OrderItem) []OrderItemModel
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

type CategoryConverterImpl struct{}

func NewCategoryConverterImpl() *CategoryConverterImpl { return &CategoryConverterImpl{} }

func (c CategoryConverterImpl) ToEntity(model *CategoryModel) *domain.Category {
	if model == nil {
		return nil
	}

	var sortOrder *int
	if model.SortOrder != nil {
		v := int(*model.SortOrder)
		sortOrder = &v
	}

	return &domain.Category{
		ID:           model.ID,
		RestaurantID: model.RestaurantID,
		ParentID:     model.ParentID,
		NameRu:       model.NameRu,
		NameUz:       model.NameUz,
		ImageURL:     model.ImageURL,
		SortOrder:    sortOrder,
		IsActive:     model.IsActive,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func (c CategoryConverterImpl) ToArrEntity(models []CategoryModel) []domain.Category {
	out := make([]domain.Category, 0, len(models))
	for i := range models {
		out = append(out, *c.ToEntity(&models[i]))
	}
	return out
}

type ProductConverterImpl struct{}

func NewProductConverterImpl() *ProductConverterImpl { return &ProductConverterImpl{} }

func (c ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	if model == nil {
		return nil
	}

	return &domain.Product{
		ID:             model.ID,
		RestaurantID:   model.RestaurantID,
		CategoryID:     model.CategoryID,
		CategoryName:   deref(model.CategoryName),
		NameRu:         model.NameRu,
		NameUz:         model.NameUz,
		DescriptionRu:  model.DescriptionRu,
		DescriptionUz:  model.DescriptionUz,
		Price:          model.Price,
		Unit:           model.Unit,
		ContainerID:    model.ContainerID,
		ContainerName:  deref(model.ContainerName),
		ContainerPrice: model.ContainerPrice,
		InStock:        model.InStock,
		ImageURL:       model.ImageURL,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	}
}

func (c ProductConverterImpl) ToArrEntity(models []ProductModel) []domain.Product {
	out := make([]domain.Product, 0, len(models))
	for i := range models {
		out = append(out, *c.ToEntity(&models[i]))
	}
	return out
}

type RestaurantConverterImpl struct{}

func NewRestaurantConverterImpl() *RestaurantConverterImpl { return &RestaurantConverterImpl{} }

func (c RestaurantConverterImpl) ToEntity(model *RestaurantModel) *domain.Restaurant {
	if model == nil {
		return nil
	}

	return &domain.Restaurant{
		ID:         model.ID,
		Name:       model.Name,
		Address:    model.Address,
		Phone:      model.Phone,
		LogoURL:    model.LogoURL,
		ServiceFee: model.ServiceFee,
		Latitude:   model.Latitude,
		Longitude:  model.Longitude,
		ClickURL:   model.ClickURL,
		PaymeURL:   model.PaymeURL,
		IsActive:   model.IsActive,
		CreatedAt:  model.CreatedAt,
	}
}

func (c RestaurantConverterImpl) ToArrEntity(models []RestaurantModel) []domain.Restaurant {
	out := make([]domain.Restaurant, 0, len(models))
	for i := range models {
		out = append(out, *c.ToEntity(&models[i]))
	}
	return out
}

type OrderConverterImpl struct{}

func NewOrderConverterImpl() *OrderConverterImpl { return &OrderConverterImpl{} }

func (c OrderConverterImpl) ToModel(entity *domain.Order) *OrderModel {
	if entity == nil {
		return nil
	}

	model := &OrderModel{
		ID:              entity.ID,
		OrderNumber:     entity.OrderNumber,
		TotalAmount:     entity.TotalAmount,
		DeliveryAddress: entity.DeliveryAddress,
		CustomerName:    entity.CustomerName,
		CustomerPhone:   entity.CustomerPhone,
		PaymentMethod:   string(entity.PaymentMethod),
		Comment:         entity.Comment,
		DeliveryDate:    entity.DeliveryDate,
		DeliveryTime:    entity.DeliveryTime,
		Status:          string(entity.Status),
		CreatedAt:       entity.CreatedAt,
		UpdatedAt:       entity.UpdatedAt,
	}
	if entity.RestaurantID != 0 {
		id := entity.RestaurantID
		model.RestaurantID = &id
	}
	if entity.DeliveryCoordinates != nil {
		s := entity.DeliveryCoordinates.String()
		model.DeliveryCoordinates = &s
	}

	return model
}

// ToEntity собирает заказ. Нечитаемые координаты отбрасываются: адрес в заказе остаётся.
func (c OrderConverterImpl) ToEntity(model *OrderModel, items []OrderItemModel) *domain.Order {
	if model == nil {
		return nil
	}

	order := &domain.Order{
		ID:              model.ID,
		OrderNumber:     model.OrderNumber,
		RestaurantID:    deref(model.RestaurantID),
		TotalAmount:     model.TotalAmount,
		DeliveryAddress: model.DeliveryAddress,
		CustomerName:    model.CustomerName,
		CustomerPhone:   model.CustomerPhone,
		PaymentMethod:   domain.PaymentMethod(model.PaymentMethod),
		Comment:         model.Comment,
		DeliveryDate:    model.DeliveryDate,
		DeliveryTime:    model.DeliveryTime,
		Status:          domain.OrderStatus(model.Status),
		Items:           make([]domain.OrderItem, 0, len(items)),
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
	if model.DeliveryCoordinates != nil {
		if coords, err := domain.ParseCoordinates(*model.DeliveryCoordinates); err == nil {
			order.DeliveryCoordinates = &coords
		}
	}

	for _, it := range items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    int(it.Quantity),
			Unit:        it.Unit,
			Price:       it.Price,
		})
	}

	return order
}

func (c OrderConverterImpl) ToItemModels(orderID int64, items []domain.OrderItem) []OrderItemModel {
	out := make([]OrderItemModel, 0, len(items))
	for _, it := range items {
		out = append(out, OrderItemModel{
			OrderID:     orderID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    int32(it.Quantity),
			Unit:        it.Unit,
			Price:       it.Price,
			Total:       it.Total(),
		})
	}
	return out
}

type OutboxEventConverterImpl struct{}

func NewOutboxEventConverterImpl() *OutboxEventConverterImpl { return &OutboxEventConverterImpl{} }

func (c OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	if entity == nil {
		return nil
	}

	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   entity.EventType,
		AggregateID: entity.AggregateID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (c OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	if model == nil {
		return nil
	}

	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   model.EventType,
		AggregateID: model.AggregateID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c OutboxEventConverterImpl) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	out := make([]*usecase.OutboxEvent, 0, len(models))
	for _, m := range models {
		out = append(out, c.ToEntity(m))
	}
	return out
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
