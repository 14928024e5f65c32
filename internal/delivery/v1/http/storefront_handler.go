package http

import (
	"net/http"

	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
)

// StorefrontHandler обслуживает витрину. Все запросы привязаны к сессии из заголовка X-Session-ID.
type StorefrontHandler struct {
	sessionUsecase  usecase.SessionUC
	catalogUsecase  usecase.CatalogUC
	cartUsecase     usecase.CartUC
	checkoutUsecase usecase.CheckoutUC
	logger          logger.Logger
	defaultLang     domain.Language
}

func NewStorefrontHandler(
	sessionUsecase usecase.SessionUC,
	catalogUsecase usecase.CatalogUC,
	cartUsecase usecase.CartUC,
	checkoutUsecase usecase.CheckoutUC,
	logger logger.Logger,
	defaultLang domain.Language,
) *StorefrontHandler {
	return &StorefrontHandler{
		sessionUsecase:  sessionUsecase,
		catalogUsecase:  catalogUsecase,
		cartUsecase:     cartUsecase,
		checkoutUsecase: checkoutUsecase,
		logger:          logger,
		defaultLang:     defaultLang,
	}
}

func (s *StorefrontHandler) lang(r *http.Request) domain.Language {
	return domain.ParseLanguage(r.URL.Query().Get("lang"), s.defaultLang)
}

// SESSION

// getSession
//
//	@Summary	Текущая сессия витрины
//	@Tags		storefront
//	@Produce	json
//	@Param		X-Session-ID	header		string	false	"ID сессии"
//	@Success	200				{object}	SessionResponse
//	@Router		/storefront/session [get]
func (s *StorefrontHandler) getSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.sessionUsecase.GetSession(r.Context(), sessionFromCtx(r.Context()))
	if err != nil {
		s.logger.Errorf(err, "failed to load session")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newSessionResponse(session))
}

// selectRestaurant
//
//	@Summary		Выбор ресторана
//	@Description	Смена ресторана очищает корзину
//	@Tags			storefront
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"ID сессии"
//	@Param			request			body		SelectRestaurantRequest	true	"Ресторан"
//	@Success		200				{object}	SessionResponse
//	@Failure		404				{object}	ErrorResponse
//	@Router			/storefront/session/restaurant [put]
func (s *StorefrontHandler) selectRestaurant(w http.ResponseWriter, r *http.Request) {
	var req SelectRestaurantRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	session, err := s.sessionUsecase.SelectRestaurant(r.Context(), sessionFromCtx(r.Context()), req.RestaurantID)
	if err != nil {
		s.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newSessionResponse(session))
}

// updateProfile
//
//	@Summary	Сохранение данных клиента
//	@Tags		storefront
//	@Accept		json
//	@Produce	json
//	@Param		X-Session-ID	header		string		false	"ID сессии"
//	@Param		request			body		ProfileDTO	true	"Профиль"
//	@Success	200				{object}	SessionResponse
//	@Failure	400				{object}	ErrorResponse
//	@Router		/storefront/session/profile [put]
func (s *StorefrontHandler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfileDTO
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	session, err := s.sessionUsecase.UpdateProfile(r.Context(), sessionFromCtx(r.Context()), domain.UserProfile{
		FullName:     req.FullName,
		Phone:        req.Phone,
		LastAddress:  req.LastAddress,
		LastLocation: req.LastLocation.toDomain(),
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newSessionResponse(session))
}

// CATALOG

// listRestaurants
//
//	@Summary	Рестораны для выбора
//	@Tags		storefront
//	@Produce	json
//	@Success	200	{array}		RestaurantResponse
//	@Failure	502	{object}	ErrorResponse
//	@Router		/storefront/restaurants [get]
func (s *StorefrontHandler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := s.catalogUsecase.ListRestaurants(r.Context())
	if err != nil {
		s.logger.Errorf(err, "failed to load restaurants")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, mapSlice(restaurants, newRestaurantResponse))
}

// getCatalog
//
//	@Summary		Каталог в текущем состоянии навигации
//	@Description	В корне группы категорий, в открытой категории секции товаров
//	@Tags			storefront
//	@Produce		json
//	@Param			X-Session-ID	header		string	false	"ID сессии"
//	@Param			lang			query		string	false	"ru или uz"
//	@Success		200				{object}	CatalogViewResponse
//	@Failure		409				{object}	ErrorResponse	"Ресторан не выбран"
//	@Router			/storefront/catalog [get]
func (s *StorefrontHandler) getCatalog(w http.ResponseWriter, r *http.Request) {
	view, err := s.catalogUsecase.GetView(r.Context(), sessionFromCtx(r.Context()), s.lang(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCatalogViewResponse(view))
}

// openCategory
//
//	@Summary	Открыть категорию второго уровня
//	@Tags		storefront
//	@Produce	json
//	@Param		X-Session-ID	header		string	false	"ID сессии"
//	@Param		id				path		int		true	"ID категории"
//	@Param		lang			query		string	false	"ru или uz"
//	@Success	200				{object}	CatalogViewResponse
//	@Failure	404				{object}	ErrorResponse
//	@Router		/storefront/catalog/open/{id} [post]
func (s *StorefrontHandler) openCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := s.catalogUsecase.OpenCategory(r.Context(), sessionFromCtx(r.Context()), id, s.lang(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCatalogViewResponse(view))
}

// closeCategory
//
//	@Summary	Вернуться в корень каталога
//	@Tags		storefront
//	@Produce	json
//	@Param		X-Session-ID	header		string	false	"ID сессии"
//	@Param		lang			query		string	false	"ru или uz"
//	@Success	200				{object}	CatalogViewResponse
//	@Router		/storefront/catalog/close [post]
func (s *StorefrontHandler) closeCategory(w http.ResponseWriter, r *http.Request) {
	view, err := s.catalogUsecase.CloseCategory(r.Context(), sessionFromCtx(r.Context()), s.lang(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCatalogViewResponse(view))
}

// refreshCatalog
//
//	@Summary	Перезагрузить меню ресторана
//	@Tags		storefront
//	@Produce	json
//	@Param		X-Session-ID	header		string	false	"ID сессии"
//	@Param		lang			query		string	false	"ru или uz"
//	@Success	200				{object}	CatalogViewResponse
//	@Router		/storefront/catalog/refresh [post]
func (s *StorefrontHandler) refreshCatalog(w http.ResponseWriter, r *http.Request) {
	view, err := s.catalogUsecase.Refresh(r.Context(), sessionFromCtx(r.Context()), s.lang(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCatalogViewResponse(view))
}

// CART

// getCart
//
//	@Summary	Корзина
//	@Tags		storefront
//	@Produce	json
//	@Param		X-Session-ID	header		string	false	"ID сессии"
//	@Success	200				{object}	CartResponse
//	@Router		/storefront/cart [get]
func (s *StorefrontHandler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := s.cartUsecase.GetCart(r.Context(), sessionFromCtx(r.Context()))
	if err != nil {
		s.logger.Errorf(err, "failed to load cart")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(cart, s.lang(r)))
}

// addCartItem
//
//	@Summary		Добавить товар в корзину
//	@Description	Повторное добавление увеличивает количество на 1
//	@Tags			storefront
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string				false	"ID сессии"
//	@Param			request			body		AddCartItemRequest	true	"Товар"
//	@Success		200				{object}	CartResponse
//	@Failure		400				{object}	ErrorResponse	"Нет в наличии"
//	@Failure		404				{object}	ErrorResponse
//	@Router			/storefront/cart/items [post]
func (s *StorefrontHandler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.ProductID <= 0 {
		WriteError(w, e.NewValidationError("product_id", e.ErrMissingFields))
		return
	}

	cart, err := s.cartUsecase.AddItem(r.Context(), sessionFromCtx(r.Context()), req.ProductID)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(cart, s.lang(r)))
}

// updateCartItem
//
//	@Summary		Изменить количество
//	@Description	Количество 0 или меньше удаляет строку
//	@Tags			storefront
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"ID сессии"
//	@Param			id				path		int						true	"ID товара"
//	@Param			request			body		UpdateCartItemRequest	true	"Количество"
//	@Success		200				{object}	CartResponse
//	@Router			/storefront/cart/items/{id} [put]
func (s *StorefrontHandler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req UpdateCartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	cart, err := s.cartUsecase.UpdateQuantity(r.Context(), sessionFromCtx(r.Context()), id, req.Quantity)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(cart, s.lang(r)))
}

// removeCartItem
//
//	@Summary	Удалить строку корзины
//	@Tags		storefront
//	@Produce	json
//	@Param		X-Session-ID	header		string	false	"ID сессии"
//	@Param		id				path		int		true	"ID товара"
//	@Success	200				{object}	CartResponse
//	@Router		/storefront/cart/items/{id} [delete]
func (s *StorefrontHandler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	cart, err := s.cartUsecase.RemoveItem(r.Context(), sessionFromCtx(r.Context()), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newCartResponse(cart, s.lang(r)))
}

// clearCart
//
//	@Summary	Очистить корзину
//	@Tags		storefront
//	@Param		X-Session-ID	header	string	false	"ID сессии"
//	@Success	204
//	@Router		/storefront/cart [delete]
func (s *StorefrontHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := s.cartUsecase.Clear(r.Context(), sessionFromCtx(r.Context())); err != nil {
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CHECKOUT

// getSlots
//
//	@Summary		Слоты доставки на сегодня
//	@Description	Слоты через 15 минут до 23:45, ближайший не раньше чем через 45 минут
//	@Tags			storefront
//	@Produce		json
//	@Success		200	{object}	SlotsResponse
//	@Router			/storefront/slots [get]
func (s *StorefrontHandler) getSlots(w http.ResponseWriter, r *http.Request) {
	slots := s.checkoutUsecase.Slots(r.Context())

	WriteSuccess(w, http.StatusOK, SlotsResponse{
		Date:               slots.Date,
		Slots:              slots.Slots,
		ScheduledAvailable: slots.ScheduledAvailable,
	})
}

// prefill
//
//	@Summary	Значения формы оформления
//	@Tags		storefront
//	@Produce	json
//	@Param		X-Session-ID	header		string	false	"ID сессии"
//	@Success	200				{object}	PrefillResponse
//	@Router		/storefront/checkout [get]
func (s *StorefrontHandler) prefill(w http.ResponseWriter, r *http.Request) {
	prefill, err := s.checkoutUsecase.Prefill(r.Context(), sessionFromCtx(r.Context()))
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newPrefillResponse(prefill))
}

// quoteDelivery
//
//	@Summary	Стоимость доставки до точки клиента
//	@Tags		storefront
//	@Accept		json
//	@Produce	json
//	@Param		X-Session-ID	header		string			false	"ID сессии"
//	@Param		request			body		CoordinatesDTO	true	"Точка доставки"
//	@Success	200				{object}	DeliveryQuoteResponse
//	@Failure	409				{object}	ErrorResponse	"Ресторан не выбран"
//	@Router		/storefront/checkout/delivery [post]
func (s *StorefrontHandler) quoteDelivery(w http.ResponseWriter, r *http.Request) {
	var req CoordinatesDTO
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	quote, err := s.checkoutUsecase.QuoteDelivery(r.Context(), sessionFromCtx(r.Context()), domain.Coordinates{Lat: req.Lat, Lng: req.Lng})
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newDeliveryQuoteResponse(quote))
}

// submit
//
//	@Summary		Оформление заказа
//	@Description	Собирает заказ из корзины и отправляет его в API заказов. После успеха корзина очищается
//	@Tags			storefront
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string			false	"ID сессии"
//	@Param			request			body		CheckoutRequest	true	"Форма заказа"
//	@Success		201				{object}	ReceiptResponse
//	@Failure		400				{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409				{object}	ErrorResponse	"Отправка уже идёт"
//	@Failure		502				{object}	ErrorResponse	"API заказов вернул ошибку"
//	@Router			/storefront/checkout [post]
func (s *StorefrontHandler) submit(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}

	sessionID := sessionFromCtx(r.Context())
	receipt, err := s.checkoutUsecase.Submit(r.Context(), sessionID, req.toForm())
	if err != nil {
		s.logger.Warnf("checkout for session %s failed: %v", sessionID, err)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newReceiptResponse(receipt))
}
