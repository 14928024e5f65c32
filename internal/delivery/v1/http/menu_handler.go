package http

import (
	"net/http"
	"strconv"

	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/e"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
)

type MenuHandler struct {
	menuUsecase usecase.MenuUC
	logger      logger.Logger
}

func NewMenuHandler(menuUsecase usecase.MenuUC, logger logger.Logger) *MenuHandler {
	return &MenuHandler{menuUsecase: menuUsecase, logger: logger}
}

// listCategories
//
//	@Summary		Список категорий
//	@Description	Активные категории, при restaurant_id только одного ресторана
//	@Tags			menu
//	@Produce		json
//	@Param			restaurant_id	query		int	false	"ID ресторана"
//	@Success		200				{array}		CategoryResponse
//	@Failure		400				{object}	ErrorResponse
//	@Router			/products/categories [get]
func (m *MenuHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := parseOptionalID(r, "restaurant_id")
	if err != nil {
		WriteError(w, err)
		return
	}

	categories, err := m.menuUsecase.ListCategories(r.Context(), restaurantID)
	if err != nil {
		m.logger.Errorf(err, "failed to list categories")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, mapSlice(categories, newCategoryResponse))
}

// listProducts
//
//	@Summary		Список товаров
//	@Tags			menu
//	@Produce		json
//	@Param			restaurant_id	query		int		false	"ID ресторана"
//	@Param			category_id		query		int		false	"ID категории"
//	@Param			in_stock		query		bool	false	"Только товары в наличии"
//	@Success		200				{array}		ProductResponse
//	@Failure		400				{object}	ErrorResponse
//	@Router			/products [get]
func (m *MenuHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	products, err := m.menuUsecase.ListProducts(r.Context(), filter)
	if err != nil {
		m.logger.Errorf(err, "failed to list products")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, mapSlice(products, newProductResponse))
}

// getProduct
//
//	@Summary	Товар по ID
//	@Tags		menu
//	@Produce	json
//	@Param		id	path		int	true	"ID товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (m *MenuHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := m.menuUsecase.GetProduct(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(*product))
}

// listRestaurants
//
//	@Summary	Активные рестораны
//	@Tags		menu
//	@Produce	json
//	@Success	200	{array}	RestaurantResponse
//	@Router		/products/restaurants/list [get]
func (m *MenuHandler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := m.menuUsecase.ListRestaurants(r.Context())
	if err != nil {
		m.logger.Errorf(err, "failed to list restaurants")
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, mapSlice(restaurants, newRestaurantResponse))
}

// getRestaurant
//
//	@Summary	Ресторан по ID
//	@Tags		menu
//	@Produce	json
//	@Param		id	path		int	true	"ID ресторана"
//	@Success	200	{object}	RestaurantResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/restaurant/{id} [get]
func (m *MenuHandler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	restaurant, err := m.menuUsecase.GetRestaurant(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newRestaurantResponse(*restaurant))
}

func parseProductFilter(r *http.Request) (usecase.ProductFilter, error) {
	var filter usecase.ProductFilter

	restaurantID, err := parseOptionalID(r, "restaurant_id")
	if err != nil {
		return filter, err
	}
	filter.RestaurantID = restaurantID

	categoryID, err := parseOptionalID(r, "category_id")
	if err != nil {
		return filter, err
	}
	filter.CategoryID = categoryID

	if raw := r.URL.Query().Get("in_stock"); raw != "" {
		inStock, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, e.NewValidationError("in_stock", e.ErrStatusBadRequest)
		}
		filter.InStockOnly = inStock
	}

	return filter, nil
}
