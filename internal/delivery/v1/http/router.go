package http

import (
	_ "github.com/DRSN-tech/food-delivery/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/food-delivery/internal/domain"
	"github.com/DRSN-tech/food-delivery/internal/usecase"
	"github.com/DRSN-tech/food-delivery/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

// UseCases — всё, что нужно роутеру для регистрации обработчиков.
type UseCases struct {
	Menu     usecase.MenuUC
	Order    usecase.OrderUC
	Delivery usecase.DeliveryUC
	Session  usecase.SessionUC
	Catalog  usecase.CatalogUC
	Cart     usecase.CartUC
	Checkout usecase.CheckoutUC
}

func (r *Router) Init(uc UseCases, defaultLang domain.Language) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(requestLogger(r.logger))
	r.router.Use(middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerMenuRoutes(v1, NewMenuHandler(uc.Menu, r.logger))
		registerOrderRoutes(v1, NewOrderHandler(uc.Order, r.logger))
		registerDeliveryRoutes(v1, NewDeliveryHandler(uc.Delivery, r.logger))
		registerStorefrontRoutes(v1, NewStorefrontHandler(uc.Session, uc.Catalog, uc.Cart, uc.Checkout, r.logger, defaultLang))
	})
}

func registerMenuRoutes(router chi.Router, h *MenuHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/categories", h.listCategories)
		pr.Get("/restaurants/list", h.listRestaurants)
		pr.Get("/restaurant/{id}", h.getRestaurant)
		pr.Get("/{id}", h.getProduct)
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Route("/orders", func(or chi.Router) {
		or.Post("/", h.createOrder)
		or.Get("/{number}", h.getOrder)
	})
}

func registerDeliveryRoutes(router chi.Router, h *DeliveryHandler) {
	router.Route("/delivery", func(dr chi.Router) {
		dr.Post("/calculate", h.calculate)
		dr.Get("/info", h.info)
	})
}

func registerStorefrontRoutes(router chi.Router, h *StorefrontHandler) {
	router.Route("/storefront", func(sf chi.Router) {
		sf.Use(sessionMiddleware)

		sf.Get("/session", h.getSession)
		sf.Put("/session/restaurant", h.selectRestaurant)
		sf.Put("/session/profile", h.updateProfile)

		sf.Get("/restaurants", h.listRestaurants)
		sf.Get("/catalog", h.getCatalog)
		sf.Post("/catalog/open/{id}", h.openCategory)
		sf.Post("/catalog/close", h.closeCategory)
		sf.Post("/catalog/refresh", h.refreshCatalog)

		sf.Get("/cart", h.getCart)
		sf.Delete("/cart", h.clearCart)
		sf.Post("/cart/items", h.addCartItem)
		sf.Put("/cart/items/{id}", h.updateCartItem)
		sf.Delete("/cart/items/{id}", h.removeCartItem)

		sf.Get("/slots", h.getSlots)
		sf.Get("/checkout", h.prefill)
		sf.Post("/checkout", h.submit)
		sf.Post("/checkout/delivery", h.quoteDelivery)
	})
}
