package http

import (
	"github.com/go-chi/chi/v5"
	_ "github.com/msr-works/storefront-backend/docs" // Импорт сгенерированных файлов
	"github.com/msr-works/storefront-backend/internal/usecase"
	"github.com/msr-works/storefront-backend/pkg/logger"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(sfUC usecase.StorefrontUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		sfHandler := NewStorefrontHandler(sfUC, r.logger)
		registerStorefrontRoutes(v1, sfHandler)
	})
}

func registerStorefrontRoutes(router chi.Router, sfHandler *StorefrontHandler) {
	router.Route("/session", func(s chi.Router) {
		s.Get("/", sfHandler.getSession)
		s.Post("/navigate", sfHandler.navigate)
		s.Get("/products", sfHandler.getListing)
		s.Put("/filters", sfHandler.setFilters)

		s.Route("/cart", func(c chi.Router) {
			c.Get("/", sfHandler.getCart)
			c.Post("/items", sfHandler.addToCart)
			c.Patch("/items/{id}", sfHandler.updateCartLine)
		})

		s.Route("/checkout", func(c chi.Router) {
			c.Get("/", sfHandler.getCheckoutState)
			c.Post("/", sfHandler.submitOrder)
		})
	})

	router.Get("/products/{id}", sfHandler.getProduct)
	router.Get("/categories", sfHandler.getTaxonomy)
}
