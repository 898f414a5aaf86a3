package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/minhtp/sobanhang/internal/http/extraction"
	"github.com/minhtp/sobanhang/internal/http/ledger"
	"github.com/minhtp/sobanhang/internal/http/order"
	"github.com/minhtp/sobanhang/internal/http/product"
	"github.com/minhtp/sobanhang/internal/http/stock"
)

func New(
	authSecret string,
	productsV1 *product.Handler,
	stockV1 *stock.Handler,
	ledgerV1 *ledger.Handler,
	ordersV1 *order.Handler,
	extractionV1 *extraction.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(BearerAuth(authSecret))

		r.Route("/products", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			productsV1.Routes(r)
		})

		r.Route("/stock", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			stockV1.Routes(r)
		})

		r.Route("/ledger", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			ledgerV1.Routes(r)
		})

		r.Route("/orders", func(r chi.Router) {
			ordersV1.Routes(r)
		})

		r.Route("/extraction", extractionV1.Routes)
	})

	return router
}
